package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/fireworks/clock"
	"github.com/automoto/fireworks/components"
	"github.com/automoto/fireworks/render"
	"github.com/automoto/fireworks/systems/factory"
	"github.com/automoto/fireworks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var testNow = time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC)

type fakePointer struct {
	x, y    int
	pressed bool
}

func (p *fakePointer) Position() (int, int) { return p.x, p.y }
func (p *fakePointer) Pressed() bool        { return p.pressed }

type testShow struct {
	ecs     *ecs.ECS
	canvas  *render.Recorder
	clock   *clock.Mock
	pointer *fakePointer
}

// newTestShow builds a show with every system in frame order, drawing to a recorder.
func newTestShow(target time.Time) *testShow {
	s := &testShow{
		ecs:     ecs.NewECS(donburi.NewWorld()),
		canvas:  render.NewRecorder(),
		clock:   clock.NewMock(testNow),
		pointer: &fakePointer{},
	}

	s.ecs.AddSystem(NewUpdateInput(s.pointer))
	s.ecs.AddSystem(UpdateEventGate)
	s.ecs.AddSystem(UpdateCountdown)
	s.ecs.AddSystem(UpdateHue)
	s.ecs.AddSystem(UpdateCompositor)
	s.ecs.AddSystem(UpdateLaunches)
	s.ecs.AddSystem(UpdateSparks)
	s.ecs.AddSystem(UpdateScheduler)
	s.ecs.AddSystem(UpdateGreetings)
	s.ecs.AddSystem(UpdateInstruction)

	factory.CreateShow(s.ecs, factory.ShowOptions{
		Canvas: s.canvas,
		Clock:  s.clock,
		Rand:   rand.New(rand.NewSource(42)),
		Target: target,
		Width:  1000,
		Height: 600,
	})
	return s
}

func (s *testShow) tick(n int) {
	for i := 0; i < n; i++ {
		s.ecs.Update()
	}
}

func (s *testShow) launches() []*components.LaunchData {
	var out []*components.LaunchData
	tags.Launch.Each(s.ecs.World, func(entry *donburi.Entry) {
		out = append(out, components.Launch.Get(entry))
	})
	return out
}

func (s *testShow) sparkCount() int {
	n := 0
	tags.Spark.Each(s.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

// freshLaunches returns launches created by the scheduler this tick; they
// have not been advanced yet.
func (s *testShow) freshLaunches() []*components.LaunchData {
	var out []*components.LaunchData
	for _, l := range s.launches() {
		if l.DistanceTraveled == 0 {
			out = append(out, l)
		}
	}
	return out
}

func (s *testShow) greeting() *components.GreetingData {
	entry, _ := components.Greeting.First(s.ecs.World)
	return components.Greeting.Get(entry)
}

func (s *testShow) instruction() *components.InstructionData {
	entry, _ := components.Instruction.First(s.ecs.World)
	return components.Instruction.Get(entry)
}

func (s *testShow) gate() *components.EventGateData {
	entry, _ := components.EventGate.First(s.ecs.World)
	return components.EventGate.Get(entry)
}

func (s *testShow) countdown() *components.CountdownData {
	entry, _ := components.Countdown.First(s.ecs.World)
	return components.Countdown.Get(entry)
}
