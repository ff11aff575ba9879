package scenes

import (
	"testing"
	"time"

	"github.com/automoto/fireworks/clock"
	"github.com/automoto/fireworks/components"
	"github.com/automoto/fireworks/render"
	"github.com/automoto/fireworks/tags"
	"github.com/yohamta/donburi"
)

type stillPointer struct {
	pressed bool
}

func (p *stillPointer) Position() (int, int) { return 200, 100 }
func (p *stillPointer) Pressed() bool        { return p.pressed }

func TestShowRunsFromCountdownToFireworks(t *testing.T) {
	now := time.Date(2026, time.December, 31, 23, 59, 58, 0, time.Local)
	clk := clock.NewMock(now)
	rec := render.NewRecorder()
	pointer := &stillPointer{}

	e := newShowECS(rec, ShowOptions{Clock: clk, Seed: 1, Pointer: pointer}, 640, 360, nil)

	gateEntry, ok := components.EventGate.First(e.World)
	if !ok {
		t.Fatal("expected an event gate")
	}
	gate := components.EventGate.Get(gateEntry)
	if want := clock.NextNewYear(now); !gate.Target.Equal(want) {
		t.Fatalf("expected target %v, got %v", want, gate.Target)
	}

	for i := 0; i < 60; i++ {
		e.Update()
	}
	if gate.Active {
		t.Fatal("expected the show to still be counting down")
	}
	if countLaunches(e.World) != 0 {
		t.Fatal("expected no launches during the countdown")
	}

	clk.Advance(2 * time.Second)
	pointer.pressed = true
	for i := 0; i < 100; i++ {
		e.Update()
	}
	if !gate.Active {
		t.Fatal("expected the event to have started")
	}

	// The press carried over from the countdown is ignored, so auto launches run
	if countLaunches(e.World) == 0 && countSparks(e.World) == 0 {
		t.Error("expected auto launches once the event started")
	}

	pointer.pressed = false
	e.Update()
	pointer.pressed = true
	for i := 0; i < 5; i++ {
		e.Update()
	}

	found := false
	tags.Launch.Each(e.World, func(entry *donburi.Entry) {
		l := components.Launch.Get(entry)
		if l.Target.X == 200 && l.Target.Y == 100 {
			found = true
		}
	})
	if !found {
		t.Error("expected a launch toward the pointer after pressing")
	}
}

func TestShowSceneResizeBeforeFirstUpdate(t *testing.T) {
	s := NewShowScene(ShowOptions{Clock: clock.NewMock(time.Now())})
	s.Resize(300, 200)

	if s.width != 300 || s.height != 200 {
		t.Errorf("expected 300x200, got %dx%d", s.width, s.height)
	}
}

func countLaunches(w donburi.World) int {
	n := 0
	tags.Launch.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func countSparks(w donburi.World) int {
	n := 0
	tags.Spark.Each(w, func(*donburi.Entry) { n++ })
	return n
}
