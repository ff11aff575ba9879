package scenes

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/fireworks/clock"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/render"
	"github.com/automoto/fireworks/systems"
	"github.com/automoto/fireworks/systems/factory"
	"github.com/automoto/fireworks/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShowOptions configures a fireworks show.
type ShowOptions struct {
	Clock   clock.Clock
	Target  time.Time // zero means the next New Year in the clock's location
	Seed    int64     // 0 seeds from the clock
	Pointer systems.PointerSource
}

// ShowScene runs the countdown and, once the target time passes, the fireworks.
// ebiten calls Update and Draw from a single goroutine, so the world is never
// touched concurrently and needs no locking.
type ShowScene struct {
	ecs           *ecs.ECS
	opts          ShowOptions
	instructionUI *ui.InstructionUI
	width, height int
	once          sync.Once
}

// NewShowScene creates a show scene; the world is built on the first Update.
func NewShowScene(opts ShowOptions) *ShowScene {
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Pointer == nil {
		opts.Pointer = &systems.EbitenPointer{}
	}
	return &ShowScene{
		opts:   opts,
		width:  cfg.C.Width,
		height: cfg.C.Height,
	}
}

// Resize tells the show about a new drawing surface size.
func (s *ShowScene) Resize(width, height int) {
	s.width = width
	s.height = height
	if s.ecs != nil {
		systems.ResizeViewport(s.ecs, width, height)
	}
}

func (s *ShowScene) Update() {
	s.once.Do(s.configure)
	if s.instructionUI != nil {
		s.instructionUI.Update()
	}
	s.ecs.Update()
}

func (s *ShowScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		screen.Fill(cfg.Surface.Background)
		return
	}
	s.ecs.Draw(screen)
}

func (s *ShowScene) configure() {
	iui, err := ui.NewInstructionUI()
	if err != nil {
		log.Printf("Warning: Could not build instruction banner: %v", err)
	}

	var banner systems.Banner
	if iui != nil {
		s.instructionUI = iui
		banner = iui
	}

	surface := render.NewSurface(s.width, s.height)
	s.ecs = newShowECS(surface, s.opts, s.width, s.height, banner)
}

// newShowECS builds the world and registers systems in frame order. Launches
// are updated before sparks so a fresh detonation is drawn in the tick it happens.
func newShowECS(canvas render.Canvas, opts ShowOptions, width, height int, banner systems.Banner) *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.NewUpdateInput(opts.Pointer))
	ecs.AddSystem(systems.UpdateEventGate)
	ecs.AddSystem(systems.UpdateCountdown)
	ecs.AddSystem(systems.UpdateHue)
	ecs.AddSystem(systems.UpdateCompositor)
	ecs.AddSystem(systems.UpdateLaunches)
	ecs.AddSystem(systems.UpdateSparks)
	ecs.AddSystem(systems.UpdateScheduler)
	ecs.AddSystem(systems.UpdateGreetings)
	ecs.AddSystem(systems.UpdateInstruction)
	ecs.AddSystem(systems.UpdateDebug)

	ecs.AddRenderer(cfg.Default, systems.DrawSurface)
	ecs.AddRenderer(cfg.Default, systems.DrawCountdown)
	ecs.AddRenderer(cfg.Default, systems.DrawGreetings)
	if banner != nil {
		ecs.AddRenderer(cfg.Default, systems.NewDrawInstruction(banner))
	}
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	now := opts.Clock.Now()
	target := opts.Target
	if target.IsZero() {
		target = clock.NextNewYear(now)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}

	factory.CreateShow(ecs, factory.ShowOptions{
		Canvas: canvas,
		Clock:  opts.Clock,
		Rand:   rand.New(rand.NewSource(seed)),
		Target: target,
		Width:  width,
		Height: height,
	})

	log.Printf("Counting down to %s", target.Format(time.RFC1123))
	return ecs
}
