package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/fireworks/archetypes"
	"github.com/automoto/fireworks/clock"
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/render"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShowOptions carries the collaborators a show is built around.
type ShowOptions struct {
	Canvas render.Canvas
	Clock  clock.Clock
	Rand   *rand.Rand
	Target time.Time
	Width  int
	Height int
}

// CreateShow creates the singleton entities every show system reads:
// simulation context, controls, event gate and overlays.
func CreateShow(ecs *ecs.ECS, opts ShowOptions) *donburi.Entry {
	show := archetypes.Show.Spawn(ecs)
	components.Show.SetValue(show, components.ShowData{
		Hue:   cfg.Hue.Start,
		Rand:  opts.Rand,
		Clock: opts.Clock,
		Debug: cfg.Debug.Overlay,
	})
	components.Viewport.SetValue(show, components.ViewportData{Width: opts.Width, Height: opts.Height})
	components.Surface.SetValue(show, components.SurfaceData{Canvas: opts.Canvas})
	opts.Canvas.SetStrokeWidth(cfg.Surface.StrokeWidth)

	controls := archetypes.Controls.Spawn(ecs)
	components.Scheduler.SetValue(controls, components.SchedulerData{
		AutoPeriod:   cfg.Scheduler.AutoLaunchPeriod,
		PointerLimit: cfg.Scheduler.PointerRateLimit,
	})

	gate := archetypes.Gate.Spawn(ecs)
	components.EventGate.SetValue(gate, components.EventGateData{Target: opts.Target})
	components.Countdown.SetValue(gate, components.CountdownData{Visible: true})

	archetypes.Overlay.Spawn(ecs)

	return show
}
