package systems

import (
	"github.com/automoto/fireworks/components"
	"github.com/automoto/fireworks/render"
	"github.com/automoto/fireworks/systems/factory"
	"github.com/automoto/fireworks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLaunches draws then advances every launch. Launches that arrive are
// removed after the pass and detonate into a burst of sparks at their target,
// so the spark pass later in the same tick already includes them.
func UpdateLaunches(e *ecs.ECS) {
	ctx, ok := getShowContext(e)
	if !ok {
		return
	}

	var arrived []*donburi.Entry

	tags.Launch.Each(e.World, func(entry *donburi.Entry) {
		launch := components.Launch.Get(entry)
		trail := components.Trail.Get(entry)

		drawLaunch(ctx.canvas, launch, trail, ctx.show.Hue)

		if launch.Advance(trail) {
			arrived = append(arrived, entry)
		}
	})

	for _, entry := range arrived {
		target := components.Launch.Get(entry).Target
		entry.Remove()
		factory.CreateBurst(e, target, ctx.show.Hue, ctx.show.Rand)
	}
}

// drawLaunch strokes the trail from its oldest point to the current position
// and the pulsing ring at the target.
func drawLaunch(canvas render.Canvas, launch *components.LaunchData, trail *components.TrailData, hue float64) {
	stroke := render.Stroke{Color: render.HSLA{H: hue, S: 100, L: launch.Brightness, A: 1}}
	canvas.DrawLineSegment(trail.Oldest(), launch.Position, stroke)
	canvas.DrawCircleOutline(launch.Target, launch.TargetRadius, stroke)
}
