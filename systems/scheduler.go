package systems

import (
	"github.com/automoto/fireworks/components"
	"github.com/automoto/fireworks/render"
	"github.com/automoto/fireworks/shared/gamemath"
	"github.com/automoto/fireworks/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScheduler runs the auto and pointer launch gates once the event is active.
// The held flag selects which gate can fire: auto while released, pointer while held.
func UpdateScheduler(e *ecs.ECS) {
	if !IsEventActive(e) {
		return
	}
	ctx, ok := getShowContext(e)
	if !ok {
		return
	}
	entry, ok := components.Scheduler.First(e.World)
	if !ok {
		return
	}

	scheduler := components.Scheduler.Get(entry)
	var pointer components.PointerData
	if entry.HasComponent(components.Pointer) {
		pointer = *components.Pointer.Get(entry)
	}

	auto, manual := scheduler.Step(pointer.Held)

	w := float64(ctx.viewport.Width)
	h := float64(ctx.viewport.Height)
	origin := render.Point{X: w / 2, Y: h}

	if auto {
		target := render.Point{
			X: gamemath.RandRange(ctx.show.Rand, 0, w),
			Y: gamemath.RandRange(ctx.show.Rand, 0, h/2),
		}
		factory.CreateLaunch(e, origin, target, ctx.show.Rand)
	}
	if manual {
		factory.CreateLaunch(e, origin, render.Point{X: pointer.X, Y: pointer.Y}, ctx.show.Rand)
	}
}
