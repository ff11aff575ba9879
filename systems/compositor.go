package systems

import (
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/render"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCompositor fades the persistent surface and switches to additive blending
// for the entity passes that follow. Erasing with a translucent rectangle
// instead of clearing leaves fading streaks behind moving entities.
func UpdateCompositor(e *ecs.ECS) {
	ctx, ok := getShowContext(e)
	if !ok {
		return
	}

	ctx.canvas.SetCompositeMode(render.CompositeErase)
	ctx.canvas.FillRect(
		render.Rect{W: float64(ctx.viewport.Width), H: float64(ctx.viewport.Height)},
		render.HSLA{A: cfg.Surface.FadeAlpha},
	)

	// Overlapping sparks brighten instead of covering each other
	ctx.canvas.SetCompositeMode(render.CompositeAdditive)
}
