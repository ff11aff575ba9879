package systems

import (
	cfg "github.com/automoto/fireworks/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHue drifts the global hue so each new burst is coloured a little differently.
func UpdateHue(e *ecs.ECS) {
	ctx, ok := getShowContext(e)
	if !ok {
		return
	}
	ctx.show.Hue += cfg.Hue.Step
	ctx.show.Ticks++
}
