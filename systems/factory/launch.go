package factory

import (
	"math/rand"

	"github.com/automoto/fireworks/archetypes"
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/render"
	"github.com/automoto/fireworks/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLaunch spawns a launch travelling from start toward target.
func CreateLaunch(ecs *ecs.ECS, start, target render.Point, rng *rand.Rand) *donburi.Entry {
	launch := archetypes.Launch.Spawn(ecs)

	brightness := gamemath.RandRange(rng, cfg.Launch.BrightnessMin, cfg.Launch.BrightnessMax)
	components.Launch.SetValue(launch, components.NewLaunch(start, target, brightness))
	components.Trail.SetValue(launch, components.NewTrail(cfg.Launch.TrailLength, start))

	return launch
}
