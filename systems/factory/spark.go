package factory

import (
	"math"
	"math/rand"

	"github.com/automoto/fireworks/archetypes"
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/render"
	"github.com/automoto/fireworks/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBurst detonates at p, spawning cfg.Spark.BurstCount sparks whose hues
// scatter around the given global hue.
func CreateBurst(ecs *ecs.ECS, p render.Point, hue float64, rng *rand.Rand) []*donburi.Entry {
	sparks := make([]*donburi.Entry, 0, cfg.Spark.BurstCount)
	for i := 0; i < cfg.Spark.BurstCount; i++ {
		sparks = append(sparks, CreateSpark(ecs, p, hue, rng))
	}
	return sparks
}

// CreateSpark spawns a single spark at p.
func CreateSpark(ecs *ecs.ECS, p render.Point, hue float64, rng *rand.Rand) *donburi.Entry {
	spark := archetypes.Spark.Spawn(ecs)

	components.Spark.SetValue(spark, components.SparkData{
		Position:   p,
		Angle:      gamemath.RandRange(rng, 0, 2*math.Pi),
		Speed:      gamemath.RandRange(rng, cfg.Spark.SpeedMin, cfg.Spark.SpeedMax),
		Friction:   cfg.Spark.Friction,
		Gravity:    cfg.Spark.Gravity,
		Hue:        gamemath.RandRange(rng, hue-cfg.Spark.HueSpread, hue+cfg.Spark.HueSpread),
		Brightness: gamemath.RandRange(rng, cfg.Spark.BrightnessMin, cfg.Spark.BrightnessMax),
		Alpha:      1,
		Decay:      gamemath.RandRange(rng, cfg.Spark.DecayMin, cfg.Spark.DecayMax),
		Sparkle:    gamemath.Chance(rng, cfg.Spark.SparkleChance),
	})
	components.Trail.SetValue(spark, components.NewTrail(cfg.Spark.TrailLength, p))

	return spark
}
