package systems

import (
	"math/rand"

	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/render"
	"github.com/automoto/fireworks/shared/gamemath"
	"github.com/automoto/fireworks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSparks draws then advances every spark and removes the faded ones after the pass.
func UpdateSparks(e *ecs.ECS) {
	ctx, ok := getShowContext(e)
	if !ok {
		return
	}

	var expired []*donburi.Entry

	tags.Spark.Each(e.World, func(entry *donburi.Entry) {
		spark := components.Spark.Get(entry)
		trail := components.Trail.Get(entry)

		drawSpark(ctx.canvas, spark, trail, ctx.show.Rand)

		if spark.Advance(trail) {
			expired = append(expired, entry)
		}
	})

	for _, entry := range expired {
		entry.Remove()
	}
}

func drawSpark(canvas render.Canvas, spark *components.SparkData, trail *components.TrailData, rng *rand.Rand) {
	brightness := spark.Brightness

	if spark.Sparkle {
		brightness = gamemath.RandRange(rng, cfg.Spark.SparkleBrightnessMin, cfg.Spark.SparkleBrightnessMax)
		if gamemath.Chance(rng, cfg.Spark.FlareChance) {
			canvas.SetStrokeWidth(cfg.Spark.FlareWidth)
		} else {
			canvas.SetStrokeWidth(cfg.Surface.StrokeWidth)
		}
	}

	canvas.DrawLineSegment(trail.Oldest(), spark.Position, render.Stroke{
		Color: render.HSLA{H: spark.Hue, S: 100, L: brightness, A: spark.Alpha},
	})
	canvas.SetStrokeWidth(cfg.Surface.StrokeWidth)
}
