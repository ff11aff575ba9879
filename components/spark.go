package components

import (
	"github.com/automoto/fireworks/render"
	"github.com/automoto/fireworks/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SparkData is one decaying particle thrown out by a detonation.
type SparkData struct {
	Position render.Point

	Angle    float64 // radians
	Speed    float64
	Friction float64 // speed multiplier per tick, < 1
	Gravity  float64 // added to y every tick

	Hue        float64
	Brightness float64 // HSL lightness percent
	Alpha      float64
	Decay      float64 // alpha lost per tick

	// Sparkle sparks flicker in brightness and occasionally flare wider
	Sparkle bool
}

var Spark = donburi.NewComponentType[SparkData]()

// Advance moves the spark one tick and reports whether it has faded out.
// A spark expires once alpha is at or below its own decay rate, one step
// before it would go negative.
func (s *SparkData) Advance(trail *TrailData) (expired bool) {
	trail.Push(s.Position)

	s.Speed *= s.Friction
	vx, vy := gamemath.Velocity(s.Angle, s.Speed)
	s.Position.X += vx
	s.Position.Y += vy + s.Gravity

	s.Alpha -= s.Decay
	return s.Alpha <= s.Decay
}
