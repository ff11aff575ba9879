package gamemath

import (
	"math"
	"math/rand"
)

// RandRange returns a uniform value in [min, max).
func RandRange(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// Chance reports true with probability p.
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Velocity splits a speed along a heading (radians) into x and y components.
func Velocity(angle, speed float64) (vx, vy float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// Heading returns the angle of the vector from (x0, y0) to (x1, y1).
func Heading(x0, y0, x1, y1 float64) float64 {
	return math.Atan2(y1-y0, x1-x0)
}
