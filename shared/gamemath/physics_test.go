package gamemath

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandRangeStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := RandRange(rng, -50, 50)
		if v < -50 || v >= 50 {
			t.Fatalf("expected value in [-50,50), got %v", v)
		}
	}
}

func TestChanceExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		if Chance(rng, 0) {
			t.Fatal("Chance(0) should never be true")
		}
		if !Chance(rng, 1) {
			t.Fatal("Chance(1) should always be true")
		}
	}
}

func TestVelocityStraightUp(t *testing.T) {
	angle := Heading(500, 600, 500, 100)
	vx, vy := Velocity(angle, 2)

	if math.Abs(vx) > 1e-9 {
		t.Errorf("expected vx=0, got %v", vx)
	}
	if math.Abs(vy+2) > 1e-9 {
		t.Errorf("expected vy=-2, got %v", vy)
	}
}
