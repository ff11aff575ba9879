package components

import (
	"math"
	"testing"

	"github.com/automoto/fireworks/render"
)

func TestSparkFadesByDecayAndExpires(t *testing.T) {
	spark := SparkData{
		Speed:    10,
		Friction: 0.95,
		Gravity:  1,
		Alpha:    1,
		Decay:    0.125,
	}
	trail := NewTrail(5, spark.Position)

	ticks := 0
	for {
		ticks++
		if ticks > 200 {
			t.Fatal("spark never expired")
		}
		before := spark.Alpha
		expired := spark.Advance(&trail)

		if trail.Len() != 5 || trail.Cap() != 5 {
			t.Fatalf("tick %d: expected trail length 5, got %d", ticks, trail.Len())
		}

		if math.Abs(before-spark.Alpha-spark.Decay) > 1e-12 {
			t.Fatalf("expected alpha to drop by %v, dropped by %v", spark.Decay, before-spark.Alpha)
		}
		if expired != (spark.Alpha <= spark.Decay) {
			t.Fatalf("tick %d: expired=%v with alpha %v", ticks, expired, spark.Alpha)
		}
		if expired {
			break
		}
	}

	if spark.Alpha < 0 {
		t.Errorf("expected spark to expire before alpha went negative, got %v", spark.Alpha)
	}
	if ticks != 7 {
		t.Errorf("expected expiry on tick 7, got %d", ticks)
	}
}

func TestSparkFallsUnderGravity(t *testing.T) {
	// Thrown straight right: any vertical motion comes from gravity
	spark := SparkData{Speed: 5, Friction: 0.95, Gravity: 1, Alpha: 1, Decay: 0.01}
	trail := NewTrail(5, render.Point{})

	spark.Advance(&trail)
	spark.Advance(&trail)

	if spark.Position.Y != 2 {
		t.Errorf("expected y 2 after two ticks, got %v", spark.Position.Y)
	}
	if spark.Position.X <= 0 {
		t.Errorf("expected spark to move right, got x=%v", spark.Position.X)
	}
	if trail.Newest() == spark.Position {
		t.Error("expected trail to hold the previous position, not the current one")
	}
}
