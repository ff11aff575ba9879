package factory

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/fireworks/clock"
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/render"
	"github.com/automoto/fireworks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func countSparks(e *ecs.ECS) int {
	n := 0
	tags.Spark.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestCreateBurstSpawnsAtPoint(t *testing.T) {
	e := newTestECS()
	rng := rand.New(rand.NewSource(1))
	p := render.Point{X: 320, Y: 180}

	sparks := CreateBurst(e, p, 120, rng)

	if len(sparks) != 150 {
		t.Fatalf("expected 150 sparks, got %d", len(sparks))
	}
	if n := countSparks(e); n != 150 {
		t.Errorf("expected 150 tagged sparks in the world, got %d", n)
	}

	sparkles := 0
	for _, entry := range sparks {
		spark := components.Spark.Get(entry)
		trail := components.Trail.Get(entry)

		if spark.Position != p {
			t.Fatalf("expected spark at %v, got %v", p, spark.Position)
		}
		if trail.Len() != cfg.Spark.TrailLength || trail.Oldest() != p {
			t.Fatalf("expected a full trail at %v", p)
		}
		if spark.Alpha != 1 {
			t.Errorf("expected alpha 1, got %v", spark.Alpha)
		}
		if spark.Hue < 70 || spark.Hue >= 170 {
			t.Errorf("expected hue within 50 of 120, got %v", spark.Hue)
		}
		if spark.Speed < cfg.Spark.SpeedMin || spark.Speed >= cfg.Spark.SpeedMax {
			t.Errorf("speed %v out of range", spark.Speed)
		}
		if spark.Decay < cfg.Spark.DecayMin || spark.Decay >= cfg.Spark.DecayMax {
			t.Errorf("decay %v out of range", spark.Decay)
		}
		if spark.Sparkle {
			sparkles++
		}
	}

	// Roughly 30% sparkle; a fixed seed keeps this deterministic
	if sparkles < 20 || sparkles > 70 {
		t.Errorf("expected around 45 sparkle sparks, got %d", sparkles)
	}
}

func TestCreateLaunch(t *testing.T) {
	e := newTestECS()
	rng := rand.New(rand.NewSource(1))
	start := render.Point{X: 640, Y: 720}
	target := render.Point{X: 100, Y: 200}

	entry := CreateLaunch(e, start, target, rng)
	launch := components.Launch.Get(entry)

	if launch.Position != start || launch.Target != target {
		t.Errorf("expected %v -> %v, got %v -> %v", start, target, launch.Position, launch.Target)
	}
	if launch.Brightness < cfg.Launch.BrightnessMin || launch.Brightness >= cfg.Launch.BrightnessMax {
		t.Errorf("brightness %v out of range", launch.Brightness)
	}
	if launch.Speed != cfg.Launch.InitialSpeed {
		t.Errorf("expected speed %v, got %v", cfg.Launch.InitialSpeed, launch.Speed)
	}
	if n := components.Trail.Get(entry).Len(); n != cfg.Launch.TrailLength {
		t.Errorf("expected trail length %d, got %d", cfg.Launch.TrailLength, n)
	}
}

func TestCreateShow(t *testing.T) {
	e := newTestECS()
	rec := render.NewRecorder()
	target := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)

	CreateShow(e, ShowOptions{
		Canvas: rec,
		Clock:  clock.NewMock(target.Add(-time.Minute)),
		Rand:   rand.New(rand.NewSource(1)),
		Target: target,
		Width:  800,
		Height: 600,
	})

	showEntry, ok := components.Show.First(e.World)
	if !ok {
		t.Fatal("expected a show entity")
	}
	if hue := components.Show.Get(showEntry).Hue; hue != cfg.Hue.Start {
		t.Errorf("expected starting hue %v, got %v", cfg.Hue.Start, hue)
	}
	if vp := components.Viewport.Get(showEntry); vp.Width != 800 || vp.Height != 600 {
		t.Errorf("expected viewport 800x600, got %dx%d", vp.Width, vp.Height)
	}

	gateEntry, ok := components.EventGate.First(e.World)
	if !ok {
		t.Fatal("expected an event gate")
	}
	if components.EventGate.Get(gateEntry).Active {
		t.Error("expected gate to start closed")
	}
	if !components.Countdown.Get(gateEntry).Visible {
		t.Error("expected countdown to start visible")
	}

	schedEntry, ok := components.Scheduler.First(e.World)
	if !ok {
		t.Fatal("expected a scheduler")
	}
	if s := components.Scheduler.Get(schedEntry); s.AutoPeriod != 80 || s.PointerLimit != 5 {
		t.Errorf("expected periods 80/5, got %d/%d", s.AutoPeriod, s.PointerLimit)
	}
}
