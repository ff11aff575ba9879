package components

import (
	"math/rand"

	"github.com/automoto/fireworks/clock"
	"github.com/automoto/fireworks/render"
	"github.com/yohamta/donburi"
)

// ShowData is the per-scene simulation context shared by every system.
type ShowData struct {
	Hue   float64 // global hue, drifts every tick
	Rand  *rand.Rand
	Clock clock.Clock
	Ticks int
	Debug bool // draw the stats overlay
}

var Show = donburi.NewComponentType[ShowData]()

// ViewportData is the current drawing surface size in pixels.
type ViewportData struct {
	Width  int
	Height int
}

var Viewport = donburi.NewComponentType[ViewportData]()

// SurfaceData holds the canvas entities are drawn on.
type SurfaceData struct {
	Canvas render.Canvas
}

var Surface = donburi.NewComponentType[SurfaceData]()
