package systems

import (
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/render"
	"github.com/yohamta/donburi/ecs"
)

// showContext bundles the singletons most show systems need.
type showContext struct {
	show     *components.ShowData
	viewport *components.ViewportData
	canvas   render.Canvas
}

func getShowContext(e *ecs.ECS) (showContext, bool) {
	entry, ok := components.Show.First(e.World)
	if !ok {
		return showContext{}, false
	}
	return showContext{
		show:     components.Show.Get(entry),
		viewport: components.Viewport.Get(entry),
		canvas:   components.Surface.Get(entry).Canvas,
	}, true
}

// IsEventActive reports whether the event gate has opened.
func IsEventActive(e *ecs.ECS) bool {
	entry, ok := components.EventGate.First(e.World)
	if !ok {
		return false
	}
	return components.EventGate.Get(entry).Active
}

// ResizeViewport records a new surface size and resizes the canvas if it owns pixels.
func ResizeViewport(e *ecs.ECS, width, height int) {
	entry, ok := components.Show.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(entry)
	if vp.Width == width && vp.Height == height {
		return
	}
	vp.Width = width
	vp.Height = height

	if r, ok := components.Surface.Get(entry).Canvas.(render.Resizable); ok {
		r.Resize(width, height)
	}
}

// tickSeconds is the simulated duration of one Update call.
func tickSeconds() float32 {
	return 1 / float32(cfg.C.TPS)
}
