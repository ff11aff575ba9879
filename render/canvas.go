package render

import "math"

// Point is a position on the drawing surface in pixels.
type Point struct {
	X, Y float64
}

// DistanceTo returns the straight-line distance between two points.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// CompositeMode selects how new pixels combine with what is already on the surface.
type CompositeMode int

const (
	CompositeNormal   CompositeMode = iota // source-over
	CompositeErase                         // destination-out: erases by source alpha
	CompositeAdditive                      // lighter: colours sum toward white
)

func (m CompositeMode) String() string {
	switch m {
	case CompositeErase:
		return "erase"
	case CompositeAdditive:
		return "additive"
	default:
		return "normal"
	}
}

// Stroke describes how an outline is painted.
type Stroke struct {
	Color HSLA
}

// Canvas is the drawing surface the simulation paints on every tick.
// Composite mode and stroke width are sticky until changed.
type Canvas interface {
	DrawLineSegment(from, to Point, s Stroke)
	DrawCircleOutline(center Point, radius float64, s Stroke)
	FillRect(r Rect, c HSLA)
	SetCompositeMode(m CompositeMode)
	SetStrokeWidth(px float64)
}

// Resizable is implemented by canvases that own pixel storage tied to the viewport size.
type Resizable interface {
	Resize(width, height int)
}
