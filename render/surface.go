package render

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 white source image for DrawTriangles. Sampling from the
// centre of a 3x3 image avoids bleeding at the edges.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Surface is a persistent offscreen image that keeps what was drawn on it
// between ticks. Trails come from fading it, never from clearing it.
type Surface struct {
	img         *ebiten.Image
	blend       ebiten.Blend
	strokeWidth float32

	// Reused between draw calls to avoid per-primitive allocations
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface creates a surface of the given pixel size.
func NewSurface(width, height int) *Surface {
	s := &Surface{
		blend:       ebiten.BlendSourceOver,
		strokeWidth: 1,
	}
	s.Resize(width, height)
	return s
}

// Image returns the backing image, for blitting onto the screen.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// Resize replaces the backing image. Like a browser canvas, resizing clears it.
func (s *Surface) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(width, height)
}

func (s *Surface) SetCompositeMode(m CompositeMode) {
	switch m {
	case CompositeErase:
		s.blend = ebiten.BlendDestinationOut
	case CompositeAdditive:
		s.blend = ebiten.BlendLighter
	default:
		s.blend = ebiten.BlendSourceOver
	}
}

func (s *Surface) SetStrokeWidth(px float64) {
	s.strokeWidth = float32(px)
}

func (s *Surface) DrawLineSegment(from, to Point, st Stroke) {
	var path vector.Path
	path.MoveTo(float32(from.X), float32(from.Y))
	path.LineTo(float32(to.X), float32(to.Y))
	s.stroke(&path, st.Color)
}

func (s *Surface) DrawCircleOutline(center Point, radius float64, st Stroke) {
	var path vector.Path
	path.Arc(float32(center.X), float32(center.Y), float32(radius), 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	s.stroke(&path, st.Color)
}

func (s *Surface) FillRect(r Rect, c HSLA) {
	var path vector.Path
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	path.MoveTo(x0, y0)
	path.LineTo(x1, y0)
	path.LineTo(x1, y1)
	path.LineTo(x0, y1)
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.drawTriangles(c, false)
}

func (s *Surface) stroke(path *vector.Path, c HSLA) {
	op := &vector.StrokeOptions{
		Width:    s.strokeWidth,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
	s.drawTriangles(c, true)
}

func (s *Surface) drawTriangles(c HSLA, antialias bool) {
	if len(s.indices) == 0 {
		return
	}
	rgba := c.NRGBA()
	r := float32(rgba.R) / 0xff
	g := float32(rgba.G) / 0xff
	b := float32(rgba.B) / 0xff
	a := float32(clamp01(c.A))
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX = 1
		v.SrcY = 1
		v.ColorR = r
		v.ColorG = g
		v.ColorB = b
		v.ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{
		Blend:     s.blend,
		AntiAlias: antialias,
	}
	s.img.DrawTriangles(s.vertices, s.indices, white(), op)
}
