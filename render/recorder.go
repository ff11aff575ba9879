package render

// OpKind identifies a recorded canvas call.
type OpKind int

const (
	OpLine OpKind = iota
	OpCircle
	OpFillRect
)

// Op is one recorded draw call with the composite mode and stroke width in effect at the time.
type Op struct {
	Kind   OpKind
	From   Point
	To     Point
	Center Point
	Radius float64
	Rect   Rect
	Color  HSLA
	Mode   CompositeMode
	Width  float64
}

// Recorder is a Canvas that keeps every call in memory instead of drawing.
// It backs headless runs and tests.
type Recorder struct {
	Ops   []Op
	Mode  CompositeMode
	Width float64

	// ModeChanges lists every SetCompositeMode call in order.
	ModeChanges []CompositeMode
	Resizes     int
}

// NewRecorder returns an empty recorder with the default stroke width of 1.
func NewRecorder() *Recorder {
	return &Recorder{Width: 1}
}

func (r *Recorder) DrawLineSegment(from, to Point, s Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, From: from, To: to, Color: s.Color, Mode: r.Mode, Width: r.Width})
}

func (r *Recorder) DrawCircleOutline(center Point, radius float64, s Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Center: center, Radius: radius, Color: s.Color, Mode: r.Mode, Width: r.Width})
}

func (r *Recorder) FillRect(rect Rect, c HSLA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: c, Mode: r.Mode, Width: r.Width})
}

func (r *Recorder) SetCompositeMode(m CompositeMode) {
	r.Mode = m
	r.ModeChanges = append(r.ModeChanges, m)
}

func (r *Recorder) SetStrokeWidth(px float64) {
	r.Width = px
}

func (r *Recorder) Resize(width, height int) {
	r.Resizes++
}

// Count returns how many recorded ops are of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops recorded ops but keeps the current mode and width.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.ModeChanges = r.ModeChanges[:0]
}
