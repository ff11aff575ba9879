package render

import (
	"image/color"
	"testing"
)

func TestHSLAToNRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   HSLA
		want color.NRGBA
	}{
		{"red", HSLA{H: 0, S: 100, L: 50, A: 1}, color.NRGBA{R: 255, A: 255}},
		{"green wraps past 360", HSLA{H: 480, S: 100, L: 50, A: 1}, color.NRGBA{G: 255, A: 255}},
		{"negative hue", HSLA{H: -120, S: 100, L: 50, A: 1}, color.NRGBA{B: 255, A: 255}},
		{"white", HSLA{H: 200, S: 100, L: 100, A: 1}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"black fade", HSLA{A: 0.5}, color.NRGBA{A: 128}},
		{"alpha clamps", HSLA{H: 0, S: 0, L: 0, A: 3}, color.NRGBA{A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.NRGBA(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPointDistance(t *testing.T) {
	a := Point{X: 500, Y: 600}
	b := Point{X: 500, Y: 100}
	if got := a.DistanceTo(b); got != 500 {
		t.Errorf("expected 500, got %v", got)
	}
	if got := (Point{}).DistanceTo(Point{X: 3, Y: 4}); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}

func TestRecorderKeepsModeAndWidth(t *testing.T) {
	r := NewRecorder()

	r.SetCompositeMode(CompositeAdditive)
	r.SetStrokeWidth(2)
	r.DrawLineSegment(Point{}, Point{X: 1}, Stroke{Color: HSLA{L: 50, A: 1}})
	r.SetStrokeWidth(1)
	r.DrawCircleOutline(Point{X: 5, Y: 5}, 3, Stroke{})

	if len(r.Ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(r.Ops))
	}
	if r.Ops[0].Width != 2 || r.Ops[0].Mode != CompositeAdditive {
		t.Errorf("expected width 2 additive, got width %v %v", r.Ops[0].Width, r.Ops[0].Mode)
	}
	if r.Ops[1].Width != 1 || r.Ops[1].Radius != 3 {
		t.Errorf("expected width 1 radius 3, got width %v radius %v", r.Ops[1].Width, r.Ops[1].Radius)
	}
	if r.Count(OpCircle) != 1 || r.Count(OpLine) != 1 || r.Count(OpFillRect) != 0 {
		t.Error("unexpected op counts")
	}

	r.Reset()
	if len(r.Ops) != 0 || r.Mode != CompositeAdditive {
		t.Error("expected reset to drop ops but keep the mode")
	}
}
