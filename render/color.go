package render

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSLA is a colour in hue/saturation/lightness with alpha.
// H is in degrees and wraps, S and L are percentages (0-100), A is 0-1.
type HSLA struct {
	H, S, L, A float64
}

// NRGBA converts the colour to non-premultiplied 8-bit RGBA.
func (c HSLA) NRGBA() color.NRGBA {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	rgb := colorful.Hsl(h, clamp01(c.S/100), clamp01(c.L/100)).Clamped()
	r, g, b := rgb.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(c.A) * 255))}
}

// RGBA implements color.Color.
func (c HSLA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
