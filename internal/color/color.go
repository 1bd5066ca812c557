// Package color provides the sRGB transfer functions and linear-light
// interpolation used when sampling gradient paints.
package color

import "image/color"

// ColorF32 is a color with float32 components in [0,1].
// RGB components are in the color space indicated by context.
// Alpha is always linear (never gamma-encoded).
type ColorF32 struct {
	R, G, B, A float32
}

// FromNRGBA converts an 8-bit non-premultiplied color to ColorF32.
func FromNRGBA(c color.NRGBA) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// NRGBA converts c back to an 8-bit non-premultiplied color with rounding.
func (c ColorF32) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
		A: clampAndRound(c.A),
	}
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
