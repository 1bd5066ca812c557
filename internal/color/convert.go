package color

import (
	"image/color"
	"math"
)

// SRGBToLinear converts an sRGB component to linear light.
// Input and output are in range [0,1].
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts a linear-light component to sRGB.
// Input and output are in range [0,1].
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// ToLinear converts the RGB components of c from sRGB to linear light.
// Alpha is left unchanged.
func (c ColorF32) ToLinear() ColorF32 {
	return ColorF32{R: SRGBToLinear(c.R), G: SRGBToLinear(c.G), B: SRGBToLinear(c.B), A: c.A}
}

// ToSRGB converts the RGB components of c from linear light to sRGB.
// Alpha is left unchanged.
func (c ColorF32) ToSRGB() ColorF32 {
	return ColorF32{R: LinearToSRGB(c.R), G: LinearToSRGB(c.G), B: LinearToSRGB(c.B), A: c.A}
}

// Lerp interpolates between a and b at t in linear light and returns the
// result in sRGB. t is clamped to [0,1].
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}

	la := FromNRGBA(a).ToLinear()
	lb := FromNRGBA(b).ToLinear()
	f := float32(t)

	mixed := ColorF32{
		R: la.R + f*(lb.R-la.R),
		G: la.G + f*(lb.G-la.G),
		B: la.B + f*(lb.B-la.B),
		A: la.A + f*(lb.A-la.A),
	}
	return mixed.ToSRGB().NRGBA()
}
