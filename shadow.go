package canvaslab

import "github.com/gogpu/canvaslab/surface"

// Shadow is a drop shadow. Shapes only paint it when shadows are enabled
// for them (WithShadowEnabled).
type Shadow struct {
	color  Rgb
	blur   float64
	offset Point
}

// DefaultShadow returns an opaque black shadow with a blur of 3 and no
// offset.
func DefaultShadow() Shadow {
	return Shadow{color: RGBA(0, 0, 0, 1), blur: 3}
}

// NewShadow returns a shadow. An invalid blur keeps the default.
func NewShadow(c Rgb, blur float64, offset Point) Shadow {
	s := DefaultShadow()
	s.color = c
	s.SetBlur(blur)
	s.offset = offset
	return s
}

func (s Shadow) Color() Rgb         { return s.color }
func (s Shadow) Blur() float64      { return s.blur }
func (s Shadow) Offset() Point      { return s.offset }
func (s *Shadow) SetColor(c Rgb)    { s.color = c }
func (s *Shadow) SetOffset(p Point) { s.offset = p }

// SetBlur keeps the previous blur unless v is finite and non-negative.
func (s *Shadow) SetBlur(v float64) { setNonNegative(&s.blur, v, "shadow.blur") }

func (s Shadow) surface() surface.Shadow {
	return surface.Shadow{
		Color:   s.color.NRGBA(),
		Blur:    s.blur,
		OffsetX: s.offset.x,
		OffsetY: s.offset.y,
	}
}
