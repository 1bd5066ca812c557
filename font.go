package canvaslab

import (
	"strconv"

	"github.com/gogpu/canvaslab/surface"
	"github.com/gogpu/canvaslab/text"
)

// Font describes how a Text shape is set.
type Font struct {
	family   string
	size     float64
	weight   text.Style
	maxWidth float64
	offset   Point
}

// DefaultFont returns 24px normal sans-serif with no width limit.
func DefaultFont() Font {
	return Font{family: "sans-serif", size: 24, weight: text.StyleNormal}
}

// NewFont returns the default font with the given family and size.
func NewFont(family string, size float64) Font {
	f := DefaultFont()
	f.SetFamily(family)
	f.SetSize(size)
	return f
}

func (f Font) Family() string     { return f.family }
func (f Font) Size() float64      { return f.size }
func (f Font) Weight() text.Style { return f.weight }

// MaxWidth returns the width text is condensed to fit, or 0 for none.
func (f Font) MaxWidth() float64 { return f.maxWidth }

// Offset is added to the text position when drawing.
func (f Font) Offset() Point { return f.offset }

func (f *Font) SetFamily(v string) {
	if v == "" {
		reject("font.family", v)
		return
	}
	f.family = v
}

func (f *Font) SetSize(v float64)     { setPositive(&f.size, v, "font.size") }
func (f *Font) SetMaxWidth(v float64) { setNonNegative(&f.maxWidth, v, "font.maxWidth") }
func (f *Font) SetOffset(p Point)     { f.offset = p }

// SetWeight accepts normal, bold and italic.
func (f *Font) SetWeight(w text.Style) {
	switch w {
	case text.StyleNormal, text.StyleBold, text.StyleItalic:
		f.weight = w
	default:
		reject("font.weight", w)
	}
}

// CSS renders the font shorthand, e.g. "bold 24px sans-serif".
func (f Font) CSS() string {
	return f.weight.String() + " " + strconv.FormatFloat(f.size, 'f', -1, 64) + "px " + f.family
}

func (f Font) surface() surface.Font {
	return surface.Font{Style: f.weight, Size: f.size, Family: f.family}
}
