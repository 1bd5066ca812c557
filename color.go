package canvaslab

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Rgb is an sRGB color. Channels are integers in [0, 255]; alpha is in
// [0, 1]. The zero value is transparent black; use RGB or RGBA for
// constructed colors.
type Rgb struct {
	r, g, b uint8
	a       float64
}

// RGB returns the opaque color (r, g, b). Channels are rounded;
// out-of-range channels become 0.
func RGB(r, g, b float64) Rgb {
	return RGBA(r, g, b, 1)
}

// RGBA returns the color (r, g, b) with alpha a.
// An out-of-range alpha becomes 1.
func RGBA(r, g, b, a float64) Rgb {
	c := Rgb{a: 1}
	c.SetRed(r)
	c.SetGreen(g)
	c.SetBlue(b)
	c.SetAlpha(a)
	return c
}

// FromColor converts a standard library color.
func FromColor(c color.Color) Rgb {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Rgb{r: n.R, g: n.G, b: n.B, a: float64(n.A) / 255}
}

// Hex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa"; the leading '#'
// is optional. Malformed input yields opaque black.
func Hex(s string) Rgb {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 || len(s) == 4 {
		var b strings.Builder
		for _, ch := range s {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		s = b.String()
	}
	if len(s) != 6 && len(s) != 8 {
		reject("rgb.hex", s)
		return RGB(0, 0, 0)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		reject("rgb.hex", s)
		return RGB(0, 0, 0)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return Rgb{
		r: uint8(v >> 24),
		g: uint8(v >> 16),
		b: uint8(v >> 8),
		a: float64(uint8(v)) / 255,
	}
}

func (c Rgb) Red() int       { return int(c.r) }
func (c Rgb) Green() int     { return int(c.g) }
func (c Rgb) Blue() int      { return int(c.b) }
func (c Rgb) Alpha() float64 { return c.a }

func (c *Rgb) SetRed(v float64)   { setChannel(&c.r, v, "rgb.red") }
func (c *Rgb) SetGreen(v float64) { setChannel(&c.g, v, "rgb.green") }
func (c *Rgb) SetBlue(v float64)  { setChannel(&c.b, v, "rgb.blue") }

// SetAlpha keeps the previous alpha unless v is in [0, 1].
func (c *Rgb) SetAlpha(v float64) { setRange(&c.a, v, 0, 1, "rgb.alpha") }

func setChannel(dst *uint8, v float64, field string) {
	if !finite(v) || v < 0 || v > 255 {
		reject(field, v)
		return
	}
	*dst = uint8(math.Round(v))
}

// Cycle moves each color channel from start toward end:
//
//	channel = round(start + (end-start) * progress / max)
//
// Alpha is left alone. A zero or non-finite max is rejected.
func (c *Rgb) Cycle(start, end Rgb, progress, max float64) {
	if max == 0 || !finite(max) || !finite(progress) {
		reject("rgb.cycle", max)
		return
	}
	c.r = lerpChannel(start.r, end.r, progress, max)
	c.g = lerpChannel(start.g, end.g, progress, max)
	c.b = lerpChannel(start.b, end.b, progress, max)
}

func lerpChannel(start, end uint8, progress, max float64) uint8 {
	v := math.Round(float64(start) + (float64(end)-float64(start))*progress/max)
	return uint8(math.Max(0, math.Min(255, v)))
}

// CSS renders c in the CSS Color 4 space-separated form,
// e.g. "rgb(255 0 0 / 50%)".
func (c Rgb) CSS() string {
	return "rgb(" + strconv.Itoa(int(c.r)) + " " + strconv.Itoa(int(c.g)) + " " +
		strconv.Itoa(int(c.b)) + " / " + strconv.FormatFloat(c.a*100, 'f', -1, 64) + "%)"
}

func (c Rgb) String() string { return c.CSS() }

// NRGBA converts c to a non-premultiplied 8-bit color.
func (c Rgb) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: uint8(math.Round(c.a * 255))}
}

// RGBA implements color.Color.
func (c Rgb) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}
