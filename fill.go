package canvaslab

import "github.com/gogpu/canvaslab/surface"

// FillType selects how a Fill paints.
type FillType uint8

const (
	FillSolid FillType = iota
	FillLinear
	FillRadial
	FillConic
	FillPattern
)

var fillTypeNames = [...]string{
	FillSolid:   "solid",
	FillLinear:  "linear",
	FillRadial:  "radial",
	FillConic:   "conic",
	FillPattern: "pattern",
}

func (t FillType) String() string {
	if int(t) < len(fillTypeNames) {
		return fillTypeNames[t]
	}
	return "solid"
}

// Repetition controls how a pattern fill tiles.
type Repetition = surface.Repetition

const (
	Repeat   = surface.Repeat
	RepeatX  = surface.RepeatX
	RepeatY  = surface.RepeatY
	NoRepeat = surface.NoRepeat
)

// Fill is the interior style of a shape.
type Fill struct {
	color      Rgb
	typ        FillType
	gradient   Gradient
	pattern    *ImageResource
	repetition Repetition
}

// DefaultFill returns a transparent black solid fill.
func DefaultFill() Fill {
	return Fill{color: RGBA(0, 0, 0, 0), typ: FillSolid, repetition: Repeat}
}

// NewFill returns a solid fill of color c.
func NewFill(c Rgb) Fill {
	f := DefaultFill()
	f.color = c
	return f
}

func (f Fill) Color() Rgb              { return f.color }
func (f Fill) Type() FillType          { return f.typ }
func (f Fill) Gradient() Gradient      { return f.gradient }
func (f Fill) Pattern() *ImageResource { return f.pattern }
func (f Fill) Repetition() Repetition  { return f.repetition }
func (f *Fill) SetColor(c Rgb)         { f.color = c }

func (f *Fill) SetType(t FillType) {
	if int(t) >= len(fillTypeNames) {
		reject("fill.type", t)
		return
	}
	f.typ = t
}

// SetGradient stores g and switches the fill type to g's kind.
func (f *Fill) SetGradient(g Gradient) {
	if g == nil || g.isNil() {
		reject("fill.gradient", nil)
		return
	}
	f.gradient = g
	f.typ = g.Kind()
}

// Clone returns a copy of f whose gradient, if any, is independent of
// f's. Pattern images are shared.
func (f Fill) Clone() Fill {
	if f.gradient != nil {
		f.gradient = f.gradient.clone()
	}
	return f
}

// SetPattern stores the pattern image and switches the fill type to
// FillPattern.
func (f *Fill) SetPattern(r *ImageResource) {
	if r == nil {
		reject("fill.pattern", nil)
		return
	}
	f.pattern = r
	f.typ = FillPattern
}

func (f *Fill) SetRepetition(r Repetition) {
	if r > NoRepeat {
		reject("fill.repetition", r)
		return
	}
	f.repetition = r
}

// paint returns the canvas paint for the fill. Pattern fills and
// gradient types without a gradient return nil.
func (f Fill) paint() surface.Paint {
	switch f.typ {
	case FillSolid:
		return surface.SolidPaint{Color: f.color.NRGBA()}
	case FillLinear, FillRadial, FillConic:
		if f.gradient != nil {
			return f.gradient.paint()
		}
	}
	return nil
}
