package canvaslab

import "math"

// Aspect is a width and height. Both are finite and non-negative.
type Aspect struct {
	width, height float64
}

// NewAspect returns the aspect w x h. Invalid dimensions become 0.
func NewAspect(w, h float64) Aspect {
	var a Aspect
	a.SetWidth(w)
	a.SetHeight(h)
	return a
}

func (a Aspect) Width() float64  { return a.width }
func (a Aspect) Height() float64 { return a.height }

func (a *Aspect) SetWidth(v float64)  { setNonNegative(&a.width, v, "aspect.width") }
func (a *Aspect) SetHeight(v float64) { setNonNegative(&a.height, v, "aspect.height") }

// Center returns the midpoint of the box at the origin.
func (a Aspect) Center() Point { return Point{x: a.width / 2, y: a.height / 2} }

func (a Aspect) WidthCenter() float64  { return a.width / 2 }
func (a Aspect) HeightCenter() float64 { return a.height / 2 }

// IsZero reports whether both dimensions are 0.
func (a Aspect) IsZero() bool { return a.width == 0 && a.height == 0 }

// Angle is an arc span in degrees. Start and end lie in [-360, 360].
type Angle struct {
	start, end float64
	clockwise  bool
}

// FullAngle is the closed clockwise sweep from 0 to 360 degrees.
func FullAngle() Angle {
	return Angle{start: 0, end: 360, clockwise: true}
}

// NewAngle returns the span from start to end. Out-of-range bounds keep
// the FullAngle values.
func NewAngle(start, end float64, clockwise bool) Angle {
	a := FullAngle()
	a.SetStart(start)
	a.SetEnd(end)
	a.clockwise = clockwise
	return a
}

func (a Angle) Start() float64       { return a.start }
func (a Angle) End() float64         { return a.end }
func (a Angle) Clockwise() bool      { return a.clockwise }
func (a *Angle) SetStart(v float64)  { setRange(&a.start, v, -360, 360, "angle.start") }
func (a *Angle) SetEnd(v float64)    { setRange(&a.end, v, -360, 360, "angle.end") }
func (a *Angle) SetClockwise(v bool) { a.clockwise = v }

func (a Angle) StartRadians() float64 { return a.start * math.Pi / 180 }
func (a Angle) EndRadians() float64   { return a.end * math.Pi / 180 }

// ControlPoints are the offsets of a cubic Bézier segment. P0 and P1 are
// added to a line's start, P2 and P3 to its end. All zero means a
// straight segment.
type ControlPoints struct {
	P0, P1, P2, P3 float64
}

// IsZero reports whether the segment is straight.
func (cp ControlPoints) IsZero() bool {
	return cp == ControlPoints{}
}
