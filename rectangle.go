package canvaslab

import "github.com/gogpu/canvaslab/surface"

// rect is the state shared by Rectangle and RoundedRectangle. The point
// is the top-left corner.
type rect struct {
	fillable
	aspect Aspect
	radii  [4]float64
}

func newRect(p Point, a Aspect, radii [4]float64, cfg *config) rect {
	r := rect{
		fillable: newFillable(p, cfg, DefaultStroke(), DefaultFill()),
		aspect:   NewAspect(50, 50),
		radii:    radii,
	}
	if !a.IsZero() {
		r.aspect = a
	}
	if cfg.radii != nil {
		r.SetRadii(*cfg.radii)
	}
	return r
}

func (r *rect) Aspect() *Aspect    { return &r.aspect }
func (r *rect) SetAspect(a Aspect) { r.aspect = a }
func (r *rect) Width() float64     { return r.aspect.width }
func (r *rect) Height() float64    { return r.aspect.height }
func (r *rect) Radii() [4]float64  { return r.radii }

// SetRadii sets the corner radii in the order top-left, top-right,
// bottom-right, bottom-left. Every radius must be finite and
// non-negative.
func (r *rect) SetRadii(v [4]float64) {
	for _, x := range v {
		if !finite(x) || x < 0 {
			reject("rectangle.radii", v)
			return
		}
	}
	r.radii = v
}

// Center returns the middle of the rectangle.
func (r *rect) Center() Point {
	return r.point.Add(r.aspect.Center())
}

func (r *rect) trace(dc surface.Canvas) {
	dc.RoundRect(r.point.x, r.point.y, r.aspect.width, r.aspect.height, r.radii)
}

// Rectangle is a filled rectangle with optional rounded corners.
type Rectangle struct {
	rect
}

// NewRectangle returns a rectangle with its top-left corner at p. A zero
// aspect keeps the default 50x50.
func NewRectangle(p Point, a Aspect, opts ...Option) *Rectangle {
	return &Rectangle{rect: newRect(p, a, [4]float64{}, newConfig(opts))}
}

func (*Rectangle) Kind() Kind { return KindRectangle }

// Draw draws the rectangle on the bound canvas.
func (r *Rectangle) Draw() error {
	return r.drawPath(KindRectangle, r.trace)
}

// DrawOn binds the canvas registered under id and draws.
func (r *Rectangle) DrawOn(id string) error {
	r.SetSurface(id)
	return r.Draw()
}

// RoundedRectangle is a Rectangle whose corners default to a radius of 5.
type RoundedRectangle struct {
	rect
}

// NewRoundedRectangle returns a rounded rectangle with its top-left
// corner at p.
func NewRoundedRectangle(p Point, a Aspect, opts ...Option) *RoundedRectangle {
	return &RoundedRectangle{rect: newRect(p, a, [4]float64{5, 5, 5, 5}, newConfig(opts))}
}

func (*RoundedRectangle) Kind() Kind { return KindRoundedRectangle }

// Draw draws the rounded rectangle on the bound canvas.
func (r *RoundedRectangle) Draw() error {
	return r.drawPath(KindRoundedRectangle, r.trace)
}

// DrawOn binds the canvas registered under id and draws.
func (r *RoundedRectangle) DrawOn(id string) error {
	r.SetSurface(id)
	return r.Draw()
}
