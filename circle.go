package canvaslab

import (
	"math"

	"github.com/gogpu/canvaslab/surface"
)

// DefaultRadius is the radius of a Circle created with a non-positive one.
const DefaultRadius = 25

// Circle is a filled circular arc around its point.
type Circle struct {
	fillable
	radius float64
	angle  Angle
}

// NewCircle returns a circle centered on p. A non-positive radius keeps
// DefaultRadius.
func NewCircle(p Point, radius float64, opts ...Option) *Circle {
	cfg := newConfig(opts)
	c := &Circle{
		fillable: newFillable(p, cfg, DefaultStroke(), DefaultFill()),
		radius:   DefaultRadius,
		angle:    FullAngle(),
	}
	c.SetRadius(radius)
	if cfg.angle != nil {
		c.angle = *cfg.angle
	}
	return c
}

func (*Circle) Kind() Kind { return KindCircle }

func (c *Circle) Radius() float64  { return c.radius }
func (c *Circle) Angle() *Angle    { return &c.angle }
func (c *Circle) SetAngle(a Angle) { c.angle = a }

// SetRadius keeps the previous radius unless v is positive.
func (c *Circle) SetRadius(v float64) { setPositive(&c.radius, v, "circle.radius") }

// Area returns πr².
func (c *Circle) Area() float64 { return math.Pi * c.radius * c.radius }

// Perimeter returns the circumference 2πr.
func (c *Circle) Perimeter() float64 { return 2 * math.Pi * c.radius }

// Draw draws the circle on the bound canvas.
func (c *Circle) Draw() error {
	return c.drawPath(KindCircle, c.trace)
}

// DrawOn binds the canvas registered under id and draws.
func (c *Circle) DrawOn(id string) error {
	c.SetSurface(id)
	return c.Draw()
}

func (c *Circle) trace(dc surface.Canvas) {
	dc.Arc(c.point.x, c.point.y, c.radius, c.angle.StartRadians(), c.angle.EndRadians(), !c.angle.clockwise)
}

// Ellipse is a filled elliptical arc around its point.
type Ellipse struct {
	fillable
	radii Point
	angle Angle
}

// NewEllipse returns an ellipse centered on p with the x and y radii of
// radii. Non-positive radii keep the default (20, 30).
func NewEllipse(p Point, radii Point, opts ...Option) *Ellipse {
	cfg := newConfig(opts)
	e := &Ellipse{
		fillable: newFillable(p, cfg, DefaultStroke(), DefaultFill()),
		radii:    Pt(20, 30),
		angle:    FullAngle(),
	}
	e.SetRadii(radii)
	if cfg.angle != nil {
		e.angle = *cfg.angle
	}
	return e
}

func (*Ellipse) Kind() Kind { return KindEllipse }

func (e *Ellipse) Radii() Point     { return e.radii }
func (e *Ellipse) Angle() *Angle    { return &e.angle }
func (e *Ellipse) SetAngle(a Angle) { e.angle = a }

// SetRadii keeps the previous radii unless both are positive.
func (e *Ellipse) SetRadii(r Point) {
	if r.x <= 0 || r.y <= 0 {
		reject("ellipse.radii", r.String())
		return
	}
	e.radii = r
}

// Area returns πab.
func (e *Ellipse) Area() float64 { return math.Pi * e.radii.x * e.radii.y }

// Draw draws the ellipse on the bound canvas.
func (e *Ellipse) Draw() error {
	return e.drawPath(KindEllipse, e.trace)
}

// DrawOn binds the canvas registered under id and draws.
func (e *Ellipse) DrawOn(id string) error {
	e.SetSurface(id)
	return e.Draw()
}

func (e *Ellipse) trace(dc surface.Canvas) {
	dc.Ellipse(e.point.x, e.point.y, e.radii.x, e.radii.y, 0, e.angle.StartRadians(), e.angle.EndRadians(), !e.angle.clockwise)
}
