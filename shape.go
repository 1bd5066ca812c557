package canvaslab

import (
	"image"
	"math"

	"github.com/gogpu/canvaslab/surface"
)

// Kind identifies a concrete shape type.
type Kind uint8

const (
	KindLine Kind = iota
	KindCircle
	KindEllipse
	KindRectangle
	KindRoundedRectangle
	KindText
	KindImage
	KindPolygon
	KindArrow
)

var kindNames = [...]string{
	KindLine:             "Line",
	KindCircle:           "Circle",
	KindEllipse:          "Ellipse",
	KindRectangle:        "Rectangle",
	KindRoundedRectangle: "RoundedRectangle",
	KindText:             "Text",
	KindImage:            "Image",
	KindPolygon:          "Polygon",
	KindArrow:            "Arrow",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Drawable is implemented by every concrete shape.
type Drawable interface {
	Kind() Kind

	// Draw draws on the bound canvas.
	Draw() error

	// DrawOn binds the canvas registered under id and draws.
	DrawOn(id string) error

	Surface() string
	SetSurface(id string)

	// Point returns the shape's anchor for in-place changes.
	Point() *Point
	Move(degree, distance float64)
}

// Shape holds the state every shape has: an anchor point, a stroke, a
// shadow, a scale and the identifier of the canvas it draws on.
//
// Shape is embedded by the concrete shapes and is not drawable itself.
type Shape struct {
	point    Point
	stroke   Stroke
	shadow   Shadow
	scale    Point
	shadowOn bool
	id       int
	surface  string
}

// NewShape returns a base shape at p. Drawing it fails with
// ErrNotImplemented.
func NewShape(p Point, opts ...Option) *Shape {
	s := newShape(p, newConfig(opts), DefaultStroke())
	return &s
}

func newShape(p Point, cfg *config, stroke Stroke) Shape {
	s := Shape{
		point:    p,
		stroke:   stroke,
		shadow:   DefaultShadow(),
		scale:    Pt(1, 1),
		shadowOn: cfg.shadowOn,
		id:       cfg.id,
		surface:  cfg.surface,
	}
	if cfg.stroke != nil {
		s.stroke = *cfg.stroke
	}
	if cfg.shadow != nil {
		s.shadow = *cfg.shadow
	}
	if cfg.scale != nil {
		s.scale = *cfg.scale
	}
	return s
}

func (s *Shape) Point() *Point      { return &s.point }
func (s *Shape) SetPoint(p Point)   { s.point = p }
func (s *Shape) X() float64         { return s.point.x }
func (s *Shape) Y() float64         { return s.point.y }
func (s *Shape) Stroke() *Stroke    { return &s.stroke }
func (s *Shape) SetStroke(v Stroke) { s.stroke = v }
func (s *Shape) Shadow() *Shadow    { return &s.shadow }
func (s *Shape) SetShadow(v Shadow) { s.shadow = v }
func (s *Shape) Scale() Point       { return s.scale }
func (s *Shape) ID() int            { return s.id }
func (s *Shape) SetID(id int)       { s.id = id }

// SetScale keeps the previous scale unless both factors are finite.
func (s *Shape) SetScale(x, y float64) { s.scale.Set(x, y) }

func (s *Shape) ShadowEnabled() bool     { return s.shadowOn }
func (s *Shape) SetShadowEnabled(v bool) { s.shadowOn = v }

// Surface returns the identifier of the bound canvas.
func (s *Shape) Surface() string { return s.surface }

// SetSurface binds the canvas registered under id. The lookup happens
// when the shape draws.
func (s *Shape) SetSurface(id string) { s.surface = id }

// Move translates the anchor by distance along degree:
//
//	x -= cos(θ) * distance
//	y -= sin(θ) * distance
//
// where θ is degree modulo 360, in radians.
func (s *Shape) Move(degree, distance float64) {
	if !finite(degree) || !finite(distance) {
		reject("move", [2]float64{degree, distance})
		return
	}
	theta := math.Mod(degree, 360) * math.Pi / 180
	s.point.x -= math.Cos(theta) * distance
	s.point.y -= math.Sin(theta) * distance
}

// CycleStroke cycles the stroke color between start and end.
// See Rgb.Cycle.
func (s *Shape) CycleStroke(start, end Rgb, progress, max float64) {
	s.stroke.color.Cycle(start, end, progress, max)
}

// Draw always returns ErrNotImplemented.
func (s *Shape) Draw() error { return ErrNotImplemented }

// DrawOn always returns ErrNotImplemented.
func (s *Shape) DrawOn(string) error { return ErrNotImplemented }

// canvas resolves the bound canvas, falling back to surface.DefaultID.
func (s *Shape) canvas(kind Kind) (surface.Canvas, bool) {
	c, id, ok := surface.Resolve(s.surface)
	if !ok {
		Logger().Warn("canvaslab: canvas is not set", "shape", kind.String(), "surface", s.surface)
		return nil, false
	}
	if id != s.surface && s.surface != "" {
		Logger().Debug("canvaslab: unknown canvas, using default", "shape", kind.String(), "surface", s.surface)
	}
	return c, true
}

// begin saves the canvas state and applies the scale and shadow.
func (s *Shape) begin(kind Kind) (surface.Canvas, bool) {
	c, ok := s.canvas(kind)
	if !ok {
		return nil, false
	}
	c.Save()
	s.applyScale(c)
	if s.shadowOn {
		c.SetShadow(s.shadow.surface())
	}
	return c, true
}

// end clears the shadow color and restores the canvas state.
func (s *Shape) end(c surface.Canvas) {
	if s.shadowOn {
		c.SetShadow(surface.Shadow{})
	}
	c.Restore()
}

func (s *Shape) applyScale(c surface.Canvas) {
	if s.scale.x != 1 || s.scale.y != 1 {
		c.Scale(s.scale.x, s.scale.y)
	}
}

func (s *Shape) applyStroke(c surface.Canvas) {
	c.SetStrokePaint(surface.SolidPaint{Color: s.stroke.color.NRGBA()})
	c.SetLineWidth(s.stroke.width)
	c.SetLineDash(s.stroke.Dash())
}

// fillable is the state shared by shapes with an interior.
type fillable struct {
	Shape
	fill Fill
}

func newFillable(p Point, cfg *config, stroke Stroke, fill Fill) fillable {
	f := fillable{Shape: newShape(p, cfg, stroke), fill: fill}
	if cfg.fill != nil {
		f.fill = *cfg.fill
	}
	return f
}

func (f *fillable) Fill() *Fill    { return &f.fill }
func (f *fillable) SetFill(v Fill) { f.fill = v }

// CycleFill cycles the fill color between start and end.
func (f *fillable) CycleFill(start, end Rgb, progress, max float64) {
	f.fill.color.Cycle(start, end, progress, max)
}

// CycleGradient cycles the color of one stop of the fill gradient.
func (f *fillable) CycleGradient(start, end Rgb, progress float64, stop int, max float64) {
	if f.fill.gradient == nil {
		reject("fill.gradient", nil)
		return
	}
	f.fill.gradient.StopColorCycle(start, end, progress, stop, max)
}

func (f *fillable) applyFill(c surface.Canvas) {
	if p := f.fill.paint(); p != nil {
		c.SetFillPaint(p)
	}
}

// drawPath runs the common draw sequence around trace, which adds the
// shape's path to the canvas.
func (f *fillable) drawPath(kind Kind, trace func(surface.Canvas)) error {
	c, ok := f.begin(kind)
	if !ok {
		return nil
	}
	f.applyStroke(c)
	f.applyFill(c)

	c.BeginPath()
	trace(c)
	c.Stroke()
	if f.fill.typ == FillPattern {
		f.deferPattern(kind, func(c surface.Canvas) {
			c.BeginPath()
			trace(c)
			c.Fill()
		})
	} else {
		c.Fill()
	}

	f.end(c)
	return nil
}

// deferPattern paints with the fill pattern once its image has loaded,
// on whatever canvas the shape is bound to at that moment.
func (f *fillable) deferPattern(kind Kind, paint func(surface.Canvas)) {
	res := f.fill.pattern
	if res == nil {
		return
	}
	res.OnLoad(func(img image.Image) {
		c, ok := f.canvas(kind)
		if !ok {
			return
		}
		c.Save()
		f.applyScale(c)
		c.SetFillPaint(surface.PatternPaint{Image: img, Repetition: f.fill.repetition})
		paint(c)
		c.Restore()
	})
}
