package canvaslab

import (
	"math"

	"github.com/gogpu/canvaslab/surface"
)

// Stop is a gradient color stop. Its offset lies in [0, 1]; a stop built
// with an out-of-range offset has no offset and gradients refuse it.
type Stop struct {
	color  Rgb
	offset float64
	set    bool
}

// NewStop returns a stop of color c at offset.
func NewStop(c Rgb, offset float64) Stop {
	s := Stop{color: c}
	s.SetOffset(offset)
	return s
}

func (s Stop) Color() Rgb { return s.color }

// Offset returns the offset and whether one has been set.
func (s Stop) Offset() (float64, bool) { return s.offset, s.set }

func (s *Stop) SetColor(c Rgb) { s.color = c }

func (s *Stop) SetOffset(v float64) {
	if setRange(&s.offset, v, 0, 1, "stop.offset") {
		s.set = true
	}
}

// Gradient is a Linear, Radial or Conic gradient usable as a Fill.
type Gradient interface {
	// Kind returns the fill type the gradient selects.
	Kind() FillType

	// Stops returns a copy of the color stops.
	Stops() []Stop

	// AddStops appends the stops that carry an offset.
	AddStops(stops ...Stop)

	// StopColorCycle cycles the color of stop index between start and
	// end. See Rgb.Cycle.
	StopColorCycle(start, end Rgb, progress float64, stop int, max float64)

	paint() surface.Paint
	clone() Gradient
	isNil() bool
}

type stops struct {
	list []Stop
}

func (s *stops) Stops() []Stop {
	return append([]Stop(nil), s.list...)
}

func (s *stops) AddStops(v ...Stop) {
	for _, st := range v {
		if !st.set {
			reject("gradient.stop", st.color.CSS())
			continue
		}
		s.list = append(s.list, st)
	}
}

func (s *stops) StopColorCycle(start, end Rgb, progress float64, stop int, max float64) {
	if stop < 0 || stop >= len(s.list) {
		reject("gradient.stop", stop)
		return
	}
	s.list[stop].color.Cycle(start, end, progress, max)
}

func (s stops) cloned() stops {
	return stops{list: append([]Stop(nil), s.list...)}
}

func (s *stops) colorStops() []surface.ColorStop {
	out := make([]surface.ColorStop, len(s.list))
	for i, st := range s.list {
		out[i] = surface.ColorStop{Offset: st.offset, Color: st.color.NRGBA()}
	}
	return out
}

// Linear is a gradient along the line from Start to End.
type Linear struct {
	stops
	start, end Point
}

// NewLinear returns a linear gradient from start to end.
func NewLinear(start, end Point, v ...Stop) *Linear {
	g := &Linear{start: start, end: end}
	g.AddStops(v...)
	return g
}

func (g *Linear) Kind() FillType   { return FillLinear }
func (g *Linear) Start() Point     { return g.start }
func (g *Linear) End() Point       { return g.end }
func (g *Linear) SetStart(p Point) { g.start = p }
func (g *Linear) SetEnd(p Point)   { g.end = p }

func (g *Linear) isNil() bool { return g == nil }

func (g *Linear) clone() Gradient {
	c := *g
	c.stops = g.cloned()
	return &c
}

func (g *Linear) paint() surface.Paint {
	return surface.LinearGradientPaint{
		X0:    g.start.x,
		Y0:    g.start.y,
		X1:    g.end.x,
		Y1:    g.end.y,
		Stops: g.colorStops(),
	}
}

// Radial is a two-circle gradient. Radii set after construction must be
// positive.
type Radial struct {
	stops
	start, end             Point
	startRadius, endRadius float64
}

// NewRadial returns a radial gradient between the circles (start,
// startRadius) and (end, endRadius). Non-positive radii become 0.
func NewRadial(start Point, startRadius float64, end Point, endRadius float64, v ...Stop) *Radial {
	g := &Radial{start: start, end: end}
	g.SetStartRadius(startRadius)
	g.SetEndRadius(endRadius)
	g.AddStops(v...)
	return g
}

func (g *Radial) Kind() FillType           { return FillRadial }
func (g *Radial) Start() Point             { return g.start }
func (g *Radial) End() Point               { return g.end }
func (g *Radial) StartRadius() float64     { return g.startRadius }
func (g *Radial) EndRadius() float64       { return g.endRadius }
func (g *Radial) SetStart(p Point)         { g.start = p }
func (g *Radial) SetEnd(p Point)           { g.end = p }
func (g *Radial) SetStartRadius(v float64) { setPositive(&g.startRadius, v, "radial.startRadius") }
func (g *Radial) SetEndRadius(v float64)   { setPositive(&g.endRadius, v, "radial.endRadius") }

func (g *Radial) isNil() bool { return g == nil }

func (g *Radial) clone() Gradient {
	c := *g
	c.stops = g.cloned()
	return &c
}

func (g *Radial) paint() surface.Paint {
	return surface.RadialGradientPaint{
		X0:    g.start.x,
		Y0:    g.start.y,
		R0:    g.startRadius,
		X1:    g.end.x,
		Y1:    g.end.y,
		R1:    g.endRadius,
		Stops: g.colorStops(),
	}
}

// Conic sweeps around Point starting at Angle radians.
type Conic struct {
	stops
	angle float64
	point Point
}

// NewConic returns a conic gradient. The angle must lie in [0, 2π].
func NewConic(angle float64, point Point, v ...Stop) *Conic {
	g := &Conic{point: point}
	g.SetAngle(angle)
	g.AddStops(v...)
	return g
}

func (g *Conic) Kind() FillType     { return FillConic }
func (g *Conic) Angle() float64     { return g.angle }
func (g *Conic) Point() Point       { return g.point }
func (g *Conic) SetPoint(p Point)   { g.point = p }
func (g *Conic) SetAngle(v float64) { setRange(&g.angle, v, 0, 2*math.Pi, "conic.angle") }

func (g *Conic) isNil() bool { return g == nil }

func (g *Conic) clone() Gradient {
	c := *g
	c.stops = g.cloned()
	return &c
}

func (g *Conic) paint() surface.Paint {
	return surface.ConicGradientPaint{
		Angle: g.angle,
		X:     g.point.x,
		Y:     g.point.y,
		Stops: g.colorStops(),
	}
}
