package canvaslab

import "github.com/gogpu/canvaslab/surface"

// Line is a straight or Bézier segment from Start to End. Its point is
// the origin the segment is drawn relative to.
type Line struct {
	Shape
	from, to Point
	lineCap  LineCap
	controls ControlPoints
}

// NewLine returns a segment from start to end with round caps.
func NewLine(start, end Point, opts ...Option) *Line {
	cfg := newConfig(opts)
	l := &Line{
		Shape:   newShape(Point{}, cfg, DefaultStroke()),
		from:    start,
		to:      end,
		lineCap: CapRound,
	}
	if cfg.lineCap != nil {
		l.SetLineCap(*cfg.lineCap)
	}
	if cfg.controls != nil {
		l.controls = *cfg.controls
	}
	return l
}

func (*Line) Kind() Kind { return KindLine }

func (l *Line) Start() *Point                { return &l.from }
func (l *Line) End() *Point                  { return &l.to }
func (l *Line) SetStart(p Point)             { l.from = p }
func (l *Line) SetEnd(p Point)               { l.to = p }
func (l *Line) LineCap() LineCap             { return l.lineCap }
func (l *Line) ControlPoints() ControlPoints { return l.controls }

func (l *Line) SetLineCap(c LineCap) {
	if c > CapSquare {
		reject("line.lineCap", c)
		return
	}
	l.lineCap = c
}

// Curve turns the segment into a cubic Bézier. p0 and p1 offset the
// first control point from the start, p2 and p3 the second from the end.
func (l *Line) Curve(p0, p1, p2, p3 float64) {
	for _, v := range [...]float64{p0, p1, p2, p3} {
		if !finite(v) {
			reject("line.controlPoints", [4]float64{p0, p1, p2, p3})
			return
		}
	}
	l.controls = ControlPoints{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Center returns the midpoint of the segment.
func (l *Line) Center() Point {
	return l.from.Lerp(l.to, 0.5)
}

// Draw strokes the segment on the bound canvas.
func (l *Line) Draw() error {
	c, ok := l.begin(KindLine)
	if !ok {
		return nil
	}
	c.Translate(l.point.x, l.point.y)
	l.applyStroke(c)
	c.SetLineCap(l.lineCap)

	c.BeginPath()
	c.MoveTo(l.from.x, l.from.y)
	l.trace(c)
	c.ClosePath()
	c.Stroke()

	l.end(c)
	return nil
}

// DrawOn binds the canvas registered under id and draws.
func (l *Line) DrawOn(id string) error {
	l.SetSurface(id)
	return l.Draw()
}

func (l *Line) trace(c surface.Canvas) {
	cp := l.controls
	if cp.IsZero() {
		c.LineTo(l.to.x, l.to.y)
		return
	}
	c.BezierCurveTo(cp.P0+l.from.x, cp.P1+l.from.y, cp.P2+l.to.x, cp.P3+l.to.y, l.to.x, l.to.y)
}
