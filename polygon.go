package canvaslab

import (
	"math"

	"github.com/gogpu/canvaslab/surface"
)

// Polygon is a closed, filled polyline. It needs at least three vertices
// to draw.
type Polygon struct {
	fillable
	vertices []Point
}

// NewPolygon returns a polygon over a copy of vertices. Its point is the
// first vertex.
func NewPolygon(vertices []Point, opts ...Option) *Polygon {
	var p0 Point
	if len(vertices) > 0 {
		p0 = vertices[0]
	}
	return &Polygon{
		fillable: newFillable(p0, newConfig(opts), DefaultStroke(), DefaultFill()),
		vertices: append([]Point(nil), vertices...),
	}
}

func (*Polygon) Kind() Kind { return KindPolygon }

// Vertices returns a copy of the vertices.
func (p *Polygon) Vertices() []Point {
	return append([]Point(nil), p.vertices...)
}

// AddVertex appends v.
func (p *Polygon) AddVertex(v Point) {
	p.vertices = append(p.vertices, v)
}

// AddLines replaces the vertices with the corners of a chain of lines.
// Each line contributes its start; when a line does not start where the
// previous one ended (to the nearest pixel) the previous end is used
// instead. The last end closes the chain unless it is already the last
// vertex.
func (p *Polygon) AddLines(lines []*Line) {
	if len(lines) == 0 {
		Logger().Warn("canvaslab: AddLines needs at least one line")
		return
	}
	vertices := make([]Point, 0, len(lines)+1)
	for i, l := range lines {
		if i == 0 {
			vertices = append(vertices, l.from)
			continue
		}
		prev := lines[i-1]
		if samePixel(l.from, prev.to) {
			vertices = append(vertices, l.from)
		} else {
			vertices = append(vertices, prev.to)
		}
	}
	last := lines[len(lines)-1].to
	if !samePixel(last, vertices[len(vertices)-1]) {
		vertices = append(vertices, last)
	}
	p.vertices = vertices
}

func samePixel(a, b Point) bool {
	return math.Round(a.x) == math.Round(b.x) && math.Round(a.y) == math.Round(b.y)
}

// IsThere reports whether other sits on the same point as p.
func (p *Polygon) IsThere(other *Polygon) bool {
	if other == nil {
		Logger().Warn("canvaslab: IsThere needs a polygon")
		return false
	}
	return p.point.x == other.point.x && p.point.y == other.point.y
}

// Draw draws the polygon on the bound canvas. Polygons with fewer than
// three vertices are skipped with a warning.
func (p *Polygon) Draw() error {
	if len(p.vertices) < 3 {
		Logger().Warn("canvaslab: polygon needs at least 3 vertices", "count", len(p.vertices))
		return nil
	}
	return p.drawPath(KindPolygon, p.trace)
}

// DrawOn binds the canvas registered under id and draws.
func (p *Polygon) DrawOn(id string) error {
	p.SetSurface(id)
	return p.Draw()
}

func (p *Polygon) trace(c surface.Canvas) {
	tracePolyline(c, p.vertices, Point{})
	c.ClosePath()
}

func tracePolyline(c surface.Canvas, vertices []Point, offset Point) {
	for i, v := range vertices {
		if i == 0 {
			c.MoveTo(v.x+offset.x, v.y+offset.y)
		} else {
			c.LineTo(v.x+offset.x, v.y+offset.y)
		}
	}
}

// arrowVertices is the outline of an arrow pointing along +x, centered on
// the origin.
var arrowVertices = [...]Point{
	{x: 39, y: 0},
	{x: 4, y: -30},
	{x: 4, y: -8},
	{x: -39, y: -13},
	{x: -39, y: 13},
	{x: 4, y: 8},
	{x: 4, y: 30},
	{x: 39, y: 0},
}

// Arrow is a fixed arrow outline drawn around its point and shifted by
// an offset.
type Arrow struct {
	fillable
	vertices []Point
	offset   Point
}

// NewArrow returns the standard arrow centered on p.
func NewArrow(p Point, opts ...Option) *Arrow {
	cfg := newConfig(opts)
	a := &Arrow{
		fillable: newFillable(p, cfg, DefaultStroke(), DefaultFill()),
		vertices: append([]Point(nil), arrowVertices[:]...),
	}
	if cfg.offset != nil {
		a.offset = *cfg.offset
	}
	return a
}

func (*Arrow) Kind() Kind { return KindArrow }

func (a *Arrow) Offset() *Point    { return &a.offset }
func (a *Arrow) SetOffset(p Point) { a.offset = p }

// Vertices returns a copy of the outline, relative to the point.
func (a *Arrow) Vertices() []Point {
	return append([]Point(nil), a.vertices...)
}

// SetVertices replaces the outline. At least two vertices are required.
func (a *Arrow) SetVertices(v []Point) {
	if len(v) < 2 {
		reject("arrow.vertices", len(v))
		return
	}
	a.vertices = append([]Point(nil), v...)
}

// Draw draws the arrow on the bound canvas.
func (a *Arrow) Draw() error {
	return a.drawPath(KindArrow, a.trace)
}

// DrawOn binds the canvas registered under id and draws.
func (a *Arrow) DrawOn(id string) error {
	a.SetSurface(id)
	return a.Draw()
}

func (a *Arrow) trace(c surface.Canvas) {
	tracePolyline(c, a.vertices, a.point.Add(a.offset))
	c.ClosePath()
}
