package stroke

import "math"

// DefaultTolerance bounds the chord error of round caps and joins.
const DefaultTolerance = 0.25

// Outline expands lines into filled pieces for the given style. All
// returned polygons wind counter-clockwise in a y-up frame (positive
// shoelace area).
func Outline(lines []Polyline, style Style) [][]Point {
	if style.Width <= 0 {
		return nil
	}
	o := outliner{style: style, hw: style.Width / 2}
	if o.style.MiterLimit < 1 {
		o.style.MiterLimit = 1
	}
	for _, l := range lines {
		o.polyline(l)
	}
	return o.out
}

type outliner struct {
	style Style
	hw    float64
	out   [][]Point
}

func (o *outliner) polyline(l Polyline) {
	pts := dedupe(l.Points)
	closed := l.Closed && len(pts) > 2
	if closed && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}

	if len(pts) == 1 {
		o.dot(pts[0])
		return
	}

	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	for i := range n {
		o.segment(pts[i], pts[(i+1)%len(pts)])
	}

	for i := 1; i < len(pts)-1; i++ {
		o.join(pts[i-1], pts[i], pts[i+1])
	}
	if closed {
		last := len(pts) - 1
		o.join(pts[last-1], pts[last], pts[0])
		o.join(pts[last], pts[0], pts[1])
		return
	}

	o.cap(pts[0], pts[0].Sub(pts[1]).Normalize())
	o.cap(pts[n], pts[n].Sub(pts[n-1]).Normalize())
}

func (o *outliner) segment(a, b Point) {
	d := b.Sub(a).Normalize()
	nrm := d.Perp().Scale(o.hw)
	o.emit([]Point{a.Add(nrm), b.Add(nrm), b.Add(nrm.Neg()), a.Add(nrm.Neg())})
}

// join fills the outer corner at v between segments a-v and v-b.
func (o *outliner) join(a, v, b Point) {
	d0 := v.Sub(a).Normalize()
	d1 := b.Sub(v).Normalize()
	cross := d0.Cross(d1)
	if math.Abs(cross) < 1e-12 && d0.X*d1.X+d0.Y*d1.Y > 0 {
		return
	}

	if o.style.Join == JoinRound {
		o.emit(circle(v, o.hw))
		return
	}

	s := -1.0
	if cross < 0 {
		s = 1.0
	}
	n0 := d0.Perp().Scale(s * o.hw)
	n1 := d1.Perp().Scale(s * o.hw)
	p0, p1 := v.Add(n0), v.Add(n1)

	if o.style.Join == JoinMiter {
		m := n0.Add(n1)
		if ml := m.Length(); ml > 0 && 2*o.hw/ml <= o.style.MiterLimit {
			tip := v.Add(m.Scale(2 * o.hw * o.hw / m.LengthSquared()))
			o.emit([]Point{v, p0, tip, p1})
			return
		}
	}
	o.emit([]Point{v, p0, p1})
}

// cap adds the end piece at p for a stroke leaving in direction d.
func (o *outliner) cap(p Point, d Vec2) {
	switch o.style.Cap {
	case CapRound:
		o.emit(circle(p, o.hw))
	case CapSquare:
		nrm := d.Perp().Scale(o.hw)
		ext := d.Scale(o.hw)
		o.emit([]Point{
			p.Add(nrm), p.Add(nrm).Add(ext),
			p.Add(nrm.Neg()).Add(ext), p.Add(nrm.Neg()),
		})
	}
}

// dot strokes a zero-length subpath. Only round and square caps paint.
func (o *outliner) dot(p Point) {
	switch o.style.Cap {
	case CapRound:
		o.emit(circle(p, o.hw))
	case CapSquare:
		h := o.hw
		o.emit([]Point{{p.X - h, p.Y - h}, {p.X + h, p.Y - h}, {p.X + h, p.Y + h}, {p.X - h, p.Y + h}})
	}
}

func (o *outliner) emit(poly []Point) {
	if area(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	o.out = append(o.out, poly)
}

// circle approximates a circle so that no chord strays more than
// DefaultTolerance from the arc.
func circle(c Point, r float64) []Point {
	n := 8
	if r > DefaultTolerance {
		n = int(math.Ceil(math.Pi / math.Acos(1-DefaultTolerance/r)))
	}
	n = max(8, min(n, 128))

	pts := make([]Point, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)}
	}
	return pts
}

// area returns the signed shoelace area of poly.
func area(poly []Point) float64 {
	var s float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		s += p.X*q.Y - q.X*p.Y
	}
	return s / 2
}

func dedupe(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := []Point{pts[0]}
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
