package canvaslab

import (
	"math"
	"strconv"
)

// Point is a coordinate. Every coordinate is finite: setters drop NaN and
// infinite values and keep the previous coordinate.
type Point struct {
	x, y, z float64
}

// Pt returns the point (x, y). Non-finite coordinates become 0.
func Pt(x, y float64) Point {
	return Pt3(x, y, 0)
}

// Pt3 returns the point (x, y, z). Non-finite coordinates become 0.
func Pt3(x, y, z float64) Point {
	var p Point
	p.SetX(x)
	p.SetY(y)
	p.SetZ(z)
	return p
}

func (p Point) X() float64 { return p.x }
func (p Point) Y() float64 { return p.y }
func (p Point) Z() float64 { return p.z }

func (p *Point) SetX(v float64) { setFinite(&p.x, v, "point.x") }
func (p *Point) SetY(v float64) { setFinite(&p.y, v, "point.y") }
func (p *Point) SetZ(v float64) { setFinite(&p.z, v, "point.z") }

// Set assigns x and y together. Nothing changes unless both are finite.
func (p *Point) Set(x, y float64) {
	if !finite(x) || !finite(y) {
		reject("point", [2]float64{x, y})
		return
	}
	p.x, p.y = x, y
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y, z: p.z + q.z}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{x: p.x - q.x, y: p.y - q.y, z: p.z - q.z}
}

// Distance returns the planar distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.x-q.x, p.y-q.y)
}

// Lerp returns the point at fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		x: p.x + (q.x-p.x)*t,
		y: p.y + (q.y-p.y)*t,
		z: p.z + (q.z-p.z)*t,
	}
}

// Clone returns a pointer to a copy of p.
func (p Point) Clone() *Point {
	c := p
	return &c
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.x, 'g', -1, 64) + ", " + strconv.FormatFloat(p.y, 'g', -1, 64) + ")"
}
