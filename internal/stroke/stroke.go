// Package stroke converts polylines into filled outlines.
//
// A stroke is emitted as a set of convex pieces: one quad per segment,
// one piece per join and one per cap. Every piece has the same winding,
// so a non-zero fill of the union paints the stroke without seams.
package stroke

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Add returns p translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{p.X - q.X, p.Y - q.Y}
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(w Vec2) Vec2        { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Scale(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Neg() Vec2              { return Vec2{-v.X, -v.Y} }
func (v Vec2) Cross(w Vec2) float64   { return v.X*w.Y - v.Y*w.X }
func (v Vec2) Length() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp returns v rotated by 90 degrees.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Cap specifies the shape of open polyline ends.
type Cap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt Cap = iota
	// CapRound adds a semicircle around the endpoint.
	CapRound
	// CapSquare extends the stroke by half its width.
	CapSquare
)

// Join specifies how consecutive segments connect.
type Join int

const (
	// JoinMiter extends the outer edges to a point, falling back to a
	// bevel past the miter limit.
	JoinMiter Join = iota
	// JoinRound rounds the corner.
	JoinRound
	// JoinBevel cuts the corner.
	JoinBevel
)

// Style defines the stroke geometry.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// DefaultStyle returns the canvas defaults: 1px wide, butt caps and
// miter joins limited to 10.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 10.0,
	}
}

// Polyline is a sequence of connected points.
type Polyline struct {
	Points []Point
	Closed bool
}
