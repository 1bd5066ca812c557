// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "math"

// Verb is a path construction command.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// Point is a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Path is a vector path in device space.
//
// Coordinates passed to the builder methods are mapped through the
// path's transform as they are added, which gives canvas-2D semantics:
// changing the transform later does not move segments already added.
//
// Example:
//
//	p := surface.NewPath()
//	p.MoveTo(100, 100)
//	p.LineTo(200, 100)
//	p.LineTo(150, 200)
//	p.ClosePath()
type Path struct {
	verbs  []Verb
	points []float64
	xf     Matrix

	start, cur Point
	hasCur     bool
}

// NewPath creates a new empty path with the identity transform.
func NewPath() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 16),
		points: make([]float64, 0, 64),
		xf:     Identity(),
	}
}

// SetTransform sets the transform applied to subsequently added points.
func (p *Path) SetTransform(m Matrix) { p.xf = m }

// Reset removes every segment. The transform is kept.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.hasCur = false
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool { return len(p.verbs) == 0 }

// Verbs returns the verbs of the path. The slice must not be modified.
func (p *Path) Verbs() []Verb { return p.verbs }

// Points returns the flattened device-space coordinates, two per point.
// The slice must not be modified.
func (p *Path) Points() []float64 { return p.points }

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	c := *p
	c.verbs = append([]Verb(nil), p.verbs...)
	c.points = append([]float64(nil), p.points...)
	return &c
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	dx, dy := p.xf.Apply(x, y)
	p.moveDev(dx, dy)
}

// LineTo adds a line from the current point to (x, y). Without a current
// point it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	dx, dy := p.xf.Apply(x, y)
	p.lineDev(dx, dy)
}

// QuadTo adds a quadratic Bézier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	dcx, dcy := p.xf.Apply(cx, cy)
	dx, dy := p.xf.Apply(x, y)
	p.ensureCur(dcx, dcy)
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, dcx, dcy, dx, dy)
	p.cur = Point{dx, dy}
}

// CubicTo adds a cubic Bézier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	d1x, d1y := p.xf.Apply(c1x, c1y)
	d2x, d2y := p.xf.Apply(c2x, c2y)
	dx, dy := p.xf.Apply(x, y)
	p.cubicDev(d1x, d1y, d2x, d2y, dx, dy)
}

// ClosePath closes the current subpath by connecting to its start point.
func (p *Path) ClosePath() {
	if !p.hasCur {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
	p.cur = p.start
}

// Rect adds a closed rectangle subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// Arc adds a circular arc centered at (cx, cy). If the path has a current
// point, a straight line joins it to the start of the arc.
func (p *Path) Arc(cx, cy, r, start, end float64, anticlockwise bool) {
	p.Ellipse(cx, cy, r, r, 0, start, end, anticlockwise)
}

// Ellipse adds an elliptical arc with radii rx, ry rotated by rotation.
// Angles follow canvas-2D rules: a clockwise sweep of at least 2π draws
// the full ellipse.
func (p *Path) Ellipse(cx, cy, rx, ry, rotation, start, end float64, anticlockwise bool) {
	if rx < 0 || ry < 0 {
		return
	}

	sweep := arcSweep(start, end, anticlockwise)
	cosR, sinR := math.Cos(rotation), math.Sin(rotation)
	at := func(theta float64) (float64, float64) {
		ex, ey := rx*math.Cos(theta), ry*math.Sin(theta)
		return cx + ex*cosR - ey*sinR, cy + ex*sinR + ey*cosR
	}
	tangent := func(theta float64) (float64, float64) {
		ex, ey := -rx*math.Sin(theta), ry*math.Cos(theta)
		return ex*cosR - ey*sinR, ex*sinR + ey*cosR
	}

	sx, sy := at(start)
	dsx, dsy := p.xf.Apply(sx, sy)
	if p.hasCur {
		p.lineDev(dsx, dsy)
	} else {
		p.moveDev(dsx, dsy)
	}
	if sweep == 0 {
		return
	}

	// Split into pieces of at most a quarter turn.
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	theta := start
	for range n {
		next := theta + step
		x0, y0 := at(theta)
		x1, y1 := at(next)
		t0x, t0y := tangent(theta)
		t1x, t1y := tangent(next)

		c1x, c1y := p.xf.Apply(x0+k*t0x, y0+k*t0y)
		c2x, c2y := p.xf.Apply(x1-k*t1x, y1-k*t1y)
		ex, ey := p.xf.Apply(x1, y1)
		p.cubicDev(c1x, c1y, c2x, c2y, ex, ey)
		theta = next
	}
}

// RoundRect adds a closed rectangle with per-corner radii in the order
// top-left, top-right, bottom-right, bottom-left. Radii that do not fit
// are scaled down uniformly; negative radii are treated as zero.
func (p *Path) RoundRect(x, y, w, h float64, radii [4]float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	for i, r := range radii {
		if r < 0 || math.IsNaN(r) {
			radii[i] = 0
		}
	}

	scale := 1.0
	fit := func(a, b, side float64) {
		if sum := a + b; sum > side && sum > 0 {
			scale = math.Min(scale, side/sum)
		}
	}
	fit(radii[0], radii[1], w)
	fit(radii[2], radii[3], w)
	fit(radii[0], radii[3], h)
	fit(radii[1], radii[2], h)
	for i := range radii {
		radii[i] *= scale
	}

	tl, tr, br, bl := radii[0], radii[1], radii[2], radii[3]
	const halfPi = math.Pi / 2

	p.MoveTo(x+tl, y)
	p.LineTo(x+w-tr, y)
	if tr > 0 {
		p.Arc(x+w-tr, y+tr, tr, -halfPi, 0, false)
	}
	p.LineTo(x+w, y+h-br)
	if br > 0 {
		p.Arc(x+w-br, y+h-br, br, 0, halfPi, false)
	}
	p.LineTo(x+bl, y+h)
	if bl > 0 {
		p.Arc(x+bl, y+h-bl, bl, halfPi, math.Pi, false)
	}
	p.LineTo(x, y+tl)
	if tl > 0 {
		p.Arc(x+tl, y+tl, tl, math.Pi, 3*halfPi, false)
	}
	p.ClosePath()
}

// Bounds returns the device-space bounding box of all path points,
// control points included.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for i := 0; i+1 < len(p.points); i += 2 {
		minX = math.Min(minX, p.points[i])
		maxX = math.Max(maxX, p.points[i])
		minY = math.Min(minY, p.points[i+1])
		maxY = math.Max(maxY, p.points[i+1])
	}
	return minX, minY, maxX, maxY
}

func (p *Path) moveDev(x, y float64) {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	p.start = Point{x, y}
	p.cur = p.start
	p.hasCur = true
}

func (p *Path) lineDev(x, y float64) {
	if !p.hasCur {
		p.moveDev(x, y)
		return
	}
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	p.cur = Point{x, y}
}

func (p *Path) cubicDev(c1x, c1y, c2x, c2y, x, y float64) {
	p.ensureCur(c1x, c1y)
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	p.cur = Point{x, y}
}

// ensureCur starts a subpath at (x, y) when there is no current point,
// as canvas curve commands do.
func (p *Path) ensureCur(x, y float64) {
	if !p.hasCur {
		p.moveDev(x, y)
	}
}

// arcSweep returns the signed sweep from start to end in the requested
// direction, clamped to one full turn.
func arcSweep(start, end float64, anticlockwise bool) float64 {
	const twoPi = 2 * math.Pi
	if !anticlockwise {
		if end-start >= twoPi {
			return twoPi
		}
		s := math.Mod(end-start, twoPi)
		if s < 0 {
			s += twoPi
		}
		return s
	}
	if start-end >= twoPi {
		return -twoPi
	}
	s := math.Mod(start-end, twoPi)
	if s < 0 {
		s += twoPi
	}
	return -s
}
