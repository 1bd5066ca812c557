// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "math"

// Subpath is a flattened polyline.
type Subpath struct {
	Points []Point
	Closed bool
}

// DefaultTolerance is the maximum flattening error in device pixels.
const DefaultTolerance = 0.25

// Flatten converts the path into polylines. Curves are subdivided with
// Wang's formula so that no chord deviates from the curve by more than
// tolerance.
func (p *Path) Flatten(tolerance float64) []Subpath {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var (
		out []Subpath
		cur *Subpath
		pi  int
	)
	last := func() Point { return cur.Points[len(cur.Points)-1] }
	pt := func(i int) Point { return Point{p.points[i], p.points[i+1]} }

	for _, v := range p.verbs {
		switch v {
		case VerbMoveTo:
			out = append(out, Subpath{Points: []Point{pt(pi)}})
			cur = &out[len(out)-1]
			pi += 2
		case VerbLineTo:
			cur.Points = append(cur.Points, pt(pi))
			pi += 2
		case VerbQuadTo:
			p0, p1, p2 := last(), pt(pi), pt(pi+2)
			n := segmentCount(0.25*deviation(p0, p1, p2), tolerance)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				mt := 1 - t
				cur.Points = append(cur.Points, Point{
					X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
					Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
				})
			}
			pi += 4
		case VerbCubicTo:
			p0, p1, p2, p3 := last(), pt(pi), pt(pi+2), pt(pi+4)
			dd := math.Max(deviation(p0, p1, p2), deviation(p1, p2, p3))
			n := segmentCount(0.75*dd, tolerance)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				mt := 1 - t
				a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
				cur.Points = append(cur.Points, Point{
					X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
					Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
				})
			}
			pi += 6
		case VerbClose:
			cur.Closed = true
			// Segments after a close start a new subpath at the same point.
			start := cur.Points[0]
			out = append(out, Subpath{Points: []Point{start}})
			cur = &out[len(out)-1]
		}
	}

	// Drop the single-point subpaths left behind by ClosePath.
	kept := out[:0]
	for _, s := range out {
		if len(s.Points) > 1 || s.Closed {
			kept = append(kept, s)
		}
	}
	return kept
}

// deviation returns |a - 2b + c|, the second difference of three points.
func deviation(a, b, c Point) float64 {
	return math.Hypot(a.X-2*b.X+c.X, a.Y-2*b.Y+c.Y)
}

func segmentCount(dd, tolerance float64) int {
	n := int(math.Ceil(math.Sqrt(dd / tolerance)))
	switch {
	case n < 1:
		return 1
	case n > 256:
		return 256
	}
	return n
}
