package stroke

import "math"

// Dash splits lines into the "on" intervals of pattern, which alternates
// dash and gap lengths. Odd-length patterns repeat to even length. The
// pattern restarts at offset for every polyline. Lines are returned
// unchanged when the pattern has no positive length.
func Dash(lines []Polyline, pattern []float64, offset float64) []Polyline {
	if len(pattern) == 0 {
		return lines
	}
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
	}
	var total float64
	for _, v := range pattern {
		if v < 0 {
			return lines
		}
		total += v
	}
	if total == 0 {
		return lines
	}

	var out []Polyline
	for _, l := range lines {
		out = dashOne(out, l, pattern, total, offset)
	}
	return out
}

func dashOne(out []Polyline, l Polyline, pattern []float64, total, offset float64) []Polyline {
	pts := l.Points
	if l.Closed && len(pts) > 1 {
		pts = append(append([]Point(nil), pts...), pts[0])
	}
	if len(pts) < 2 {
		return out
	}

	// Locate the starting phase.
	idx := 0
	rem := math.Mod(offset, total)
	if rem < 0 {
		rem += total
	}
	for rem >= pattern[idx] {
		rem -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	left := pattern[idx] - rem
	on := idx%2 == 0

	var cur []Point
	if on {
		cur = []Point{pts[0]}
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := b.Sub(a).Length()
		pos := 0.0
		for segLen-pos > left {
			pos += left
			t := pos / segLen
			p := Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
			if on {
				cur = append(cur, p)
				out = append(out, Polyline{Points: cur})
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			left = pattern[idx]
		}
		left -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, Polyline{Points: cur})
	}
	return out
}
