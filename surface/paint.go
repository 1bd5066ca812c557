// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"math"
	"sort"

	icolor "github.com/gogpu/canvaslab/internal/color"
)

// Paint is a color source that can vary across the canvas.
// Coordinates are in user space.
type Paint interface {
	// ColorAt returns the color at the given coordinates.
	ColorAt(x, y float64) color.NRGBA
}

// Transparent is the fully transparent color returned outside a paint's
// defined area.
var Transparent = color.NRGBA{}

// ColorStop is a color at a position along a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  color.NRGBA
}

// SolidPaint paints a single color everywhere.
type SolidPaint struct {
	Color color.NRGBA
}

// ColorAt implements Paint.
func (p SolidPaint) ColorAt(_, _ float64) color.NRGBA {
	return p.Color
}

// LinearGradientPaint varies along the line from (X0, Y0) to (X1, Y1).
type LinearGradientPaint struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

// ColorAt implements Paint by projecting (x, y) onto the gradient line.
func (g LinearGradientPaint) ColorAt(x, y float64) color.NRGBA {
	dx := g.X1 - g.X0
	dy := g.Y1 - g.Y0
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return Transparent
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / lengthSq
	return colorAtOffset(g.Stops, t)
}

// RadialGradientPaint is a two-circle conical gradient from the circle
// (X0, Y0, R0) to the circle (X1, Y1, R1).
type RadialGradientPaint struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

// ColorAt implements Paint. For each point it finds the largest t for
// which the interpolated circle passes through the point with a
// non-negative radius; points covered by no circle are transparent.
func (g RadialGradientPaint) ColorAt(x, y float64) color.NRGBA {
	cdx, cdy := g.X1-g.X0, g.Y1-g.Y0
	pdx, pdy := x-g.X0, y-g.Y0
	dr := g.R1 - g.R0

	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + g.R0*dr
	c := pdx*pdx + pdy*pdy - g.R0*g.R0

	valid := func(t float64) bool { return g.R0+t*dr >= 0 }

	if a == 0 {
		if b == 0 {
			return Transparent
		}
		t := c / (2 * b)
		if !valid(t) {
			return Transparent
		}
		return colorAtOffset(g.Stops, t)
	}

	disc := b*b - a*c
	if disc < 0 {
		return Transparent
	}
	sq := math.Sqrt(disc)
	t1, t2 := (b+sq)/a, (b-sq)/a
	if t2 > t1 {
		t1, t2 = t2, t1
	}
	switch {
	case valid(t1):
		return colorAtOffset(g.Stops, t1)
	case valid(t2):
		return colorAtOffset(g.Stops, t2)
	}
	return Transparent
}

// ConicGradientPaint sweeps around (X, Y) starting at Angle radians,
// measured clockwise from the positive x axis.
type ConicGradientPaint struct {
	Angle float64
	X, Y  float64
	Stops []ColorStop
}

// ColorAt implements Paint.
func (g ConicGradientPaint) ColorAt(x, y float64) color.NRGBA {
	dx, dy := x-g.X, y-g.Y
	if dx == 0 && dy == 0 {
		return firstStopColor(g.Stops)
	}
	const twoPi = 2 * math.Pi
	rel := math.Mod(math.Atan2(dy, dx)-g.Angle, twoPi)
	if rel < 0 {
		rel += twoPi
	}
	return colorAtOffset(g.Stops, rel/twoPi)
}

// PatternPaint tiles an image from the user-space origin.
type PatternPaint struct {
	Image      image.Image
	Repetition Repetition
}

// ColorAt implements Paint.
func (p PatternPaint) ColorAt(x, y float64) color.NRGBA {
	if p.Image == nil {
		return Transparent
	}
	b := p.Image.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return Transparent
	}

	ix, iy := int(math.Floor(x)), int(math.Floor(y))
	repeatX := p.Repetition == Repeat || p.Repetition == RepeatX
	repeatY := p.Repetition == Repeat || p.Repetition == RepeatY

	if repeatX {
		ix = ((ix % w) + w) % w
	} else if ix < 0 || ix >= w {
		return Transparent
	}
	if repeatY {
		iy = ((iy % h) + h) % h
	} else if iy < 0 || iy >= h {
		return Transparent
	}
	return color.NRGBAModel.Convert(p.Image.At(b.Min.X+ix, b.Min.Y+iy)).(color.NRGBA)
}

// sortStops returns a copy of stops ordered by offset. Equal offsets keep
// their insertion order.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// colorAtOffset returns the interpolated color at t, padding with the
// edge colors outside [0, 1].
func colorAtOffset(stops []ColorStop, t float64) color.NRGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = math.Max(0, math.Min(1, t))

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	s1, s2 := sorted[idx-1], sorted[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	return icolor.Lerp(s1.Color, s2.Color, (t-s1.Offset)/(s2.Offset-s1.Offset))
}

func firstStopColor(stops []ColorStop) color.NRGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}
