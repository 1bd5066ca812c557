// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/canvaslab/internal/filter"
	"github.com/gogpu/canvaslab/internal/stroke"
	"github.com/gogpu/canvaslab/surface"
)

// miterLimit is the canvas-2D default.
const miterLimit = 10

var capStyles = [...]stroke.Cap{
	surface.LineCapButt:   stroke.CapButt,
	surface.LineCapRound:  stroke.CapRound,
	surface.LineCapSquare: stroke.CapSquare,
}

func (c *Canvas) fillPath(p *surface.Path, paint surface.Paint) {
	polys := polygons(p.Flatten(surface.DefaultTolerance))
	c.composite(polys, paint)
}

func (c *Canvas) strokePath(p *surface.Path) {
	st := c.Current()
	scale := st.Transform.ScaleFactor()

	lines := polylines(p.Flatten(surface.DefaultTolerance))
	if len(st.LineDash) > 0 {
		dash := make([]float64, len(st.LineDash))
		for i, v := range st.LineDash {
			dash[i] = v * scale
		}
		lines = stroke.Dash(lines, dash, 0)
	}

	cp := stroke.CapButt
	if int(st.LineCap) < len(capStyles) {
		cp = capStyles[st.LineCap]
	}
	polys := stroke.Outline(lines, stroke.Style{
		Width:      st.LineWidth * scale,
		Cap:        cp,
		Join:       stroke.JoinMiter,
		MiterLimit: miterLimit,
	})
	c.composite(polys, st.StrokePaint)
}

// composite paints the union of polys with paint, preceded by the
// current shadow.
func (c *Canvas) composite(polys [][]stroke.Point, paint surface.Paint) {
	if len(polys) == 0 {
		return
	}
	st := c.Current()
	if st.Shadow.Visible() {
		sigma := st.Shadow.Blur / 2
		margin := filter.Extent(sigma) + 1
		c.drawShadow(c.rasterize(polys, margin), margin, st.Shadow)
	}

	r := deviceBounds(polys).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	mask := c.rasterize(polys, 0)
	draw.DrawMask(c.img, r, c.source(paint), r.Min, mask, r.Min, draw.Over)
}

// drawShadow blurs mask, whose origin is margin pixels above and left of
// the canvas origin, and composites it in the shadow color.
func (c *Canvas) drawShadow(mask *image.Alpha, margin int, sh surface.Shadow) {
	mask = filter.BlurAlpha(mask, sh.Blur/2)
	ox := int(math.Round(sh.OffsetX))
	oy := int(math.Round(sh.OffsetY))
	draw.DrawMask(c.img, c.img.Bounds(), image.NewUniform(sh.Color), image.Point{},
		mask, image.Pt(margin-ox, margin-oy), draw.Over)
}

// rasterize scan-converts polys into a coverage mask covering the canvas
// plus margin pixels on every side. Mask pixel (0, 0) corresponds to
// canvas pixel (-margin, -margin).
func (c *Canvas) rasterize(polys [][]stroke.Point, margin int) *image.Alpha {
	w := c.Width() + 2*margin
	h := c.Height() + 2*margin
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return mask
	}

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	m := float32(margin)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].X)+m, float32(poly[0].Y)+m)
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X)+m, float32(p.Y)+m)
		}
		z.ClosePath()
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// source returns an image that samples paint at device pixels.
func (c *Canvas) source(paint surface.Paint) image.Image {
	if s, ok := paint.(surface.SolidPaint); ok {
		return image.NewUniform(s.Color)
	}
	inv, ok := c.Current().Transform.Invert()
	if !ok {
		return image.Transparent
	}
	return &paintImage{paint: paint, inv: inv, rect: c.img.Bounds()}
}

// paintImage adapts a user-space Paint to device pixels through the
// inverse transform.
type paintImage struct {
	paint surface.Paint
	inv   surface.Matrix
	rect  image.Rectangle
}

func (p *paintImage) ColorModel() color.Model { return color.NRGBAModel }
func (p *paintImage) Bounds() image.Rectangle { return p.rect }

func (p *paintImage) At(x, y int) color.Color {
	ux, uy := p.inv.Apply(float64(x)+0.5, float64(y)+0.5)
	return p.paint.ColorAt(ux, uy)
}

func polygons(subs []surface.Subpath) [][]stroke.Point {
	out := make([][]stroke.Point, 0, len(subs))
	for _, s := range subs {
		out = append(out, points(s.Points))
	}
	return out
}

func polylines(subs []surface.Subpath) []stroke.Polyline {
	out := make([]stroke.Polyline, 0, len(subs))
	for _, s := range subs {
		out = append(out, stroke.Polyline{Points: points(s.Points), Closed: s.Closed})
	}
	return out
}

func points(in []surface.Point) []stroke.Point {
	out := make([]stroke.Point, len(in))
	for i, p := range in {
		out[i] = stroke.Point{X: p.X, Y: p.Y}
	}
	return out
}

// deviceBounds returns the pixel rectangle touched by polys.
func deviceBounds(polys [][]stroke.Point) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if minX > maxX {
		return image.Rectangle{}
	}
	const limit = 1 << 24
	clampI := func(v float64) int { return int(math.Max(-limit, math.Min(limit, v))) }
	return image.Rect(
		clampI(math.Floor(minX)), clampI(math.Floor(minY)),
		clampI(math.Ceil(maxX))+1, clampI(math.Ceil(maxY))+1,
	)
}
