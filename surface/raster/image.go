// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/canvaslab/internal/filter"
	"github.com/gogpu/canvaslab/surface"
)

// DrawImage draws the src region of img into the user-space rectangle
// dst, resampling bilinearly through the current transform.
func (c *Canvas) DrawImage(img image.Image, src image.Rectangle, dst surface.Rect) {
	if img == nil {
		return
	}
	if src.Empty() {
		src = img.Bounds()
	}
	if src.Empty() {
		return
	}
	if dst.Empty() {
		dst.W, dst.H = float64(src.Dx()), float64(src.Dy())
	}

	st := c.Current()
	margin := 0
	if st.Shadow.Visible() {
		margin = filter.Extent(st.Shadow.Blur/2) + 1
	}

	m := surface.Identity().
		Translated(float64(margin), float64(margin)).
		Multiply(st.Transform).
		Translated(dst.X, dst.Y).
		Scaled(dst.W/float64(src.Dx()), dst.H/float64(src.Dy())).
		Translated(-float64(src.Min.X), -float64(src.Min.Y))

	layer := image.NewRGBA(image.Rect(0, 0, c.Width()+2*margin, c.Height()+2*margin))
	xdraw.BiLinear.Transform(layer, f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}, img, src, xdraw.Over, nil)

	if margin > 0 {
		mask := image.NewAlpha(layer.Bounds())
		draw.Draw(mask, mask.Bounds(), layer, image.Point{}, draw.Src)
		c.drawShadow(mask, margin, st.Shadow)
	}
	draw.Draw(c.img, c.img.Bounds(), layer, image.Pt(margin, margin), draw.Over)
}
