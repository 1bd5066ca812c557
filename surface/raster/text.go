// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/gogpu/canvaslab/surface"

// FillText fills the glyph outlines of s.
func (c *Canvas) FillText(s string, x, y, maxWidth float64) {
	if p, ok := c.textPath(s, x, y, maxWidth); ok {
		c.fillPath(p, c.Current().FillPaint)
	}
}

// StrokeText strokes the glyph outlines of s.
func (c *Canvas) StrokeText(s string, x, y, maxWidth float64) {
	if p, ok := c.textPath(s, x, y, maxWidth); ok {
		c.strokePath(p)
	}
}

// MeasureText measures s with the current font.
func (c *Canvas) MeasureText(s string) surface.TextMetrics {
	l, err := surface.LayoutText(c.Current(), s, 0, 0, 0)
	if err != nil {
		surface.Logger().Warn("raster: measure text", "err", err)
		return surface.TextMetrics{}
	}
	return l.Metrics
}

// textPath lays out s and returns its outlines in device space. The
// current path is left untouched.
func (c *Canvas) textPath(s string, x, y, maxWidth float64) (*surface.Path, bool) {
	if s == "" {
		return nil, false
	}
	l, err := surface.LayoutText(c.Current(), s, x, y, maxWidth)
	if err != nil {
		surface.Logger().Warn("raster: layout text", "text", s, "err", err)
		return nil, false
	}

	p := surface.NewPath()
	p.SetTransform(c.Current().Transform)
	if err := l.Run.AppendOutline(p, l.X, l.Y, l.ScaleX); err != nil {
		surface.Logger().Warn("raster: glyph outlines", "text", s, "err", err)
		return nil, false
	}
	return p, true
}
