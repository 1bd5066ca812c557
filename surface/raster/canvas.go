// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/canvaslab/surface"
)

// Canvas is a software canvas backed by an *image.RGBA.
//
// Canvas is NOT thread-safe.
type Canvas struct {
	surface.StateStack
	img  *image.RGBA
	path *surface.Path
}

// New creates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		path: surface.NewPath(),
	}
}

// NewWithOptions creates a canvas and fills it with opts.Background when
// one is set.
func NewWithOptions(opts surface.Options) (*Canvas, error) {
	c := New(opts.Width, opts.Height)
	if opts.Background != nil {
		draw.Draw(c.img, c.img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	return c, nil
}

func init() {
	surface.RegisterBackend("raster", 20, func(opts surface.Options) (surface.Canvas, error) {
		return NewWithOptions(opts)
	}, nil)
}

// Image returns the backing image. It aliases the canvas pixels.
func (c *Canvas) Image() *image.RGBA { return c.img }

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (c *Canvas) Width() int  { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// builder returns the current path set to the current transform.
func (c *Canvas) builder() *surface.Path {
	c.path.SetTransform(c.Current().Transform)
	return c.path
}

func (c *Canvas) BeginPath()          { c.path.Reset() }
func (c *Canvas) ClosePath()          { c.path.ClosePath() }
func (c *Canvas) MoveTo(x, y float64) { c.builder().MoveTo(x, y) }
func (c *Canvas) LineTo(x, y float64) { c.builder().LineTo(x, y) }

func (c *Canvas) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.builder().CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (c *Canvas) Arc(x, y, radius, start, end float64, anticlockwise bool) {
	c.builder().Arc(x, y, radius, start, end, anticlockwise)
}

func (c *Canvas) Ellipse(x, y, rx, ry, rotation, start, end float64, anticlockwise bool) {
	c.builder().Ellipse(x, y, rx, ry, rotation, start, end, anticlockwise)
}

func (c *Canvas) RoundRect(x, y, w, h float64, radii [4]float64) {
	c.builder().RoundRect(x, y, w, h, radii)
}

// Fill fills the current path with the fill paint.
func (c *Canvas) Fill() {
	c.fillPath(c.path, c.Current().FillPaint)
}

// Stroke outlines the current path with the stroke paint.
func (c *Canvas) Stroke() {
	c.strokePath(c.path)
}

// ClearRect makes the given user-space rectangle transparent.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	p := surface.NewPath()
	p.SetTransform(c.Current().Transform)
	p.Rect(x, y, w, h)

	mask := c.rasterize(polygons(p.Flatten(surface.DefaultTolerance)), 0)
	b := mask.Bounds().Intersect(c.img.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m := uint32(mask.AlphaAt(x, y).A)
			if m == 0 {
				continue
			}
			// Premultiplied pixels scale uniformly by the uncovered share.
			keep := 255 - m
			i := c.img.PixOffset(x, y)
			px := c.img.Pix[i : i+4 : i+4]
			for k := range px {
				px[k] = uint8((uint32(px[k])*keep + 127) / 255)
			}
		}
	}
}

// Verify Canvas implements surface.Canvas.
var _ surface.Canvas = (*Canvas)(nil)
