// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"bytes"
	"image"
	"image/color"
	"io"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/canvaslab/surface"
)

// Canvas records drawing as SVG elements.
//
// Canvas is NOT thread-safe.
type Canvas struct {
	surface.StateStack
	width, height int

	body    bytes.Buffer
	doc     *svgo.SVG
	path    *surface.Path
	shadows map[surface.Shadow]string

	// Title and Desc are written as the document's title and desc
	// elements when non-empty.
	Title string
	Desc  string
}

// New creates an empty SVG canvas of the given size.
func New(width, height int) *Canvas {
	c := &Canvas{
		width:   width,
		height:  height,
		path:    surface.NewPath(),
		shadows: make(map[surface.Shadow]string),
	}
	c.doc = svgo.New(&c.body)
	return c
}

// NewWithOptions creates a canvas and paints opts.Background when set.
func NewWithOptions(opts surface.Options) (*Canvas, error) {
	c := New(opts.Width, opts.Height)
	if opts.Background != nil {
		bg := color.NRGBAModel.Convert(opts.Background).(color.NRGBA)
		c.doc.Rect(0, 0, opts.Width, opts.Height, colorAttrs("fill", bg)...)
	}
	return c, nil
}

func init() {
	surface.RegisterBackend("svg", 10, func(opts surface.Options) (surface.Canvas, error) {
		return NewWithOptions(opts)
	}, nil)
}

// WriteTo writes the complete SVG document to w.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	out := svgo.New(cw)
	out.Start(c.width, c.height)
	if c.Title != "" {
		out.Title(c.Title)
	}
	if c.Desc != "" {
		out.Desc(c.Desc)
	}
	if cw.err == nil {
		_, _ = cw.Write(c.body.Bytes())
	}
	out.End()
	return cw.n, cw.err
}

// Bytes returns the complete SVG document.
func (c *Canvas) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = c.WriteTo(&buf)
	return buf.Bytes()
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

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

// Fill emits the current path filled with the fill paint.
func (c *Canvas) Fill() {
	d := pathData(c.path)
	if d == "" {
		return
	}
	attrs := c.paintAttrs("fill", c.Current().FillPaint)
	attrs = append(attrs, c.shadowAttrs()...)
	c.doc.Path(d, attrs...)
}

// Stroke emits the current path outlined with the stroke paint.
func (c *Canvas) Stroke() {
	d := pathData(c.path)
	if d == "" {
		return
	}
	attrs := append([]string{`fill="none"`}, c.strokeAttrs()...)
	attrs = append(attrs, c.shadowAttrs()...)
	c.doc.Path(d, attrs...)
}

// ClearRect erases the rectangle from everything drawn so far. Clearing
// the whole canvas discards the document body.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	p := surface.NewPath()
	p.SetTransform(c.Current().Transform)
	p.Rect(x, y, w, h)

	minX, minY, maxX, maxY := p.Bounds()
	if c.Current().Transform.B == 0 && c.Current().Transform.D == 0 &&
		minX <= 0 && minY <= 0 && maxX >= float64(c.width) && maxY >= float64(c.height) {
		c.body.Reset()
		return
	}
	if c.body.Len() == 0 {
		return
	}

	id := newID("clear")
	prev := append([]byte(nil), c.body.Bytes()...)
	c.body.Reset()
	c.doc.Def()
	c.doc.Writer.Write([]byte(`<mask id="` + id + `" maskUnits="userSpaceOnUse" x="0" y="0" width="` +
		itoa(c.width) + `" height="` + itoa(c.height) + `">` + "\n"))
	c.doc.Rect(0, 0, c.width, c.height, `fill="white"`)
	c.doc.Path(pathData(p), `fill="black"`)
	c.doc.Writer.Write([]byte("</mask>\n"))
	c.doc.DefEnd()
	c.doc.Group(`mask="url(#` + id + `)"`)
	c.body.Write(prev)
	c.doc.Gend()
}

// DrawImage embeds the src region of img as a PNG data URI.
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

	uri, err := dataURI(img, src)
	if err != nil {
		surface.Logger().Warn("svg: encode image", "err", err)
		return
	}
	m := c.Current().Transform.
		Translated(dst.X, dst.Y).
		Scaled(dst.W/float64(src.Dx()), dst.H/float64(src.Dy()))

	c.doc.Gtransform(matrixAttr(m))
	c.doc.Image(0, 0, src.Dx(), src.Dy(), uri, append([]string{`preserveAspectRatio="none"`}, c.shadowAttrs()...)...)
	c.doc.Gend()
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}

// Verify Canvas implements surface.Canvas.
var _ surface.Canvas = (*Canvas)(nil)
