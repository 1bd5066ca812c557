// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "image"

// Canvas is a 2D drawing target with canvas-2D semantics.
//
// Path coordinates are transformed by the current transform when they are
// added, not when the path is painted. Paint coordinates are interpreted
// in the user space in effect at Stroke or Fill time.
//
// Canvases are NOT thread-safe.
type Canvas interface {
	// Width returns the canvas width in pixels.
	Width() int

	// Height returns the canvas height in pixels.
	Height() int

	// Save pushes the drawing state onto a stack.
	Save()

	// Restore pops the drawing state. It is a no-op on an empty stack.
	Restore()

	// Translate moves the origin of the current transform.
	Translate(x, y float64)

	// Scale scales the current transform.
	Scale(x, y float64)

	SetFillPaint(p Paint)
	SetStrokePaint(p Paint)
	SetLineWidth(w float64)

	// SetLineDash sets the dash pattern. An empty pattern draws solid lines.
	SetLineDash(segments []float64)
	SetLineCap(c LineCap)
	SetShadow(s Shadow)

	// BeginPath discards the current path.
	BeginPath()

	// ClosePath closes the current subpath.
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)

	// Arc adds a circular arc. Angles are in radians.
	Arc(x, y, radius, start, end float64, anticlockwise bool)

	// Ellipse adds an elliptical arc. Angles are in radians.
	Ellipse(x, y, rx, ry, rotation, start, end float64, anticlockwise bool)

	// RoundRect adds a rectangle with corner radii in the order top-left,
	// top-right, bottom-right, bottom-left.
	RoundRect(x, y, w, h float64, radii [4]float64)

	// Stroke outlines the current path with the stroke paint.
	Stroke()

	// Fill fills the current path with the fill paint (non-zero rule).
	Fill()

	// DrawImage draws the src region of img into dst. A zero src selects
	// the whole image; a zero-sized dst uses the size of src.
	DrawImage(img image.Image, src image.Rectangle, dst Rect)

	SetFont(f Font)
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)

	// FillText draws s at (x, y). A positive maxWidth condenses the text
	// horizontally so that it fits.
	FillText(s string, x, y, maxWidth float64)

	// StrokeText outlines s at (x, y).
	StrokeText(s string, x, y, maxWidth float64)

	// MeasureText measures s with the current font.
	MeasureText(s string) TextMetrics

	// ClearRect makes the given rectangle fully transparent.
	ClearRect(x, y, w, h float64)
}
