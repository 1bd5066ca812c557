// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/gogpu/canvaslab/surface"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func alphaAt(c *Canvas, x, y int) uint8 { return c.Image().RGBAAt(x, y).A }

func TestFillRect(t *testing.T) {
	c := New(50, 50)
	c.SetFillPaint(surface.SolidPaint{Color: red})
	c.BeginPath()
	c.MoveTo(10, 10)
	c.LineTo(30, 10)
	c.LineTo(30, 30)
	c.LineTo(10, 30)
	c.ClosePath()
	c.Fill()

	if got := c.Image().RGBAAt(15, 15); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("inside = %v, want opaque red", got)
	}
	if got := alphaAt(c, 5, 5); got != 0 {
		t.Errorf("outside alpha = %d, want 0", got)
	}
	if got := alphaAt(c, 30, 15); got != 0 {
		t.Errorf("right edge alpha = %d, want 0", got)
	}
}

func TestFillUsesTransformAtAddTime(t *testing.T) {
	c := New(50, 50)
	c.SetFillPaint(surface.SolidPaint{Color: red})
	c.Translate(20, 20)
	c.BeginPath()
	c.Arc(0, 0, 5, 0, 2*math.Pi, false)
	c.Translate(-20, -20)
	c.Fill()

	if got := alphaAt(c, 20, 20); got != 255 {
		t.Errorf("circle center alpha = %d, want 255", got)
	}
	if got := alphaAt(c, 2, 2); got != 0 {
		t.Errorf("origin alpha = %d, want 0", got)
	}
}

func TestStrokeLine(t *testing.T) {
	c := New(50, 50)
	c.SetStrokePaint(surface.SolidPaint{Color: blue})
	c.SetLineWidth(4)
	c.BeginPath()
	c.MoveTo(5, 25)
	c.LineTo(45, 25)
	c.Stroke()

	if got := alphaAt(c, 25, 25); got != 255 {
		t.Errorf("on line alpha = %d, want 255", got)
	}
	if got := alphaAt(c, 25, 20); got != 0 {
		t.Errorf("off line alpha = %d, want 0", got)
	}
	if got := alphaAt(c, 2, 25); got != 0 {
		t.Errorf("before butt cap alpha = %d, want 0", got)
	}
}

func TestStrokeRoundCap(t *testing.T) {
	c := New(50, 50)
	c.SetLineWidth(8)
	c.SetLineCap(surface.LineCapRound)
	c.BeginPath()
	c.MoveTo(10, 25)
	c.LineTo(40, 25)
	c.Stroke()

	if got := alphaAt(c, 7, 25); got == 0 {
		t.Error("round cap should extend past the start point")
	}
}

func TestStrokeDash(t *testing.T) {
	c := New(60, 50)
	c.SetLineWidth(4)
	c.SetLineDash([]float64{10, 10})
	c.BeginPath()
	c.MoveTo(0, 25)
	c.LineTo(60, 25)
	c.Stroke()

	if got := alphaAt(c, 5, 25); got != 255 {
		t.Errorf("dash alpha = %d, want 255", got)
	}
	if got := alphaAt(c, 15, 25); got != 0 {
		t.Errorf("gap alpha = %d, want 0", got)
	}
	if got := alphaAt(c, 25, 25); got != 255 {
		t.Errorf("second dash alpha = %d, want 255", got)
	}
}

func TestShadow(t *testing.T) {
	c := New(60, 60)
	c.SetFillPaint(surface.SolidPaint{Color: red})
	c.SetShadow(surface.Shadow{Color: blue, OffsetX: 20, OffsetY: 20})
	c.BeginPath()
	c.RoundRect(10, 10, 20, 20, [4]float64{})
	c.Fill()

	if got := c.Image().RGBAAt(45, 45); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("shadow pixel = %v, want blue", got)
	}
	if got := c.Image().RGBAAt(15, 15); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("shape pixel = %v, want red over shadow", got)
	}
}

func TestShadowBlurSoftensEdge(t *testing.T) {
	c := New(60, 60)
	c.SetShadow(surface.Shadow{Color: blue, Blur: 6})
	c.BeginPath()
	c.RoundRect(20, 20, 20, 20, [4]float64{})
	c.Fill()

	a := alphaAt(c, 17, 30)
	if a == 0 || a == 255 {
		t.Errorf("blurred shadow alpha outside shape = %d, want partial", a)
	}
}

func TestLinearGradientFill(t *testing.T) {
	c := New(50, 10)
	c.SetFillPaint(surface.LinearGradientPaint{
		X0: 0, Y0: 0, X1: 50, Y1: 0,
		Stops: []surface.ColorStop{
			{Offset: 0, Color: color.NRGBA{A: 255}},
			{Offset: 1, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		},
	})
	c.BeginPath()
	c.RoundRect(0, 0, 50, 10, [4]float64{})
	c.Fill()

	left := c.Image().RGBAAt(2, 5).R
	right := c.Image().RGBAAt(47, 5).R
	if left >= right {
		t.Errorf("gradient left R = %d, right R = %d, want increasing", left, right)
	}
}

func TestClearRect(t *testing.T) {
	c, err := NewWithOptions(surface.Options{Width: 20, Height: 20, Background: color.White})
	if err != nil {
		t.Fatal(err)
	}
	c.ClearRect(5, 5, 10, 10)

	tests := []struct {
		name string
		x, y int
		want uint8
	}{
		{"inside", 10, 10, 0},
		{"inside corner", 5, 5, 0},
		{"above", 2, 2, 255},
		{"left", 4, 10, 255},
		{"right", 15, 10, 255},
		{"below", 17, 17, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := alphaAt(c, tt.x, tt.y); got != tt.want {
				t.Errorf("alphaAt(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDrawImageScales(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			src.SetNRGBA(x, y, red)
		}
	}

	c := New(40, 40)
	c.DrawImage(src, image.Rectangle{}, surface.Rect{X: 10, Y: 10, W: 20, H: 20})

	if got := c.Image().RGBAAt(20, 20); got.R < 250 || got.A < 250 || got.G != 0 {
		t.Errorf("scaled pixel = %v, want red", got)
	}
	if got := alphaAt(c, 5, 5); got != 0 {
		t.Errorf("outside alpha = %d, want 0", got)
	}
}

func TestFillTextPaints(t *testing.T) {
	c := New(100, 40)
	c.SetFont(surface.Font{Size: 24, Family: "sans-serif"})
	c.SetTextBaseline(surface.BaselineMiddle)
	c.SetTextAlign(surface.AlignCenter)
	c.FillText("Hi", 50, 20, 0)

	painted := 0
	img := c.Image()
	for y := range 40 {
		for x := range 100 {
			if img.RGBAAt(x, y).A > 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Fatal("FillText painted nothing")
	}
	if alphaAt(c, 2, 2) != 0 || alphaAt(c, 97, 37) != 0 {
		t.Error("text should stay near the anchor")
	}
}

func TestMeasureText(t *testing.T) {
	c := New(10, 10)
	c.SetFont(surface.Font{Size: 16, Family: "sans-serif"})
	if m := c.MeasureText("hello"); m.Width <= 0 || m.Ascent <= 0 {
		t.Errorf("MeasureText() = %+v, want positive width and ascent", m)
	}
}

func TestEncodePNG(t *testing.T) {
	c := New(7, 3)
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 3 {
		t.Errorf("decoded size = %v, want 7x3", b)
	}
}

func TestRegisteredBackend(t *testing.T) {
	cv, err := surface.NewCanvasByName("raster", surface.Options{Width: 8, Height: 6})
	if err != nil {
		t.Fatalf("NewCanvasByName(raster) error = %v", err)
	}
	if _, ok := cv.(*Canvas); !ok {
		t.Errorf("canvas = %T, want *raster.Canvas", cv)
	}
	if cv.Width() != 8 || cv.Height() != 6 {
		t.Errorf("size = %dx%d, want 8x6", cv.Width(), cv.Height())
	}
}

func TestRecorderPlaybackOntoRaster(t *testing.T) {
	rec := surface.NewRecorder(30, 30)
	rec.SetFillPaint(surface.SolidPaint{Color: red})
	rec.BeginPath()
	rec.Arc(15, 15, 10, 0, 2*math.Pi, false)
	rec.Fill()

	c := New(30, 30)
	rec.Playback(c)
	if got := alphaAt(c, 15, 15); got != 255 {
		t.Errorf("played back alpha = %d, want 255", got)
	}
}
