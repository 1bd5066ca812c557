// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"testing"
)

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
)

func TestSolidPaint(t *testing.T) {
	p := SolidPaint{Color: red}
	if got := p.ColorAt(-100, 1e6); got != red {
		t.Errorf("ColorAt() = %v, want %v", got, red)
	}
}

func TestLinearGradientPaint(t *testing.T) {
	g := LinearGradientPaint{
		X0: 0, Y0: 0, X1: 100, Y1: 0,
		Stops: []ColorStop{{Offset: 1, Color: white}, {Offset: 0, Color: black}},
	}

	tests := []struct {
		name string
		x    float64
		want color.NRGBA
	}{
		{"start", 0, black},
		{"end", 100, white},
		{"before", -50, black},
		{"after", 500, white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ColorAt(tt.x, 42); got != tt.want {
				t.Errorf("ColorAt(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}

	mid := g.ColorAt(50, 0)
	if mid.R <= 128 || mid.R >= 255 {
		t.Errorf("ColorAt(50).R = %d, want linear-light midpoint above 128", mid.R)
	}
}

func TestLinearGradientDegenerate(t *testing.T) {
	g := LinearGradientPaint{X0: 5, Y0: 5, X1: 5, Y1: 5, Stops: []ColorStop{{0, red}}}
	if got := g.ColorAt(5, 5); got != Transparent {
		t.Errorf("ColorAt() = %v, want transparent", got)
	}
}

func TestRadialGradientPaint(t *testing.T) {
	g := RadialGradientPaint{
		X0: 50, Y0: 50, R0: 0,
		X1: 50, Y1: 50, R1: 50,
		Stops: []ColorStop{{0, red}, {1, white}},
	}
	if got := g.ColorAt(50, 50); got != red {
		t.Errorf("ColorAt(center) = %v, want %v", got, red)
	}
	if got := g.ColorAt(100, 50); got != white {
		t.Errorf("ColorAt(edge) = %v, want %v", got, white)
	}
	if got := g.ColorAt(150, 50); got != white {
		t.Errorf("ColorAt(outside) = %v, want padded %v", got, white)
	}
}

func TestConicGradientPaint(t *testing.T) {
	g := ConicGradientPaint{
		Stops: []ColorStop{{0, red}, {0.25, white}, {1, black}},
	}
	if got := g.ColorAt(10, 0); got != red {
		t.Errorf("ColorAt(+x) = %v, want %v", got, red)
	}
	if got := g.ColorAt(0, 10); got != white {
		t.Errorf("ColorAt(+y) = %v, want %v", got, white)
	}
	if got := g.ColorAt(0, 0); got != red {
		t.Errorf("ColorAt(center) = %v, want first stop %v", got, red)
	}
}

func TestPatternPaint(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(1, 1, red)

	tests := []struct {
		rep  Repetition
		x, y float64
		want color.NRGBA
	}{
		{Repeat, 3, 3, red},
		{Repeat, -1, -1, red},
		{RepeatX, 3, 1, red},
		{RepeatX, 1, 3, Transparent},
		{RepeatY, 1, 3, red},
		{NoRepeat, 1, 1, red},
		{NoRepeat, 3, 3, Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.rep.String(), func(t *testing.T) {
			p := PatternPaint{Image: img, Repetition: tt.rep}
			if got := p.ColorAt(tt.x, tt.y); got != tt.want {
				t.Errorf("ColorAt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestColorAtOffsetEdgeCases(t *testing.T) {
	if got := colorAtOffset(nil, 0.5); got != Transparent {
		t.Errorf("no stops = %v, want transparent", got)
	}
	if got := colorAtOffset([]ColorStop{{0.3, red}}, 0.9); got != red {
		t.Errorf("single stop = %v, want %v", got, red)
	}
	hard := []ColorStop{{0, red}, {0.5, red}, {0.5, white}, {1, white}}
	if got := colorAtOffset(hard, 0.75); got != white {
		t.Errorf("after hard stop = %v, want %v", got, white)
	}
}
