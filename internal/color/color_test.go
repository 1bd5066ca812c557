package color

import (
	"image/color"
	"math"
	"testing"
)

func TestTransferRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		s := float32(i) / 255
		got := LinearToSRGB(SRGBToLinear(s))
		if math.Abs(float64(got-s)) > 1e-4 {
			t.Errorf("LinearToSRGB(SRGBToLinear(%v)) = %v", s, got)
		}
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := color.NRGBA{R: 255, A: 255}
	b := color.NRGBA{B: 255, A: 128}

	tests := []struct {
		name string
		t    float64
		want color.NRGBA
	}{
		{"start", 0, a},
		{"below", -1, a},
		{"end", 1, b},
		{"above", 2, b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(a, b, tt.t); got != tt.want {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestLerpMidpointIsLinearLight(t *testing.T) {
	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	got := Lerp(black, white, 0.5)
	// Half intensity in linear light encodes to ~188 in sRGB, not 128.
	if got.R < 185 || got.R > 190 {
		t.Errorf("Lerp midpoint R = %d, want ~188", got.R)
	}
	if got.R != got.G || got.G != got.B {
		t.Errorf("Lerp midpoint not gray: %v", got)
	}
}
