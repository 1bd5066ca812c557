package filter

import (
	"image"
	"math"
	"testing"
)

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		sigma    float64
		wantSize int
	}{
		{0, 1},
		{-1, 1},
		{1, 7},
		{2.5, 17},
	}
	for _, tt := range tests {
		k := GaussianKernel(tt.sigma)
		if len(k) != tt.wantSize {
			t.Errorf("GaussianKernel(%v) size = %d, want %d", tt.sigma, len(k), tt.wantSize)
		}
		var sum float64
		for _, v := range k {
			sum += float64(v)
		}
		if math.Abs(sum-1) > 1e-5 {
			t.Errorf("GaussianKernel(%v) sum = %v, want 1", tt.sigma, sum)
		}
	}
}

func TestCachedGaussianKernelShared(t *testing.T) {
	a := CachedGaussianKernel(1.5)
	b := CachedGaussianKernel(1.5)
	if &a[0] != &b[0] {
		t.Error("CachedGaussianKernel should return the cached slice")
	}
}

func TestBlurAlphaSpreads(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 21, 21))
	src.Pix[10*src.Stride+10] = 255

	dst := BlurAlpha(src, 2)
	center := dst.AlphaAt(10, 10).A
	near := dst.AlphaAt(12, 10).A
	far := dst.AlphaAt(20, 10).A

	if center == 0 || center == 255 {
		t.Errorf("center = %d, want partially spread", center)
	}
	if near == 0 || near >= center {
		t.Errorf("near = %d, want between 0 and %d", near, center)
	}
	if far != 0 {
		t.Errorf("far = %d, want 0 beyond extent", far)
	}
	if dst.AlphaAt(12, 10) != dst.AlphaAt(8, 10) {
		t.Error("blur should be symmetric")
	}
}

func TestBlurAlphaZeroSigma(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 3, 3))
	src.Pix[4] = 200
	dst := BlurAlpha(src, 0)
	if dst.Pix[4] != 200 {
		t.Errorf("pixel = %d, want 200", dst.Pix[4])
	}
	if &dst.Pix[0] == &src.Pix[0] {
		t.Error("BlurAlpha should return a copy")
	}
}

func TestExtent(t *testing.T) {
	if got := Extent(0); got != 0 {
		t.Errorf("Extent(0) = %d, want 0", got)
	}
	if got := Extent(1.5); got != 5 {
		t.Errorf("Extent(1.5) = %d, want 5", got)
	}
}
