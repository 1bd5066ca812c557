package filter

import (
	"math"

	"github.com/gogpu/canvaslab/internal/cache"
)

// GaussianKernel generates a 1D Gaussian kernel for the given standard
// deviation. The kernel is normalized so all values sum to 1.0.
//
// The kernel size is 2 * ceil(sigma * 3) + 1, which covers 99.7% of the
// distribution. For sigma <= 0 it returns the identity kernel [1.0].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)
	for i := range size {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}
	return kernel
}

// kernels caches kernels keyed by sigma quantized to 0.01.
var kernels = cache.New[int, []float32](64)

// CachedGaussianKernel returns a shared kernel for sigma. Callers must not
// modify it.
func CachedGaussianKernel(sigma float64) []float32 {
	k, _ := kernels.GetOrCreate(int(math.Round(sigma*100)), func() ([]float32, error) {
		return GaussianKernel(sigma), nil
	})
	return k
}

// Extent returns how many pixels a blur with sigma spreads coverage.
func Extent(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}
