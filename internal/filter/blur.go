package filter

import (
	"image"
	"sync"
)

// BlurAlpha returns a Gaussian-blurred copy of src. Coverage outside the
// bounds of src is treated as zero, so callers should leave a margin of
// Extent(sigma) pixels around the content.
func BlurAlpha(src *image.Alpha, sigma float64) *image.Alpha {
	b := src.Bounds()
	dst := image.NewAlpha(b)
	if sigma <= 0 {
		copy(dst.Pix, src.Pix)
		return dst
	}

	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return dst
	}
	kernel := CachedGaussianKernel(sigma)

	temp := getTempBuffer(w * h)
	defer putTempBuffer(temp)

	blurHorizontal(src, temp, w, h, kernel)
	blurVertical(temp, dst, w, h, kernel)
	return dst
}

// blurHorizontal convolves each row of src into temp.
func blurHorizontal(src *image.Alpha, temp []float32, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := range h {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		for x := range w {
			var a float32
			for k, weight := range kernel {
				kx := x + k - half
				if kx < 0 || kx >= w {
					continue
				}
				a += float32(row[kx]) * weight
			}
			temp[y*w+x] = a
		}
	}
}

// blurVertical convolves each column of temp into dst.
func blurVertical(temp []float32, dst *image.Alpha, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := range h {
		for x := range w {
			var a float32
			for k, weight := range kernel {
				ky := y + k - half
				if ky < 0 || ky >= h {
					continue
				}
				a += temp[ky*w+x] * weight
			}
			dst.Pix[y*dst.Stride+x] = clampUint8(a)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{}
	},
}

func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if cap(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	buf := wrapper.data[:size]
	tempBufferPool.Put(&floatBuffer{})
	return buf
}

func putTempBuffer(buf []float32) {
	// Only pool reasonably-sized buffers.
	if cap(buf) <= 4096*4096 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
