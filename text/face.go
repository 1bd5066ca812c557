package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvaslab/internal/cache"
)

// Metrics holds vertical font metrics in pixels.
// Descent is positive below the baseline.
type Metrics struct {
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// Face is a Source at a specific pixel size. It is safe for concurrent use.
type Face struct {
	src     *Source
	size    float64
	metrics Metrics
}

type faceKey struct {
	src  *Source
	size float64
}

var faces = cache.New[faceKey, *Face](64)

// NewFace returns the face for src at size pixels per em.
// Faces are cached, so repeated calls with the same arguments are cheap.
func NewFace(src *Source, size float64) (*Face, error) {
	if src == nil {
		src = Builtin(StyleNormal)
	}
	if size <= 0 {
		return nil, fmt.Errorf("text: invalid face size %v", size)
	}

	return faces.GetOrCreate(faceKey{src, size}, func() (*Face, error) {
		var buf sfnt.Buffer
		m, err := src.sfnt.Metrics(&buf, toFixed(size), font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("text: metrics for %s: %w", src.name, err)
		}
		return &Face{
			src:  src,
			size: size,
			metrics: Metrics{
				Ascent:     fromFixed(m.Ascent),
				Descent:    fromFixed(m.Descent),
				LineHeight: fromFixed(m.Height),
			},
		}, nil
	})
}

// Source returns the face's font source.
func (f *Face) Source() *Source { return f.src }

// Size returns the face size in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() Metrics { return f.metrics }

// Measure returns the advance width of s.
func (f *Face) Measure(s string) float64 {
	return f.Shape(s).Width
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
