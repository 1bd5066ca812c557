package canvaslab

import (
	"image"
	"math"

	"github.com/gogpu/canvaslab/surface"
)

// Image draws a loaded picture with its top-left corner at its point.
type Image struct {
	Shape
	source *ImageResource
	aspect Aspect
	crop   *crop
}

// NewImage returns an image of src drawn at p with size a. A zero aspect
// draws the picture (or the cropped region) at its natural size.
func NewImage(src *ImageResource, p Point, a Aspect, opts ...Option) *Image {
	cfg := newConfig(opts)
	return &Image{
		Shape:  newShape(p, cfg, DefaultStroke()),
		source: src,
		aspect: a,
		crop:   cfg.crop,
	}
}

func (*Image) Kind() Kind { return KindImage }

func (i *Image) Source() *ImageResource     { return i.source }
func (i *Image) SetSource(r *ImageResource) { i.source = r }
func (i *Image) Aspect() *Aspect            { return &i.aspect }

// Width returns the natural width of the picture, or 0 while loading.
func (i *Image) Width() int { return i.source.Bounds().Dx() }

// Height returns the natural height of the picture, or 0 while loading.
func (i *Image) Height() int { return i.source.Bounds().Dy() }

// Crop returns the source region and whether one is set.
func (i *Image) Crop() (Point, Aspect, bool) {
	if i.crop == nil {
		return Point{}, Aspect{}, false
	}
	return i.crop.point, i.crop.aspect, true
}

// SetCrop draws only the source region at p with size a.
func (i *Image) SetCrop(p Point, a Aspect) { i.crop = &crop{point: p, aspect: a} }

// Draw draws the picture once it has loaded. When it is still loading
// Draw returns at once and the picture is drawn, on the canvas bound at
// that time, when the loader's scheduler runs.
func (i *Image) Draw() error {
	if i.source == nil {
		Logger().Warn("canvaslab: image has no source", "shape", KindImage.String())
		return nil
	}
	i.source.OnLoad(i.paint)
	return nil
}

// DrawOn binds the canvas registered under id and draws.
func (i *Image) DrawOn(id string) error {
	i.SetSurface(id)
	return i.Draw()
}

func (i *Image) paint(img image.Image) {
	c, ok := i.begin(KindImage)
	if !ok {
		return
	}
	var src image.Rectangle
	if i.crop != nil {
		origin := img.Bounds().Min
		x, y := int(math.Round(i.crop.point.x)), int(math.Round(i.crop.point.y))
		w, h := int(math.Round(i.crop.aspect.width)), int(math.Round(i.crop.aspect.height))
		src = image.Rect(x, y, x+w, y+h).Add(origin)
	}
	w, h := i.aspect.width, i.aspect.height
	if i.aspect.IsZero() {
		size := img.Bounds().Size()
		if i.crop != nil {
			size = src.Size()
		}
		w, h = float64(size.X), float64(size.Y)
	}
	c.DrawImage(img, src, surface.Rect{X: i.point.x, Y: i.point.y, W: w, H: h})
	i.end(c)
}
