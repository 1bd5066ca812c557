package canvaslab

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
	"golang.org/x/sync/singleflight"

	"github.com/gogpu/canvaslab/internal/cache"
)

// DefaultImageCacheSize is the number of decoded images a Loader keeps.
const DefaultImageCacheSize = 64

// Loader decodes image files in the background. Concurrent loads of one
// source share a single decode, and decoded images are kept in an LRU
// cache so that later loads complete without touching the file system.
type Loader struct {
	sched  *Scheduler
	group  singleflight.Group
	images *cache.Cache[string, image.Image]
	decode func(source string) (image.Image, error)
}

// NewLoader creates a loader that posts completions to s and keeps up to
// capacity decoded images. A nil s gets a fresh scheduler.
func NewLoader(s *Scheduler, capacity int) *Loader {
	if s == nil {
		s = NewScheduler()
	}
	if capacity <= 0 {
		capacity = DefaultImageCacheSize
	}
	return &Loader{
		sched:  s,
		images: cache.New[string, image.Image](capacity),
		decode: decodeFile,
	}
}

var defaultLoader = NewLoader(nil, DefaultImageCacheSize)

// DefaultLoader returns the loader used by LoadImage.
func DefaultLoader() *Loader { return defaultLoader }

// LoadImage starts loading source with the default loader.
func LoadImage(source string) *ImageResource { return defaultLoader.Load(source) }

// Scheduler returns the scheduler completions are posted to.
func (l *Loader) Scheduler() *Scheduler { return l.sched }

// Load returns a resource for source. A cached image completes the
// resource at once; otherwise decoding starts in the background and the
// resource completes when the scheduler runs the continuation.
func (l *Loader) Load(source string) *ImageResource {
	res := &ImageResource{source: source}
	if img, ok := l.images.Get(source); ok {
		res.complete(img, nil)
		return res
	}

	l.sched.Go(func() func() {
		v, err, shared := l.group.Do(source, func() (any, error) {
			if img, ok := l.images.Get(source); ok {
				return img, nil
			}
			img, err := l.decode(source)
			if err != nil {
				return nil, err
			}
			l.images.Put(source, img)
			return img, nil
		})
		Logger().Debug("canvaslab: image decoded", "source", source, "shared", shared, "err", err)

		var img image.Image
		if err == nil {
			img = v.(image.Image)
		}
		return func() { res.complete(img, err) }
	})
	return res
}

func decodeFile(source string) (image.Image, error) {
	f, err := os.Open(source) //nolint:gosec // source is chosen by the caller
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	Logger().Debug("canvaslab: image format", "source", source, "format", format)
	return img, nil
}

// ImageResource is an image that may still be loading. Its state only
// changes on the goroutine that runs the loader's scheduler.
type ImageResource struct {
	source  string
	done    bool
	img     image.Image
	err     error
	waiters []func(image.Image)
}

// NewImageResource wraps an image that is already in memory.
func NewImageResource(img image.Image) *ImageResource {
	r := &ImageResource{}
	r.complete(img, nil)
	return r
}

// Source returns the path the resource was loaded from.
func (r *ImageResource) Source() string { return r.source }

// Loaded reports whether the image is available.
func (r *ImageResource) Loaded() bool { return r.done && r.err == nil }

// Image returns the decoded image, or nil while loading or after failure.
func (r *ImageResource) Image() image.Image { return r.img }

// Err returns the *LoadError of a failed load.
func (r *ImageResource) Err() error { return r.err }

// Bounds returns the image bounds, or the empty rectangle.
func (r *ImageResource) Bounds() image.Rectangle {
	if r == nil || r.img == nil {
		return image.Rectangle{}
	}
	return r.img.Bounds()
}

// OnLoad runs fn with the image once it is available. When the image is
// already loaded fn runs immediately; when loading failed fn never runs.
func (r *ImageResource) OnLoad(fn func(image.Image)) {
	if fn == nil {
		return
	}
	switch {
	case !r.done:
		r.waiters = append(r.waiters, fn)
	case r.err == nil:
		fn(r.img)
	}
}

func (r *ImageResource) complete(img image.Image, err error) {
	if r.done {
		return
	}
	r.done = true
	if err == nil && img == nil {
		err = errors.New("no image")
	}
	waiters := r.waiters
	r.waiters = nil
	if err != nil {
		r.err = &LoadError{Source: r.source, Err: err}
		Logger().Warn("canvaslab: image load failed", "source", r.source, "err", err)
		return
	}
	r.img = img
	for _, fn := range waiters {
		fn(img)
	}
}
