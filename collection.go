package canvaslab

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/canvaslab/surface"
)

// Collection is an ordered list of shapes of one kind.
//
// Collections are not safe for concurrent use.
type Collection[T Drawable] struct {
	items    []T
	surface  string
	template Template
}

// Concrete collections.
type (
	Lines             = Collection[*Line]
	Circles           = Collection[*Circle]
	Ellipses          = Collection[*Ellipse]
	Rectangles        = Collection[*Rectangle]
	RoundedRectangles = Collection[*RoundedRectangle]
	Texts             = Collection[*Text]
	Polygons          = Collection[*Polygon]
	Images            = Collection[*Image]
	Arrows            = Collection[*Arrow]
)

// NewCollection returns a collection holding items.
func NewCollection[T Drawable](items ...T) *Collection[T] {
	c := &Collection[T]{}
	c.Add(items...)
	return c
}

func NewLines(items ...*Line) *Lines                                     { return NewCollection(items...) }
func NewCircles(items ...*Circle) *Circles                               { return NewCollection(items...) }
func NewEllipses(items ...*Ellipse) *Ellipses                            { return NewCollection(items...) }
func NewRectangles(items ...*Rectangle) *Rectangles                      { return NewCollection(items...) }
func NewRoundedRectangles(items ...*RoundedRectangle) *RoundedRectangles { return NewCollection(items...) }
func NewTexts(items ...*Text) *Texts                                     { return NewCollection(items...) }

// StorageType returns the kind of shape the collection holds.
func (c *Collection[T]) StorageType() Kind {
	var zero T
	return zero.Kind()
}

func (c *Collection[T]) name() string { return c.StorageType().String() + "s" }

// Add appends items. Nil shapes are dropped with an error log.
func (c *Collection[T]) Add(items ...T) {
	for i, x := range items {
		if isNilShape(x) {
			logNilArgument(c.name(), i, x)
			continue
		}
		c.items = append(c.items, x)
	}
}

// Push appends every value of the collection's shape type. Values of any
// other type are dropped with an error log; points are dropped silently.
func (c *Collection[T]) Push(values ...any) {
	for i, v := range values {
		switch x := v.(type) {
		case T:
			if isNilShape(x) {
				logNilArgument(c.name(), i, x)
				continue
			}
			c.items = append(c.items, x)
		case Point, *Point:
		default:
			Logger().Error("canvaslab: argument is not a valid type",
				"collection", c.name(), "argument", i+1, "type", fmt.Sprintf("%T", v))
		}
	}
}

// Pop removes and returns the last shape.
func (c *Collection[T]) Pop() (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	last := c.items[len(c.items)-1]
	c.items[len(c.items)-1] = zero
	c.items = c.items[:len(c.items)-1]
	return last, true
}

func (c *Collection[T]) Len() int { return len(c.items) }

func (c *Collection[T]) isNil() bool { return c == nil }

// isNilShape reports whether x is a nil shape pointer.
func isNilShape[T Drawable](x T) bool {
	var zero T
	return any(x) == any(zero)
}

func logNilArgument(collection string, i int, v any) {
	Logger().Error("canvaslab: argument is nil",
		"collection", collection, "argument", i+1, "type", fmt.Sprintf("%T", v))
}

// At returns the shape at index i.
func (c *Collection[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// Items returns a copy of the shape list. The shapes themselves are
// shared.
func (c *Collection[T]) Items() []T {
	return slices.Clone(c.items)
}

// EndPoint returns the point of the last shape.
func (c *Collection[T]) EndPoint() (Point, bool) {
	if len(c.items) == 0 {
		return Point{}, false
	}
	return *c.items[len(c.items)-1].Point(), true
}

// Reverse reverses the drawing order.
func (c *Collection[T]) Reverse() {
	slices.Reverse(c.items)
}

// Points returns copies of the points of the shapes at indexes, or of
// every shape when indexes is nil. Out-of-range indexes are skipped.
// With zeroBased the points are shifted so that the smallest x and the
// smallest y become 0.
func (c *Collection[T]) Points(indexes []int, zeroBased bool) []Point {
	var pts []Point
	if indexes == nil {
		pts = make([]Point, 0, len(c.items))
		for _, item := range c.items {
			pts = append(pts, *item.Point())
		}
	} else {
		for _, i := range indexes {
			if i < 0 || i >= len(c.items) {
				Logger().Warn("canvaslab: point index out of range", "collection", c.name(), "index", i, "len", len(c.items))
				continue
			}
			pts = append(pts, *c.items[i].Point())
		}
	}
	if zeroBased && len(pts) > 0 {
		origin := pts[0]
		for _, p := range pts[1:] {
			origin.x = min(origin.x, p.x)
			origin.y = min(origin.y, p.y)
		}
		origin.z = 0
		for i := range pts {
			pts[i] = pts[i].Sub(origin)
		}
	}
	return pts
}

// Surface returns the identifier of the bound canvas.
func (c *Collection[T]) Surface() string { return c.surface }

// SetSurface binds the collection and every shape in it to the canvas
// registered under id.
func (c *Collection[T]) SetSurface(id string) {
	c.surface = id
	for _, item := range c.items {
		item.SetSurface(id)
	}
}

// Template returns the assigned template, or nil.
func (c *Collection[T]) Template() Template { return c.template }

// SetTemplate assigns t, runs it and binds the shapes it created to the
// collection's canvas. A nil template is ignored.
func (c *Collection[T]) SetTemplate(t Template) {
	if t == nil {
		reject("collection.template", nil)
		return
	}
	c.template = t
	t.SetMaster(c)
	t.Init()
	if c.surface != "" {
		c.SetSurface(c.surface)
	}
}

// Draw draws every shape in order. Nothing is drawn, and a warning is
// logged, when no canvas resolves or the collection is empty.
func (c *Collection[T]) Draw() error {
	if _, _, ok := surface.Resolve(c.surface); !ok {
		Logger().Warn("canvaslab: canvas is not set", "collection", c.name(), "surface", c.surface)
		return nil
	}
	if len(c.items) == 0 {
		Logger().Warn("canvaslab: nothing to draw", "collection", c.name())
		return nil
	}
	var errs []error
	for _, item := range c.items {
		if err := item.Draw(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DrawOn binds the collection to the canvas registered under id and
// draws.
func (c *Collection[T]) DrawOn(id string) error {
	c.SetSurface(id)
	return c.Draw()
}

func (c *Collection[T]) isMaster() {}
