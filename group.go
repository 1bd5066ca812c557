package canvaslab

import (
	"errors"
	"fmt"
)

// Group holds one collection per basic shape kind and dispatches pushed
// shapes to the matching one. It draws lines, circles, ellipses,
// rectangles, rounded rectangles and texts, in that order.
type Group struct {
	lines             *Lines
	circles           *Circles
	ellipses          *Ellipses
	rectangles        *Rectangles
	roundedRectangles *RoundedRectangles
	texts             *Texts

	surface  string
	template Template
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{
		lines:             NewLines(),
		circles:           NewCircles(),
		ellipses:          NewEllipses(),
		rectangles:        NewRectangles(),
		roundedRectangles: NewRoundedRectangles(),
		texts:             NewTexts(),
	}
}

func (g *Group) Lines() *Lines                         { return g.lines }
func (g *Group) Circles() *Circles                     { return g.circles }
func (g *Group) Ellipses() *Ellipses                   { return g.ellipses }
func (g *Group) Rectangles() *Rectangles               { return g.rectangles }
func (g *Group) RoundedRectangles() *RoundedRectangles { return g.roundedRectangles }
func (g *Group) Texts() *Texts                         { return g.texts }

// member is the part of a collection the group works through.
type member interface {
	Len() int
	Draw() error
	SetSurface(id string)
	StorageType() Kind
}

// members returns the sub-collections in drawing order.
func (g *Group) members() [6]member {
	return [...]member{g.lines, g.circles, g.ellipses, g.rectangles, g.roundedRectangles, g.texts}
}

// Len returns the number of shapes across all sub-collections.
func (g *Group) Len() int {
	n := 0
	for _, m := range g.members() {
		n += m.Len()
	}
	return n
}

// Push adds shapes, or every shape of a collection, to the matching
// sub-collection. Nil collections and other values are dropped with an
// error log; points are dropped silently.
func (g *Group) Push(values ...any) {
	for i, v := range values {
		if c, ok := v.(interface{ isNil() bool }); ok && c.isNil() {
			logNilArgument("Group", i, v)
			continue
		}
		switch x := v.(type) {
		case *Line:
			g.lines.Add(x)
		case *Circle:
			g.circles.Add(x)
		case *Ellipse:
			g.ellipses.Add(x)
		case *Rectangle:
			g.rectangles.Add(x)
		case *RoundedRectangle:
			g.roundedRectangles.Add(x)
		case *Text:
			g.texts.Add(x)
		case *Lines:
			g.lines.Add(x.items...)
		case *Circles:
			g.circles.Add(x.items...)
		case *Ellipses:
			g.ellipses.Add(x.items...)
		case *Rectangles:
			g.rectangles.Add(x.items...)
		case *RoundedRectangles:
			g.roundedRectangles.Add(x.items...)
		case *Texts:
			g.texts.Add(x.items...)
		case Point, *Point:
		default:
			Logger().Error("canvaslab: argument is not a valid type",
				"collection", "Group", "argument", i+1, "type", fmt.Sprintf("%T", v))
		}
	}
}

// Pop removes the last shape of the sub-collection matching each value.
// A collection value pops as many shapes as it holds; a nil one pops
// nothing. The removed shapes are returned in removal order.
func (g *Group) Pop(values ...any) []Drawable {
	var out []Drawable
	for i, v := range values {
		if c, ok := v.(interface{ isNil() bool }); ok && c.isNil() {
			logNilArgument("Group", i, v)
			continue
		}
		switch x := v.(type) {
		case *Line:
			out = popN(out, g.lines, 1)
		case *Circle:
			out = popN(out, g.circles, 1)
		case *Ellipse:
			out = popN(out, g.ellipses, 1)
		case *Rectangle:
			out = popN(out, g.rectangles, 1)
		case *RoundedRectangle:
			out = popN(out, g.roundedRectangles, 1)
		case *Text:
			out = popN(out, g.texts, 1)
		case *Lines:
			out = popN(out, g.lines, x.Len())
		case *Circles:
			out = popN(out, g.circles, x.Len())
		case *Ellipses:
			out = popN(out, g.ellipses, x.Len())
		case *Rectangles:
			out = popN(out, g.rectangles, x.Len())
		case *RoundedRectangles:
			out = popN(out, g.roundedRectangles, x.Len())
		case *Texts:
			out = popN(out, g.texts, x.Len())
		}
	}
	return out
}

func popN[T Drawable](out []Drawable, c *Collection[T], n int) []Drawable {
	for range n {
		item, ok := c.Pop()
		if !ok {
			break
		}
		out = append(out, item)
	}
	return out
}

// EndPoint returns the point of the last circle, which templates chain
// new shapes from.
func (g *Group) EndPoint() (Point, bool) { return g.circles.EndPoint() }

// Surface returns the identifier of the bound canvas.
func (g *Group) Surface() string { return g.surface }

// SetSurface binds every sub-collection, and the shapes in them, to the
// canvas registered under id.
func (g *Group) SetSurface(id string) {
	g.surface = id
	for _, m := range g.members() {
		m.SetSurface(id)
	}
}

// Template returns the assigned template, or nil.
func (g *Group) Template() Template { return g.template }

// SetTemplate assigns t, runs it and binds the shapes it created to the
// group's canvas. A nil template is ignored.
func (g *Group) SetTemplate(t Template) {
	if t == nil {
		reject("group.template", nil)
		return
	}
	g.template = t
	t.SetMaster(g)
	t.Init()
	if g.surface != "" {
		g.SetSurface(g.surface)
	}
}

// Draw draws the sub-collections in order, warning about empty ones.
func (g *Group) Draw() error {
	var errs []error
	for _, m := range g.members() {
		if m.Len() == 0 {
			Logger().Warn("canvaslab: nothing to draw", "collection", m.StorageType().String()+"s")
			continue
		}
		if err := m.Draw(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DrawOn binds the group to the canvas registered under id and draws.
func (g *Group) DrawOn(id string) error {
	g.SetSurface(id)
	return g.Draw()
}

func (g *Group) isMaster() {}
