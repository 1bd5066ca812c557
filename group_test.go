package canvaslab

import (
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/canvaslab/surface"
)

func TestGroupPushDispatch(t *testing.T) {
	buf := captureLog(t)
	g := NewGroup()
	g.Push(
		NewLine(Pt(0, 0), Pt(1, 1)),
		NewCircle(Pt(0, 0), 1),
		NewEllipse(Pt(0, 0), Pt(1, 2)),
		NewRectangle(Pt(0, 0), Aspect{}),
		NewRoundedRectangle(Pt(0, 0), Aspect{}),
		NewText(Pt(0, 0), "t"),
		NewCircles(NewCircle(Pt(1, 1), 1), NewCircle(Pt(2, 2), 1)),
		Pt(3, 3),
		NewArrow(Pt(0, 0)),
	)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"lines", g.Lines().Len(), 1},
		{"circles", g.Circles().Len(), 3},
		{"ellipses", g.Ellipses().Len(), 1},
		{"rectangles", g.Rectangles().Len(), 1},
		{"rounded", g.RoundedRectangles().Len(), 1},
		{"texts", g.Texts().Len(), 1},
		{"total", g.Len(), 8},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s Len() = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if !strings.Contains(buf.String(), "not a valid type") {
		t.Errorf("expected the arrow to be rejected, got: %s", buf.String())
	}
	if p, _ := g.EndPoint(); p != Pt(2, 2) {
		t.Errorf("EndPoint() = %v, want last circle (2, 2)", p)
	}
}

func TestGroupPop(t *testing.T) {
	g := NewGroup()
	c1, c2, c3 := NewCircle(Pt(1, 0), 1), NewCircle(Pt(2, 0), 1), NewCircle(Pt(3, 0), 1)
	txt := NewText(Pt(0, 0), "x")
	g.Push(c1, c2, c3, txt)

	got := g.Pop(NewCircles(NewCircle(Pt(0, 0), 1), NewCircle(Pt(0, 0), 1)), &Text{})
	want := []Drawable{c3, c2, txt}
	if !slices.Equal(got, want) {
		t.Errorf("Pop() = %v, want %v", got, want)
	}
	if g.Circles().Len() != 1 || g.Texts().Len() != 0 {
		t.Errorf("after Pop: circles %d texts %d, want 1 and 0", g.Circles().Len(), g.Texts().Len())
	}

	if got := g.Pop(&Rectangle{}); len(got) != 0 {
		t.Errorf("Pop() from empty rectangles = %v, want none", got)
	}
}

func TestGroupNilValues(t *testing.T) {
	buf := captureLog(t)
	g := NewGroup()
	g.Push(NewCircle(Pt(1, 1), 1), NewText(Pt(0, 0), "t"))

	g.Push((*Circles)(nil), (*Texts)(nil), (*Circle)(nil), (*Lines)(nil))
	if got := g.Len(); got != 2 {
		t.Errorf("Len() after nil pushes = %d, want 2", got)
	}
	if got := strings.Count(buf.String(), "argument is nil"); got != 4 {
		t.Errorf("nil argument logs = %d, want 4\n%s", got, buf.String())
	}

	if got := g.Pop((*Circles)(nil), (*Texts)(nil)); len(got) != 0 {
		t.Errorf("Pop(nil collections) = %v, want none", got)
	}
	if got := g.Len(); got != 2 {
		t.Errorf("Len() after nil pops = %d, want 2", got)
	}
}

func TestGroupDrawOrder(t *testing.T) {
	rec, id := bindRecorder(t)
	buf := captureLog(t)

	g := NewGroup()
	g.Push(
		NewText(Pt(0, 0), "t"),
		NewRoundedRectangle(Pt(0, 0), Aspect{}),
		NewCircle(Pt(0, 0), 1),
		NewLine(Pt(0, 0), Pt(1, 1)),
	)
	if err := g.DrawOn(id); err != nil {
		t.Fatalf("DrawOn() = %v", err)
	}

	var shapes []surface.Op
	for _, op := range rec.Ops() {
		switch op {
		case surface.OpLineTo, surface.OpArc, surface.OpRoundRect, surface.OpFillText:
			shapes = append(shapes, op)
		}
	}
	want := []surface.Op{surface.OpLineTo, surface.OpArc, surface.OpRoundRect, surface.OpFillText}
	if !slices.Equal(shapes, want) {
		t.Errorf("draw order = %v, want %v", shapes, want)
	}

	// Ellipses and rectangles are empty.
	if got := strings.Count(buf.String(), "nothing to draw"); got != 2 {
		t.Errorf("logged %d empty warnings, want 2:\n%s", got, buf.String())
	}
}

func TestGroupSetSurfacePropagates(t *testing.T) {
	g := NewGroup()
	e := NewEllipse(Pt(0, 0), Pt(1, 1))
	g.Push(e)
	g.SetSurface("g")
	if e.Surface() != "g" || g.Ellipses().Surface() != "g" {
		t.Errorf("surfaces = %q, %q, want %q", e.Surface(), g.Ellipses().Surface(), "g")
	}
}
