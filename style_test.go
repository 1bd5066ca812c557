package canvaslab

import (
	"image"
	"slices"
	"testing"

	"github.com/gogpu/canvaslab/surface"
	"github.com/gogpu/canvaslab/text"
)

func TestStrokeDefaults(t *testing.T) {
	s := DefaultStroke()
	if s.Color() != RGB(255, 255, 255) || s.Width() != 1 || s.Type() != StrokeSolid {
		t.Errorf("DefaultStroke() = %+v, want white solid 1px", s)
	}
	if got := s.Segments(); !slices.Equal(got, []float64{5, 5}) {
		t.Errorf("Segments() = %v, want [5 5]", got)
	}
	if s.Dash() != nil {
		t.Errorf("Dash() of solid stroke = %v, want nil", s.Dash())
	}
	s.SetType(StrokeDashed)
	if got := s.Dash(); !slices.Equal(got, []float64{5, 5}) {
		t.Errorf("Dash() of dashed stroke = %v, want [5 5]", got)
	}
}

func TestStrokeSetters(t *testing.T) {
	s := NewStroke(RGB(1, 2, 3), 4)
	s.SetWidth(-1)
	if s.Width() != 4 {
		t.Errorf("SetWidth(-1) gave %v, want 4 kept", s.Width())
	}
	s.SetType(StrokeType(9))
	if s.Type() != StrokeSolid {
		t.Errorf("SetType(9) gave %v, want solid kept", s.Type())
	}

	segs := []float64{1, 2}
	s.SetSegments(segs)
	segs[0] = 99
	if got := s.Segments(); !slices.Equal(got, []float64{1, 2}) {
		t.Errorf("Segments() = %v, want [1 2] independent of caller slice", got)
	}
}

func TestShadow(t *testing.T) {
	s := NewShadow(RGBA(255, 0, 0, 1), -2, Pt(3, 4))
	if s.Blur() != 3 {
		t.Errorf("NewShadow() blur = %v, want default 3 after invalid value", s.Blur())
	}
	want := surface.Shadow{Color: RGBA(255, 0, 0, 1).NRGBA(), Blur: 3, OffsetX: 3, OffsetY: 4}
	if got := s.surface(); got != want {
		t.Errorf("surface() = %+v, want %+v", got, want)
	}
}

func TestFont(t *testing.T) {
	f := NewFont("serif", 12)
	f.SetWeight(text.StyleBold)
	if got := f.CSS(); got != "bold 12px serif" {
		t.Errorf("CSS() = %q, want %q", got, "bold 12px serif")
	}
	f.SetSize(0)
	f.SetFamily("")
	if f.Size() != 12 || f.Family() != "serif" {
		t.Errorf("font = %v, want 12px serif kept", f.CSS())
	}
}

func TestStopOffset(t *testing.T) {
	tests := []struct {
		offset  float64
		wantSet bool
	}{
		{0, true},
		{0.5, true},
		{1, true},
		{1.5, false},
		{-0.1, false},
	}
	for _, tt := range tests {
		s := NewStop(RGB(0, 0, 0), tt.offset)
		got, ok := s.Offset()
		if ok != tt.wantSet || (ok && got != tt.offset) {
			t.Errorf("NewStop(%v).Offset() = %v, %v, want set=%v", tt.offset, got, ok, tt.wantSet)
		}
	}
}

func TestGradientAddStopsSkipsUnset(t *testing.T) {
	g := NewLinear(Pt(0, 0), Pt(10, 0),
		NewStop(RGB(255, 0, 0), 0),
		NewStop(RGB(0, 255, 0), 2),
		NewStop(RGB(0, 0, 255), 1),
	)
	if got := len(g.Stops()); got != 2 {
		t.Fatalf("len(Stops()) = %d, want 2", got)
	}

	p, ok := g.paint().(surface.LinearGradientPaint)
	if !ok {
		t.Fatalf("paint() = %T, want LinearGradientPaint", g.paint())
	}
	if p.X1 != 10 || len(p.Stops) != 2 || p.Stops[1].Offset != 1 {
		t.Errorf("paint() = %+v, want line to (10, 0) with stops at 0 and 1", p)
	}
}

func TestGradientStopColorCycle(t *testing.T) {
	g := NewRadial(Pt(0, 0), 1, Pt(0, 0), 10, NewStop(RGB(0, 0, 0), 0))
	g.StopColorCycle(RGB(0, 0, 0), RGB(200, 0, 0), 1, 0, 2)
	if got := g.Stops()[0].Color().Red(); got != 100 {
		t.Errorf("stop red = %d, want 100", got)
	}
	g.StopColorCycle(RGB(0, 0, 0), RGB(200, 0, 0), 1, 5, 2)
	if got := g.Stops()[0].Color().Red(); got != 100 {
		t.Errorf("out-of-range stop changed red to %d", got)
	}
}

func TestRadialRejectsNonPositiveRadius(t *testing.T) {
	g := NewRadial(Pt(0, 0), 2, Pt(0, 0), 8)
	g.SetStartRadius(0)
	g.SetEndRadius(-1)
	if g.StartRadius() != 2 || g.EndRadius() != 8 {
		t.Errorf("radii = %v, %v, want 2, 8 kept", g.StartRadius(), g.EndRadius())
	}
}

func TestConicPaint(t *testing.T) {
	g := NewConic(1, Pt(3, 4), NewStop(RGB(0, 0, 0), 0))
	p, ok := g.paint().(surface.ConicGradientPaint)
	if !ok || p.Angle != 1 || p.X != 3 || p.Y != 4 {
		t.Errorf("paint() = %+v, want angle 1 around (3, 4)", g.paint())
	}
	g.SetAngle(7)
	if g.Angle() != 1 {
		t.Errorf("SetAngle(7) gave %v, want 1 kept", g.Angle())
	}
}

func TestFillGradientSelectsType(t *testing.T) {
	tests := []struct {
		name string
		g    Gradient
		want FillType
	}{
		{"linear", NewLinear(Pt(0, 0), Pt(1, 1)), FillLinear},
		{"radial", NewRadial(Pt(0, 0), 1, Pt(0, 0), 2), FillRadial},
		{"conic", NewConic(0, Pt(0, 0)), FillConic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultFill()
			f.SetGradient(tt.g)
			if f.Type() != tt.want {
				t.Errorf("Type() = %v, want %v", f.Type(), tt.want)
			}
			if f.paint() == nil {
				t.Error("paint() = nil, want gradient paint")
			}
		})
	}
}

func TestFillRejectsNilGradient(t *testing.T) {
	tests := []struct {
		name string
		g    Gradient
	}{
		{"untyped", nil},
		{"linear", (*Linear)(nil)},
		{"radial", (*Radial)(nil)},
		{"conic", (*Conic)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFill(RGB(1, 2, 3))
			f.SetGradient(tt.g)
			if f.Type() != FillSolid || f.Gradient() != nil {
				t.Errorf("SetGradient(%T) = type %v gradient %v, want solid and none", tt.g, f.Type(), f.Gradient())
			}
		})
	}

	rec, id := bindRecorder(t)
	f := NewFill(RGB(1, 2, 3))
	f.SetGradient((*Linear)(nil))
	if err := NewCircle(Pt(10, 10), 5, WithFill(f), WithSurface(id)).Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if rec.Len() == 0 {
		t.Error("Draw() recorded nothing")
	}
}

func TestFillClone(t *testing.T) {
	f := DefaultFill()
	f.SetGradient(NewLinear(Pt(0, 0), Pt(10, 0), NewStop(RGB(0, 0, 0), 0), NewStop(RGB(0, 0, 255), 1)))

	c := f.Clone()
	c.Gradient().StopColorCycle(RGB(200, 0, 0), RGB(255, 0, 0), 0, 0, 1)

	if got := f.Gradient().Stops()[0].Color(); got != RGB(0, 0, 0) {
		t.Errorf("original stop color = %v, want rgb(0 0 0)", got)
	}
	if got := c.Gradient().Stops()[0].Color(); got == RGB(0, 0, 0) {
		t.Errorf("cloned stop color = %v, want cycled", got)
	}
	if c.Type() != FillLinear {
		t.Errorf("Clone().Type() = %v, want %v", c.Type(), FillLinear)
	}
}

func TestFillPaint(t *testing.T) {
	f := NewFill(RGB(1, 2, 3))
	if got, ok := f.paint().(surface.SolidPaint); !ok || got.Color != RGB(1, 2, 3).NRGBA() {
		t.Errorf("paint() = %v, want solid rgb(1 2 3)", f.paint())
	}

	f.SetType(FillLinear)
	if f.paint() != nil {
		t.Error("paint() of gradient type without gradient should be nil")
	}

	f.SetGradient(nil)
	if f.Type() != FillLinear {
		t.Errorf("SetGradient(nil) changed type to %v", f.Type())
	}

	f.SetPattern(NewImageResource(image.NewNRGBA(image.Rect(0, 0, 2, 2))))
	if f.Type() != FillPattern || f.paint() != nil {
		t.Errorf("pattern fill: Type() = %v, paint() = %v, want pattern and nil", f.Type(), f.paint())
	}
}
