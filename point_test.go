package canvaslab

import (
	"math"
	"testing"
)

func TestPtRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want Point
	}{
		{"finite", 3, 4, Point{x: 3, y: 4}},
		{"nan x", math.NaN(), 4, Point{y: 4}},
		{"inf y", 3, math.Inf(1), Point{x: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pt(tt.x, tt.y); got != tt.want {
				t.Errorf("Pt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPointSetKeepsPreviousOnRejection(t *testing.T) {
	p := Pt(1, 2)
	p.SetX(math.NaN())
	p.Set(5, math.Inf(-1))
	if p != Pt(1, 2) {
		t.Errorf("point = %v, want (1, 2)", p)
	}
	p.Set(5, 6)
	if p != Pt(5, 6) {
		t.Errorf("Set(5, 6) = %v, want (5, 6)", p)
	}
}

func TestPointArithmetic(t *testing.T) {
	a, b := Pt(1, 2), Pt(4, 6)
	if got := a.Add(b); got != Pt(5, 8) {
		t.Errorf("Add() = %v, want (5, 8)", got)
	}
	if got := b.Sub(a); got != Pt(3, 4) {
		t.Errorf("Sub() = %v, want (3, 4)", got)
	}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if got := a.Lerp(b, 0.5); got != Pt(2.5, 4) {
		t.Errorf("Lerp(0.5) = %v, want (2.5, 4)", got)
	}
	if got := a.String(); got != "(1, 2)" {
		t.Errorf("String() = %q, want %q", got, "(1, 2)")
	}
}

func TestPointCloneIsIndependent(t *testing.T) {
	p := Pt(1, 1)
	c := p.Clone()
	c.SetX(9)
	if p.X() != 1 {
		t.Errorf("original X() = %v after changing clone, want 1", p.X())
	}
}

func TestAspect(t *testing.T) {
	a := NewAspect(40, 20)
	if got := a.Center(); got != Pt(20, 10) {
		t.Errorf("Center() = %v, want (20, 10)", got)
	}
	a.SetWidth(-5)
	a.SetHeight(math.NaN())
	if a.Width() != 40 || a.Height() != 20 {
		t.Errorf("aspect = %v x %v after invalid sets, want 40 x 20", a.Width(), a.Height())
	}
	if !(Aspect{}).IsZero() {
		t.Error("zero Aspect IsZero() = false, want true")
	}
}

func TestAngle(t *testing.T) {
	a := FullAngle()
	if a.Start() != 0 || a.End() != 360 || !a.Clockwise() {
		t.Fatalf("FullAngle() = %+v, want 0..360 clockwise", a)
	}
	a.SetEnd(400)
	if a.End() != 360 {
		t.Errorf("SetEnd(400) gave %v, want 360 kept", a.End())
	}
	a.SetStart(-90)
	if !near(a.StartRadians(), -math.Pi/2) {
		t.Errorf("StartRadians() = %v, want %v", a.StartRadians(), -math.Pi/2)
	}
}
