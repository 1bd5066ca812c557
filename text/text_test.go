package text

import (
	"math"
	"testing"
)

func TestBaseDirection(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Direction
	}{
		{"empty", "", LeftToRight},
		{"latin", "hello", LeftToRight},
		{"digits only", "123", LeftToRight},
		{"hebrew", "שלום", RightToLeft},
		{"arabic after digits", "12 مرحبا", RightToLeft},
		{"latin first", "abc שלום", LeftToRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseDirection(tt.in); got != tt.want {
				t.Errorf("BaseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseStyle(t *testing.T) {
	for _, s := range []Style{StyleNormal, StyleBold, StyleItalic} {
		got, ok := ParseStyle(s.String())
		if !ok || got != s {
			t.Errorf("ParseStyle(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseStyle("oblique"); ok {
		t.Error("ParseStyle(oblique) = ok, want rejection")
	}
}

func TestParseSourceEmpty(t *testing.T) {
	if _, err := ParseSource("empty", nil); err != ErrEmptyFontData {
		t.Errorf("ParseSource(nil) error = %v, want %v", err, ErrEmptyFontData)
	}
	if _, err := ParseSource("junk", []byte("not a font")); err == nil {
		t.Error("ParseSource(junk) error = nil")
	}
}

func TestLookupFallsBackToBuiltin(t *testing.T) {
	src := Lookup("no-such-family", StyleBold)
	if src != Builtin(StyleBold) {
		t.Errorf("Lookup(unknown) = %v, want built-in bold", src.Name())
	}

	custom := Builtin(StyleItalic)
	Register("Display", StyleNormal, custom)
	t.Cleanup(func() { Unregister("Display", StyleNormal) })

	if got := Lookup("display", StyleNormal); got != custom {
		t.Errorf("Lookup(display) = %v, want registered source", got.Name())
	}
}

func TestNewFaceCached(t *testing.T) {
	src := Builtin(StyleNormal)
	a, err := NewFace(src, 24)
	if err != nil {
		t.Fatalf("NewFace() error = %v", err)
	}
	b, _ := NewFace(src, 24)
	if a != b {
		t.Error("NewFace() returned distinct faces for the same key")
	}

	if _, err := NewFace(src, 0); err == nil {
		t.Error("NewFace(size 0) error = nil")
	}

	m := a.Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 || m.LineHeight < m.Ascent {
		t.Errorf("Metrics() = %+v, want positive ascent/descent", m)
	}
}

func TestShapeWidthScalesWithSize(t *testing.T) {
	small, _ := NewFace(Builtin(StyleNormal), 12)
	large, _ := NewFace(Builtin(StyleNormal), 24)

	ws := small.Measure("Hello")
	wl := large.Measure("Hello")
	if ws <= 0 {
		t.Fatalf("Measure() = %v, want > 0", ws)
	}
	if math.Abs(wl-2*ws) > 1 {
		t.Errorf("Measure at 24px = %v, want about twice %v", wl, ws)
	}

	run := large.Shape("Hello")
	if len(run.Glyphs) != 5 {
		t.Errorf("len(Glyphs) = %d, want 5", len(run.Glyphs))
	}
	if large.Measure("") != 0 {
		t.Error("Measure(\"\") != 0")
	}
}

type countingPath struct {
	moves, closes, segments int
}

func (p *countingPath) MoveTo(x, y float64) { p.moves++ }
func (p *countingPath) LineTo(x, y float64) { p.segments++ }
func (p *countingPath) QuadTo(cx, cy, x, y float64) { p.segments++ }
func (p *countingPath) CubicTo(a, b, c, d, x, y float64) { p.segments++ }
func (p *countingPath) ClosePath() { p.closes++ }

func TestAppendOutline(t *testing.T) {
	face, _ := NewFace(Builtin(StyleNormal), 32)
	var p countingPath

	if err := face.Shape("O").AppendOutline(&p, 10, 40, 1); err != nil {
		t.Fatalf("AppendOutline() error = %v", err)
	}
	// "O" has an outer and an inner contour.
	if p.moves != 2 || p.closes != 2 {
		t.Errorf("moves, closes = %d, %d; want 2, 2", p.moves, p.closes)
	}
	if p.segments == 0 {
		t.Error("no outline segments emitted")
	}
}
