// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "image/color"

// State is the drawing state saved and restored by Save and Restore.
type State struct {
	Transform    Matrix
	FillPaint    Paint
	StrokePaint  Paint
	LineWidth    float64
	LineDash     []float64
	LineCap      LineCap
	Shadow       Shadow
	Font         Font
	TextAlign    TextAlign
	TextBaseline TextBaseline
}

// DefaultState returns the initial canvas-2D state: black paints, 1px
// butt-capped solid lines and a 10px sans-serif font.
func DefaultState() State {
	black := SolidPaint{Color: color.NRGBA{A: 255}}
	return State{
		Transform:    Identity(),
		FillPaint:    black,
		StrokePaint:  black,
		LineWidth:    1,
		LineCap:      LineCapButt,
		Font:         DefaultFont(),
		TextAlign:    AlignStart,
		TextBaseline: BaselineAlphabetic,
	}
}

// StateStack implements the Save/Restore half of a Canvas. Backends
// embed it and read the current state through Current.
type StateStack struct {
	cur   State
	saved []State
	init  bool
}

// Current returns the live state. Backends mutate it in place.
func (s *StateStack) Current() *State {
	if !s.init {
		s.cur = DefaultState()
		s.init = true
	}
	return &s.cur
}

// Save pushes a copy of the current state.
func (s *StateStack) Save() {
	st := *s.Current()
	st.LineDash = append([]float64(nil), st.LineDash...)
	s.saved = append(s.saved, st)
}

// Restore pops the most recently saved state. It is a no-op when nothing
// was saved.
func (s *StateStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.Current()
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Depth returns the number of saved states.
func (s *StateStack) Depth() int { return len(s.saved) }

// Translate applies a translation to the current transform.
func (s *StateStack) Translate(x, y float64) {
	st := s.Current()
	st.Transform = st.Transform.Translated(x, y)
}

// Scale applies a scale to the current transform.
func (s *StateStack) Scale(x, y float64) {
	st := s.Current()
	st.Transform = st.Transform.Scaled(x, y)
}

func (s *StateStack) SetFillPaint(p Paint) {
	if p != nil {
		s.Current().FillPaint = p
	}
}

func (s *StateStack) SetStrokePaint(p Paint) {
	if p != nil {
		s.Current().StrokePaint = p
	}
}

// SetLineWidth ignores non-positive widths, as canvas-2D does.
func (s *StateStack) SetLineWidth(w float64) {
	if w > 0 {
		s.Current().LineWidth = w
	}
}

// SetLineDash copies segments. Patterns with negative entries are
// ignored; odd-length patterns are repeated to even length.
func (s *StateStack) SetLineDash(segments []float64) {
	for _, v := range segments {
		if v < 0 {
			return
		}
	}
	dash := append([]float64(nil), segments...)
	if len(dash)%2 == 1 {
		dash = append(dash, dash...)
	}
	s.Current().LineDash = dash
}

func (s *StateStack) SetLineCap(c LineCap)           { s.Current().LineCap = c }
func (s *StateStack) SetShadow(sh Shadow)            { s.Current().Shadow = sh }
func (s *StateStack) SetFont(f Font)                 { s.Current().Font = f }
func (s *StateStack) SetTextAlign(a TextAlign)       { s.Current().TextAlign = a }
func (s *StateStack) SetTextBaseline(b TextBaseline) { s.Current().TextBaseline = b }
