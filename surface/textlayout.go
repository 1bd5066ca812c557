// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/canvaslab/text"

// TextLayout is a shaped string positioned according to the text align
// and baseline of a state.
type TextLayout struct {
	Run text.Run

	// X and Y locate the start of the run on the alphabetic baseline.
	X, Y float64

	// ScaleX condenses the run to honor a maxWidth; 1 otherwise.
	ScaleX float64

	Metrics TextMetrics
}

// LayoutText shapes s with the state's font and resolves its origin for
// the anchor point (x, y).
func LayoutText(st *State, s string, x, y, maxWidth float64) (TextLayout, error) {
	face, err := st.Font.Face()
	if err != nil {
		return TextLayout{}, err
	}

	run := face.Shape(s)
	m := face.Metrics()
	l := TextLayout{
		Run:    run,
		ScaleX: 1,
		Metrics: TextMetrics{
			Width:   run.Width,
			Ascent:  m.Ascent,
			Descent: m.Descent,
		},
	}

	width := run.Width
	if maxWidth > 0 && width > maxWidth {
		l.ScaleX = maxWidth / width
		width = maxWidth
	}

	rtl := run.Direction == text.RightToLeft
	switch st.TextAlign {
	case AlignCenter:
		x -= width / 2
	case AlignRight:
		x -= width
	case AlignStart:
		if rtl {
			x -= width
		}
	case AlignEnd:
		if !rtl {
			x -= width
		}
	}

	switch st.TextBaseline {
	case BaselineTop:
		y += m.Ascent
	case BaselineHanging:
		y += m.Ascent * 0.8
	case BaselineMiddle:
		y += (m.Ascent - m.Descent) / 2
	case BaselineIdeographic, BaselineBottom:
		y -= m.Descent
	}

	l.X, l.Y = x, y
	return l, nil
}
