// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"html"

	"github.com/gogpu/canvaslab/surface"
	"github.com/gogpu/canvaslab/text"
)

var anchors = [...]string{
	surface.AlignStart:  "start",
	surface.AlignEnd:    "end",
	surface.AlignLeft:   "start",
	surface.AlignRight:  "end",
	surface.AlignCenter: "middle",
}

var baselines = [...]string{
	surface.BaselineAlphabetic:  "alphabetic",
	surface.BaselineTop:         "text-before-edge",
	surface.BaselineHanging:     "hanging",
	surface.BaselineMiddle:      "middle",
	surface.BaselineIdeographic: "ideographic",
	surface.BaselineBottom:      "text-after-edge",
}

// FillText emits s as a text element painted with the fill paint.
func (c *Canvas) FillText(s string, x, y, maxWidth float64) {
	c.text(s, x, y, maxWidth, c.paintAttrs("fill", c.Current().FillPaint))
}

// StrokeText emits s as an outlined text element.
func (c *Canvas) StrokeText(s string, x, y, maxWidth float64) {
	c.text(s, x, y, maxWidth, append([]string{`fill="none"`}, c.strokeAttrs()...))
}

// MeasureText measures s with the current font.
func (c *Canvas) MeasureText(s string) surface.TextMetrics {
	l, err := surface.LayoutText(c.Current(), s, 0, 0, 0)
	if err != nil {
		surface.Logger().Warn("svg: measure text", "err", err)
		return surface.TextMetrics{}
	}
	return l.Metrics
}

func (c *Canvas) text(s string, x, y, maxWidth float64, paint []string) {
	if s == "" {
		return
	}
	st := c.Current()
	f := st.Font

	attrs := []string{
		`font-family="` + html.EscapeString(f.Family) + `"`,
		`font-size="` + num(f.Size) + `"`,
		`text-anchor="` + anchors[st.TextAlign] + `"`,
		`dominant-baseline="` + baselines[st.TextBaseline] + `"`,
	}
	switch f.Style {
	case text.StyleBold:
		attrs = append(attrs, `font-weight="bold"`)
	case text.StyleItalic:
		attrs = append(attrs, `font-style="italic"`)
	}
	if maxWidth > 0 {
		if m := c.MeasureText(s); m.Width > maxWidth {
			attrs = append(attrs, `textLength="`+num(maxWidth)+`"`, `lengthAdjust="spacingAndGlyphs"`)
		}
	}
	attrs = append(attrs, paint...)
	attrs = append(attrs, c.shadowAttrs()...)

	c.doc.Gtransform(matrixAttr(st.Transform.Translated(x, y)))
	c.doc.Text(0, 0, s, attrs...)
	c.doc.Gend()
}
