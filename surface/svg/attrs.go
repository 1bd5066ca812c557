// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/gogpu/canvaslab/surface"
)

// unbounded is the pattern tile size used on an axis that must not repeat.
const unbounded = 1 << 20

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func itoa(v int) string { return strconv.Itoa(v) }

// num formats v with at most three decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func matrixAttr(m surface.Matrix) string {
	return "matrix(" + num(m.A) + " " + num(m.D) + " " + num(m.B) + " " + num(m.E) + " " + num(m.C) + " " + num(m.F) + ")"
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// colorAttrs returns the paint and opacity attributes for a solid color.
func colorAttrs(prop string, c color.NRGBA) []string {
	attrs := []string{prop + `="` + rgb(c) + `"`}
	if c.A != 255 {
		attrs = append(attrs, prop+`-opacity="`+num(float64(c.A)/255)+`"`)
	}
	return attrs
}

// pathData renders p as SVG path data.
func pathData(p *surface.Path) string {
	var b strings.Builder
	pts := p.Points()
	i := 0
	pt := func(n int) {
		for k := range n {
			if k > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(num(pts[i]))
			b.WriteByte(',')
			b.WriteString(num(pts[i+1]))
			i += 2
		}
	}
	for _, v := range p.Verbs() {
		switch v {
		case surface.VerbMoveTo:
			b.WriteString("M")
			pt(1)
		case surface.VerbLineTo:
			b.WriteString("L")
			pt(1)
		case surface.VerbQuadTo:
			b.WriteString("Q")
			pt(2)
		case surface.VerbCubicTo:
			b.WriteString("C")
			pt(3)
		case surface.VerbClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

// paintAttrs returns the attributes painting prop ("fill" or "stroke")
// with p, emitting any definition it needs.
func (c *Canvas) paintAttrs(prop string, p surface.Paint) []string {
	m := c.Current().Transform
	switch p := p.(type) {
	case surface.SolidPaint:
		return colorAttrs(prop, p.Color)
	case surface.LinearGradientPaint:
		id := newID("linear")
		c.def(fmt.Sprintf(`<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s" gradientTransform="%s">`,
			id, num(p.X0), num(p.Y0), num(p.X1), num(p.Y1), matrixAttr(m)), stops(p.Stops), "</linearGradient>")
		return []string{prop + `="url(#` + id + `)"`}
	case surface.RadialGradientPaint:
		id := newID("radial")
		c.def(fmt.Sprintf(`<radialGradient id="%s" gradientUnits="userSpaceOnUse" fx="%s" fy="%s" fr="%s" cx="%s" cy="%s" r="%s" gradientTransform="%s">`,
			id, num(p.X0), num(p.Y0), num(p.R0), num(p.X1), num(p.Y1), num(p.R1), matrixAttr(m)), stops(p.Stops), "</radialGradient>")
		return []string{prop + `="url(#` + id + `)"`}
	case surface.PatternPaint:
		return c.patternAttrs(prop, p, m)
	case surface.ConicGradientPaint:
		surface.Logger().Debug("svg: conic gradient painted with first stop")
		return colorAttrs(prop, p.ColorAt(p.X, p.Y))
	case nil:
		return []string{prop + `="none"`}
	default:
		surface.Logger().Debug("svg: unsupported paint, sampling origin", "paint", fmt.Sprintf("%T", p))
		return colorAttrs(prop, p.ColorAt(0, 0))
	}
}

func (c *Canvas) patternAttrs(prop string, p surface.PatternPaint, m surface.Matrix) []string {
	if p.Image == nil {
		return []string{prop + `="none"`}
	}
	b := p.Image.Bounds()
	uri, err := dataURI(p.Image, b)
	if err != nil {
		surface.Logger().Warn("svg: encode pattern", "err", err)
		return []string{prop + `="none"`}
	}
	w, h := b.Dx(), b.Dy()
	tw, th := w, h
	if p.Repetition == surface.RepeatY || p.Repetition == surface.NoRepeat {
		tw = unbounded
	}
	if p.Repetition == surface.RepeatX || p.Repetition == surface.NoRepeat {
		th = unbounded
	}

	id := newID("pattern")
	c.def(
		fmt.Sprintf(`<pattern id="%s" patternUnits="userSpaceOnUse" width="%d" height="%d" patternTransform="%s">`, id, tw, th, matrixAttr(m)),
		fmt.Sprintf(`<image width="%d" height="%d" xlink:href="%s"/>`, w, h, uri),
		"</pattern>",
	)
	return []string{prop + `="url(#` + id + `)"`}
}

func (c *Canvas) strokeAttrs() []string {
	st := c.Current()
	scale := st.Transform.ScaleFactor()
	attrs := c.paintAttrs("stroke", st.StrokePaint)
	attrs = append(attrs,
		`stroke-width="`+num(st.LineWidth*scale)+`"`,
		`stroke-linecap="`+st.LineCap.String()+`"`,
		`stroke-miterlimit="10"`,
	)
	if len(st.LineDash) > 0 {
		parts := make([]string, len(st.LineDash))
		for i, v := range st.LineDash {
			parts[i] = num(v * scale)
		}
		attrs = append(attrs, `stroke-dasharray="`+strings.Join(parts, " ")+`"`)
	}
	return attrs
}

// shadowAttrs returns the filter attribute for the current shadow, or
// nothing when the shadow is invisible.
func (c *Canvas) shadowAttrs() []string {
	sh := c.Current().Shadow
	if !sh.Visible() {
		return nil
	}
	id, ok := c.shadows[sh]
	if !ok {
		id = newID("shadow")
		c.shadows[sh] = id
		c.def(
			fmt.Sprintf(`<filter id="%s" filterUnits="userSpaceOnUse" x="0" y="0" width="%d" height="%d">`, id, c.width, c.height),
			fmt.Sprintf(`<feDropShadow dx="%s" dy="%s" stdDeviation="%s" flood-color="%s" flood-opacity="%s"/>`,
				num(sh.OffsetX), num(sh.OffsetY), num(sh.Blur/2), rgb(sh.Color), num(float64(sh.Color.A)/255)),
			"</filter>",
		)
	}
	return []string{`filter="url(#` + id + `)"`}
}

// def writes raw lines inside a defs element.
func (c *Canvas) def(lines ...string) {
	c.doc.Def()
	for _, l := range lines {
		if l == "" {
			continue
		}
		fmt.Fprintln(c.doc.Writer, l)
	}
	c.doc.DefEnd()
}

func stops(s []surface.ColorStop) string {
	var b strings.Builder
	for i, st := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`,
			num(st.Offset), rgb(st.Color), num(float64(st.Color.A)/255))
	}
	return b.String()
}

// dataURI encodes the r region of img as a base64 PNG data URI.
func dataURI(img image.Image, r image.Rectangle) (string, error) {
	if r != img.Bounds() {
		sub := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(sub, sub.Bounds(), img, r.Min, draw.Src)
		img = sub
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
