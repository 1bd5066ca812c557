package canvaslab

import "github.com/gogpu/canvaslab/surface"

// Text is a string drawn centered on its point. It has no outline unless
// its stroke width is raised above the default 0.
type Text struct {
	fillable
	font Font
	text string
}

// NewText returns s set in the default font, filled opaque black and
// centered on p.
func NewText(p Point, s string, opts ...Option) *Text {
	cfg := newConfig(opts)
	stroke := DefaultStroke()
	stroke.width = 0
	t := &Text{
		fillable: newFillable(p, cfg, stroke, NewFill(RGB(0, 0, 0))),
		font:     DefaultFont(),
		text:     s,
	}
	if cfg.font != nil {
		t.font = *cfg.font
	}
	if cfg.offset != nil {
		t.font.offset = *cfg.offset
	}
	return t
}

func (*Text) Kind() Kind { return KindText }

func (t *Text) Text() string     { return t.text }
func (t *Text) SetText(s string) { t.text = s }
func (t *Text) Font() *Font      { return &t.font }
func (t *Text) SetFont(f Font)   { t.font = f }

// Draw fills, then optionally strokes, the text on the bound canvas.
func (t *Text) Draw() error {
	c, ok := t.begin(KindText)
	if !ok {
		return nil
	}
	t.setFont(c)
	t.applyFill(c)

	x, y := t.position()
	if t.fill.typ == FillPattern {
		t.deferPattern(KindText, func(c surface.Canvas) {
			t.setFont(c)
			x, y := t.position()
			c.FillText(t.text, x, y, t.font.maxWidth)
		})
	} else {
		c.FillText(t.text, x, y, t.font.maxWidth)
	}

	if t.stroke.width > 0 {
		c.SetLineWidth(t.stroke.width)
		c.SetStrokePaint(surface.SolidPaint{Color: t.stroke.color.NRGBA()})
		c.StrokeText(t.text, x, y, t.font.maxWidth)
	}

	t.end(c)
	return nil
}

// DrawOn binds the canvas registered under id and draws.
func (t *Text) DrawOn(id string) error {
	t.SetSurface(id)
	return t.Draw()
}

// Measure returns the metrics of the text in its font on the bound
// canvas. It reports false when no canvas is bound.
func (t *Text) Measure() (surface.TextMetrics, bool) {
	c, ok := t.canvas(KindText)
	if !ok {
		return surface.TextMetrics{}, false
	}
	c.Save()
	defer c.Restore()
	c.SetFont(t.font.surface())
	return c.MeasureText(t.text), true
}

func (t *Text) setFont(c surface.Canvas) {
	c.SetFont(t.font.surface())
	c.SetTextAlign(surface.AlignCenter)
	c.SetTextBaseline(surface.BaselineMiddle)
}

func (t *Text) position() (float64, float64) {
	return t.point.x + t.font.offset.x, t.point.y + t.font.offset.y
}
