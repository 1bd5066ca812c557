// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "image"

// Op identifies a recorded canvas call.
type Op uint8

const (
	// State
	OpSave Op = iota
	OpRestore
	OpTranslate
	OpScale

	// Style
	OpSetFillPaint
	OpSetStrokePaint
	OpSetLineWidth
	OpSetLineDash
	OpSetLineCap
	OpSetShadow
	OpSetFont
	OpSetTextAlign
	OpSetTextBaseline

	// Path
	OpBeginPath
	OpClosePath
	OpMoveTo
	OpLineTo
	OpBezierCurveTo
	OpArc
	OpEllipse
	OpRoundRect

	// Painting
	OpStroke
	OpFill
	OpDrawImage
	OpFillText
	OpStrokeText
	OpClearRect
)

var opNames = [...]string{
	OpSave:            "Save",
	OpRestore:         "Restore",
	OpTranslate:       "Translate",
	OpScale:           "Scale",
	OpSetFillPaint:    "SetFillPaint",
	OpSetStrokePaint:  "SetStrokePaint",
	OpSetLineWidth:    "SetLineWidth",
	OpSetLineDash:     "SetLineDash",
	OpSetLineCap:      "SetLineCap",
	OpSetShadow:       "SetShadow",
	OpSetFont:         "SetFont",
	OpSetTextAlign:    "SetTextAlign",
	OpSetTextBaseline: "SetTextBaseline",
	OpBeginPath:       "BeginPath",
	OpClosePath:       "ClosePath",
	OpMoveTo:          "MoveTo",
	OpLineTo:          "LineTo",
	OpBezierCurveTo:   "BezierCurveTo",
	OpArc:             "Arc",
	OpEllipse:         "Ellipse",
	OpRoundRect:       "RoundRect",
	OpStroke:          "Stroke",
	OpFill:            "Fill",
	OpDrawImage:       "DrawImage",
	OpFillText:        "FillText",
	OpStrokeText:      "StrokeText",
	OpClearRect:       "ClearRect",
}

// String returns the name of the canvas method o records.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Command is one recorded canvas call.
//
// Args holds the numeric arguments in call order; booleans are recorded
// as 0 or 1. Value holds the single non-numeric argument of style calls
// (a Paint, Shadow, Font, LineCap, TextAlign, TextBaseline) or the image
// of DrawImage.
type Command struct {
	Op    Op
	Args  []float64
	Text  string
	Value any
	Src   image.Rectangle
}

// Recorder is a Canvas that records calls instead of drawing them.
// It tracks drawing state so MeasureText reflects the current font.
type Recorder struct {
	StateStack
	width, height int
	cmds          []Command
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.cmds))
	copy(out, r.cmds)
	return out
}

// Ops returns the recorded operations in order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.cmds))
	for i, c := range r.cmds {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many times op was recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.cmds {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.cmds) }

// Reset discards recorded commands and drawing state.
func (r *Recorder) Reset() {
	r.cmds = r.cmds[:0]
	r.StateStack = StateStack{}
}

// Playback replays the recorded commands onto c in order.
func (r *Recorder) Playback(c Canvas) {
	for _, cmd := range r.cmds {
		replay(c, cmd)
	}
}

func (r *Recorder) record(op Op, args ...float64) {
	r.cmds = append(r.cmds, Command{Op: op, Args: args})
}

func (r *Recorder) recordValue(op Op, v any) {
	r.cmds = append(r.cmds, Command{Op: op, Value: v})
}

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) Save() {
	r.StateStack.Save()
	r.record(OpSave)
}

func (r *Recorder) Restore() {
	r.StateStack.Restore()
	r.record(OpRestore)
}

func (r *Recorder) Translate(x, y float64) {
	r.StateStack.Translate(x, y)
	r.record(OpTranslate, x, y)
}

func (r *Recorder) Scale(x, y float64) {
	r.StateStack.Scale(x, y)
	r.record(OpScale, x, y)
}

func (r *Recorder) SetFillPaint(p Paint) {
	r.StateStack.SetFillPaint(p)
	r.recordValue(OpSetFillPaint, p)
}

func (r *Recorder) SetStrokePaint(p Paint) {
	r.StateStack.SetStrokePaint(p)
	r.recordValue(OpSetStrokePaint, p)
}

func (r *Recorder) SetLineWidth(w float64) {
	r.StateStack.SetLineWidth(w)
	r.record(OpSetLineWidth, w)
}

func (r *Recorder) SetLineDash(segments []float64) {
	r.StateStack.SetLineDash(segments)
	r.record(OpSetLineDash, append([]float64(nil), segments...)...)
}

func (r *Recorder) SetLineCap(c LineCap) {
	r.StateStack.SetLineCap(c)
	r.recordValue(OpSetLineCap, c)
}

func (r *Recorder) SetShadow(s Shadow) {
	r.StateStack.SetShadow(s)
	r.recordValue(OpSetShadow, s)
}

func (r *Recorder) SetFont(f Font) {
	r.StateStack.SetFont(f)
	r.recordValue(OpSetFont, f)
}

func (r *Recorder) SetTextAlign(a TextAlign) {
	r.StateStack.SetTextAlign(a)
	r.recordValue(OpSetTextAlign, a)
}

func (r *Recorder) SetTextBaseline(b TextBaseline) {
	r.StateStack.SetTextBaseline(b)
	r.recordValue(OpSetTextBaseline, b)
}

func (r *Recorder) BeginPath()          { r.record(OpBeginPath) }
func (r *Recorder) ClosePath()          { r.record(OpClosePath) }
func (r *Recorder) MoveTo(x, y float64) { r.record(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64) { r.record(OpLineTo, x, y) }

func (r *Recorder) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.record(OpBezierCurveTo, c1x, c1y, c2x, c2y, x, y)
}

func (r *Recorder) Arc(x, y, radius, start, end float64, anticlockwise bool) {
	r.record(OpArc, x, y, radius, start, end, boolArg(anticlockwise))
}

func (r *Recorder) Ellipse(x, y, rx, ry, rotation, start, end float64, anticlockwise bool) {
	r.record(OpEllipse, x, y, rx, ry, rotation, start, end, boolArg(anticlockwise))
}

func (r *Recorder) RoundRect(x, y, w, h float64, radii [4]float64) {
	r.record(OpRoundRect, x, y, w, h, radii[0], radii[1], radii[2], radii[3])
}

func (r *Recorder) Stroke() { r.record(OpStroke) }
func (r *Recorder) Fill()   { r.record(OpFill) }

func (r *Recorder) DrawImage(img image.Image, src image.Rectangle, dst Rect) {
	r.cmds = append(r.cmds, Command{
		Op:    OpDrawImage,
		Args:  []float64{dst.X, dst.Y, dst.W, dst.H},
		Value: img,
		Src:   src,
	})
}

func (r *Recorder) FillText(s string, x, y, maxWidth float64) {
	r.cmds = append(r.cmds, Command{Op: OpFillText, Args: []float64{x, y, maxWidth}, Text: s})
}

func (r *Recorder) StrokeText(s string, x, y, maxWidth float64) {
	r.cmds = append(r.cmds, Command{Op: OpStrokeText, Args: []float64{x, y, maxWidth}, Text: s})
}

// MeasureText measures s with the current font. It is not recorded.
func (r *Recorder) MeasureText(s string) TextMetrics {
	l, err := LayoutText(r.Current(), s, 0, 0, 0)
	if err != nil {
		Logger().Warn("surface: measure text", "err", err)
		return TextMetrics{}
	}
	return l.Metrics
}

func (r *Recorder) ClearRect(x, y, w, h float64) { r.record(OpClearRect, x, y, w, h) }

func boolArg(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// replay issues cmd against c.
func replay(c Canvas, cmd Command) {
	a := cmd.Args
	switch cmd.Op {
	case OpSave:
		c.Save()
	case OpRestore:
		c.Restore()
	case OpTranslate:
		c.Translate(a[0], a[1])
	case OpScale:
		c.Scale(a[0], a[1])
	case OpSetFillPaint:
		c.SetFillPaint(cmd.Value.(Paint))
	case OpSetStrokePaint:
		c.SetStrokePaint(cmd.Value.(Paint))
	case OpSetLineWidth:
		c.SetLineWidth(a[0])
	case OpSetLineDash:
		c.SetLineDash(a)
	case OpSetLineCap:
		c.SetLineCap(cmd.Value.(LineCap))
	case OpSetShadow:
		c.SetShadow(cmd.Value.(Shadow))
	case OpSetFont:
		c.SetFont(cmd.Value.(Font))
	case OpSetTextAlign:
		c.SetTextAlign(cmd.Value.(TextAlign))
	case OpSetTextBaseline:
		c.SetTextBaseline(cmd.Value.(TextBaseline))
	case OpBeginPath:
		c.BeginPath()
	case OpClosePath:
		c.ClosePath()
	case OpMoveTo:
		c.MoveTo(a[0], a[1])
	case OpLineTo:
		c.LineTo(a[0], a[1])
	case OpBezierCurveTo:
		c.BezierCurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
	case OpArc:
		c.Arc(a[0], a[1], a[2], a[3], a[4], a[5] != 0)
	case OpEllipse:
		c.Ellipse(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7] != 0)
	case OpRoundRect:
		c.RoundRect(a[0], a[1], a[2], a[3], [4]float64{a[4], a[5], a[6], a[7]})
	case OpStroke:
		c.Stroke()
	case OpFill:
		c.Fill()
	case OpDrawImage:
		c.DrawImage(cmd.Value.(image.Image), cmd.Src, Rect{X: a[0], Y: a[1], W: a[2], H: a[3]})
	case OpFillText:
		c.FillText(cmd.Text, a[0], a[1], a[2])
	case OpStrokeText:
		c.StrokeText(cmd.Text, a[0], a[1], a[2])
	case OpClearRect:
		c.ClearRect(a[0], a[1], a[2], a[3])
	}
}

// Verify Recorder implements Canvas.
var _ Canvas = (*Recorder)(nil)
