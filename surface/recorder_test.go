// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"testing"
)

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpSave, "Save"},
		{OpRestore, "Restore"},
		{OpSetShadow, "SetShadow"},
		{OpBezierCurveTo, "BezierCurveTo"},
		{OpRoundRect, "RoundRect"},
		{OpFillText, "FillText"},
		{OpClearRect, "ClearRect"},
		{Op(250), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("Op.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecorderRecords(t *testing.T) {
	r := NewRecorder(100, 50)
	r.Save()
	r.SetStrokePaint(SolidPaint{Color: color.NRGBA{R: 255, A: 255}})
	r.SetLineWidth(3)
	r.BeginPath()
	r.Arc(10, 10, 5, 0, 6.28, true)
	r.Stroke()
	r.Restore()

	want := []Op{OpSave, OpSetStrokePaint, OpSetLineWidth, OpBeginPath, OpArc, OpStroke, OpRestore}
	got := r.Ops()
	if len(got) != len(want) {
		t.Fatalf("Ops() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ops()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	arc := r.Commands()[4]
	if arc.Args[5] != 1 {
		t.Errorf("anticlockwise arg = %v, want 1", arc.Args[5])
	}
	if r.Count(OpStroke) != 1 {
		t.Errorf("Count(OpStroke) = %d, want 1", r.Count(OpStroke))
	}
	if r.Current().LineWidth != 1 {
		t.Errorf("LineWidth after Restore = %v, want 1", r.Current().LineWidth)
	}
}

func TestRecorderCommandsIsCopy(t *testing.T) {
	r := NewRecorder(1, 1)
	r.Fill()
	cmds := r.Commands()
	cmds[0].Op = OpStroke
	if r.Commands()[0].Op != OpFill {
		t.Error("Commands() should return a copy")
	}
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder(1, 1)
	r.Save()
	r.Translate(5, 5)
	r.Fill()
	r.Reset()

	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", r.Len())
	}
	if r.Depth() != 0 {
		t.Errorf("Depth() after Reset = %d, want 0", r.Depth())
	}
	if !r.Current().Transform.IsIdentity() {
		t.Error("transform should be identity after Reset")
	}
}

func TestRecorderPlayback(t *testing.T) {
	src := NewRecorder(10, 10)
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetFont(Font{Size: 12, Family: "sans-serif"})
	src.SetTextAlign(AlignCenter)
	src.RoundRect(1, 2, 3, 4, [4]float64{1, 1, 1, 1})
	src.Ellipse(5, 5, 2, 1, 0, 0, 3, false)
	src.DrawImage(img, image.Rect(0, 0, 2, 2), Rect{X: 1, Y: 1, W: 8, H: 8})
	src.FillText("hi", 5, 5, 0)
	src.SetLineDash([]float64{5, 5})
	src.ClearRect(0, 0, 10, 10)

	dst := NewRecorder(10, 10)
	src.Playback(dst)

	a, b := src.Commands(), dst.Commands()
	if len(a) != len(b) {
		t.Fatalf("playback recorded %d commands, want %d", len(b), len(a))
	}
	for i := range a {
		if a[i].Op != b[i].Op {
			t.Errorf("command %d = %v, want %v", i, b[i].Op, a[i].Op)
		}
		if len(a[i].Args) != len(b[i].Args) {
			t.Errorf("command %d args = %v, want %v", i, b[i].Args, a[i].Args)
		}
	}
	if b[4].Src != image.Rect(0, 0, 2, 2) {
		t.Errorf("DrawImage src = %v, want (0,0)-(2,2)", b[4].Src)
	}
	if b[5].Text != "hi" {
		t.Errorf("FillText text = %q, want hi", b[5].Text)
	}
	if dst.Current().TextAlign != AlignCenter {
		t.Errorf("TextAlign = %v, want center", dst.Current().TextAlign)
	}
}

func TestRecorderMeasureText(t *testing.T) {
	r := NewRecorder(10, 10)
	r.SetFont(Font{Size: 20, Family: "sans-serif"})
	narrow := r.MeasureText("i")
	wide := r.MeasureText("iiii")
	if narrow.Width <= 0 {
		t.Fatalf("MeasureText(i).Width = %v, want > 0", narrow.Width)
	}
	if wide.Width <= narrow.Width {
		t.Errorf("MeasureText(iiii).Width = %v, want > %v", wide.Width, narrow.Width)
	}
	if r.Len() != 1 {
		t.Errorf("MeasureText should not be recorded, Len() = %d", r.Len())
	}
}
