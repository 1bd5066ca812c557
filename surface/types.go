// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/gogpu/canvaslab/text"
)

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt LineCap = iota

	// LineCapRound specifies a semicircular line cap.
	LineCapRound

	// LineCapSquare specifies a square line cap (extends by half width).
	LineCapSquare
)

var lineCapNames = [...]string{
	LineCapButt:   "butt",
	LineCapRound:  "round",
	LineCapSquare: "square",
}

// String returns the canvas keyword for c.
func (c LineCap) String() string {
	if int(c) < len(lineCapNames) {
		return lineCapNames[c]
	}
	return "butt"
}

// ParseLineCap maps a canvas keyword to a LineCap.
func ParseLineCap(s string) (LineCap, bool) {
	for i, n := range lineCapNames {
		if n == s {
			return LineCap(i), true
		}
	}
	return LineCapButt, false
}

// TextAlign is the horizontal anchor of drawn text.
type TextAlign uint8

const (
	AlignStart TextAlign = iota
	AlignEnd
	AlignLeft
	AlignRight
	AlignCenter
)

var textAlignNames = [...]string{
	AlignStart:  "start",
	AlignEnd:    "end",
	AlignLeft:   "left",
	AlignRight:  "right",
	AlignCenter: "center",
}

func (a TextAlign) String() string {
	if int(a) < len(textAlignNames) {
		return textAlignNames[a]
	}
	return "start"
}

// TextBaseline is the vertical anchor of drawn text.
type TextBaseline uint8

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineHanging
	BaselineMiddle
	BaselineIdeographic
	BaselineBottom
)

var textBaselineNames = [...]string{
	BaselineAlphabetic:  "alphabetic",
	BaselineTop:         "top",
	BaselineHanging:     "hanging",
	BaselineMiddle:      "middle",
	BaselineIdeographic: "ideographic",
	BaselineBottom:      "bottom",
}

func (b TextBaseline) String() string {
	if int(b) < len(textBaselineNames) {
		return textBaselineNames[b]
	}
	return "alphabetic"
}

// Repetition controls how a pattern paint tiles.
type Repetition uint8

const (
	Repeat Repetition = iota
	RepeatX
	RepeatY
	NoRepeat
)

var repetitionNames = [...]string{
	Repeat:   "repeat",
	RepeatX:  "repeat-x",
	RepeatY:  "repeat-y",
	NoRepeat: "no-repeat",
}

func (r Repetition) String() string {
	if int(r) < len(repetitionNames) {
		return repetitionNames[r]
	}
	return "repeat"
}

// ParseRepetition maps a canvas keyword to a Repetition.
func ParseRepetition(s string) (Repetition, bool) {
	for i, n := range repetitionNames {
		if n == s {
			return Repetition(i), true
		}
	}
	return Repeat, false
}

// Font selects the face used for text.
type Font struct {
	Style  text.Style
	Size   float64
	Family string
}

// DefaultFont is the canvas default, "10px sans-serif".
func DefaultFont() Font {
	return Font{Style: text.StyleNormal, Size: 10, Family: "sans-serif"}
}

// CSS renders f as a CSS font shorthand, e.g. "bold 24px sans-serif".
func (f Font) CSS() string {
	return f.Style.String() + " " + strconv.FormatFloat(f.Size, 'f', -1, 64) + "px " + f.Family
}

// Face resolves f to a sized text face.
func (f Font) Face() (*text.Face, error) {
	face, err := text.NewFace(text.Lookup(f.Family, f.Style), f.Size)
	if err != nil {
		return nil, fmt.Errorf("surface: font %q: %w", f.CSS(), err)
	}
	return face, nil
}

// Shadow describes the drop shadow applied to subsequent drawing.
type Shadow struct {
	Color   color.NRGBA
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// Visible reports whether the shadow would paint anything.
func (s Shadow) Visible() bool {
	return s.Color.A != 0 && (s.Blur > 0 || s.OffsetX != 0 || s.OffsetY != 0)
}

// Rect is an axis-aligned rectangle in user space.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// TextMetrics is the result of measuring text.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Options configures canvas creation.
type Options struct {
	// Width is the canvas width in pixels.
	Width int

	// Height is the canvas height in pixels.
	Height int

	// Background is the initial background color.
	// Default: transparent
	Background color.Color
}
