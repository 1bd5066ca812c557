package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Glyph is a positioned glyph in a shaped run.
// X and Y are relative to the run origin on the baseline.
type Glyph struct {
	ID      uint32
	Cluster int
	X, Y    float64
	Advance float64
}

// Run is the result of shaping a string with a face.
type Run struct {
	Face      *Face
	Glyphs    []Glyph
	Width     float64
	Direction Direction
}

// HarfbuzzShaper keeps internal buffers and is not safe for concurrent use,
// so shapers are pooled.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// Shape converts s into positioned glyphs. Glyphs are returned in visual
// order, left to right.
func (f *Face) Shape(s string) Run {
	run := Run{Face: f, Direction: BaseDirection(s)}
	if s == "" {
		return run
	}

	runes := []rune(s)
	dir := di.DirectionLTR
	if run.Direction == RightToLeft {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gotext.NewFace(f.src.shaped),
		Size:      toFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	run.Glyphs = make([]Glyph, len(output.Glyphs))
	var x float64
	for i, g := range output.Glyphs {
		adv := fromFixed(g.Advance)
		run.Glyphs[i] = Glyph{
			ID:      uint32(g.GlyphID),
			Cluster: g.TextIndex(),
			X:       x + fromFixed(g.XOffset),
			Y:       fromFixed(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	run.Width = x
	return run
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
