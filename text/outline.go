package text

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// PathBuilder receives glyph outlines. Coordinates are in pixels with the
// Y axis pointing down.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// AppendOutline adds the outlines of every glyph in r to p, with the run
// origin placed at (x, y) on the baseline and horizontal positions
// multiplied by scaleX.
func (r Run) AppendOutline(p PathBuilder, x, y, scaleX float64) error {
	if r.Face == nil {
		return nil
	}

	var buf sfnt.Buffer
	ppem := toFixed(r.Face.size)
	for _, g := range r.Glyphs {
		segs, err := r.Face.src.sfnt.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			return fmt.Errorf("text: load glyph %d: %w", g.ID, err)
		}

		ox, oy := x+g.X*scaleX, y+g.Y
		pt := func(v fixed.Point26_6) (float64, float64) {
			return ox + fromFixed(v.X)*scaleX, oy + fromFixed(v.Y)
		}

		open := false
		for _, s := range segs {
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					p.ClosePath()
				}
				p.MoveTo(pt(s.Args[0]))
				open = true
			case sfnt.SegmentOpLineTo:
				p.LineTo(pt(s.Args[0]))
			case sfnt.SegmentOpQuadTo:
				cx, cy := pt(s.Args[0])
				ex, ey := pt(s.Args[1])
				p.QuadTo(cx, cy, ex, ey)
			case sfnt.SegmentOpCubeTo:
				c1x, c1y := pt(s.Args[0])
				c2x, c2y := pt(s.Args[1])
				ex, ey := pt(s.Args[2])
				p.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
			}
		}
		if open {
			p.ClosePath()
		}
	}
	return nil
}
