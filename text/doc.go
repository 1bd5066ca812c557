// Package text provides the font handling behind canvas text drawing:
// font sources, sized faces, HarfBuzz shaping for measurement and glyph
// outlines for rasterization.
//
// A [Source] is a parsed font file shared by every size. The Go font
// family is built in and is used whenever a requested family has not been
// registered:
//
//	face, err := text.NewFace(text.Lookup("sans-serif", text.StyleBold), 24)
//	if err != nil {
//	    return err
//	}
//	run := face.Shape("Hello")
//	fmt.Println(run.Width)
//
// Shaping uses github.com/go-text/typesetting; outlines and metrics come
// from golang.org/x/image/font/sfnt. Faces are cached per source and size.
package text
