package text

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("text: empty font data")

// Style selects a font variant. The set mirrors the CSS keywords a
// canvas font string accepts in its first position.
type Style uint8

const (
	StyleNormal Style = iota
	StyleBold
	StyleItalic
)

var styleNames = [...]string{
	StyleNormal: "normal",
	StyleBold:   "bold",
	StyleItalic: "italic",
}

// String returns the CSS keyword for s.
func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "normal"
}

// ParseStyle maps a CSS keyword to a Style.
func ParseStyle(name string) (Style, bool) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), true
		}
	}
	return StyleNormal, false
}

// Source is a parsed font file. It is safe for concurrent use.
type Source struct {
	name   string
	data   []byte
	sfnt   *sfnt.Font
	shaped *gotext.Font
}

// ParseSource parses TrueType or OpenType data.
// The data is retained and must not be modified afterwards.
func ParseSource(name string, data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse %s: %w", name, err)
	}

	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse %s for shaping: %w", name, err)
	}

	return &Source{name: name, data: data, sfnt: f, shaped: face.Font}, nil
}

// Name returns the name the source was registered or parsed with.
func (s *Source) Name() string { return s.name }

// Family returns the family name stored in the font, or "" when absent.
func (s *Source) Family() string {
	var buf sfnt.Buffer
	name, err := s.sfnt.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

type familyKey struct {
	family string
	style  Style
}

var (
	libraryMu sync.RWMutex
	library   = map[familyKey]*Source{}

	builtinOnce    sync.Once
	builtinSources [len(styleNames)]*Source
)

// Register makes src available under family and style.
// Family names are matched case-insensitively.
func Register(family string, style Style, src *Source) {
	if src == nil {
		return
	}
	libraryMu.Lock()
	defer libraryMu.Unlock()
	library[familyKey{strings.ToLower(family), style}] = src
}

// Unregister removes a family/style registration.
func Unregister(family string, style Style) {
	libraryMu.Lock()
	defer libraryMu.Unlock()
	delete(library, familyKey{strings.ToLower(family), style})
}

// Lookup returns the source registered for family and style. Unknown
// families resolve to the built-in Go fonts.
func Lookup(family string, style Style) *Source {
	libraryMu.RLock()
	src, ok := library[familyKey{strings.ToLower(family), style}]
	libraryMu.RUnlock()
	if ok {
		return src
	}
	return Builtin(style)
}

// Builtin returns the Go font for style.
func Builtin(style Style) *Source {
	builtinOnce.Do(func() {
		fonts := [len(styleNames)]struct {
			name string
			data []byte
		}{
			StyleNormal: {"Go Regular", goregular.TTF},
			StyleBold:   {"Go Bold", gobold.TTF},
			StyleItalic: {"Go Italic", goitalic.TTF},
		}
		for i, f := range fonts {
			src, err := ParseSource(f.name, f.data)
			if err != nil {
				// The embedded Go fonts are known-good.
				panic(err)
			}
			builtinSources[i] = src
		}
	})
	if int(style) >= len(builtinSources) {
		style = StyleNormal
	}
	return builtinSources[style]
}
