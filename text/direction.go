package text

import "golang.org/x/text/unicode/bidi"

// Direction is the base direction of a paragraph.
type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// BaseDirection reports the paragraph direction of s as decided by its
// first strong character. Text without strong characters is left to right.
func BaseDirection(s string) Direction {
	for len(s) > 0 {
		p, size := bidi.LookupString(s)
		if size == 0 {
			break
		}
		switch p.Class() {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
		s = s[size:]
	}
	return LeftToRight
}
