package canvaslab

// StrokeType selects solid or dashed outlines.
type StrokeType uint8

const (
	StrokeSolid StrokeType = iota
	StrokeDashed
)

var strokeTypeNames = [...]string{
	StrokeSolid:  "solid",
	StrokeDashed: "dashed",
}

func (t StrokeType) String() string {
	if int(t) < len(strokeTypeNames) {
		return strokeTypeNames[t]
	}
	return "solid"
}

// Stroke is the outline style of a shape.
type Stroke struct {
	color    Rgb
	typ      StrokeType
	segments []float64
	width    float64
}

// DefaultStroke returns a solid, opaque white, 1px stroke with a [5, 5]
// dash pattern kept ready for StrokeDashed.
func DefaultStroke() Stroke {
	return Stroke{
		color:    RGB(255, 255, 255),
		typ:      StrokeSolid,
		segments: []float64{5, 5},
		width:    1,
	}
}

// NewStroke returns the default stroke with the given color and width.
func NewStroke(c Rgb, width float64) Stroke {
	s := DefaultStroke()
	s.color = c
	s.SetWidth(width)
	return s
}

func (s Stroke) Color() Rgb       { return s.color }
func (s Stroke) Type() StrokeType { return s.typ }
func (s Stroke) Width() float64   { return s.width }

func (s *Stroke) SetColor(c Rgb) { s.color = c }

func (s *Stroke) SetType(t StrokeType) {
	if int(t) >= len(strokeTypeNames) {
		reject("stroke.type", t)
		return
	}
	s.typ = t
}

// SetWidth keeps the previous width unless v is finite and non-negative.
func (s *Stroke) SetWidth(v float64) { setNonNegative(&s.width, v, "stroke.width") }

// Segments returns a copy of the dash pattern.
func (s Stroke) Segments() []float64 {
	return append([]float64(nil), s.segments...)
}

// SetSegments replaces the dash pattern. Every entry must be finite.
func (s *Stroke) SetSegments(v []float64) {
	for _, seg := range v {
		if !finite(seg) {
			reject("stroke.segments", v)
			return
		}
	}
	s.segments = append([]float64(nil), v...)
}

// Dash returns the dash pattern to apply: the segments for a dashed
// stroke and nil for a solid one.
func (s Stroke) Dash() []float64 {
	if s.typ == StrokeSolid {
		return nil
	}
	return s.Segments()
}
