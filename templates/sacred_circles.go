package templates

import (
	"strconv"

	"github.com/gogpu/canvaslab"
	"github.com/gogpu/canvaslab/cycle"
)

// DefaultRadius is the distance between neighbouring shapes.
const DefaultRadius = 25

// DefaultDegrees returns the directions a ring is walked in: the first
// places the ring's foundation shape, the next five its sides and the
// last its shorter keystone side.
func DefaultDegrees() []float64 {
	return []float64{90, 330, 270, 210, 150, 90, 30}
}

// SacredCircles places shapes in rings around a point. Ring i starts
// with a foundation shape i radii away from the point, walks five sides
// of i shapes each and closes with a keystone side of i-1 shapes, every
// shape one radius from the previous one.
//
// The master decides which shapes are created: circles, ellipses,
// rectangles, rounded rectangles or numbered texts, or one of each for a
// Group.
type SacredCircles struct {
	point      canvaslab.Point
	radius     float64
	iterations int
	reverse    bool

	degrees *cycle.Queue[float64]
	strokes *cycle.Queue[canvaslab.Stroke]
	fills   *cycle.Queue[canvaslab.Fill]
	labels  *cycle.Queue[string]

	master canvaslab.Master
}

// Option configures a SacredCircles template.
type Option func(*SacredCircles)

// WithRadius sets the distance between neighbouring shapes.
func WithRadius(r float64) Option {
	return func(s *SacredCircles) { s.SetRadius(r) }
}

// WithDegrees sets the walking directions, in degrees.
func WithDegrees(d ...float64) Option {
	return func(s *SacredCircles) { s.SetDegrees(d...) }
}

// WithStrokes sets the strokes cycled through, one per placement.
func WithStrokes(v ...canvaslab.Stroke) Option {
	return func(s *SacredCircles) { s.SetStrokes(v...) }
}

// WithFills sets the fills cycled through, one per placement.
func WithFills(v ...canvaslab.Fill) Option {
	return func(s *SacredCircles) { s.SetFills(v...) }
}

// WithReverse reverses the drawing order once all rings are placed.
func WithReverse(on bool) Option {
	return func(s *SacredCircles) { s.reverse = on }
}

// NewSacredCircles returns a template with the given number of rings
// around p. Strokes default to opaque black, fills to transparent white.
func NewSacredCircles(p canvaslab.Point, iterations int, opts ...Option) *SacredCircles {
	s := &SacredCircles{point: p, radius: DefaultRadius}
	s.degrees, _ = cycle.NewQueue(DefaultDegrees()...)
	s.strokes, _ = cycle.NewQueue(canvaslab.NewStroke(canvaslab.RGBA(0, 0, 0, 1), 1))
	s.fills, _ = cycle.NewQueue(canvaslab.NewFill(canvaslab.RGBA(255, 255, 255, 0)))
	s.SetIterations(iterations)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SacredCircles) Point() canvaslab.Point       { return s.point }
func (s *SacredCircles) SetPoint(p canvaslab.Point)   { s.point = p }
func (s *SacredCircles) Master() canvaslab.Master     { return s.master }
func (s *SacredCircles) SetMaster(m canvaslab.Master) { s.master = m }
func (s *SacredCircles) Radius() float64              { return s.radius }
func (s *SacredCircles) Iterations() int              { return s.iterations }
func (s *SacredCircles) Reverse() bool                { return s.reverse }
func (s *SacredCircles) SetReverse(on bool)           { s.reverse = on }
func (s *SacredCircles) Degrees() []float64           { return s.degrees.Entries() }

// SetRadius keeps the previous radius unless v is positive.
func (s *SacredCircles) SetRadius(v float64) {
	if !(v > 0) {
		rejected("radius", v)
		return
	}
	s.radius = v
}

// SetIterations keeps the previous count unless n is non-negative.
func (s *SacredCircles) SetIterations(n int) {
	if n < 0 {
		rejected("iterations", n)
		return
	}
	s.iterations = n
}

// SetDegrees replaces the walking directions. An empty list is ignored.
func (s *SacredCircles) SetDegrees(d ...float64) {
	if q, err := cycle.NewQueue(d...); err == nil {
		s.degrees = q
		return
	}
	rejected("degrees", d)
}

// SetStrokes replaces the stroke sequence. An empty list is ignored.
func (s *SacredCircles) SetStrokes(v ...canvaslab.Stroke) {
	if q, err := cycle.NewQueue(v...); err == nil {
		s.strokes = q
		return
	}
	rejected("strokes", len(v))
}

// SetFills replaces the fill sequence. An empty list is ignored.
func (s *SacredCircles) SetFills(v ...canvaslab.Fill) {
	if q, err := cycle.NewQueue(v...); err == nil {
		s.fills = q
		return
	}
	rejected("fills", len(v))
}

func rejected(field string, value any) {
	canvaslab.Logger().Debug("templates: value rejected", "template", "SacredCircles", "field", field, "value", value)
}

// Tangents returns the running ring sizes: for i = 1..K it records six
// times the sum 0+1+...+(i-1), dropping the leading 0 when K > 1.
func (s *SacredCircles) Tangents() []int {
	var out []int
	count := 0
	for i := 1; i <= s.iterations; i++ {
		out = append(out, count*6)
		count += i
	}
	if s.iterations > 1 {
		out = out[1:]
	}
	return out
}

// TotalObjects returns the number of placements Init makes, or 0
// without rings. This is one more than the last entry of Tangents,
// which does not count the center shape: for two iterations Tangents
// ends at 6 while Init places 7 shapes.
func (s *SacredCircles) TotalObjects() int {
	t := s.Tangents()
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1] + 1
}

// Init places every ring into the master. Without a supported master it
// logs a warning and places nothing.
func (s *SacredCircles) Init() {
	if !s.supported() {
		canvaslab.Logger().Warn("templates: master cannot hold sacred circles", "master", masterName(s.master))
		return
	}

	s.labels = nil
	if n := s.TotalObjects(); n > 0 {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
		s.labels, _ = cycle.NewQueue(labels...)
	}

	for i := 0; i < s.iterations; i++ {
		s.degrees.Reset()
		s.strokes.Reset()
		s.fills.Reset()

		degree, stroke, fill := s.next()
		s.place(s.point, degree, float64(i)*s.radius, stroke, fill)

		for side := 0; side < 5; side++ {
			degree, stroke, fill = s.next()
			for range i {
				s.placeNext(degree, stroke, fill)
			}
		}

		degree, stroke, fill = s.next()
		for range i - 1 {
			s.placeNext(degree, stroke, fill)
		}
	}

	if s.reverse {
		s.reverseMaster()
	}
}

func (s *SacredCircles) next() (float64, canvaslab.Stroke, canvaslab.Fill) {
	degree, _ := s.degrees.Next()
	stroke, _ := s.strokes.Next()
	fill, _ := s.fills.Next()
	return degree, stroke, fill
}

// placeNext chains a placement from the master's last shape.
func (s *SacredCircles) placeNext(degree float64, stroke canvaslab.Stroke, fill canvaslab.Fill) {
	from, ok := s.master.EndPoint()
	if !ok {
		from = s.point
	}
	s.place(from, degree, s.radius, stroke, fill)
}

func (s *SacredCircles) place(from canvaslab.Point, degree, distance float64, stroke canvaslab.Stroke, fill canvaslab.Fill) {
	var label string
	if s.labels != nil {
		label, _ = s.labels.Next()
	}
	for _, shape := range s.synthesize(from, label, stroke, fill) {
		shape.Move(degree, distance)
		s.push(shape)
	}
}

// synthesize creates the shapes for one placement. Each gets its own
// copy of the stroke and fill, gradient included.
func (s *SacredCircles) synthesize(p canvaslab.Point, label string, stroke canvaslab.Stroke, fill canvaslab.Fill) []canvaslab.Drawable {
	opts := func() []canvaslab.Option {
		return []canvaslab.Option{canvaslab.WithStroke(stroke), canvaslab.WithFill(fill.Clone())}
	}
	circle := func() canvaslab.Drawable { return canvaslab.NewCircle(p, s.radius, opts()...) }
	ellipse := func() canvaslab.Drawable {
		return canvaslab.NewEllipse(p, canvaslab.Pt(s.radius, s.radius*0.5), opts()...)
	}
	rectangle := func() canvaslab.Drawable { return canvaslab.NewRectangle(p, canvaslab.Aspect{}, opts()...) }
	rounded := func() canvaslab.Drawable { return canvaslab.NewRoundedRectangle(p, canvaslab.Aspect{}, opts()...) }
	text := func() canvaslab.Drawable { return canvaslab.NewText(p, label, opts()...) }

	switch s.master.(type) {
	case *canvaslab.Circles:
		return []canvaslab.Drawable{circle()}
	case *canvaslab.Ellipses:
		return []canvaslab.Drawable{ellipse()}
	case *canvaslab.Rectangles:
		return []canvaslab.Drawable{rectangle()}
	case *canvaslab.RoundedRectangles:
		return []canvaslab.Drawable{rounded()}
	case *canvaslab.Texts:
		return []canvaslab.Drawable{text()}
	case *canvaslab.Group:
		return []canvaslab.Drawable{circle(), ellipse(), rectangle(), rounded(), text()}
	}
	return nil
}

func (s *SacredCircles) supported() bool {
	switch s.master.(type) {
	case *canvaslab.Circles, *canvaslab.Ellipses, *canvaslab.Rectangles,
		*canvaslab.RoundedRectangles, *canvaslab.Texts, *canvaslab.Group:
		return true
	}
	return false
}

type pusher interface {
	Push(values ...any)
}

func (s *SacredCircles) push(shape canvaslab.Drawable) {
	if p, ok := s.master.(pusher); ok {
		p.Push(shape)
	}
}

func (s *SacredCircles) reverseMaster() {
	switch m := s.master.(type) {
	case *canvaslab.Group:
		m.Circles().Reverse()
		m.Ellipses().Reverse()
		m.Rectangles().Reverse()
		m.RoundedRectangles().Reverse()
	case interface{ Reverse() }:
		m.Reverse()
	}
}

func masterName(m canvaslab.Master) string {
	if m == nil {
		return "none"
	}
	if c, ok := m.(interface{ StorageType() canvaslab.Kind }); ok {
		return c.StorageType().String() + "s"
	}
	return "Group"
}
