package canvaslab

import "github.com/gogpu/canvaslab/surface"

// Option configures a shape during creation. Options that do not apply
// to a shape kind are ignored by it.
//
// Example:
//
//	c := canvaslab.NewCircle(canvaslab.Pt(50, 50), 20,
//	    canvaslab.WithStroke(canvaslab.NewStroke(canvaslab.RGB(0, 0, 0), 2)),
//	    canvaslab.WithSurface("preview"))
type Option func(*config)

// config holds the optional settings collected from Options. Nil fields
// keep the shape's own defaults.
type config struct {
	stroke   *Stroke
	fill     *Fill
	shadow   *Shadow
	shadowOn bool
	surface  string
	scale    *Point
	id       int

	angle    *Angle
	lineCap  *LineCap
	controls *ControlPoints
	radii    *[4]float64
	font     *Font
	offset   *Point
	crop     *crop
}

type crop struct {
	point  Point
	aspect Aspect
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithStroke sets the outline style.
func WithStroke(s Stroke) Option {
	return func(c *config) {
		c.stroke = &s
	}
}

// WithFill sets the interior style of fillable shapes.
func WithFill(f Fill) Option {
	return func(c *config) {
		c.fill = &f
	}
}

// WithShadow sets the shadow. Shadows are painted only when enabled with
// WithShadowEnabled.
func WithShadow(s Shadow) Option {
	return func(c *config) {
		c.shadow = &s
	}
}

// WithShadowEnabled turns shadow painting on or off.
func WithShadowEnabled(on bool) Option {
	return func(c *config) {
		c.shadowOn = on
	}
}

// WithSurface binds the shape to the canvas registered under id.
func WithSurface(id string) Option {
	return func(c *config) {
		c.surface = id
	}
}

// WithScale scales the canvas while the shape draws.
func WithScale(x, y float64) Option {
	return func(c *config) {
		p := Pt(1, 1)
		p.SetX(x)
		p.SetY(y)
		c.scale = &p
	}
}

// WithID sets the numeric identity of the shape.
func WithID(id int) Option {
	return func(c *config) {
		c.id = id
	}
}

// WithAngle sets the arc span of a Circle or Ellipse.
func WithAngle(a Angle) Option {
	return func(c *config) {
		c.angle = &a
	}
}

// LineCap is the shape of line ends.
type LineCap = surface.LineCap

const (
	CapButt   = surface.LineCapButt
	CapRound  = surface.LineCapRound
	CapSquare = surface.LineCapSquare
)

// WithLineCap sets the cap of a Line.
func WithLineCap(lc LineCap) Option {
	return func(c *config) {
		c.lineCap = &lc
	}
}

// WithControlPoints curves a Line.
func WithControlPoints(cp ControlPoints) Option {
	return func(c *config) {
		c.controls = &cp
	}
}

// WithRadii sets the corner radii of a rectangle, in the order top-left,
// top-right, bottom-right, bottom-left.
func WithRadii(tl, tr, br, bl float64) Option {
	return func(c *config) {
		c.radii = &[4]float64{tl, tr, br, bl}
	}
}

// WithFont sets the font of a Text.
func WithFont(f Font) Option {
	return func(c *config) {
		c.font = &f
	}
}

// WithOffset shifts the vertices of an Arrow or the position of a Text.
func WithOffset(p Point) Option {
	return func(c *config) {
		c.offset = &p
	}
}

// WithCrop makes an Image draw only the source region at p with size a.
func WithCrop(p Point, a Aspect) Option {
	return func(c *config) {
		c.crop = &crop{point: p, aspect: a}
	}
}
