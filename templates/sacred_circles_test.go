package templates

import (
	"bytes"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/gogpu/canvaslab"
)

func TestTangents(t *testing.T) {
	tests := []struct {
		iterations int
		want       []int
		total      int
	}{
		{0, nil, 0},
		{1, []int{0}, 1},
		{2, []int{6}, 7},
		{3, []int{6, 18}, 19},
		{4, []int{6, 18, 36}, 37},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.iterations), func(t *testing.T) {
			s := NewSacredCircles(canvaslab.Pt(0, 0), tt.iterations)
			if got := s.Tangents(); !slices.Equal(got, tt.want) {
				t.Errorf("Tangents() = %v, want %v", got, tt.want)
			}
			if got := s.TotalObjects(); got != tt.total {
				t.Errorf("TotalObjects() = %d, want %d", got, tt.total)
			}
		})
	}
}

func TestSacredCirclesPlacesTotalObjects(t *testing.T) {
	for _, k := range []int{1, 2, 3, 4} {
		t.Run(strconv.Itoa(k), func(t *testing.T) {
			circles := canvaslab.NewCircles()
			s := NewSacredCircles(canvaslab.Pt(100, 100), k)
			circles.SetTemplate(s)
			if circles.Len() != s.TotalObjects() {
				t.Errorf("Len() = %d, want %d", circles.Len(), s.TotalObjects())
			}
		})
	}
}

func TestSacredCirclesFirstRingIsHexagon(t *testing.T) {
	center := canvaslab.Pt(200, 200)
	circles := canvaslab.NewCircles()
	circles.SetTemplate(NewSacredCircles(center, 2, WithRadius(30)))

	pts := circles.Points(nil, false)
	if len(pts) != 7 {
		t.Fatalf("placed %d circles, want 7", len(pts))
	}
	if d := pts[0].Distance(center); d > 1e-9 {
		t.Errorf("center circle is %v away from the origin", d)
	}
	for i, p := range pts[1:] {
		if d := p.Distance(center); math.Abs(d-30) > 1e-9 {
			t.Errorf("ring circle %d is %v from the origin, want 30", i+1, d)
		}
	}
	if first := pts[1]; math.Abs(first.X()-200) > 1e-9 || math.Abs(first.Y()-170) > 1e-9 {
		t.Errorf("foundation = %v, want (200, 170)", first)
	}
	for _, c := range circles.Items() {
		if c.Radius() != 30 {
			t.Errorf("Radius() = %v, want 30", c.Radius())
		}
	}
}

func TestSacredCirclesGroup(t *testing.T) {
	g := canvaslab.NewGroup()
	g.SetSurface("sacred")
	g.SetTemplate(NewSacredCircles(canvaslab.Pt(0, 0), 2))

	tests := []struct {
		name string
		got  int
	}{
		{"circles", g.Circles().Len()},
		{"ellipses", g.Ellipses().Len()},
		{"rectangles", g.Rectangles().Len()},
		{"rounded", g.RoundedRectangles().Len()},
		{"texts", g.Texts().Len()},
	}
	for _, tt := range tests {
		if tt.got != 7 {
			t.Errorf("%s Len() = %d, want 7", tt.name, tt.got)
		}
	}
	if g.Lines().Len() != 0 {
		t.Errorf("lines Len() = %d, want 0", g.Lines().Len())
	}

	for i, txt := range g.Texts().Items() {
		if txt.Text() != strconv.Itoa(i) {
			t.Errorf("text %d = %q, want %q", i, txt.Text(), strconv.Itoa(i))
		}
		if txt.Surface() != "sacred" {
			t.Errorf("text %d surface = %q, want %q", i, txt.Surface(), "sacred")
		}
	}

	e, _ := g.Ellipses().At(0)
	if r := e.Radii(); r.X() != DefaultRadius || r.Y() != DefaultRadius/2.0 {
		t.Errorf("ellipse radii = %v, want (%v, %v)", r, DefaultRadius, DefaultRadius/2.0)
	}
}

func TestSacredCirclesStylesCycle(t *testing.T) {
	red := canvaslab.NewStroke(canvaslab.RGB(255, 0, 0), 2)
	blue := canvaslab.NewStroke(canvaslab.RGB(0, 0, 255), 2)
	fill := canvaslab.NewFill(canvaslab.RGB(0, 255, 0))

	circles := canvaslab.NewCircles()
	circles.SetTemplate(NewSacredCircles(canvaslab.Pt(0, 0), 2, WithStrokes(red, blue), WithFills(fill)))

	// Every ring restarts the sequence at its foundation.
	items := circles.Items()
	want := []canvaslab.Rgb{red.Color(), red.Color(), blue.Color(), red.Color()}
	for i, c := range want {
		if got := items[i].Stroke().Color(); got != c {
			t.Errorf("stroke %d = %v, want %v", i, got, c)
		}
	}
	if items[0].Fill().Color() != fill.Color() {
		t.Errorf("fill = %v, want %v", items[0].Fill().Color(), fill.Color())
	}

	items[0].Stroke().SetWidth(9)
	if items[2].Stroke().Width() != 2 {
		t.Error("placed shapes share stroke state")
	}
}

func TestSacredCirclesGradientPerShape(t *testing.T) {
	black := canvaslab.RGB(0, 0, 0)
	fill := canvaslab.DefaultFill()
	fill.SetGradient(canvaslab.NewRadial(canvaslab.Pt(0, 0), 1, canvaslab.Pt(0, 0), 10,
		canvaslab.NewStop(black, 0), canvaslab.NewStop(canvaslab.RGB(255, 255, 255), 1)))

	g := canvaslab.NewGroup()
	g.SetTemplate(NewSacredCircles(canvaslab.Pt(0, 0), 2, WithFills(fill)))

	circles := g.Circles().Items()
	circles[0].Fill().Gradient().StopColorCycle(canvaslab.RGB(200, 0, 0), canvaslab.RGB(255, 0, 0), 0, 0, 1)

	if got := circles[1].Fill().Gradient().Stops()[0].Color(); got != black {
		t.Errorf("second circle stop = %v, want %v", got, black)
	}
	if got := g.Ellipses().Items()[0].Fill().Gradient().Stops()[0].Color(); got != black {
		t.Errorf("ellipse at the same placement stop = %v, want %v", got, black)
	}
	if got := fill.Gradient().Stops()[0].Color(); got != black {
		t.Errorf("template fill stop = %v, want %v", got, black)
	}
}

func TestSacredCirclesReverse(t *testing.T) {
	forward := canvaslab.NewCircles()
	forward.SetTemplate(NewSacredCircles(canvaslab.Pt(0, 0), 3))
	reversed := canvaslab.NewCircles()
	reversed.SetTemplate(NewSacredCircles(canvaslab.Pt(0, 0), 3, WithReverse(true)))

	a, b := forward.Points(nil, false), reversed.Points(nil, false)
	slices.Reverse(b)
	if !slices.Equal(a, b) {
		t.Error("reversed placement is not the forward placement reversed")
	}

	g := canvaslab.NewGroup()
	g.SetTemplate(NewSacredCircles(canvaslab.Pt(0, 0), 2, WithReverse(true)))
	if first, _ := g.Texts().At(0); first.Text() != "0" {
		t.Errorf("first text = %q, want texts left in placement order", first.Text())
	}
	if c, _ := g.Circles().At(6); *c.Point() != (canvaslab.Pt(0, 0)) {
		t.Errorf("last circle = %v, want the center circle", c.Point())
	}
}

func TestSacredCirclesUnsupportedMaster(t *testing.T) {
	var buf bytes.Buffer
	orig := canvaslab.Logger()
	canvaslab.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { canvaslab.SetLogger(orig) })

	lines := canvaslab.NewLines()
	lines.SetTemplate(NewSacredCircles(canvaslab.Pt(0, 0), 2))
	if lines.Len() != 0 {
		t.Errorf("Len() = %d, want 0", lines.Len())
	}
	if !strings.Contains(buf.String(), "cannot hold sacred circles") {
		t.Errorf("expected a master warning, got: %s", buf.String())
	}
}

func TestSacredCirclesSetters(t *testing.T) {
	s := NewSacredCircles(canvaslab.Pt(0, 0), 2)
	s.SetRadius(-1)
	s.SetIterations(-3)
	s.SetDegrees()
	if s.Radius() != DefaultRadius || s.Iterations() != 2 || len(s.Degrees()) != 7 {
		t.Errorf("template = radius %v iterations %d degrees %v, want defaults kept",
			s.Radius(), s.Iterations(), s.Degrees())
	}
}
