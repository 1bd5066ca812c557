// Command canvaslab renders a SacredCircles pattern to an image file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/canvaslab"
	"github.com/gogpu/canvaslab/surface"
	_ "github.com/gogpu/canvaslab/surface/raster" // register raster backend
	_ "github.com/gogpu/canvaslab/surface/svg"    // register svg backend
	"github.com/gogpu/canvaslab/templates"
)

func main() {
	var (
		width      = flag.Int("width", 400, "canvas width")
		height     = flag.Int("height", 400, "canvas height")
		iterations = flag.Int("iterations", 3, "number of rings")
		radius     = flag.Float64("radius", templates.DefaultRadius, "distance between shapes")
		master     = flag.String("master", "circles", "shapes to place: circles, ellipses, rectangles, roundedrectangles, texts or group")
		reverse    = flag.Bool("reverse", false, "draw the outer rings first")
		backend    = flag.String("backend", "", "canvas backend (default: best available)")
		background = flag.String("background", "", "image drawn behind the pattern")
		output     = flag.String("output", "sacred.png", "output file")
		verbose    = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		canvaslab.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	dc, err := newCanvas(*backend, *width, *height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	surface.Bind(surface.DefaultID, dc)

	if *background != "" {
		bg := canvaslab.NewImage(canvaslab.LoadImage(*background), canvaslab.Pt(0, 0),
			canvaslab.NewAspect(float64(*width), float64(*height)))
		_ = bg.Draw()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := canvaslab.DefaultLoader().Scheduler().Wait(ctx)
		cancel()
		if err != nil {
			log.Fatalf("Failed to load background: %v", err)
		}
	}

	target, err := newMaster(*master)
	if err != nil {
		log.Fatal(err)
	}
	center := canvaslab.Pt(float64(*width)/2, float64(*height)/2)
	tpl := templates.NewSacredCircles(center, *iterations,
		templates.WithRadius(*radius),
		templates.WithReverse(*reverse),
		templates.WithStrokes(
			canvaslab.NewStroke(canvaslab.Hex("#1d3557"), 1),
			canvaslab.NewStroke(canvaslab.Hex("#e63946"), 1),
		),
	)
	target.SetTemplate(tpl)
	if err := target.Draw(); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	if err := save(dc, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Saved %d shapes to %s (%dx%d)\n", tpl.TotalObjects(), *output, *width, *height)
}

// drawable is the part of a collection or group main works through.
type drawable interface {
	SetTemplate(t canvaslab.Template)
	Draw() error
}

func newMaster(name string) (drawable, error) {
	switch name {
	case "circles":
		return canvaslab.NewCircles(), nil
	case "ellipses":
		return canvaslab.NewEllipses(), nil
	case "rectangles":
		return canvaslab.NewRectangles(), nil
	case "roundedrectangles":
		return canvaslab.NewRoundedRectangles(), nil
	case "texts":
		return canvaslab.NewTexts(), nil
	case "group":
		return canvaslab.NewGroup(), nil
	}
	return nil, fmt.Errorf("unknown master %q", name)
}

func newCanvas(backend string, width, height int) (surface.Canvas, error) {
	opts := surface.Options{Width: width, Height: height}
	if backend == "" {
		return surface.NewCanvas(opts)
	}
	return surface.NewCanvasByName(backend, opts)
}

func save(dc surface.Canvas, path string) error {
	switch c := dc.(type) {
	case interface{ SavePNG(string) error }:
		return c.SavePNG(path)
	case interface{ SaveFile(string) error }:
		return c.SaveFile(path)
	}
	return fmt.Errorf("backend %T cannot be saved", dc)
}
