// Package canvaslab models drawable shapes as stateful objects and renders
// them onto a 2D canvas.
//
// # Overview
//
// Shapes (Circle, Ellipse, Line, Rectangle, RoundedRectangle, Text, Image,
// Polygon, Arrow) carry their own geometry, stroke, fill and shadow. Every
// property setter validates its input: an invalid value is dropped, the
// previous value is kept and the rejection is logged at debug level.
// Nothing panics on bad data.
//
// Shapes of one kind are kept in a [Collection]; a [Group] holds one
// collection per basic kind. Assigning a [Template] to a collection or
// group lets it populate its master procedurally. The SacredCircles
// template lives in the templates sub-package.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/canvaslab"
//	    "github.com/gogpu/canvaslab/surface"
//	    "github.com/gogpu/canvaslab/surface/raster"
//	)
//
//	dc := raster.New(400, 400)
//	surface.Bind("canvas", dc)
//
//	c := canvaslab.NewCircle(canvaslab.Pt(200, 200), 50,
//	    canvaslab.WithFill(canvaslab.NewFill(canvaslab.RGB(255, 0, 0))))
//	if err := c.Draw(); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("circle.png")
//
// # Canvases
//
// Shapes draw on a canvas looked up by identifier in the surface package
// at draw time. An unknown identifier falls back to [surface.DefaultID];
// when nothing is bound the draw is skipped with a warning.
//
// # Images
//
// Image shapes and pattern fills load their pixels asynchronously through
// a [Loader]. The deferred drawing runs when the host pumps the loader's
// [Scheduler] with RunPending or Wait.
//
// # Logging
//
// canvaslab is silent by default. Use [SetLogger] to route its diagnostics
// to a log/slog handler.
package canvaslab
