// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the drawing surface shapes render onto.
//
// A [Canvas] exposes the familiar canvas-2D operation set: state
// save/restore, transforms, paints, path construction, stroke and fill,
// image blits and text. Shapes only ever talk to this interface, so any
// backend that implements it can be drawn on.
//
// # Named canvases
//
// Shapes bind to canvases by identifier. [Bind] publishes a canvas under
// an identifier and [Resolve] looks one up, falling back to [DefaultID]
// when the requested identifier is unknown:
//
//	rec := surface.NewRecorder(800, 600)
//	surface.Bind("canvas", rec)
//	defer surface.Unbind("canvas")
//
// # Backends
//
// Canvas implementations register themselves in a priority-ordered
// registry, mirroring how drivers register with database/sql:
//
//	import _ "github.com/gogpu/canvaslab/surface/raster"
//
//	c, err := surface.NewCanvasByName("raster", surface.Options{Width: 800, Height: 600})
//
// The built-in "recording" backend captures every call as a [Command]
// and can replay it onto any other canvas.
//
// # Thread Safety
//
// Canvases are not safe for concurrent use. The binding table and the
// backend registry are.
package surface
