// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides a CPU surface.Canvas that draws into an
// *image.RGBA.
//
// Paths are flattened in device space and scan-converted with
// golang.org/x/image/vector into coverage masks, which are then
// composited with the fill or stroke paint. Shadows blur a copy of the
// mask. Images are resampled with golang.org/x/image/draw.
//
// Importing the package registers the "raster" backend:
//
//	import _ "github.com/gogpu/canvaslab/surface/raster"
//
//	c, err := surface.NewCanvasByName("raster", surface.Options{Width: 400, Height: 400})
package raster
