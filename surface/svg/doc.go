// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svg provides a surface.Canvas that writes an SVG document
// using github.com/ajstarks/svgo.
//
// Geometry is emitted in device space, so the current transform is baked
// into path data. Gradients and patterns keep their user-space geometry
// through gradientTransform and patternTransform. Shadows become
// feDropShadow filters. Conic gradients have no SVG equivalent and are
// painted with their first stop color.
//
// Importing the package registers the "svg" backend.
package svg
