// Package templates provides generative templates that populate
// canvaslab collections and groups.
//
// [SacredCircles] lays shapes out in concentric hexagonal rings:
//
//	circles := canvaslab.NewCircles()
//	circles.SetSurface("canvas")
//	circles.SetTemplate(templates.NewSacredCircles(canvaslab.Pt(200, 200), 3))
//	circles.Draw()
package templates
