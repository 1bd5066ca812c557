// Package filter provides the blur used for canvas drop shadows.
//
// Blurs operate on alpha coverage masks with a separable Gaussian kernel,
// processing horizontal and vertical passes independently.
package filter
