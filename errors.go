package canvaslab

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by Shape.Draw. Only concrete shapes know
// how to draw themselves.
var ErrNotImplemented = errors.New("canvaslab: draw is not implemented by the base shape")

// LoadError is reported when an image resource cannot be loaded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("canvaslab: load image %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
