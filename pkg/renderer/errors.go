package renderer

import "errors"

var (
	// ErrInvalidConfig is returned when a render is requested with settings that cannot produce an image
	ErrInvalidConfig = errors.New("renderer: invalid render configuration")

	// ErrCanvasMismatch is returned when resuming onto a canvas whose size differs from the scene
	ErrCanvasMismatch = errors.New("renderer: canvas does not match scene")
)
