package scene

import "errors"

var (
	ErrNoShapes     = errors.New("scene: scene contains no shapes")
	ErrUnknownScene = errors.New("scene: unknown scene")
)
