package integrator

import (
	"errors"
	"fmt"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/scene"
)

// ErrUnknownIntegrator is returned when an integrator name is not recognized
var ErrUnknownIntegrator = errors.New("integrator: unknown integrator")

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along a single camera ray.
	// The sampler is the pixel's private random stream.
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3
}

// New creates the integrator registered under name
func New(name string, config scene.SamplingConfig) (Integrator, error) {
	switch name {
	case scene.IntegratorPath:
		return NewPathTracingIntegrator(config), nil
	case scene.IntegratorWhitted:
		return NewWhittedIntegrator(config), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntegrator, name)
	}
}
