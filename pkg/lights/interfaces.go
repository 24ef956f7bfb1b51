package lights

import "github.com/df07/go-raytracer/pkg/core"

// Light is an idealized light source used by deterministic shading. Lights
// are not part of the geometry, so they are never hit by rays.
type Light interface {
	// Sample returns the light arriving at point
	Sample(point core.Vec3) LightSample
}

// LightSample describes a light as seen from a shading point
type LightSample struct {
	Position  core.Vec3 // Light position
	Direction core.Vec3 // Unit direction from the shading point to the light
	Distance  float64   // Distance to the light
	Intensity core.Vec3 // Light intensity arriving at the shading point
}
