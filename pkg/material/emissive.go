package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emission ColorSource // Emitted light color/intensity
}

// NewDiffuseLight creates a new emissive material with a uniform color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates an emissive material whose emission varies over the surface
func NewTexturedDiffuseLight(emission ColorSource) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter never scatters; light sources terminate paths
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emitted light for this material
func (e *DiffuseLight) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return e.Emission.Evaluate(uv, point)
}

// Shading renders the emitter as fully ambient so it appears at its own color
func (e *DiffuseLight) Shading(uv core.Vec2, point core.Vec3) Phong {
	return Phong{
		Color:           NewSolidColor(e.Emission.Evaluate(uv, point)),
		Ambient:         1,
		RefractiveIndex: 1,
	}
}

// Flat absorbs every ray and emits nothing
type Flat struct{}

// Scatter never scatters
func (Flat) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns black
func (Flat) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return black
}
