package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// Isotropic scatters uniformly in every direction. It is the phase function
// of participating media and ignores the surface normal.
type Isotropic struct {
	Albedo ColorSource
}

// NewIsotropic creates an isotropic phase function with a solid albedo
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function with a textured albedo
func NewTexturedIsotropic(albedo ColorSource) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniformly random direction over the full sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, core.RandomUnitVector(sampler), rayIn.Time),
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}

// Emitted returns black
func (i *Isotropic) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return black
}
