package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Normal plus a random unit vector is cosine-distributed about the normal
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// Catch the degenerate case where the random vector cancels the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, scatterDirection, rayIn.Time),
		Attenuation: l.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}

// Emitted returns black; diffuse surfaces do not emit
func (l *Lambertian) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return black
}

// Shading describes the lambertian surface for the deterministic integrator
func (l *Lambertian) Shading(uv core.Vec2, point core.Vec3) Phong {
	phong := DefaultPhong()
	phong.Color = NewSolidColor(l.Albedo.Evaluate(uv, point))
	phong.Specular = 0
	return phong
}
