package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	return &Metal{Albedo: albedo, Fuzzness: core.NewInterval(0, 1).Clamp(fuzzness)}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction, hit.Normal).Normalize()

	// Add fuzziness by perturbing the reflection direction
	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzzness))
	}

	// Perturbations that point into the surface are absorbed
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, reflected, rayIn.Time),
		Attenuation: m.Albedo,
	}, true
}

// Emitted returns black; metals do not emit
func (m *Metal) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return black
}

// Shading describes the metal as a mirror for the deterministic integrator
func (m *Metal) Shading(uv core.Vec2, point core.Vec3) Phong {
	phong := DefaultPhong()
	phong.Color = NewSolidColor(m.Albedo)
	phong.Diffuse = 0.3
	phong.Reflective = 1 - m.Fuzzness
	return phong
}
