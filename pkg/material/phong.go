package material

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// Phong holds the deterministic shading parameters used with point lights.
// It is also a Material in its own right so Phong scenes can be path traced,
// where it behaves as a lambertian surface (or mirror/glass by its flags).
type Phong struct {
	Color           ColorSource
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0 = matte, 1 = perfect mirror
	Transparency    float64 // 0 = opaque, 1 = fully transmits light
	RefractiveIndex float64
}

// Shader is implemented by materials that can describe themselves in Phong terms
type Shader interface {
	Shading(uv core.Vec2, point core.Vec3) Phong
}

// DefaultPhong returns a white, non-reflective, opaque surface
func DefaultPhong() Phong {
	return Phong{
		Color:           NewSolidColor(core.NewVec3(1, 1, 1)),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		RefractiveIndex: 1,
	}
}

// NewPhong creates a default Phong material with a solid color
func NewPhong(color core.Vec3) *Phong {
	phong := DefaultPhong()
	phong.Color = NewSolidColor(color)
	return &phong
}

// ShadingOf returns the Phong parameters for any material at a surface point.
// Materials without a Phong description shade as a plain default surface.
func ShadingOf(m Material, uv core.Vec2, point core.Vec3) Phong {
	if shader, ok := m.(Shader); ok {
		return shader.Shading(uv, point)
	}
	return DefaultPhong()
}

// Shading returns the Phong parameters themselves
func (p *Phong) Shading(uv core.Vec2, point core.Vec3) Phong {
	return *p
}

// Lighting computes ambient, diffuse and specular light arriving from a
// single point light. lightFactor scales the diffuse and specular terms
// (0 = fully shadowed, 1 = unobstructed).
func (p Phong) Lighting(point, lightPosition, lightIntensity, eyev, normalv core.Vec3, uv core.Vec2, lightFactor float64) core.Vec3 {
	effectiveColor := p.Color.Evaluate(uv, point).MultiplyVec(lightIntensity)
	ambient := effectiveColor.Multiply(p.Ambient)

	toLight := lightPosition.Subtract(point)
	if toLight.NearZero() || lightFactor <= 0 {
		return ambient
	}
	lightv := toLight.Normalize()

	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effectiveColor.Multiply(p.Diffuse * lightDotNormal)

	specular := core.NewVec3(0, 0, 0)
	reflectv := core.Reflect(lightv.Negate(), normalv)
	if reflectDotEye := reflectv.Dot(eyev); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, p.Shininess)
		specular = lightIntensity.Multiply(p.Specular * factor)
	}

	return ambient.Add(diffuse.Add(specular).Multiply(lightFactor))
}

// Scatter treats the Phong surface stochastically: transparent surfaces
// behave as glass, reflective ones as mirrors, and the rest as lambertian
func (p *Phong) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch {
	case p.Transparency > 0 && sampler.Get1D() < p.Transparency:
		return NewDielectric(p.RefractiveIndex).Scatter(rayIn, hit, sampler)
	case p.Reflective > 0 && sampler.Get1D() < p.Reflective:
		return NewMetal(p.Color.Evaluate(hit.UV, hit.Point), 0).Scatter(rayIn, hit, sampler)
	default:
		return NewTexturedLambertian(p.Color).Scatter(rayIn, hit, sampler)
	}
}

// Emitted returns black
func (p *Phong) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return black
}
