package material

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Outside is assumed to be vacuum
	n1, n2 := 1.0, d.RefractiveIndex
	if !hit.FrontFace {
		n1, n2 = d.RefractiveIndex, 1.0
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)

	// Schlick returns exactly 1 under total internal reflection, so this
	// comparison always reflects in that case
	var direction core.Vec3
	if Schlick(cosTheta, n1, n2) > sampler.Get1D() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, n1/n2)
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// Emitted returns black; glass does not emit
func (d *Dielectric) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return black
}

// Shading describes clear glass for the deterministic integrator
func (d *Dielectric) Shading(uv core.Vec2, point core.Vec3) Phong {
	phong := DefaultPhong()
	phong.Color = NewSolidColor(core.NewVec3(0, 0, 0))
	phong.Ambient = 0
	phong.Diffuse = 0.1
	phong.Specular = 1
	phong.Shininess = 300
	phong.Reflective = 1
	phong.Transparency = 1
	phong.RefractiveIndex = d.RefractiveIndex
	return phong
}

// Schlick approximates the Fresnel reflectance for light travelling from a
// medium with index n1 into one with index n2. cosine is the cosine of the
// angle between the incoming direction and the normal on the n1 side. Under
// total internal reflection it returns exactly 1.
func Schlick(cosine, n1, n2 float64) float64 {
	if n1 > n2 {
		ratio := n1 / n2
		sin2T := ratio * ratio * (1.0 - cosine*cosine)
		if sin2T > 1.0 {
			return 1.0
		}
		// Use the transmitted angle when leaving the denser medium
		cosine = math.Sqrt(1.0 - sin2T)
	}

	r0 := (n1 - n2) / (n1 + n2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
