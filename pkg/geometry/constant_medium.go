package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// mediumExitEpsilon keeps the exit search from finding the entry point again
const mediumExitEpsilon = 0.0001

// ConstantMedium fills a closed boundary shape with a homogeneous
// participating medium such as smoke or fog. Rays scatter inside it at an
// exponentially distributed distance controlled by Density.
type ConstantMedium struct {
	Boundary      Shape
	Density       float64
	PhaseFunction material.Material

	negInvDensity float64
}

// NewConstantMedium creates a medium with an isotropic phase function of the given albedo
func NewConstantMedium(boundary Shape, density float64, albedo material.ColorSource) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1.0 / density,
	}
}

// Intersect samples a scattering distance inside the boundary. Without a
// sampler the medium is invisible, so deterministic callers such as shadow
// tests pass straight through it.
func (m *ConstantMedium) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	if sampler == nil {
		return xs
	}

	entry, ok := Nearest(m.Boundary, ray, core.Universe, sampler)
	if !ok {
		return xs
	}
	exit, ok := Nearest(m.Boundary, ray, core.NewInterval(entry.T+mediumExitEpsilon, math.Inf(1)), sampler)
	if !ok {
		return xs
	}

	t1 := math.Max(entry.T, rayT.Min)
	t2 := math.Min(exit.T, rayT.Max)
	if t1 >= t2 {
		return xs
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return xs
	}

	t := t1 + hitDistance/rayLength
	hit := Intersection{
		HitRecord: material.HitRecord{
			Point:     ray.At(t),
			Normal:    core.NewVec3(1, 0, 0), // Arbitrary; isotropic scattering ignores it
			T:         t,
			FrontFace: true,
			Material:  m.PhaseFunction,
		},
		Object: m,
	}
	return append(xs, hit)
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
