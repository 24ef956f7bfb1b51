package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// parallelEpsilon is the |direction·normal| below which a ray is treated as
// parallel to a flat surface
const parallelEpsilon = 1e-8

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal vector
	Material material.Material

	u, v core.Vec3 // Tangent basis for texture coordinates
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	n := normal.Normalize()

	// Pick any axis not parallel to the normal to build the tangent basis
	helper := core.NewVec3(1, 0, 0)
	if math.Abs(n.X) > 0.9 {
		helper = core.NewVec3(0, 1, 0)
	}
	u := helper.Cross(n).Normalize()

	return &Plane{
		Point:    point,
		Normal:   n,
		Material: mat,
		u:        u,
		v:        n.Cross(u),
	}
}

// Intersect reports the single crossing with the plane, if any
func (p *Plane) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < parallelEpsilon {
		return xs
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !rayT.Contains(t) {
		return xs
	}

	point := ray.At(t)
	local := point.Subtract(p.Point)
	uv := core.NewVec2(local.Dot(p.u), local.Dot(p.v))
	return append(xs, newIntersection(p, ray, t, point, p.Normal, uv, p.Material))
}

// BoundingBox is unbounded for an infinite plane
func (p *Plane) BoundingBox() core.AABB {
	return core.UniverseAABB
}
