package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Cone is a double-napped cone around the Y axis in object space whose
// radius at height y is |y|, truncated to Minimum < y < Maximum, with
// optional end caps
type Cone struct {
	Minimum  float64
	Maximum  float64
	Closed   bool
	Material material.Material
}

// NewCone creates a cone spanning y in (minimum, maximum)
func NewCone(minimum, maximum float64, closed bool, mat material.Material) *Cone {
	return &Cone{Minimum: minimum, Maximum: maximum, Closed: closed, Material: mat}
}

// NewConeBetween creates a pointed cone with its circular base of the given
// radius at baseCenter and its apex at apex
func NewConeBetween(baseCenter, apex core.Vec3, baseRadius float64, capped bool, mat material.Material) *Transform {
	// The object-space nappe y in [-1, 0] has radius 1 at y=-1 and its apex at y=0
	return NewTransform(NewCone(-1, 0, capped, mat), axisFrame(apex, apex.Add(apex.Subtract(baseCenter)), baseRadius))
}

// Intersect reports hits on the conical wall and, when closed, on both caps
func (c *Cone) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	o, d := ray.Origin, ray.Direction

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	var roots [2]float64
	n := 0
	switch {
	case math.Abs(a) < parallelEpsilon:
		// Ray parallel to one nappe crosses the other exactly once
		if math.Abs(b) >= parallelEpsilon {
			roots[0] = -cc / (2 * b)
			n = 1
		}
	default:
		discriminant := b*b - 4*a*cc
		if discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)
			roots[0] = (-b - sqrtD) / (2 * a)
			roots[1] = (-b + sqrtD) / (2 * a)
			n = 2
		}
	}

	for _, t := range roots[:n] {
		y := o.Y + t*d.Y
		if y <= c.Minimum || y >= c.Maximum || !rayT.Contains(t) {
			continue
		}
		point := ray.At(t)
		uv := core.NewVec2((math.Atan2(point.X, point.Z)+math.Pi)/(2*math.Pi), y)
		xs = append(xs, newIntersection(c, ray, t, point, coneNormal(point), uv, c.Material))
	}

	return c.intersectCaps(ray, rayT, xs)
}

// coneNormal returns the outward wall normal, falling back to the axis at the apex
func coneNormal(p core.Vec3) core.Vec3 {
	y := math.Sqrt(p.X*p.X + p.Z*p.Z)
	if p.Y > 0 {
		y = -y
	}
	n := core.NewVec3(p.X, y, p.Z)
	if n.NearZero() {
		return core.NewVec3(0, math.Copysign(1, p.Y), 0)
	}
	return n.Normalize()
}

// intersectCaps tests the planes y=Minimum and y=Maximum inside radius |y|
func (c *Cone) intersectCaps(ray core.Ray, rayT core.Interval, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(ray.Direction.Y) < parallelEpsilon {
		return xs
	}

	caps := [2]struct {
		y      float64
		normal core.Vec3
	}{
		{c.Minimum, core.NewVec3(0, -1, 0)},
		{c.Maximum, core.NewVec3(0, 1, 0)},
	}
	for _, cp := range caps {
		t := (cp.y - ray.Origin.Y) / ray.Direction.Y
		if !rayT.Contains(t) {
			continue
		}
		point := ray.At(t)
		if point.X*point.X+point.Z*point.Z > cp.y*cp.y+capEpsilon {
			continue
		}
		r := math.Max(math.Abs(cp.y), capEpsilon)
		uv := core.NewVec2((point.X/r+1)/2, (point.Z/r+1)/2)
		xs = append(xs, newIntersection(c, ray, t, point, cp.normal, uv, c.Material))
	}
	return xs
}

// BoundingBox returns the box enclosing both truncation radii
func (c *Cone) BoundingBox() core.AABB {
	r := math.Max(math.Abs(c.Minimum), math.Abs(c.Maximum))
	return core.NewAABB(core.NewVec3(-r, c.Minimum, -r), core.NewVec3(r, c.Maximum, r))
}
