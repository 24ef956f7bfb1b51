package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// capEpsilon widens the cap test so points on the rim count as cap hits
const capEpsilon = 1e-6

// Cylinder is a unit-radius cylinder around the Y axis in object space,
// truncated to Minimum < y < Maximum, with optional end caps
type Cylinder struct {
	Minimum  float64
	Maximum  float64
	Closed   bool
	Material material.Material
}

// NewCylinder creates a cylinder spanning y in (minimum, maximum)
func NewCylinder(minimum, maximum float64, closed bool, mat material.Material) *Cylinder {
	return &Cylinder{Minimum: minimum, Maximum: maximum, Closed: closed, Material: mat}
}

// NewInfiniteCylinder creates an open cylinder with no truncation
func NewInfiniteCylinder(mat material.Material) *Cylinder {
	return NewCylinder(math.Inf(-1), math.Inf(1), false, mat)
}

// NewCylinderBetween creates a cylinder of the given radius whose axis runs
// from baseCenter to topCenter in world space
func NewCylinderBetween(baseCenter, topCenter core.Vec3, radius float64, capped bool, mat material.Material) *Transform {
	return NewTransform(NewCylinder(0, 1, capped, mat), axisFrame(baseCenter, topCenter, radius))
}

// Intersect reports hits on the curved wall and, when closed, on both caps
func (c *Cylinder) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	o, d := ray.Origin, ray.Direction

	a := d.X*d.X + d.Z*d.Z
	// Rays parallel to the axis can only hit the caps
	if math.Abs(a) >= parallelEpsilon {
		b := 2*o.X*d.X + 2*o.Z*d.Z
		cc := o.X*o.X + o.Z*o.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return xs
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		for _, t := range [2]float64{t0, t1} {
			y := o.Y + t*d.Y
			if y <= c.Minimum || y >= c.Maximum || !rayT.Contains(t) {
				continue
			}
			point := ray.At(t)
			normal := core.NewVec3(point.X, 0, point.Z).Normalize()
			xs = append(xs, newIntersection(c, ray, t, point, normal, c.wallUV(point), c.Material))
		}
	}

	return c.intersectCaps(ray, rayT, xs)
}

// intersectCaps tests the planes y=Minimum and y=Maximum inside radius 1
func (c *Cylinder) intersectCaps(ray core.Ray, rayT core.Interval, xs []Intersection) []Intersection {
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
		if point.X*point.X+point.Z*point.Z > 1+capEpsilon {
			continue
		}
		uv := core.NewVec2((point.X+1)/2, (point.Z+1)/2)
		xs = append(xs, newIntersection(c, ray, t, point, cp.normal, uv, c.Material))
	}
	return xs
}

func (c *Cylinder) wallUV(p core.Vec3) core.Vec2 {
	u := (math.Atan2(p.X, p.Z) + math.Pi) / (2 * math.Pi)
	v := p.Y
	if !math.IsInf(c.Minimum, 0) && !math.IsInf(c.Maximum, 0) && c.Maximum > c.Minimum {
		v = (p.Y - c.Minimum) / (c.Maximum - c.Minimum)
	}
	return core.NewVec2(u, v)
}

// BoundingBox returns the unit-radius box between Minimum and Maximum
func (c *Cylinder) BoundingBox() core.AABB {
	return core.NewAABB(core.NewVec3(-1, c.Minimum, -1), core.NewVec3(1, c.Maximum, 1))
}

// axisFrame maps the object-space Y axis segment [0, 1] onto base..top and
// scales X and Z by radius
func axisFrame(base, top core.Vec3, radius float64) core.Mat4 {
	axisVector := top.Subtract(base)
	height := axisVector.Length()
	axis := axisVector.Normalize()

	helper := core.NewVec3(1, 0, 0)
	if math.Abs(axis.X) > 0.9 {
		helper = core.NewVec3(0, 0, 1)
	}
	u := helper.Cross(axis).Normalize()
	w := u.Cross(axis)

	columns := [4]core.Vec3{u.Multiply(radius), axis.Multiply(height), w.Multiply(radius), base}
	m := core.Identity()
	for col, v := range columns {
		m[0][col], m[1][col], m[2][col] = v.X, v.Y, v.Z
	}
	return m
}
