package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Sphere represents a sphere shape, optionally moving linearly over the shutter interval
type Sphere struct {
	Center   core.Vec3 // Center at time 0
	Radius   float64
	Material material.Material

	motion core.Vec3 // Displacement of the center between time 0 and time 1
	bbox   core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return NewMovingSphere(center, center, radius, mat)
}

// NewMovingSphere creates a sphere whose center travels from center0 at
// time 0 to center1 at time 1
func NewMovingSphere(center0, center1 core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	box0 := core.NewAABB(center0.Subtract(rvec), center0.Add(rvec))
	box1 := core.NewAABB(center1.Subtract(rvec), center1.Add(rvec))

	return &Sphere{
		Center:   center0,
		Radius:   radius,
		Material: mat,
		motion:   center1.Subtract(center0),
		bbox:     box0.Union(box1),
	}
}

// CenterAt returns the sphere center at the given shutter time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.Add(s.motion.Multiply(time))
}

// Intersect reports every root of |O + tD - C|² = r² inside rayT
func (s *Sphere) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	center := s.CenterAt(ray.Time)

	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2ht + c = 0
	a := ray.Direction.LengthSquared()
	h := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 || a == 0 {
		return xs
	}

	sqrtD := math.Sqrt(discriminant)
	for _, root := range [2]float64{(-h - sqrtD) / a, (-h + sqrtD) / a} {
		if !rayT.Contains(root) {
			continue
		}
		point := ray.At(root)
		outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)
		xs = append(xs, newIntersection(s, ray, root, point, outwardNormal, sphereUV(outwardNormal), s.Material))
	}
	return xs
}

// BoundingBox returns the box swept by the sphere over the shutter interval
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis from X=-1, v runs from Y=-1 to Y=+1.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(core.NewInterval(-1, 1).Clamp(-p.Y))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
