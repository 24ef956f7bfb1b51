package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3 // One corner of the quad
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Normal   core.Vec3 // Unit normal (U × V)
	Material material.Material

	d    float64   // Plane equation constant: normal · p = d
	w    core.Vec3 // n / (n·n) for projecting hits onto the (U, V) basis
	bbox core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	// Bounding box of all four vertices
	bbox := core.NewAABBFromPoints(corner, corner.Add(u), corner.Add(v), corner.Add(u).Add(v))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		d:        normal.Dot(corner),
		w:        n.Multiply(1.0 / n.Dot(n)),
		bbox:     bbox,
	}
}

// Intersect reports the crossing with the quad when it falls inside the unit square of (U, V)
func (q *Quad) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	denominator := ray.Direction.Dot(q.Normal)
	if math.Abs(denominator) < parallelEpsilon {
		return xs
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denominator
	if !rayT.Contains(t) {
		return xs
	}

	// Express the hit point in the plane's (U, V) basis
	point := ray.At(t)
	planar := point.Subtract(q.Corner)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))

	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return xs
	}

	return append(xs, newIntersection(q, ray, t, point, q.Normal, core.NewVec2(alpha, beta), q.Material))
}

// BoundingBox returns the padded box around the four vertices
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// NewBoxQuads returns the six quad faces of the axis-aligned box with
// opposite corners a and b, grouped so they can be transformed together
func NewBoxQuads(a, b core.Vec3, mat material.Material) *Group {
	minP := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	maxP := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(maxP.X-minP.X, 0, 0)
	dy := core.NewVec3(0, maxP.Y-minP.Y, 0)
	dz := core.NewVec3(0, 0, maxP.Z-minP.Z)

	return NewGroup(
		NewQuad(core.NewVec3(minP.X, minP.Y, maxP.Z), dx, dy, mat),         // front
		NewQuad(core.NewVec3(maxP.X, minP.Y, maxP.Z), dz.Negate(), dy, mat), // right
		NewQuad(core.NewVec3(maxP.X, minP.Y, minP.Z), dx.Negate(), dy, mat), // back
		NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dz, dy, mat),          // left
		NewQuad(core.NewVec3(minP.X, maxP.Y, maxP.Z), dx, dz.Negate(), mat), // top
		NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dx, dz, mat),          // bottom
	)
}
