package geometry

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices, with
// optional per-vertex normals for smooth shading
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	Material   material.Material

	// Per-vertex normals; only used when smooth is true
	N0, N1, N2 core.Vec3

	smooth bool
	edge1  core.Vec3 // V1 - V0
	edge2  core.Vec3 // V2 - V0
	normal core.Vec3 // Cached flat normal
	bbox   core.AABB
}

// NewTriangle creates a flat-shaded triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		edge1:    v1.Subtract(v0),
		edge2:    v2.Subtract(v0),
		bbox:     core.NewAABBFromPoints(v0, v1, v2),
	}

	// Degenerate triangles keep a zero normal and can never be hit
	if cross := t.edge1.Cross(t.edge2); !cross.NearZero() {
		t.normal = cross.Normalize()
	}
	return t
}

// NewSmoothTriangle creates a triangle that interpolates the given vertex
// normals across its surface
func NewSmoothTriangle(v0, v1, v2, n0, n1, n2 core.Vec3, mat material.Material) *Triangle {
	t := NewTriangle(v0, v1, v2, mat)
	t.N0, t.N1, t.N2 = n0, n1, n2
	t.smooth = true
	return t
}

// Intersect uses the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	h := ray.Direction.Cross(t.edge2)
	det := t.edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if det > -parallelEpsilon && det < parallelEpsilon {
		return xs
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return xs
	}

	q := s.Cross(t.edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return xs
	}

	tHit := f * t.edge2.Dot(q)
	if !rayT.Contains(tHit) {
		return xs
	}

	return append(xs, newIntersection(t, ray, tHit, ray.At(tHit), t.NormalAt(u, v), core.NewVec2(u, v), t.Material))
}

// NormalAt returns the surface normal at barycentric coordinates (u, v),
// weighting V1 by u and V2 by v
func (t *Triangle) NormalAt(u, v float64) core.Vec3 {
	if !t.smooth {
		return t.normal
	}
	n := t.N1.Multiply(u).Add(t.N2.Multiply(v)).Add(t.N0.Multiply(1 - u - v))
	if n.NearZero() {
		return t.normal
	}
	return n.Normalize()
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's flat normal vector
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
