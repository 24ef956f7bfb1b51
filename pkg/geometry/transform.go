package geometry

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// Transform places a child shape in world space under an affine matrix
// without copying its geometry. Rays are carried into object space with the
// inverse matrix, so t values are the same in both spaces.
type Transform struct {
	Child  Shape
	Matrix core.Mat4

	inverse      core.Mat4
	normalMatrix core.Mat4 // Inverse transpose, for mapping normals to world space
	bbox         core.AABB
}

// NewTransform wraps child with the object-to-world matrix m.
// A singular matrix collapses space and cannot be inverted, so it panics.
func NewTransform(child Shape, m core.Mat4) *Transform {
	inverse, ok := m.Inverse()
	if !ok {
		panic("geometry: transform matrix is not invertible")
	}

	t := &Transform{
		Child:        child,
		Matrix:       m,
		inverse:      inverse,
		normalMatrix: inverse.Transpose(),
	}
	t.bbox = t.computeBoundingBox()
	return t
}

// computeBoundingBox transforms the eight corners of the child's box and
// encloses them. Rotations make the result looser than the true bound.
func (t *Transform) computeBoundingBox() core.AABB {
	childBox := t.Child.BoundingBox()
	if childBox.IsInfinite() {
		return core.UniverseAABB
	}

	corners := childBox.Corners()
	for i := range corners {
		corners[i] = t.Matrix.MulPoint(corners[i])
	}
	return core.NewAABBFromPoints(corners[:]...)
}

// toObject converts a world-space ray into the child's space
func (t *Transform) toObject(ray core.Ray) core.Ray {
	return core.NewRayAtTime(t.inverse.MulPoint(ray.Origin), t.inverse.MulVector(ray.Direction), ray.Time)
}

// toWorld maps an object-space hit back into world space and tags it with
// this placement
func (t *Transform) toWorld(hit *Intersection, ray core.Ray) {
	outward := t.normalMatrix.MulVector(hit.OutwardNormal()).Normalize()
	hit.Point = t.Matrix.MulPoint(hit.Point)
	hit.SetFaceNormal(ray, outward)
	hit.placedBy(t)
}

// Intersect delegates to the child in object space and converts every hit back
func (t *Transform) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	if !t.bbox.Hit(ray, rayT) {
		return xs
	}

	start := len(xs)
	xs = t.Child.Intersect(t.toObject(ray), rayT, sampler, xs)
	for i := start; i < len(xs); i++ {
		t.toWorld(&xs[i], ray)
	}
	return xs
}

// Hit finds the child's nearest hit in object space
func (t *Transform) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (Intersection, bool) {
	if !t.bbox.Hit(ray, rayT) {
		return Intersection{}, false
	}

	hit, ok := Nearest(t.Child, t.toObject(ray), rayT, sampler)
	if !ok {
		return Intersection{}, false
	}
	t.toWorld(&hit, ray)
	return hit, true
}

// BoundingBox returns the world-space box
func (t *Transform) BoundingBox() core.AABB {
	return t.bbox
}
