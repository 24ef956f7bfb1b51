package geometry

import (
	"sort"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Shape is anything a ray can intersect. Every primitive, wrapper and
// aggregate implements it, so they compose freely.
type Shape interface {
	// Intersect appends every intersection of the ray with the shape whose t
	// lies in rayT and returns the extended slice. Hits are not required to
	// be sorted. The sampler is only consulted by stochastic shapes such as
	// participating media; deterministic shapes ignore it.
	Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection

	// BoundingBox returns a box enclosing the shape in its own coordinate space
	BoundingBox() core.AABB
}

// Hitter is implemented by shapes that can find their nearest hit faster
// than collecting and scanning every intersection (BVHs and groups)
type Hitter interface {
	Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (Intersection, bool)
}

// Intersection is a hit record tagged with the primitive that produced it.
// Object is the leaf primitive; Instance tells apart placements of the same
// leaf under different transforms.
type Intersection struct {
	material.HitRecord
	Object Shape

	placement placement
}

// placement is the chain of transforms a hit passed through. transform is
// the outermost one seen so far and inner the chain beneath it. It is a
// comparable value, so equal chains compare equal.
type placement struct {
	transform *Transform
	inner     any // placement beneath transform, nil when there is none
}

// InstanceKey identifies one placed surface: a leaf primitive together with
// the chain of transforms that positions it. Keys are comparable and serve
// as map keys for containment tracking and shadow deduplication.
type InstanceKey struct {
	object    Shape
	placement placement
}

// Instance returns the key of the placed surface this hit belongs to
func (x Intersection) Instance() InstanceKey {
	return InstanceKey{object: x.Object, placement: x.placement}
}

// placedBy records that the hit was carried out of t's object space
func (x *Intersection) placedBy(t *Transform) {
	if x.placement == (placement{}) {
		x.placement = placement{transform: t}
		return
	}
	x.placement = placement{transform: t, inner: x.placement}
}

// Nearest returns the intersection with the smallest t in rayT
func Nearest(shape Shape, ray core.Ray, rayT core.Interval, sampler core.Sampler) (Intersection, bool) {
	if hitter, ok := shape.(Hitter); ok {
		return hitter.Hit(ray, rayT, sampler)
	}

	var buf [4]Intersection
	xs := shape.Intersect(ray, rayT, sampler, buf[:0])
	return closest(xs)
}

// IntersectAll returns every intersection of the ray with the shape, sorted by t
func IntersectAll(shape Shape, ray core.Ray, rayT core.Interval, sampler core.Sampler) []Intersection {
	xs := shape.Intersect(ray, rayT, sampler, nil)
	SortIntersections(xs)
	return xs
}

// SortIntersections orders intersections by increasing t. Equal t values
// keep their relative order so results are reproducible.
func SortIntersections(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// FirstNonNegative returns the index of the first intersection with t >= 0
// in a sorted slice, or -1 when every hit lies behind the ray origin
func FirstNonNegative(xs []Intersection) int {
	for i := range xs {
		if xs[i].T >= 0 {
			return i
		}
	}
	return -1
}

func closest(xs []Intersection) (Intersection, bool) {
	if len(xs) == 0 {
		return Intersection{}, false
	}
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i].T < xs[best].T {
			best = i
		}
	}
	return xs[best], true
}

// newIntersection builds an intersection and orients the normal against the ray
func newIntersection(object Shape, ray core.Ray, t float64, point, outwardNormal core.Vec3, uv core.Vec2, mat material.Material) Intersection {
	hit := Intersection{
		HitRecord: material.HitRecord{
			Point:    point,
			T:        t,
			UV:       uv,
			Material: mat,
		},
		Object: object,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit
}
