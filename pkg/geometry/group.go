package geometry

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// Group aggregates child shapes so they can be transformed or combined as one
type Group struct {
	Children []Shape
	bbox     core.AABB
}

// NewGroup creates a group over the given children
func NewGroup(children ...Shape) *Group {
	g := &Group{bbox: core.EmptyAABB}
	for _, child := range children {
		g.Add(child)
	}
	return g
}

// Add appends a child and grows the bounding box. Groups are built before
// rendering starts and must not be modified while in use.
func (g *Group) Add(child Shape) {
	g.Children = append(g.Children, child)
	g.bbox = g.bbox.Union(child.BoundingBox())
}

// Intersect appends the intersections of every child, sorted by t
func (g *Group) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	if len(g.Children) == 0 || !g.bbox.Hit(ray, rayT) {
		return xs
	}
	start := len(xs)
	for _, child := range g.Children {
		xs = child.Intersect(ray, rayT, sampler, xs)
	}
	SortIntersections(xs[start:])
	return xs
}

// Hit returns the nearest child hit, narrowing the interval as hits are found
func (g *Group) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (Intersection, bool) {
	if len(g.Children) == 0 || !g.bbox.Hit(ray, rayT) {
		return Intersection{}, false
	}

	var closestHit Intersection
	hitAnything := false
	closestSoFar := rayT.Max
	for _, child := range g.Children {
		if hit, ok := Nearest(child, ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}
	return closestHit, hitAnything
}

// BoundingBox returns the merge of the children's boxes
func (g *Group) BoundingBox() core.AABB {
	return g.bbox
}
