package geometry

import (
	"sort"

	"github.com/df07/go-raytracer/pkg/core"
)

// leafThreshold is the largest number of shapes stored directly in a leaf
const leafThreshold = 2

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Shapes for leaf nodes (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// It is built once and never modified, so it is safe for concurrent use.
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of shapes.
// An empty slice has nothing to bound and is a caller bug, so it panics.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		panic("geometry: cannot build a BVH over zero shapes")
	}

	// Sorting happens in place, so work on a copy of the caller's slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy)}
}

// buildBVH recursively splits shapes at the median along the longest axis
func buildBVH(shapes []Shape) *BVHNode {
	boundingBox := core.EmptyAABB
	for _, shape := range shapes {
		boundingBox = boundingBox.Union(shape.BoundingBox())
	}

	// Base case: one or two shapes go straight into a leaf
	if len(shapes) <= leafThreshold {
		return &BVHNode{
			BoundingBox: boundingBox,
			Shapes:      shapes,
		}
	}

	axis := boundingBox.LongestAxis()
	sortShapesByAxis(shapes, axis)

	mid := len(shapes) / 2
	left := buildBVH(shapes[:mid])
	right := buildBVH(shapes[mid:])

	return &BVHNode{
		BoundingBox: left.BoundingBox.Union(right.BoundingBox),
		Left:        left,
		Right:       right,
	}
}

// sortShapesByAxis sorts shapes by the minimum of their bounding box along the axis
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().Axis(axis).Min < shapes[j].BoundingBox().Axis(axis).Min
	})
}

// Hit finds the nearest intersection within rayT
func (bvh *BVH) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (Intersection, bool) {
	return bvh.hitNode(bvh.Root, ray, rayT, sampler)
}

// hitNode recursively tests ray intersection with BVH nodes, shrinking the
// upper bound so later subtrees only report closer hits
func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, rayT core.Interval, sampler core.Sampler) (Intersection, bool) {
	if !node.BoundingBox.Hit(ray, rayT) {
		return Intersection{}, false
	}

	var closestHit Intersection
	hitAnything := false
	closestSoFar := rayT.Max

	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if hit, ok := Nearest(shape, ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
				hitAnything = true
				closestSoFar = hit.T
				closestHit = hit
			}
		}
		return closestHit, hitAnything
	}

	if hit, ok := bvh.hitNode(node.Left, ray, rayT, sampler); ok {
		hitAnything = true
		closestSoFar = hit.T
		closestHit = hit
	}
	if hit, ok := bvh.hitNode(node.Right, ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
		hitAnything = true
		closestHit = hit
	}
	return closestHit, hitAnything
}

// Intersect appends every intersection within rayT, skipping subtrees whose
// boxes the ray misses
func (bvh *BVH) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	return bvh.intersectNode(bvh.Root, ray, rayT, sampler, xs)
}

func (bvh *BVH) intersectNode(node *BVHNode, ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	if !node.BoundingBox.Hit(ray, rayT) {
		return xs
	}
	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			xs = shape.Intersect(ray, rayT, sampler, xs)
		}
		return xs
	}
	xs = bvh.intersectNode(node.Left, ray, rayT, sampler, xs)
	return bvh.intersectNode(node.Right, ray, rayT, sampler, xs)
}

// BoundingBox implements the Shape interface - returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	return bvh.Root.BoundingBox
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes  int
	LeafNodes   int
	MaxDepth    int
	AvgDepth    float64
	TotalShapes int
}

// Stats walks the tree and summarizes its shape
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{}
	bvh.collectStats(bvh.Root, 0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	if node.Shapes != nil {
		stats.LeafNodes++
		stats.TotalShapes += len(node.Shapes)
		stats.AvgDepth += float64(depth) // Accumulate depth for average calculation
		return
	}
	bvh.collectStats(node.Left, depth+1, stats)
	bvh.collectStats(node.Right, depth+1, stats)
}
