package geometry

import (
	"fmt"

	"github.com/df07/go-raytracer/pkg/core"
)

// CSGOperation is a boolean operation between two solids
type CSGOperation int

const (
	// CSGUnion keeps every surface not inside the other operand
	CSGUnion CSGOperation = iota
	// CSGIntersection keeps the surfaces where both operands overlap
	CSGIntersection
	// CSGDifference keeps the left operand minus the volume of the right
	CSGDifference
)

// String returns the lowercase name of the operation
func (op CSGOperation) String() string {
	switch op {
	case CSGUnion:
		return "union"
	case CSGIntersection:
		return "intersection"
	case CSGDifference:
		return "difference"
	default:
		return fmt.Sprintf("CSGOperation(%d)", int(op))
	}
}

// Allowed reports whether a boundary crossing belongs to the combined
// surface. leftHit says which operand the crossing came from; inLeft and
// inRight say whether the point was inside each operand just before it.
func (op CSGOperation) Allowed(leftHit, inLeft, inRight bool) bool {
	switch op {
	case CSGUnion:
		// Keep a surface unless it is buried inside the other solid
		if leftHit {
			return !inRight
		}
		return !inLeft
	case CSGIntersection:
		// Keep a surface only where it lies inside the other solid
		if leftHit {
			return inRight
		}
		return inLeft
	case CSGDifference:
		// Keep left surfaces outside right, and right surfaces inside left
		if leftHit {
			return !inRight
		}
		return inLeft
	default:
		return false
	}
}

// CSG combines two solids with a boolean operation
type CSG struct {
	Operation CSGOperation
	Left      Shape
	Right     Shape
	bbox      core.AABB
}

// NewCSG creates a CSG node. Both operands should be closed solids.
func NewCSG(op CSGOperation, left, right Shape) *CSG {
	return &CSG{
		Operation: op,
		Left:      left,
		Right:     right,
		bbox:      left.BoundingBox().Union(right.BoundingBox()),
	}
}

// Intersect collects both operands' full intersection lists, merges them in
// t order and walks them once, keeping the crossings the operation allows
func (c *CSG) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	if !c.bbox.Hit(ray, rayT) {
		return xs
	}

	// Inside/outside state depends on crossings behind the interval too,
	// so operands are always intersected along the whole line
	left := c.Left.Intersect(ray, core.Universe, sampler, nil)
	right := c.Right.Intersect(ray, core.Universe, sampler, nil)
	if len(left) == 0 && len(right) == 0 {
		return xs
	}
	SortIntersections(left)
	SortIntersections(right)

	inLeft, inRight := false, false
	i, j := 0, 0
	for i < len(left) || j < len(right) {
		leftHit := j >= len(right) || (i < len(left) && left[i].T <= right[j].T)

		var hit Intersection
		if leftHit {
			hit = left[i]
			i++
		} else {
			hit = right[j]
			j++
		}

		if c.Operation.Allowed(leftHit, inLeft, inRight) && rayT.Contains(hit.T) {
			xs = append(xs, hit)
		}

		if leftHit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}
	return xs
}

// BoundingBox returns the merge of both operands' boxes
func (c *CSG) BoundingBox() core.AABB {
	return c.bbox
}
