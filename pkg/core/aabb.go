package core

import "math"

// minAABBThickness is the smallest extent any AABB axis is allowed to have.
// Flat shapes (quads, triangles in an axis plane) would otherwise produce
// zero-width slabs that rays can slip through.
const minAABBThickness = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// UniverseAABB bounds all of space, used for unbounded shapes like planes
var UniverseAABB = AABB{X: Universe, Y: Universe, Z: Universe}

// EmptyAABB bounds nothing and is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates an AABB from two opposite corners, in any order
func NewAABB(a, b Vec3) AABB {
	return NewAABBFromIntervals(
		NewInterval(math.Min(a.X, b.X), math.Max(a.X, b.X)),
		NewInterval(math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)),
		NewInterval(math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)),
	)
}

// NewAABBFromIntervals creates an AABB from per-axis intervals, padding any
// axis thinner than minAABBThickness
func NewAABBFromIntervals(x, y, z Interval) AABB {
	aabb := AABB{X: x, Y: y, Z: z}
	aabb.padToMinimums()
	return aabb
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	minP := points[0]
	maxP := points[0]
	for _, point := range points[1:] {
		minP = NewVec3(math.Min(minP.X, point.X), math.Min(minP.Y, point.Y), math.Min(minP.Z, point.Z))
		maxP = NewVec3(math.Max(maxP.X, point.X), math.Max(maxP.Y, point.Y), math.Max(maxP.Z, point.Z))
	}
	return NewAABB(minP, maxP)
}

func (aabb *AABB) padToMinimums() {
	if aabb.X.Size() >= 0 && aabb.X.Size() < minAABBThickness {
		aabb.X = aabb.X.Expand(minAABBThickness)
	}
	if aabb.Y.Size() >= 0 && aabb.Y.Size() < minAABBThickness {
		aabb.Y = aabb.Y.Expand(minAABBThickness)
	}
	if aabb.Z.Size() >= 0 && aabb.Z.Size() < minAABBThickness {
		aabb.Z = aabb.Z.Expand(minAABBThickness)
	}
}

// Axis returns the interval for axis 0 (X), 1 (Y) or 2 (Z)
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// Hit tests if a ray passes through this AABB within rayT using the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	tMin, tMax := rayT.Min, rayT.Max
	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Handle parallel rays (direction near zero)
		if math.Abs(direction) < 1e-8 {
			if origin < slab.Min || origin > slab.Max {
				return false // Ray origin outside slab
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax < tMin {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: MergeIntervals(aabb.X, other.X),
		Y: MergeIntervals(aabb.Y, other.Y),
		Z: MergeIntervals(aabb.Z, other.Z),
	}
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max().Subtract(aabb.Min())
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsInfinite reports whether any bound is infinite
func (aabb AABB) IsInfinite() bool {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		if math.IsInf(slab.Min, 0) || math.IsInf(slab.Max, 0) {
			return true
		}
	}
	return false
}

// Corners returns the eight corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		x, y, z := aabb.X.Min, aabb.Y.Min, aabb.Z.Min
		if i&1 != 0 {
			x = aabb.X.Max
		}
		if i&2 != 0 {
			y = aabb.Y.Max
		}
		if i&4 != 0 {
			z = aabb.Z.Max
		}
		corners[i] = NewVec3(x, y, z)
	}
	return corners
}
