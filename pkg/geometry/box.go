package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every axis in object
// space. Place and size it with a Transform, or use NewBox.
type Cube struct {
	Material material.Material
}

// NewCube creates the canonical cube
func NewCube(mat material.Material) *Cube {
	return &Cube{Material: mat}
}

// NewBox creates a box with the given center and half extents, rotated by
// the given angles in radians around X, Y then Z
func NewBox(center, halfExtents, rotation core.Vec3, mat material.Material) *Transform {
	return NewTransform(NewCube(mat), core.Chain(
		core.Scaling(halfExtents.X, halfExtents.Y, halfExtents.Z),
		core.RotationX(rotation.X),
		core.RotationY(rotation.Y),
		core.RotationZ(rotation.Z),
		core.Translation(center.X, center.Y, center.Z),
	))
}

// NewAxisAlignedBox creates a new axis-aligned box (no rotation)
func NewAxisAlignedBox(center, halfExtents core.Vec3, mat material.Material) *Transform {
	return NewBox(center, halfExtents, core.Vec3{}, mat)
}

// Intersect intersects the three axis slabs and reports the entry and exit points
func (c *Cube) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	xMin, xMax := checkAxis(ray.Origin.X, ray.Direction.X)
	yMin, yMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	zMin, zMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xMin, math.Max(yMin, zMin))
	tMax := math.Min(xMax, math.Min(yMax, zMax))
	if tMin > tMax {
		return xs
	}

	for _, t := range [2]float64{tMin, tMax} {
		if !rayT.Contains(t) {
			continue
		}
		point := ray.At(t)
		xs = append(xs, newIntersection(c, ray, t, point, cubeNormal(point), cubeUV(point), c.Material))
	}
	return xs
}

// BoundingBox returns the [-1, 1] cube
func (c *Cube) BoundingBox() core.AABB {
	return core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))
}

// checkAxis returns the parameters where the ray enters and leaves the slab [-1, 1]
func checkAxis(origin, direction float64) (float64, float64) {
	if math.Abs(direction) < parallelEpsilon {
		// Parallel to the slab: either always inside it or never
		if origin < -1 || origin > 1 {
			return math.Inf(1), math.Inf(-1)
		}
		return math.Inf(-1), math.Inf(1)
	}

	tMin := (-1 - origin) / direction
	tMax := (1 - origin) / direction
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// cubeNormal picks the face whose axis has the largest absolute coordinate
func cubeNormal(p core.Vec3) core.Vec3 {
	ax, ay, az := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	switch {
	case ax >= ay && ax >= az:
		return core.NewVec3(math.Copysign(1, p.X), 0, 0)
	case ay >= az:
		return core.NewVec3(0, math.Copysign(1, p.Y), 0)
	default:
		return core.NewVec3(0, 0, math.Copysign(1, p.Z))
	}
}

// cubeUV projects the point onto the two axes of the face it lies on
func cubeUV(p core.Vec3) core.Vec2 {
	n := cubeNormal(p)
	switch {
	case n.X != 0:
		return core.NewVec2((p.Z+1)/2, (p.Y+1)/2)
	case n.Y != 0:
		return core.NewVec2((p.X+1)/2, (p.Z+1)/2)
	default:
		return core.NewVec2((p.X+1)/2, (p.Y+1)/2)
	}
}
