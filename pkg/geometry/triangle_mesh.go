package geometry

import (
	"fmt"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// TriangleMesh represents a collection of triangles with efficient ray intersection
// It uses an internal BVH (Bounding Volume Hierarchy) for fast intersection tests
type TriangleMesh struct {
	triangles []Shape
	bvh       *BVH
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Normals   []core.Vec3         // Optional per-vertex normals; enables smooth shading
	Materials []material.Material // Optional per-face materials
}

// NewTriangleMesh creates a mesh from vertices and polygon faces. Each face
// lists three or more vertex indices and is fan-triangulated around its
// first vertex. Invalid faces or indices are reported as errors so mesh
// producers can surface them to the user.
func NewTriangleMesh(vertices []core.Vec3, faces [][]int, mat material.Material, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if options == nil {
		options = &TriangleMeshOptions{}
	}
	if options.Normals != nil && len(options.Normals) != len(vertices) {
		return nil, fmt.Errorf("geometry: mesh has %d vertices but %d normals", len(vertices), len(options.Normals))
	}
	if options.Materials != nil && len(options.Materials) != len(faces) {
		return nil, fmt.Errorf("geometry: mesh has %d faces but %d materials", len(faces), len(options.Materials))
	}

	var triangles []Shape
	for f, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("geometry: face %d has %d vertices, need at least 3", f, len(face))
		}
		for _, index := range face {
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("geometry: face %d references vertex %d of %d", f, index, len(vertices))
			}
		}

		faceMaterial := mat
		if options.Materials != nil {
			faceMaterial = options.Materials[f]
		}

		// Fan triangulation: (0, k, k+1) for every k
		for k := 1; k+1 < len(face); k++ {
			i0, i1, i2 := face[0], face[k], face[k+1]
			if options.Normals != nil {
				triangles = append(triangles, NewSmoothTriangle(
					vertices[i0], vertices[i1], vertices[i2],
					options.Normals[i0], options.Normals[i1], options.Normals[i2],
					faceMaterial))
			} else {
				triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2], faceMaterial))
			}
		}
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("geometry: mesh has no faces")
	}

	return &TriangleMesh{
		triangles: triangles,
		bvh:       NewBVH(triangles),
	}, nil
}

// Intersect reports every triangle crossing
func (tm *TriangleMesh) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler, xs []Intersection) []Intersection {
	return tm.bvh.Intersect(ray, rayT, sampler, xs)
}

// Hit tests if a ray intersects with any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (Intersection, bool) {
	return tm.bvh.Hit(ray, rayT, sampler)
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bvh.BoundingBox()
}

// TriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

