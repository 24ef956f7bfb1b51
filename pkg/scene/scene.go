package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/lights"
	"github.com/df07/go-raytracer/pkg/log"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering. A scene is
// assembled once, prepared with Preprocess and read-only afterwards.
type Scene struct {
	Name             string
	Camera           *geometry.Camera
	CameraConfig     geometry.CameraConfig
	SamplingConfig   SamplingConfig
	Shapes           []geometry.Shape // Objects in the scene
	Lights           []lights.Light   // Point lights, used by deterministic shading
	BackgroundTop    core.Vec3        // Background color straight up
	BackgroundBottom core.Vec3        // Background color straight down
	BVH              *geometry.BVH    // Acceleration structure for ray-object intersection
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int    // Image width, derived from the camera by Preprocess
	Height          int    // Image height, derived from the camera by Preprocess
	SamplesPerPixel int    // Number of rays per pixel
	MaxDepth        int    // Maximum ray bounce depth
	AntiAliasGrid   int    // M > 0 places samples at fixed M×M sub-cell centers; 0 jitters
	Seed            uint64 // Master seed for all per-pixel random streams
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// SetBackground sets a solid background color
func (s *Scene) SetBackground(color core.Vec3) {
	s.BackgroundTop = color
	s.BackgroundBottom = color
}

// Preprocess builds the camera and the BVH. It must be called after the
// scene is assembled and before rendering.
func (s *Scene) Preprocess() error {
	if len(s.Shapes) == 0 {
		return ErrNoShapes
	}

	s.Camera = geometry.NewCamera(s.CameraConfig)
	s.SamplingConfig.Width = s.Camera.Width()
	s.SamplingConfig.Height = s.Camera.Height()

	s.BVH = geometry.NewBVH(s.Shapes)

	stats := s.BVH.Stats()
	logger.Debugf("built BVH for %q: %d shapes, %d nodes, %d leaves, max depth %d, avg leaf depth %.1f",
		s.Name, stats.TotalShapes, stats.TotalNodes, stats.LeafNodes, stats.MaxDepth, stats.AvgDepth)

	return nil
}

// Background returns the color seen by a ray that escapes the scene: a
// vertical blend from BackgroundBottom to BackgroundTop by direction
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	if ray.Direction.NearZero() {
		return s.BackgroundBottom
	}
	a := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return s.BackgroundBottom.Multiply(1.0 - a).Add(s.BackgroundTop.Multiply(a))
}

// Hit returns the nearest intersection within rayT
func (s *Scene) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (geometry.Intersection, bool) {
	return s.BVH.Hit(ray, rayT, sampler)
}

// Intersect returns every intersection within rayT sorted by t
func (s *Scene) Intersect(ray core.Ray, rayT core.Interval, sampler core.Sampler) []geometry.Intersection {
	return geometry.IntersectAll(s.BVH, ray, rayT, sampler)
}

// PrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitives(shape)
	}
	return count
}

// countPrimitives counts primitives in a single shape, descending into composites
func countPrimitives(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.TriangleMesh:
		return obj.TriangleCount()
	case *geometry.Group:
		count := 0
		for _, child := range obj.Children {
			count += countPrimitives(child)
		}
		return count
	case *geometry.Transform:
		return countPrimitives(obj.Child)
	case *geometry.CSG:
		return countPrimitives(obj.Left) + countPrimitives(obj.Right)
	case *geometry.ConstantMedium:
		return countPrimitives(obj.Boundary)
	default:
		return 1
	}
}
