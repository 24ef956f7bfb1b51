package integrator

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/lights"
	"github.com/df07/go-raytracer/pkg/material"
	"github.com/df07/go-raytracer/pkg/scene"
)

// surfaceEpsilon offsets secondary ray origins off the surface
const surfaceEpsilon = 1e-5

// WhittedIntegrator is a deterministic recursive ray tracer: Phong shading
// from point lights plus mirror reflection and refraction. It never consumes
// randomness, so participating media are invisible to it.
type WhittedIntegrator struct {
	config scene.SamplingConfig
}

// NewWhittedIntegrator creates a new Whitted-style integrator
func NewWhittedIntegrator(config scene.SamplingConfig) *WhittedIntegrator {
	return &WhittedIntegrator{
		config: config,
	}
}

// Computations holds everything needed to shade one intersection
type Computations struct {
	geometry.Intersection
	Eyev       core.Vec3 // Unit vector back toward the ray origin
	Normalv    core.Vec3 // Unit normal facing the eye
	Reflectv   core.Vec3 // Mirror direction of the incoming ray
	OverPoint  core.Vec3 // Point nudged outside the surface
	UnderPoint core.Vec3 // Point nudged inside the surface
	Inside     bool      // True when the ray started inside the object
	N1         float64   // Refractive index on the incoming side
	N2         float64   // Refractive index on the outgoing side
	Time       float64   // Shutter time inherited by secondary rays
}

// PrepareComputations precomputes shading state for xs[hitIndex]. xs must
// hold every intersection along the ray in ascending t order so that the
// refractive indices on either side of the hit can be recovered.
func PrepareComputations(hitIndex int, ray core.Ray, xs []geometry.Intersection) Computations {
	hit := xs[hitIndex]
	direction := ray.Direction.Normalize()
	comps := Computations{
		Intersection: hit,
		Eyev:         direction.Negate(),
		Normalv:      hit.Normal,
		Inside:       !hit.FrontFace,
		Time:         ray.Time,
	}
	comps.Reflectv = core.Reflect(direction, comps.Normalv)
	comps.OverPoint = hit.Point.Add(comps.Normalv.Multiply(surfaceEpsilon))
	comps.UnderPoint = hit.Point.Subtract(comps.Normalv.Multiply(surfaceEpsilon))

	// Objects the ray is currently inside, in the order it entered them
	var containers []geometry.Intersection
	for i, x := range xs {
		if i == hitIndex {
			comps.N1 = refractiveIndexOf(containers)
		}

		if idx := indexOfInstance(containers, x.Instance()); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x)
		}

		if i == hitIndex {
			comps.N2 = refractiveIndexOf(containers)
			break
		}
	}
	return comps
}

func indexOfInstance(containers []geometry.Intersection, key geometry.InstanceKey) int {
	for i := range containers {
		if containers[i].Instance() == key {
			return i
		}
	}
	return -1
}

func refractiveIndexOf(containers []geometry.Intersection) float64 {
	if len(containers) == 0 {
		return 1.0
	}
	last := containers[len(containers)-1]
	return material.ShadingOf(last.Material, last.UV, last.Point).RefractiveIndex
}

// Schlick returns the fraction of light reflected at the prepared hit
func (c Computations) Schlick() float64 {
	return material.Schlick(c.Eyev.Dot(c.Normalv), c.N1, c.N2)
}

// RayColor traces a camera ray. The sampler is ignored.
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	return w.ColorAt(ray, s, w.config.MaxDepth)
}

// ColorAt returns the color seen along ray with depth recursion levels left
func (w *WhittedIntegrator) ColorAt(ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	xs := s.Intersect(ray, core.Universe, nil)
	hitIndex := geometry.FirstNonNegative(xs)
	if hitIndex < 0 {
		return s.Background(ray)
	}
	return w.ShadeHit(s, PrepareComputations(hitIndex, ray, xs), depth)
}

// ShadeHit sums direct lighting from every light once, then adds the
// reflected and refracted contributions
func (w *WhittedIntegrator) ShadeHit(s *scene.Scene, comps Computations, depth int) core.Vec3 {
	shading := material.ShadingOf(comps.Material, comps.UV, comps.Point)

	surface := core.Vec3{}
	for _, light := range s.Lights {
		sample := light.Sample(comps.OverPoint)
		factor := w.ShadowFactor(s, comps.OverPoint, comps.Time, light)
		surface = surface.Add(shading.Lighting(comps.Point, sample.Position, sample.Intensity,
			comps.Eyev, comps.Normalv, comps.UV, factor))
	}

	reflected := w.ReflectedColor(s, comps, shading, depth)
	refracted := w.RefractedColor(s, comps, shading, depth)

	if shading.Reflective > 0 && shading.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.Add(reflected.Multiply(reflectance)).Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ShadowFactor returns how much of light reaches point: the product of the
// transparency of every distinct placed object between them at the given shutter
// time. 1 means unobstructed.
func (w *WhittedIntegrator) ShadowFactor(s *scene.Scene, point core.Vec3, time float64, light lights.Light) float64 {
	sample := light.Sample(point)
	if sample.Distance <= 0 {
		return 1
	}

	ray := core.NewRayAtTime(point, sample.Direction, time)
	xs := s.Intersect(ray, core.NewInterval(0, sample.Distance), nil)

	factor := 1.0
	seen := make(map[geometry.InstanceKey]bool)
	for _, x := range xs {
		key := x.Instance()
		if x.T <= 0 || x.T >= sample.Distance || seen[key] {
			continue
		}
		seen[key] = true
		factor *= material.ShadingOf(x.Material, x.UV, x.Point).Transparency
		if factor == 0 {
			return 0
		}
	}
	return factor
}

// ReflectedColor traces the mirror ray from a reflective surface
func (w *WhittedIntegrator) ReflectedColor(s *scene.Scene, comps Computations, shading material.Phong, depth int) core.Vec3 {
	if depth <= 0 || shading.Reflective == 0 {
		return core.Vec3{}
	}
	reflectRay := core.NewRayAtTime(comps.OverPoint, comps.Reflectv, comps.Time)
	return w.ColorAt(reflectRay, s, depth-1).Multiply(shading.Reflective)
}

// RefractedColor traces the transmitted ray through a transparent surface.
// Total internal reflection contributes black.
func (w *WhittedIntegrator) RefractedColor(s *scene.Scene, comps Computations, shading material.Phong, depth int) core.Vec3 {
	if depth <= 0 || shading.Transparency == 0 {
		return core.Vec3{}
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eyev.Dot(comps.Normalv)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Vec3{}
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.Normalv.Multiply(nRatio*cosI - cosT).Subtract(comps.Eyev.Multiply(nRatio))
	refractRay := core.NewRayAtTime(comps.UnderPoint, direction, comps.Time)
	return w.ColorAt(refractRay, s, depth-1).Multiply(shading.Transparency)
}
