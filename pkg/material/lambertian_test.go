package material

import (
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
)

func TestLambertian_ScattersAboveSurface(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.6, 0.4)
	lambertian := NewLambertian(albedo)
	sampler := core.NewStreamSampler(42, 0)

	normal := core.NewVec3(0, 0, 1)
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}
	ray := core.NewRayAtTime(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0.25)

	for i := 0; i < 200; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		// normal + unit vector never points below the surface
		if scatter.Scattered.Direction.Dot(normal) < -1e-12 {
			t.Errorf("Scattered below surface: %v", scatter.Scattered.Direction)
		}
		if scatter.Attenuation != albedo {
			t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Time != ray.Time {
			t.Errorf("Scattered ray lost its time: %f", scatter.Scattered.Time)
		}
	}
}

// fixedSampler replays the same values so degenerate cases can be forced
type fixedSampler struct {
	value1D float64
	value2D core.Vec2
}

func (f fixedSampler) Get1D() float64  { return f.value1D }
func (f fixedSampler) Get2D() core.Vec2 { return f.value2D }
func (f fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(f.value2D.X, f.value2D.Y, f.value1D)
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	normal := core.NewVec3(0, 0, 1)
	hit := &HitRecord{Normal: normal, FrontFace: true}

	// Get2D().X == 1 maps to the unit vector (0,0,-1), cancelling the normal
	sampler := fixedSampler{value2D: core.NewVec2(1, 0)}
	scatter, ok := lambertian.Scatter(core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)), hit, sampler)
	if !ok {
		t.Fatal("Lambertian should always scatter")
	}
	if scatter.Scattered.Direction != normal {
		t.Errorf("Expected fallback to normal, got %v", scatter.Scattered.Direction)
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	checker := NewCheckerColors(1, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	lambertian := NewTexturedLambertian(checker)
	sampler := core.NewStreamSampler(1, 1)

	hit := &HitRecord{Point: core.NewVec3(1.5, 0.5, 0.5), Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	scatter, _ := lambertian.Scatter(core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)), hit, sampler)
	if scatter.Attenuation != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected odd checker cell color, got %v", scatter.Attenuation)
	}
}
