package geometry

import (
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
)

func newTestTriangle() *Triangle {
	return NewTriangle(core.NewVec3(0, 1, 0), core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), testMaterial)
}

func TestTriangle_Intersect(t *testing.T) {
	triangle := newTestTriangle()

	tests := []struct {
		name     string
		ray      core.Ray
		expected []float64
	}{
		{"parallel", core.NewRay(core.NewVec3(0, -1, -2), core.NewVec3(0, 1, 0)), nil},
		{"misses p1-p3 edge", core.NewRay(core.NewVec3(1, 1, -2), core.NewVec3(0, 0, 1)), nil},
		{"misses p1-p2 edge", core.NewRay(core.NewVec3(-1, 1, -2), core.NewVec3(0, 0, 1)), nil},
		{"misses p2-p3 edge", core.NewRay(core.NewVec3(0, -1, -2), core.NewVec3(0, 0, 1)), nil},
		{"strikes triangle", core.NewRay(core.NewVec3(0, 0.5, -2), core.NewVec3(0, 0, 1)), []float64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTValues(t, triangle, tt.ray, tt.expected)
		})
	}
}

func TestTriangle_FlatNormal(t *testing.T) {
	triangle := newTestTriangle()
	if !triangle.Normal().Equals(core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected normal (0,0,-1), got %v", triangle.Normal())
	}
	for _, uv := range []core.Vec2{{X: 0, Y: 0}, {X: 0.3, Y: 0.3}, {X: 1, Y: 0}} {
		if triangle.NormalAt(uv.X, uv.Y) != triangle.Normal() {
			t.Errorf("Flat triangle normal varies at %v", uv)
		}
	}
}

func TestTriangle_DegenerateNeverHits(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2), testMaterial)
	assertTValues(t, triangle, core.NewRay(core.NewVec3(1, 1, -5), core.NewVec3(0, 0, 1)), nil)
}

func TestSmoothTriangle(t *testing.T) {
	triangle := NewSmoothTriangle(
		core.NewVec3(0, 1, 0), core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0),
		testMaterial)

	t.Run("barycentric coordinates", func(t *testing.T) {
		ray := core.NewRay(core.NewVec3(-0.2, 0.3, -2), core.NewVec3(0, 0, 1))
		hit, ok := Nearest(triangle, ray, forward, nil)
		if !ok {
			t.Fatal("Expected hit, but got miss")
		}
		if !core.NewVec3(hit.UV.X, hit.UV.Y, 0).Equals(core.NewVec3(0.45, 0.25, 0), 1e-9) {
			t.Errorf("Expected uv (0.45, 0.25), got %v", hit.UV)
		}

		// The interpolated normal faces the ray origin
		expected := core.NewVec3(-0.5547, 0.83205, 0)
		if !hit.Normal.Negate().Equals(expected, 1e-4) && !hit.Normal.Equals(expected, 1e-4) {
			t.Errorf("Expected interpolated normal ±%v, got %v", expected, hit.Normal)
		}
	})

	t.Run("normal interpolation", func(t *testing.T) {
		got := triangle.NormalAt(0.45, 0.25)
		if !got.Equals(core.NewVec3(-0.5547, 0.83205, 0), 1e-4) {
			t.Errorf("Expected (-0.5547, 0.83205, 0), got %v", got)
		}
	})
}
