package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
)

func TestTransform_Intersect(t *testing.T) {
	unit := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	tests := []struct {
		name     string
		matrix   core.Mat4
		ray      core.Ray
		expected []float64
	}{
		{"scaled sphere", core.Scaling(2, 2, 2), ray, []float64{3, 7}},
		{"translated away", core.Translation(5, 0, 0), ray, nil},
		{"translated into path", core.Translation(5, 0, 0), core.NewRay(core.NewVec3(5, 0, -5), core.NewVec3(0, 0, 1)), []float64{4, 6}},
		{"scaled then translated", core.Chain(core.Scaling(2, 2, 2), core.Translation(0, 0, 3)), ray, []float64{6, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTValues(t, NewTransform(unit, tt.matrix), tt.ray, tt.expected)
		})
	}
}

func TestTransform_WorldSpaceHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	translated := NewTransform(sphere, core.Translation(0, 1, 0))

	ray := core.NewRay(core.NewVec3(0, 1.70711, -5), core.NewVec3(0, 0, 1))
	hit, ok := Nearest(translated, ray, forward, nil)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if !hit.Normal.Equals(core.NewVec3(0, 0.70711, -0.70711), 1e-4) {
		t.Errorf("Expected normal (0, 0.70711, -0.70711), got %v", hit.Normal)
	}
	if !hit.Point.Equals(core.NewVec3(0, 1.70711, -0.70711), 1e-4) {
		t.Errorf("Expected world-space point, got %v", hit.Point)
	}
	if hit.Object != sphere {
		t.Error("Hit should identify the wrapped primitive, not the transform")
	}
}

func TestTransform_NonUniformScaleNormal(t *testing.T) {
	// A sphere squashed along y has a steeper normal than the unscaled point suggests
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	squashed := NewTransform(sphere, core.Scaling(1, 0.5, 1))

	s := math.Sqrt2 / 2
	ray := core.NewRay(core.NewVec3(0, 0.5*s, -5), core.NewVec3(0, 0, 1))
	hit, ok := Nearest(squashed, ray, forward, nil)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	expected := normalized(0, 2*s, -s)
	if !hit.Normal.Equals(expected, 1e-6) {
		t.Errorf("Expected normal %v, got %v", expected, hit.Normal)
	}
}

func TestTransform_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	transformed := NewTransform(sphere, core.Chain(core.Scaling(2, 1, 1), core.Translation(1, 0, 0)))

	box := transformed.BoundingBox()
	if !box.Min().Equals(core.NewVec3(-1, -1, -1), 1e-9) || !box.Max().Equals(core.NewVec3(3, 1, 1), 1e-9) {
		t.Errorf("Unexpected bounds %v..%v", box.Min(), box.Max())
	}

	plane := NewTransform(NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), testMaterial), core.Translation(0, 1, 0))
	if !plane.BoundingBox().IsInfinite() {
		t.Error("Transformed plane should stay unbounded")
	}
}

func TestTransform_SingularPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for singular transform")
		}
	}()
	NewTransform(NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial), core.Scaling(1, 0, 1))
}

func TestTransform_TinyScale(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	tiny := NewTransform(sphere, core.Scaling(1e-4, 1e-4, 1e-4))

	assertTValues(t, tiny, core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), []float64{5 - 1e-4, 5 + 1e-4})
}

func TestTransform_Nested(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	inner := NewTransform(sphere, core.Scaling(2, 2, 2))
	outer := NewTransform(NewGroup(inner), core.Translation(0, 0, 3))

	assertTValues(t, outer, core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), []float64{6, 10})

	hit, ok := Nearest(outer, core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), forward, nil)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if !hit.Point.Equals(core.NewVec3(0, 0, 1), 1e-9) || hit.Object != sphere {
		t.Errorf("Expected hit on sphere at (0,0,1), got %v", hit.Point)
	}
}

func TestTransform_InstancesHaveDistinctKeys(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	first := NewTransform(sphere, core.Translation(0, 0, 3))
	second := NewTransform(sphere, core.Translation(0, 0, 6))

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	xs := IntersectAll(NewGroup(first, second), ray, core.Universe, nil)
	if len(xs) != 4 {
		t.Fatalf("Expected 4 intersections, got %d", len(xs))
	}

	for i, x := range xs {
		if x.Object != sphere {
			t.Errorf("Hit %d should identify the shared sphere", i)
		}
	}
	// Entry and exit of one instance share a key; the two instances do not
	if xs[0].Instance() != xs[1].Instance() || xs[2].Instance() != xs[3].Instance() {
		t.Error("Hits on the same instance should share a key")
	}
	if xs[1].Instance() == xs[2].Instance() {
		t.Error("Two placements of one sphere should have different keys")
	}

	direct := IntersectAll(sphere, ray, core.Universe, nil)
	if direct[0].Instance() == xs[0].Instance() {
		t.Error("An untransformed hit should differ from a placed one")
	}
}

func TestTransform_NestedInstanceKeys(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	inner := NewTransform(sphere, core.Scaling(0.5, 0.5, 0.5))
	left := NewTransform(inner, core.Translation(-2, 0, 0))
	right := NewTransform(inner, core.Translation(2, 0, 0))

	hitLeft, okLeft := Nearest(left, core.NewRay(core.NewVec3(-2, 0, -5), core.NewVec3(0, 0, 1)), forward, nil)
	hitRight, okRight := Nearest(right, core.NewRay(core.NewVec3(2, 0, -5), core.NewVec3(0, 0, 1)), forward, nil)
	if !okLeft || !okRight {
		t.Fatal("Expected both instances to be hit")
	}
	if hitLeft.Instance() == hitRight.Instance() {
		t.Error("Instances sharing an inner transform should still differ by their outer one")
	}

	again, _ := Nearest(left, core.NewRay(core.NewVec3(-2, 0.1, -5), core.NewVec3(0, 0, 1)), forward, nil)
	if again.Instance() != hitLeft.Instance() {
		t.Error("Hits through the same chain of transforms should share a key")
	}
}
