package core

import (
	"math"
	"testing"
)

func TestInterval(t *testing.T) {
	i := NewInterval(1, 3)
	if !i.Contains(1) || !i.Contains(3) || i.Contains(3.5) {
		t.Error("Contains should be inclusive of both ends")
	}
	if i.Surrounds(1) || !i.Surrounds(2) {
		t.Error("Surrounds should be exclusive of both ends")
	}
	if i.Clamp(5) != 3 || i.Clamp(-2) != 1 || i.Clamp(2) != 2 {
		t.Error("Clamp returned a value outside the interval")
	}
	if !EmptyInterval.IsEmpty() || Universe.IsEmpty() {
		t.Error("Sentinel intervals have wrong emptiness")
	}
	if !Universe.Contains(math.MaxFloat64) {
		t.Error("Universe should contain every finite value")
	}
}

func TestAABB_PadsFlatAxis(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 0))
	if box.Z.Size() < minAABBThickness {
		t.Errorf("Expected z thickness >= %g, got %g", minAABBThickness, box.Z.Size())
	}

	// A ray travelling along the plane's normal must still hit
	ray := NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, 1))
	if !box.Hit(ray, NewInterval(0, math.Inf(1))) {
		t.Error("Expected ray to hit padded flat box")
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		rayT     Interval
		expected bool
	}{
		{"hit from front", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), NewInterval(0, math.Inf(1)), true},
		{"miss to the side", NewRay(NewVec3(2, 0, -5), NewVec3(0, 0, 1)), NewInterval(0, math.Inf(1)), false},
		{"behind origin", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), NewInterval(0, math.Inf(1)), false},
		{"interval too short", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), NewInterval(0, 3), false},
		{"parallel inside slab", NewRay(NewVec3(0.5, 0.5, -5), NewVec3(0, 0, 1)), Universe, true},
		{"diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), NewInterval(0, math.Inf(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.rayT); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_UnionAndLongestAxis(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-4, 0.5, 0), NewVec3(-3, 2, 1))
	u := a.Union(b)

	if !u.Min().Equals(NewVec3(-4, 0, 0), 0) || !u.Max().Equals(NewVec3(1, 2, 1), 0) {
		t.Errorf("Unexpected union %v..%v", u.Min(), u.Max())
	}
	if axis := u.LongestAxis(); axis != 0 {
		t.Errorf("Expected longest axis 0, got %d", axis)
	}
	if got := EmptyAABB.Union(a); got != a {
		t.Errorf("Union with empty box should be identity, got %v", got)
	}
}

func TestAABB_Corners(t *testing.T) {
	box := NewAABB(NewVec3(-1, -2, -3), NewVec3(1, 2, 3))
	corners := box.Corners()
	if got := NewAABBFromPoints(corners[:]...); got != box {
		t.Errorf("Corners should rebuild the same box, got %v", got)
	}
}
