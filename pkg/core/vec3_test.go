package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if !v.Equals(NewVec3(0.6, 0, 0.8), 1e-12) {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", v)
	}
}

func TestVec3_NormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic normalizing a zero vector")
		}
	}()
	NewVec3(0, 0, 0).Normalize()
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		v, n     Vec3
		expected Vec3
	}{
		{"45 degrees", NewVec3(1, -1, 0), NewVec3(0, 1, 0), NewVec3(1, 1, 0)},
		{"slanted surface", NewVec3(0, -1, 0), NewVec3(math.Sqrt2/2, math.Sqrt2/2, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reflect(tt.v, tt.n)
			if !result.Equals(tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestRefract_StraightThrough(t *testing.T) {
	// Normal incidence never bends regardless of the index ratio
	result := Refract(NewVec3(0, 0, -1), NewVec3(0, 0, 1), 1/1.5)
	if !result.Equals(NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected (0,0,-1), got %v", result)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRayAtTime(NewVec3(2, 3, 4), NewVec3(1, 0, 0), 0.5)
	if got := ray.At(-1); !got.Equals(NewVec3(1, 3, 4), 0) {
		t.Errorf("Expected (1,3,4), got %v", got)
	}
	if got := ray.At(2.5); !got.Equals(NewVec3(4.5, 3, 4), 0) {
		t.Errorf("Expected (4.5,3,4), got %v", got)
	}
	if ray.Time != 0.5 {
		t.Errorf("Expected time 0.5, got %f", ray.Time)
	}
}
