package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

var testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

// forward is the interval of hits in front of the ray origin
var forward = core.NewInterval(0, math.Inf(1))

// tValues returns the sorted t values of every intersection over the whole line
func tValues(shape Shape, ray core.Ray) []float64 {
	xs := IntersectAll(shape, ray, core.Universe, nil)
	ts := make([]float64, len(xs))
	for i, x := range xs {
		ts[i] = x.T
	}
	return ts
}

// assertTValues compares the intersections of a ray with the expected t values
func assertTValues(t *testing.T, shape Shape, ray core.Ray, expected []float64) {
	t.Helper()
	got := tValues(shape, ray)
	if len(expected) == 0 && len(got) == 0 {
		return
	}
	if diff := cmp.Diff(expected, got, approx); diff != "" {
		t.Errorf("t values mismatch (-want +got):\n%s", diff)
	}
}

func normalized(x, y, z float64) core.Vec3 {
	return core.NewVec3(x, y, z).Normalize()
}
