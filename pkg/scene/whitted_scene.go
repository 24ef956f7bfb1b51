package scene

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/lights"
	"github.com/df07/go-raytracer/pkg/material"
)

// NewWhittedScene creates a scene lit by point lights for deterministic
// shading: a reflective checkered floor, a glass sphere holding an air
// bubble, a CSG lens and a few opaque solids
func NewWhittedScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.5, -5),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        60.0,
	}

	s := &Scene{
		CameraConfig: cameraConfig,
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 4,
			MaxDepth:        5,
			AntiAliasGrid:   2,
			Seed:            1,
		},
		BackgroundTop:    core.NewVec3(0.1, 0.1, 0.25),
		BackgroundBottom: core.NewVec3(0.0, 0.0, 0.0),
	}

	s.AddLight(lights.NewPointLight(core.NewVec3(-10, 10, -10), core.NewVec3(0.9, 0.9, 0.9)))
	s.AddLight(lights.NewSpotLight(core.NewVec3(5, 8, -3), core.NewVec3(1, 0, 1), core.NewVec3(0.4, 0.4, 0.3), 25, 5))

	// Floor
	floor := material.DefaultPhong()
	floor.Color = material.NewCheckerColors(1.0, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.15, 0.15, 0.15))
	floor.Specular = 0
	floor.Reflective = 0.2
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), &floor))

	// Glass sphere with an air bubble
	glass := glassPhong(1.5)
	air := glassPhong(1.00029)
	s.Add(
		geometry.NewSphere(core.NewVec3(-0.5, 1, 0.5), 1, glass),
		geometry.NewSphere(core.NewVec3(-0.5, 1, 0.5), 0.5, air),
	)

	// Biconvex lens: intersection of two overlapping spheres
	lens := geometry.NewCSG(geometry.CSGIntersection,
		geometry.NewSphere(core.NewVec3(0, 0, -0.6), 1, glassPhong(1.5)),
		geometry.NewSphere(core.NewVec3(0, 0, 0.6), 1, glassPhong(1.5)),
	)
	s.Add(geometry.NewTransform(lens, core.Chain(core.RotationY(-math.Pi/6), core.Translation(1.8, 0.8, -1.5))))

	// Opaque solids
	red := material.NewPhong(core.NewVec3(0.9, 0.2, 0.1))
	red.Diffuse = 0.7
	red.Specular = 0.3

	mirror := material.NewPhong(core.NewVec3(0.2, 0.2, 0.2))
	mirror.Reflective = 0.8
	mirror.Shininess = 300

	green := material.NewPhong(core.NewVec3(0.2, 0.8, 0.3))

	// A cube with a spherical bite taken out of one corner
	carved := geometry.NewCSG(geometry.CSGDifference,
		geometry.NewCube(red),
		geometry.NewSphere(core.NewVec3(1, 1, -1), 0.8, red),
	)

	s.Add(
		geometry.NewTransform(carved, core.Chain(
			core.Scaling(0.5, 0.5, 0.5), core.RotationY(math.Pi/5), core.Translation(2.5, 0.5, 1.5))),
		geometry.NewSphere(core.NewVec3(-2.8, 0.75, -1), 0.75, mirror),
		geometry.NewCylinderBetween(core.NewVec3(-2.5, 0, 2.5), core.NewVec3(-2.5, 2.5, 2.5), 0.4, true, green),
		geometry.NewConeBetween(core.NewVec3(0.8, 0, 3), core.NewVec3(0.8, 1.8, 3), 0.6, true, red),
	)

	return s
}

// glassPhong returns a clear, reflective Phong material with the given index
func glassPhong(index float64) *material.Phong {
	glass := material.NewPhong(core.NewVec3(0.05, 0.05, 0.05))
	glass.Ambient = 0
	glass.Diffuse = 0.1
	glass.Specular = 1.0
	glass.Shininess = 300
	glass.Reflective = 0.9
	glass.Transparency = 0.9
	glass.RefractiveIndex = index
	return glass
}
