package scene

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const cornellSize = 555.0

// NewCornellSmokeScene creates a Cornell box whose two blocks are replaced by
// constant-density media, one dark smoke and one white fog
func NewCornellSmokeScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Outside the open side, looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        40.0,
	}

	s := &Scene{
		CameraConfig: cameraConfig,
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 200,
			MaxDepth:        50,
			Seed:            1,
		},
	}
	s.SetBackground(core.NewVec3(0, 0, 0))

	addCornellWalls(s, 7.0)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	// Tall block, turned 15 degrees
	tall := geometry.NewTransform(
		geometry.NewBoxQuads(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
		core.Chain(core.RotationY(15*math.Pi/180), core.Translation(265, 0, 295)),
	)
	// Short block, turned -18 degrees
	short := geometry.NewTransform(
		geometry.NewBoxQuads(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
		core.Chain(core.RotationY(-18*math.Pi/180), core.Translation(130, 0, 65)),
	)

	s.Add(
		geometry.NewConstantMedium(tall, 0.01, material.NewSolidColor(core.NewVec3(0, 0, 0))),
		geometry.NewConstantMedium(short, 0.01, material.NewSolidColor(core.NewVec3(1, 1, 1))),
	)

	return s
}

// addCornellWalls adds the five walls of the box and its ceiling light
func addCornellWalls(s *Scene, lightStrength float64) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(lightStrength, lightStrength, lightStrength))

	s.Add(
		// Left wall (green) - YZ plane at x=cornellSize
		geometry.NewQuad(core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, cornellSize, 0), core.NewVec3(0, 0, cornellSize), green),
		// Right wall (red) - YZ plane at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, cornellSize, 0), core.NewVec3(0, 0, cornellSize), red),
		// Ceiling light, wider than the classic one to light the media
		geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light),
		// Ceiling
		geometry.NewQuad(core.NewVec3(0, cornellSize, 0), core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, 0, cornellSize), white),
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, 0, cornellSize), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, cornellSize), core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, cornellSize, 0), white),
	)
}
