package scene

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

// NewShapesScene shows each primitive type under a quad light and a dim sky
func NewShapesScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 3, 9),
		LookAt:      core.NewVec3(0, 0.8, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	s := &Scene{
		CameraConfig: cameraConfig,
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        30,
			Seed:            1,
		},
		BackgroundTop:    core.NewVec3(0.25, 0.3, 0.4),
		BackgroundBottom: core.NewVec3(0.05, 0.05, 0.05),
	}

	// Ground with a UV checkerboard image on a large quad
	checkerboard := material.NewCheckerboardTexture(256, 256, 16,
		core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(0.3, 0.3, 0.3))
	s.Add(geometry.NewQuad(core.NewVec3(-10, 0, -10), core.NewVec3(20, 0, 0), core.NewVec3(0, 0, 20),
		material.NewTexturedLambertian(checkerboard)))

	// Light above the shapes
	s.Add(geometry.NewQuad(core.NewVec3(-2, 6, -1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 3),
		material.NewDiffuseLight(core.NewVec3(6, 6, 6))))

	copper := material.NewMetal(core.NewVec3(0.8, 0.5, 0.3), 0.2)
	blue := material.NewLambertian(core.NewVec3(0.2, 0.3, 0.8))
	orange := material.NewLambertian(core.NewVec3(0.9, 0.5, 0.1))
	glass := material.NewDielectric(1.5)
	// Half mirror, half matte
	satin := material.NewMix(material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.05), material.NewLambertian(core.NewVec3(0.7, 0.1, 0.4)), 0.5)

	s.Add(
		geometry.NewCylinderBetween(core.NewVec3(-3, 0, 0), core.NewVec3(-3, 1.5, 0), 0.5, true, copper),
		geometry.NewConeBetween(core.NewVec3(-1.5, 0, 1), core.NewVec3(-1.5, 1.6, 1), 0.6, true, orange),
		geometry.NewBox(core.NewVec3(0, 0.6, -0.5), core.NewVec3(0.6, 0.6, 0.6), core.NewVec3(0, math.Pi/6, 0), blue),
		geometry.NewSphere(core.NewVec3(1.5, 0.6, 1.2), 0.6, glass),
		geometry.NewTriangle(core.NewVec3(2.2, 0, -1), core.NewVec3(3.8, 0, -1), core.NewVec3(3, 1.8, -1.2), satin),
	)

	pyramid := mustAsset(loadMesh("pyramid.obj", material.NewMetal(core.NewVec3(0.9, 0.8, 0.4), 0.1),
		core.Chain(core.Scaling(1.4, 1.2, 1.4), core.Translation(3, 0, 1.2))))
	s.Add(pyramid)

	return s
}
