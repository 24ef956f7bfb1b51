package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

// NewGlobeScene wraps an equirectangular planet map around a single sphere
func NewGlobeScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 12),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}

	s := &Scene{
		CameraConfig: cameraConfig,
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Seed:            1,
		},
		BackgroundTop:    core.NewVec3(0.5, 0.7, 1.0),
		BackgroundBottom: core.NewVec3(1.0, 1.0, 1.0),
	}

	planet := mustAsset(loadTexture("planet.png"))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(planet)))

	return s
}
