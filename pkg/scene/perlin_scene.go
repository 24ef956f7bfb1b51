package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

// NewPerlinScene shows marble noise on a ground sphere and a small sphere,
// lit by a dim sky and a panel light whose color fades from warm to cool
func NewPerlinScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
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
		BackgroundTop:    core.NewVec3(0.15, 0.2, 0.3),
		BackgroundBottom: core.NewVec3(0.05, 0.05, 0.05),
	}

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(1, 4))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	// Image rows run top to bottom, so the panel is cool at the top
	glow := material.NewGradientTexture(2, 32, core.NewVec3(2, 3, 5), core.NewVec3(5, 3, 1.5))
	s.Add(geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0),
		material.NewTexturedDiffuseLight(glow)))

	return s
}
