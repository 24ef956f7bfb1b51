package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

// NewDefaultScene creates three spheres on a large ground sphere: diffuse,
// hollow glass and fuzzy metal, seen through a lens with shallow focus
func NewDefaultScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		DefocusAngle:  10.0, // Strong depth of field blur
		FocusDistance: 3.4,
	}

	s := &Scene{
		CameraConfig: cameraConfig,
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Seed:            1,
		},
		BackgroundTop:    core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		BackgroundBottom: core.NewVec3(1.0, 1.0, 1.0), // White horizon
	}

	// Create materials
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5) // Air inside glass
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return s
}
