package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

// bouncingLayoutSeed fixes the random sphere layout so the scene is the same on every run
const bouncingLayoutSeed = 0xb0b0

// NewBouncingSpheresScene creates a field of small random spheres. Diffuse
// spheres move upward during the shutter interval to show motion blur.
func NewBouncingSpheresScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		DefocusAngle:  0.6,
		FocusDistance: 10.0,
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

	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	random := core.NewStreamSampler(bouncingLayoutSeed, 0)
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Get1D()
			center := core.NewVec3(float64(a)+0.9*random.Get1D(), 0.2, float64(b)+0.9*random.Get1D())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse, bouncing upward while the shutter is open
				albedo := random.Get3D().MultiplyVec(random.Get3D())
				center2 := center.Add(core.NewVec3(0, 0.5*random.Get1D(), 0))
				s.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				// Metal
				albedo := random.Get3D().Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
				fuzz := 0.5 * random.Get1D()
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				// Glass
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}
