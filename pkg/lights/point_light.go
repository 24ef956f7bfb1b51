package lights

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// PointLight emits the same intensity in every direction from a single point.
// Intensity does not fall off with distance, following classic Phong lighting.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Sample returns the light's position and intensity relative to point
func (l *PointLight) Sample(point core.Vec3) LightSample {
	return sampleFrom(l.Position, point, l.Intensity)
}

// SpotLight is a point light restricted to a cone, fading out smoothly
// between the inner and outer cone angles
type SpotLight struct {
	Position  core.Vec3
	Intensity core.Vec3

	direction       core.Vec3 // Unit axis of the cone (from -> to)
	cosTotalWidth   float64   // Cosine of the outer cone angle
	cosFalloffStart float64   // Cosine of the inner, full-intensity cone angle
}

// NewSpotLight creates a spot light at from, aimed at to. coneAngleDegrees is
// the half-angle of the lit cone and coneDeltaAngleDegrees the width of the
// transition band at its edge.
func NewSpotLight(from, to, intensity core.Vec3, coneAngleDegrees, coneDeltaAngleDegrees float64) *SpotLight {
	return &SpotLight{
		Position:        from,
		Intensity:       intensity,
		direction:       to.Subtract(from).Normalize(),
		cosTotalWidth:   math.Cos(coneAngleDegrees * math.Pi / 180.0),
		cosFalloffStart: math.Cos((coneAngleDegrees - coneDeltaAngleDegrees) * math.Pi / 180.0),
	}
}

// Sample returns the spot light as seen from point, attenuated by the cone falloff
func (l *SpotLight) Sample(point core.Vec3) LightSample {
	sample := sampleFrom(l.Position, point, l.Intensity)
	if sample.Distance == 0 {
		return sample
	}
	cosAngle := l.direction.Dot(sample.Direction.Negate())
	sample.Intensity = sample.Intensity.Multiply(l.falloff(cosAngle))
	return sample
}

// falloff returns 1 inside the inner cone, 0 outside the outer cone and a
// quartic ramp in between
func (l *SpotLight) falloff(cosAngle float64) float64 {
	if cosAngle < l.cosTotalWidth {
		return 0.0
	}
	if cosAngle >= l.cosFalloffStart {
		return 1.0
	}
	delta := (cosAngle - l.cosTotalWidth) / (l.cosFalloffStart - l.cosTotalWidth)
	return delta * delta * delta * delta
}

func sampleFrom(position, point, intensity core.Vec3) LightSample {
	toLight := position.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		// A point sitting on the light receives nothing
		return LightSample{Position: position, Direction: core.NewVec3(0, 1, 0)}
	}
	return LightSample{
		Position:  position,
		Direction: toLight.Multiply(1 / distance),
		Distance:  distance,
		Intensity: intensity,
	}
}
