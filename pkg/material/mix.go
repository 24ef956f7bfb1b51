package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// Mix randomly selects between two materials for each scatter event
type Mix struct {
	Material1 Material
	Material2 Material
	Ratio     float64 // Probability of selecting Material2 (0 = all Material1)
}

// NewMix creates a new mix material
func NewMix(material1, material2 Material, ratio float64) *Mix {
	return &Mix{
		Material1: material1,
		Material2: material2,
		Ratio:     core.NewInterval(0, 1).Clamp(ratio),
	}
}

// Scatter delegates to one of the two materials chosen by Ratio
func (m *Mix) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	if sampler.Get1D() < m.Ratio {
		return m.Material2.Scatter(rayIn, hit, sampler)
	}
	return m.Material1.Scatter(rayIn, hit, sampler)
}

// Emitted blends the emission of both materials by Ratio
func (m *Mix) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	e1 := m.Material1.Emitted(uv, point)
	e2 := m.Material2.Emitted(uv, point)
	return e1.Multiply(1 - m.Ratio).Add(e2.Multiply(m.Ratio))
}

// Shading uses whichever material dominates the mix
func (m *Mix) Shading(uv core.Vec2, point core.Vec3) Phong {
	if m.Ratio > 0.5 {
		return ShadingOf(m.Material2, uv, point)
	}
	return ShadingOf(m.Material1, uv, point)
}
