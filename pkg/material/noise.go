package material

import (
	"math"
	"math/rand/v2"

	"github.com/df07/go-raytracer/pkg/core"
)

const (
	perlinPointCount = 256
	perlinMask       = perlinPointCount - 1
)

// Perlin is gradient noise over an integer lattice. Gradients and the
// hashing permutations are drawn from a seeded PCG stream, so one seed
// always gives the same field.
type Perlin struct {
	gradients           [perlinPointCount]core.Vec3
	permX, permY, permZ [perlinPointCount]int
}

// NewPerlin builds a noise field from seed
func NewPerlin(seed uint64) *Perlin {
	random := rand.New(rand.NewPCG(seed, 0))
	sampler := core.NewRandomSampler(random)

	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = core.RandomUnitVector(sampler)
	}
	copy(p.permX[:], random.Perm(perlinPointCount))
	copy(p.permY[:], random.Perm(perlinPointCount))
	copy(p.permZ[:], random.Perm(perlinPointCount))
	return p
}

// Noise returns smooth noise in roughly [-1, 1]. It is zero at every lattice point.
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	// Hermite smoothing removes grid artifacts at cell borders
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				gradient := p.gradients[p.permX[(i+di)&perlinMask]^
					p.permY[(j+dj)&perlinMask]^
					p.permZ[(k+dk)&perlinMask]]
				weight := core.NewVec3(u-float64(di), v-float64(dj), w-float64(dk))

				a, b, c := float64(di), float64(dj), float64(dk)
				accum += (a*uu + (1-a)*(1-uu)) *
					(b*vv + (1-b)*(1-vv)) *
					(c*ww + (1-c)*(1-ww)) *
					gradient.Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise, each at twice the frequency and
// half the weight of the previous one. The result is never negative.
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// turbulenceDepth is the number of octaves in the marble pattern
const turbulenceDepth = 7

// NoiseTexture is a gray marble pattern: sine stripes along z whose phase
// is disturbed by turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64 // Stripe frequency
}

// NewNoiseTexture creates a marble texture over a Perlin field built from seed
func NewNoiseTexture(seed uint64, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: NewPerlin(seed), Scale: scale}
}

// Evaluate returns a gray level in [0, 1] at the given point
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	level := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.Noise.Turbulence(point, turbulenceDepth)))
	return core.NewVec3(level, level, level)
}
