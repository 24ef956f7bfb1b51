package material

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// Checker alternates between two color sources in a 3D lattice of cubes
type Checker struct {
	Even, Odd ColorSource
	invScale  float64
}

// NewChecker creates a solid checker pattern with cubes of edge length scale
func NewChecker(scale float64, even, odd ColorSource) *Checker {
	return &Checker{Even: even, Odd: odd, invScale: 1.0 / scale}
}

// NewCheckerColors creates a checker pattern between two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *Checker {
	return NewChecker(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks the even or odd source by the parity of the lattice cell
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int64(math.Floor(point.X * c.invScale))
	y := int64(math.Floor(point.Y * c.invScale))
	z := int64(math.Floor(point.Z * c.invScale))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}

// NewCheckerboardTexture creates an image texture with a checkerboard pattern,
// for surfaces that carry UV coordinates rather than a world-space lattice
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Determine which check we're in
			if ((x/checkSize)+(y/checkSize))%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}
	return NewImageTexture(width, height, pixels)
}

// NewGradientTexture creates an image texture fading vertically from color1 to color2
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		color := color1.Multiply(1 - t).Add(color2.Multiply(t))
		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}
	return NewImageTexture(width, height, pixels)
}
