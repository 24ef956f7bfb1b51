package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-raytracer/pkg/core"
)

// Canvas holds averaged linear colors in row-major order, row 0 at the top
type Canvas struct {
	Width   int
	Height  int
	Pixels  []core.Vec3
	Samples int // Samples per pixel averaged into Pixels
	Passes  int // Render passes merged so far
}

// NewCanvas creates an empty black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (x, y)
func (c *Canvas) At(x, y int) core.Vec3 {
	return c.Pixels[y*c.Width+x]
}

// Set stores the color of pixel (x, y)
func (c *Canvas) Set(x, y int, color core.Vec3) {
	c.Pixels[y*c.Width+x] = color
}

// Clone returns a deep copy of the canvas
func (c *Canvas) Clone() *Canvas {
	clone := *c
	clone.Pixels = make([]core.Vec3, len(c.Pixels))
	copy(clone.Pixels, c.Pixels)
	return &clone
}

// ToImage gamma-encodes the canvas into an 8-bit image
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(c.At(x, y)))
		}
	}
	return img
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	// Clamp to valid color range
	colorVec = colorVec.Clamp(0.0, 0.999)

	return color.RGBA{
		R: uint8(256 * colorVec.X),
		G: uint8(256 * colorVec.Y),
		B: uint8(256 * colorVec.Z),
		A: 255,
	}
}
