package material

import (
	"image"

	"github.com/df07/go-raytracer/pkg/core"
)

// ImageTexture provides color from a 2D image in linear color space
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureFromImage converts a decoded image into a texture, undoing
// gamma 2 encoding so lookups return linear colors
func NewImageTextureFromImage(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			srgb := core.NewVec3(float64(r)/65535, float64(g)/65535, float64(b)/65535)
			pixels = append(pixels, srgb.MultiplyVec(srgb))
		}
	}
	return NewImageTexture(width, height, pixels)
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// UV is clamped to [0,1] and v=0 is the bottom row of the image.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) == 0 {
		panic("material: image texture has no data")
	}

	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	v := 1.0 - unit.Clamp(uv.Y) // Flip V to image coordinates (top to bottom)

	x := int(u * float64(t.Width-1))
	y := int(v * float64(t.Height-1))

	return t.Pixels[y*t.Width+x]
}
