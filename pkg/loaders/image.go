package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	"github.com/df07/go-raytracer/pkg/material"
)

// LoadImageTexture loads a PNG or JPEG image as a texture in linear color space
func LoadImageTexture(filename string) (*material.ImageTexture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return DecodeImageTexture(file)
}

// DecodeImageTexture decodes a PNG or JPEG stream as a texture in linear color space
func DecodeImageTexture(r io.Reader) (*material.ImageTexture, error) {
	// Decode image (auto-detects PNG/JPEG from file header)
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%s image is empty", format)
	}

	texture := material.NewImageTextureFromImage(img)
	logger.Debugf("decoded %s texture %dx%d", format, texture.Width, texture.Height)
	return texture, nil
}
