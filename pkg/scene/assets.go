package scene

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/material"
)

//go:embed assets/pyramid.obj assets/planet.png
var assets embed.FS

// loadMesh parses an embedded OBJ file and places it in the world with m
func loadMesh(name string, mat material.Material, m core.Mat4) (geometry.Shape, error) {
	raw, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	data, err := loaders.ParseOBJ(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", name, err)
	}
	mesh, err := data.Mesh(mat)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", name, err)
	}
	return geometry.NewTransform(mesh, m), nil
}

// loadTexture decodes an embedded image into a linear color texture
func loadTexture(name string) (*material.ImageTexture, error) {
	raw, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	texture, err := loaders.DecodeImageTexture(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", name, err)
	}
	return texture, nil
}

// mustAsset panics on a broken embedded asset. Assets ship with the binary,
// so a failure here is a build defect rather than user error.
func mustAsset[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
