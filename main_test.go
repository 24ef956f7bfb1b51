package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-raytracer/pkg/integrator"
	"github.com/df07/go-raytracer/pkg/renderer"
	"github.com/df07/go-raytracer/pkg/scene"
)

func TestScenesCommand(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	if err := app.Run([]string{"go-raytracer", "scenes"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, info := range scene.List() {
		if !strings.Contains(buf.String(), info.Name) {
			t.Errorf("Scene listing is missing %q:\n%s", info.Name, buf.String())
		}
	}
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"default scene", []string{"--scene", "default"}},
		{"whitted scene", []string{"--scene", "whitted"}},
		{"scene as argument", []string{"shapes"}},
		{"textured scene", []string{"--scene", "globe"}},
		{"noise scene", []string{"--scene", "perlin"}},
		{"integrator override", []string{"--scene", "whitted", "--integrator", "path"}},
		{"progressive passes", []string{"--scene", "cornell-smoke", "--passes", "2", "--seed", "7"}},
		{"anti-aliasing grid", []string{"--scene", "bouncing", "--aa", "2", "--workers", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out", "frame.png")
			// Flags must precede the positional scene argument
			args := append([]string{"go-raytracer", "render", "--width", "8", "--spp", "1", "--depth", "3", "--tile-size", "4", "--out", out}, tt.args...)
			if err := newApp().Run(args); err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			f, err := os.Open(out)
			if err != nil {
				t.Fatalf("Output not written: %v", err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatalf("Output is not a png: %v", err)
			}
			if img.Bounds().Dx() != 8 {
				t.Errorf("Expected width 8, got %d", img.Bounds().Dx())
			}
		})
	}
}

func TestRenderCommandErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{"unknown scene", []string{"--scene", "nonexistent"}, scene.ErrUnknownScene},
		{"unknown integrator", []string{"--integrator", "bdpt"}, integrator.ErrUnknownIntegrator},
		{"zero passes", []string{"--passes", "0"}, renderer.ErrInvalidConfig},
		{"zero samples", []string{"--spp", "0"}, renderer.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"go-raytracer", "render", "--width", "4", "--out", out}, tt.args...)
			err := newApp().Run(args)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}
