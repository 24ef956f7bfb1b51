package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/renderer"
	"github.com/df07/go-raytracer/pkg/scene"
)

func TestWritePNG(t *testing.T) {
	canvas := renderer.NewCanvas(3, 2)
	canvas.Set(2, 1, core.NewVec3(1, 1, 1))

	path := filepath.Join(t.TempDir(), "nested", "dir", "frame.png")
	if err := writePNG(path, canvas); err != nil {
		t.Fatalf("writePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Output not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("Expected 3x2 image, got %v", img.Bounds())
	}
	if r, g, b, _ := img.At(2, 1).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("Expected white pixel, got %d %d %d", r>>8, g>>8, b>>8)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0 {
		t.Errorf("Expected black pixel, got red %d", r>>8)
	}
}

func TestWriteSceneTable(t *testing.T) {
	var buf bytes.Buffer
	writeSceneTable(&buf)

	out := buf.String()
	for _, info := range scene.List() {
		if !strings.Contains(out, info.Name) || !strings.Contains(out, info.Description) {
			t.Errorf("Table is missing scene %q:\n%s", info.Name, out)
		}
	}
	if !strings.Contains(out, "whitted") || !strings.Contains(out, "path") {
		t.Errorf("Table should name the integrators:\n%s", out)
	}
}
