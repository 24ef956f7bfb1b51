package renderer

import (
	"image"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/scene"
)

// MockIntegrator returns a fixed color for every ray
type MockIntegrator struct {
	returnColor core.Vec3
}

func (m *MockIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	return m.returnColor
}

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
		lastBounds    image.Rectangle
	}{
		{"exact fit", 128, 64, 64, 2, image.Rect(64, 0, 128, 64)},
		{"partial edge tiles", 100, 70, 64, 4, image.Rect(64, 64, 100, 70)},
		{"single tile", 10, 10, 64, 1, image.Rect(0, 0, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}
			if last := tiles[len(tiles)-1].Bounds; last != tt.lastBounds {
				t.Errorf("Expected last tile %v, got %v", tt.lastBounds, last)
			}

			covered := 0
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
				}
				covered += tile.Bounds.Dx() * tile.Bounds.Dy()
			}
			if covered != tt.width*tt.height {
				t.Errorf("Tiles cover %d pixels, expected %d", covered, tt.width*tt.height)
			}
		})
	}
}

func TestTileRendererBoundsClipping(t *testing.T) {
	s := createTestScene(t, 1)
	canvas := NewCanvas(s.Camera.Width(), s.Camera.Height())
	tr := NewTileRenderer(s, &MockIntegrator{returnColor: core.NewVec3(1, 1, 1)}, canvas, 2, nil)

	tr.RenderTileBounds(image.Rect(2, 1, 5, 3))
	for y := 0; y < canvas.Height; y++ {
		for x := 0; x < canvas.Width; x++ {
			inside := x >= 2 && x < 5 && y >= 1 && y < 3
			got := canvas.At(x, y)
			if inside && got != core.NewVec3(1, 1, 1) {
				t.Errorf("Pixel (%d,%d) inside bounds not rendered: %v", x, y, got)
			}
			if !inside && got != (core.Vec3{}) {
				t.Errorf("Pixel (%d,%d) outside bounds was written: %v", x, y, got)
			}
		}
	}
}

func TestTileRendererPixelIsDeterministic(t *testing.T) {
	s := createTestScene(t, 7)
	integ := newPathIntegrator(s)
	canvas := NewCanvas(s.Camera.Width(), s.Camera.Height())
	tr := NewTileRenderer(s, integ, canvas, 4, nil)

	first := tr.samplePixel(3, 2)
	second := tr.samplePixel(3, 2)
	if first != second {
		t.Errorf("Same pixel sampled twice gave %v and %v", first, second)
	}
	if first.SampleCount != 4 {
		t.Errorf("Expected 4 samples, got %d", first.SampleCount)
	}
}

func TestPassMix(t *testing.T) {
	if passMix(0) != 0 {
		t.Errorf("Pass 0 must leave the seed unchanged, got %x", passMix(0))
	}
	seen := map[uint64]bool{}
	for pass := 1; pass <= 100; pass++ {
		m := passMix(pass)
		if m == 0 || seen[m] {
			t.Fatalf("Pass %d mixes to a repeated or zero value %x", pass, m)
		}
		seen[m] = true
	}
}
