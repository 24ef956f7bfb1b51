package renderer

import (
	"time"

	"github.com/df07/go-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	NewSamples      int           // Samples taken by this call across all pixels
	SamplesPerPixel int           // Samples per pixel now averaged into the canvas
	Pass            int           // Pass index this call rendered, 0 for a fresh render
	Tiles           int           // Number of tiles scheduled
	Workers         int           // Number of parallel workers used
	Duration        time.Duration // Wall-clock time of the call
}

// SamplesPerSecond returns the sampling throughput of the call
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.NewSamples) / s.Duration.Seconds()
}

// PixelStats accumulates the samples taken for a single pixel in one pass
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// MergeInto folds the accumulated samples into a prior average over
// previous samples: (old*n_old + sum_new) / (n_old + n_new)
func (ps *PixelStats) MergeInto(old core.Vec3, previous int) core.Vec3 {
	total := previous + ps.SampleCount
	if total == 0 {
		return core.Vec3{}
	}
	return old.Multiply(float64(previous)).Add(ps.ColorAccum).Multiply(1.0 / float64(total))
}
