package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/integrator"
	"github.com/df07/go-raytracer/pkg/scene"
)

// Options configures how a render is scheduled. None of them change the image.
type Options struct {
	NumWorkers int         // Number of parallel workers (0 = use CPU count)
	TileSize   int         // Size of each square tile in pixels (0 = 64)
	Logger     core.Logger // Progress output (nil = discard)
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		NumWorkers: 0,
		TileSize:   64,
		Logger:     core.NopLogger{},
	}
}

func (o Options) withDefaults() Options {
	if o.TileSize <= 0 {
		o.TileSize = 64
	}
	if o.Logger == nil {
		o.Logger = core.NopLogger{}
	}
	return o
}

// Render renders a preprocessed scene from scratch, taking
// SamplingConfig.SamplesPerPixel samples for every pixel
func Render(s *scene.Scene, integratorInst integrator.Integrator, opts Options) (*Canvas, RenderStats, error) {
	if err := validateScene(s); err != nil {
		return nil, RenderStats{}, err
	}
	canvas := NewCanvas(s.Camera.Width(), s.Camera.Height())
	stats, err := renderPass(canvas, s, integratorInst, s.SamplingConfig.SamplesPerPixel, opts.withDefaults())
	if err != nil {
		return nil, RenderStats{}, err
	}
	return canvas, stats, nil
}

// Resume adds extraSamples samples per pixel to a previously rendered canvas
// and returns the merged result. The input canvas is left untouched. The new
// samples come from streams private to the canvas's next pass, so resuming
// is deterministic but not equivalent to a single longer render.
func Resume(canvas *Canvas, s *scene.Scene, integratorInst integrator.Integrator, extraSamples int, opts Options) (*Canvas, RenderStats, error) {
	if err := validateScene(s); err != nil {
		return nil, RenderStats{}, err
	}
	if canvas == nil {
		return nil, RenderStats{}, fmt.Errorf("%w: no canvas to resume", ErrCanvasMismatch)
	}
	if canvas.Width != s.Camera.Width() || canvas.Height != s.Camera.Height() || len(canvas.Pixels) != canvas.Width*canvas.Height {
		return nil, RenderStats{}, fmt.Errorf("%w: canvas is %dx%d, scene is %dx%d",
			ErrCanvasMismatch, canvas.Width, canvas.Height, s.Camera.Width(), s.Camera.Height())
	}

	resumed := canvas.Clone()
	stats, err := renderPass(resumed, s, integratorInst, extraSamples, opts.withDefaults())
	if err != nil {
		return nil, RenderStats{}, err
	}
	return resumed, stats, nil
}

func validateScene(s *scene.Scene) error {
	if s == nil || s.Camera == nil || s.BVH == nil {
		return fmt.Errorf("%w: scene has not been preprocessed", ErrInvalidConfig)
	}
	if s.SamplingConfig.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d is negative", ErrInvalidConfig, s.SamplingConfig.MaxDepth)
	}
	if s.SamplingConfig.AntiAliasGrid < 0 {
		return fmt.Errorf("%w: anti-aliasing grid %d is negative", ErrInvalidConfig, s.SamplingConfig.AntiAliasGrid)
	}
	return nil
}

// renderPass takes samples new samples for every pixel of canvas and merges
// them into it in place
func renderPass(canvas *Canvas, s *scene.Scene, integratorInst integrator.Integrator, samples int, opts Options) (RenderStats, error) {
	if samples < 1 {
		return RenderStats{}, fmt.Errorf("%w: %d samples per pixel", ErrInvalidConfig, samples)
	}

	startTime := time.Now()
	tiles := NewTileGrid(canvas.Width, canvas.Height, opts.TileSize)
	pool := NewWorkerPool(opts.NumWorkers)
	totalPixels := canvas.Width * canvas.Height

	opts.Logger.Printf("pass %d: rendering %dx%d at %d samples per pixel with %d workers (seed %d)",
		canvas.Passes, canvas.Width, canvas.Height, samples, pool.NumWorkers(), s.SamplingConfig.Seed)

	tileRenderer := NewTileRenderer(s, integratorInst, canvas, samples, newProgress(totalPixels, opts.Logger))
	err := pool.Run(tiles, func(tile *Tile) error {
		tileRenderer.RenderTileBounds(tile.Bounds)
		return nil
	})
	if err != nil {
		return RenderStats{}, err
	}

	stats := RenderStats{
		Width:           canvas.Width,
		Height:          canvas.Height,
		TotalPixels:     totalPixels,
		NewSamples:      totalPixels * samples,
		SamplesPerPixel: canvas.Samples + samples,
		Pass:            canvas.Passes,
		Tiles:           len(tiles),
		Workers:         pool.NumWorkers(),
		Duration:        time.Since(startTime),
	}

	canvas.Samples += samples
	canvas.Passes++

	opts.Logger.Printf("pass %d completed in %v (%d samples per pixel total)",
		stats.Pass, stats.Duration, canvas.Samples)

	return stats, nil
}
