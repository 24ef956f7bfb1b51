package renderer

import (
	"image"
	"sync/atomic"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/integrator"
	"github.com/df07/go-raytracer/pkg/scene"
)

// TileRenderer renders the pixels of one pass into a shared canvas
type TileRenderer struct {
	scene       *scene.Scene
	integrator  integrator.Integrator
	canvas      *Canvas
	pass        int // Pass index, selects the random streams
	startSample int // Index of the first new sample, continues the AA grid
	samples     int // New samples per pixel
	progress    *progress
}

// NewTileRenderer creates a tile renderer for one pass over canvas
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator, canvas *Canvas, samples int, progress *progress) *TileRenderer {
	return &TileRenderer{
		scene:       s,
		integrator:  integratorInst,
		canvas:      canvas,
		pass:        canvas.Passes,
		startSample: canvas.Samples,
		samples:     samples,
		progress:    progress,
	}
}

// RenderTileBounds renders and merges every pixel within bounds
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle) {
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := tr.samplePixel(i, j)
			tr.canvas.Set(i, j, ps.MergeInto(tr.canvas.At(i, j), tr.startSample))
			if tr.progress != nil {
				tr.progress.pixelDone()
			}
		}
	}
}

// samplePixel takes this pass's samples for pixel (i, j) from the pixel's own stream
func (tr *TileRenderer) samplePixel(i, j int) PixelStats {
	config := tr.scene.SamplingConfig
	pixelIndex := uint64(j*tr.canvas.Width + i)
	sampler := core.NewStreamSampler(config.Seed^passMix(tr.pass), pixelIndex)

	var ps PixelStats
	for s := 0; s < tr.samples; s++ {
		ray := tr.scene.Camera.GetRay(i, j, tr.startSample+s, config.AntiAliasGrid, sampler)
		ps.AddSample(tr.integrator.RayColor(ray, tr.scene, sampler))
	}
	return ps
}

// passMix scrambles a pass index into seed bits. Pass 0 leaves the seed
// unchanged so a fresh render uses the master seed directly.
func passMix(pass int) uint64 {
	if pass == 0 {
		return 0
	}
	z := uint64(pass) * 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// progress counts finished pixels and logs every tenth of the image
type progress struct {
	done   atomic.Int64
	total  int64
	step   int64
	logger core.Logger
}

func newProgress(total int, logger core.Logger) *progress {
	return &progress{
		total:  int64(total),
		step:   max(1, int64(total)/10),
		logger: logger,
	}
}

func (p *progress) pixelDone() {
	done := p.done.Add(1)
	if done%p.step == 0 || done == p.total {
		p.logger.Printf("progress: %d/%d pixels (%d%%)", done, p.total, done*100/p.total)
	}
}
