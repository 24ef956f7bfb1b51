package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-raytracer/pkg/integrator"
	"github.com/df07/go-raytracer/pkg/log"
	"github.com/df07/go-raytracer/pkg/renderer"
	"github.com/df07/go-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a built-in scene to a PNG file.
func Render(ctx *cli.Context) error {
	setupLogging(ctx)

	sceneName := ctx.String("scene")
	if ctx.NArg() > 0 {
		sceneName = ctx.Args().First()
	}
	if sceneName == "" {
		return errors.New("missing scene name")
	}

	info, err := scene.Lookup(sceneName)
	if err != nil {
		return err
	}
	sc, err := scene.New(info.Name)
	if err != nil {
		return err
	}
	applyOverrides(ctx, sc)
	if err := sc.Preprocess(); err != nil {
		return fmt.Errorf("preparing scene %q: %w", sc.Name, err)
	}

	integratorName := info.Integrator
	if ctx.IsSet("integrator") {
		integratorName = ctx.String("integrator")
	}
	integ, err := integrator.New(integratorName, sc.SamplingConfig)
	if err != nil {
		return err
	}

	passes := ctx.Int("passes")
	if passes < 1 {
		return fmt.Errorf("%w: %d passes", renderer.ErrInvalidConfig, passes)
	}

	opts := renderer.Options{
		NumWorkers: ctx.Int("workers"),
		TileSize:   ctx.Int("tile-size"),
		Logger:     log.Printer{Logger: logger},
	}

	logger.Noticef("rendering scene %q (%d primitives) with the %s integrator at %dx%d, %d spp, depth %d, seed %d",
		sc.Name, sc.PrimitiveCount(), integratorName, sc.SamplingConfig.Width, sc.SamplingConfig.Height,
		sc.SamplingConfig.SamplesPerPixel, sc.SamplingConfig.MaxDepth, sc.SamplingConfig.Seed)

	start := time.Now()
	canvas, stats, err := renderer.Render(sc, integ, opts)
	if err != nil {
		return err
	}
	allStats := []renderer.RenderStats{stats}

	for pass := 1; pass < passes; pass++ {
		canvas, stats, err = renderer.Resume(canvas, sc, integ, sc.SamplingConfig.SamplesPerPixel, opts)
		if err != nil {
			return err
		}
		allStats = append(allStats, stats)
	}

	displayRenderStats(allStats, time.Since(start))

	out := ctx.String("out")
	if err := writePNG(out, canvas); err != nil {
		return err
	}
	logger.Noticef("wrote %s", out)
	return nil
}

// applyOverrides replaces the scene's recommended settings with any flags
// given on the command line
func applyOverrides(ctx *cli.Context, sc *scene.Scene) {
	if ctx.IsSet("width") {
		sc.CameraConfig.Width = ctx.Int("width")
	}
	if ctx.IsSet("spp") {
		sc.SamplingConfig.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		sc.SamplingConfig.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("seed") {
		sc.SamplingConfig.Seed = ctx.Uint64("seed")
	}
	if ctx.IsSet("aa") {
		sc.SamplingConfig.AntiAliasGrid = ctx.Int("aa")
	}
}

func writePNG(path string, canvas *renderer.Canvas) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := png.Encode(f, canvas.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	return f.Close()
}

func displayRenderStats(stats []renderer.RenderStats, total time.Duration) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pass", "Workers", "Tiles", "New samples", "Total spp", "Samples/sec", "Render time"})
	for _, stat := range stats {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Pass),
			fmt.Sprintf("%d", stat.Workers),
			fmt.Sprintf("%d", stat.Tiles),
			fmt.Sprintf("%d", stat.NewSamples),
			fmt.Sprintf("%d", stat.SamplesPerPixel),
			fmt.Sprintf("%.0f", stat.SamplesPerSecond()),
			stat.Duration.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", total.Round(time.Millisecond).String()})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
