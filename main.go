package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var (
	sceneFlag   = flag.String("scene", "", "Scene to render: "+strings.Join(scene.Names(), ", ")+" (overrides PATHTRACER_SCENE)")
	samplesFlag = flag.Int("samples", 0, "Maximum samples per pixel (overrides PATHTRACER_SAMPLES_PER_PIXEL)")
	passesFlag  = flag.Int("passes", 0, "Number of progressive passes (overrides PATHTRACER_MAX_PASSES)")
	outFlag     = flag.String("out", "", "Output directory (overrides PATHTRACER_OUTPUT_DIR)")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load()
	if err != nil {
		glog.Exitf("Error loading configuration: %v", err)
	}
	applyFlags(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	filename, err := run(ctx, cfg)
	if err != nil {
		glog.Errorf("Render failed: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Infof("Render saved as %s", filename)
}

// applyFlags overrides configuration values with any flags given on the command line
func applyFlags(cfg *config.Config) {
	if *sceneFlag != "" {
		cfg.Scene = *sceneFlag
	}
	if *samplesFlag > 0 {
		cfg.SamplesPerPixel = *samplesFlag
	}
	if *passesFlag > 0 {
		cfg.MaxPasses = *passesFlag
	}
	if *outFlag != "" {
		cfg.OutputDir = *outFlag
	}
}

// createScene builds the configured scene
func createScene(cfg *config.Config) (*scene.Scene, error) {
	return scene.New(cfg.Scene, scene.Options{
		Width:           cfg.Width,
		Height:          cfg.Height,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		TextureDir:      cfg.TextureDir,
		Seed:            cfg.Seed,
		Logger:          renderer.NewDefaultLogger(),
	})
}

func progressiveConfig(cfg *config.Config, s *scene.Scene) renderer.ProgressiveConfig {
	pc := renderer.DefaultProgressiveConfig()
	pc.TileSize = cfg.TileSize
	pc.MaxSamplesPerPixel = s.GetSamplingConfig().SamplesPerPixel
	pc.MaxPasses = min(cfg.MaxPasses, pc.MaxSamplesPerPixel)
	pc.NumWorkers = cfg.Workers
	pc.Seed = cfg.Seed
	return pc
}

// run renders the configured scene progressively and writes the last finished pass.
// An interrupted render still saves the most recent complete pass.
func run(ctx context.Context, cfg *config.Config) (string, error) {
	s, err := createScene(cfg)
	if err != nil {
		return "", err
	}

	sampling := s.GetSamplingConfig()
	pr, err := renderer.NewProgressiveRaytracer(s, sampling.Width, sampling.Height,
		progressiveConfig(cfg, s), integrator.NewPathTracingIntegrator(), renderer.NewDefaultLogger())
	if err != nil {
		return "", err
	}

	glog.Infof("Rendering %s at %dx%d, up to %d samples per pixel (render %s)",
		cfg.Scene, sampling.Width, sampling.Height, sampling.SamplesPerPixel, pr.ID())

	startTime := time.Now()
	passChan, errChan := pr.RenderProgressive(ctx)

	var last *renderer.PassResult
	for result := range passChan {
		last = &result
	}
	renderErr := <-errChan

	if last == nil {
		if renderErr == nil {
			renderErr = errors.New("no pass completed")
		}
		return "", renderErr
	}
	if renderErr != nil && !errors.Is(renderErr, context.Canceled) {
		return "", renderErr
	}
	if renderErr != nil {
		glog.Warningf("Render interrupted after pass %d, saving partial result", last.PassNumber)
	}

	glog.Infof("Render completed in %v: %.1f samples per pixel (range %d - %d)",
		time.Since(startTime), last.Stats.AverageSamples, last.Stats.MinSamples, last.Stats.MaxSamplesUsed)

	filename := outputPath(cfg.OutputDir, cfg.Scene, pr.ID().String(), last.Stats.MaxSamplesUsed)
	if err := savePNG(filename, last.Image); err != nil {
		return "", err
	}
	return filename, nil
}

// outputPath returns <dir>/<scene>/render_<id>_<samples>spp.png
func outputPath(dir, sceneName, renderID string, samples int) string {
	return filepath.Join(dir, sceneName, fmt.Sprintf("render_%s_%dspp.png", renderID, samples))
}

func savePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}
