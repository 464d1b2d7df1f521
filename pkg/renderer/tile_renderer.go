package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      Scene
	integrator integrator.Integrator
	width      int
	height     int
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(scene Scene, integratorInst integrator.Integrator, width, height int) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		integrator: integratorInst,
		width:      width,
		height:     height,
	}
}

// RenderTileBounds tops up every pixel in bounds to targetSamples.
// Pixels are addressed in image coordinates with row 0 at the top.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler, targetSamples int) RenderStats {
	camera := tr.scene.GetCamera()
	maxDepth := tr.scene.GetSamplingConfig().MaxDepth

	stats := RenderStats{MaxSamples: targetSamples, MinSamples: targetSamples}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[j][i]
			before := ps.SampleCount
			for ps.SampleCount < targetSamples {
				s := (float64(i) + sampler.Get1D()) / float64(tr.width)
				t := (float64(tr.height-1-j) + sampler.Get1D()) / float64(tr.height)
				ray := camera.GetRay(s, t, sampler)
				ps.AddSample(tr.integrator.RayColor(ray, tr.scene, sampler, maxDepth))
			}
			stats.add(ps.SampleCount - before)
		}
	}

	stats.finalize()
	return stats
}
