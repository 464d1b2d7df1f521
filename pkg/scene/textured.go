package scene

import (
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// EarthTextureFile is looked up in Options.TextureDir
const EarthTextureFile = "earthmap.jpg"

// loadTexture loads an image texture, logging failures and falling back to magenta
func loadTexture(opts Options, name string) material.ColorSource {
	texture, err := loaders.LoadImageTexture(filepath.Join(opts.TextureDir, name))
	if err != nil {
		opts.logger().Printf("Texture %s unavailable, rendering it magenta: %v\n", name, err)
	}
	return texture
}

// NewEarthScene creates a single image-textured globe against a sky gradient
func NewEarthScene(opts Options) *Scene {
	s := NewScene("earth", renderer.CameraConfig{
		Center:      core.NewVec3(0, 2, 20),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	})
	s.TopColor = core.NewVec3(0.5, 0.7, 1.0)
	s.BottomColor = core.NewVec3(1.0, 1.0, 1.0)
	s.SamplingConfig.SamplesPerPixel = 64
	s.SamplingConfig.MaxDepth = 20

	s.AddSphere(core.NewVec3(0, 0, 0), 2.0, s.TexturedLambertian(loadTexture(opts, EarthTextureFile)))
	return s
}

// NewEmissionScene creates marble-textured spheres in the dark, lit by a quad and a sphere light
func NewEmissionScene(opts Options) *Scene {
	s := NewScene("emission", renderer.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	})
	s.SetBackground(core.NewVec3(0.01, 0.01, 0.01))
	s.SamplingConfig.SamplesPerPixel = 200
	s.SamplingConfig.MaxDepth = 50

	marble := s.TexturedLambertian(material.NewNoiseTexture(4))
	s.AddGroundSphere(marble)
	s.AddSphere(core.NewVec3(0, 2, 0), 2.0, marble)

	// Quad light facing +z, toward the camera side
	s.AddQuadLight(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), core.NewVec3(4, 4, 4))
	s.AddSphereLight(core.NewVec3(0, 7, 0), 2.0, core.NewVec3(4, 4, 4))
	return s
}
