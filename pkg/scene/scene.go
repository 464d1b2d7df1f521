package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned by New for names that have no builder
var ErrUnknownScene = errors.New("unknown scene")

const arenaChunkSize = 256

// Options control how a scene is built
type Options struct {
	Width           int    // Image width, 0 keeps the scene default
	Height          int    // Image height, 0 derives it from the camera aspect ratio
	SamplesPerPixel int    // 0 keeps the scene default
	MaxDepth        int    // 0 keeps the scene default
	TextureDir      string // Directory searched for image textures
	Seed            int64  // Seed for random scene layout and BVH construction
	Logger          core.Logger
}

func (o Options) logger() core.Logger {
	if o.Logger == nil {
		return renderer.NewDefaultLogger()
	}
	return o.Logger
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	TopColor       core.Vec3 // Background radiance straight up
	BottomColor    core.Vec3 // Background radiance straight down
	Shapes         []geometry.Hittable
	Lights         *geometry.HittableList // Shapes sampled directly by the integrator
	SamplingConfig renderer.SamplingConfig
	World          geometry.Hittable // Acceleration structure built by Preprocess
	BVHStats       geometry.BVHStats

	spheres     *core.Arena[geometry.Sphere]
	quads       *core.Arena[geometry.Quad]
	lambertians *core.Arena[material.Lambertian]
}

// NewScene creates an empty scene with the given camera and default sampling settings
func NewScene(name string, cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		Name:           name,
		CameraConfig:   cameraConfig,
		Lights:         geometry.NewHittableList(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
		spheres:        core.NewArena[geometry.Sphere](arenaChunkSize),
		quads:          core.NewArena[geometry.Quad](arenaChunkSize),
		lambertians:    core.NewArena[material.Lambertian](arenaChunkSize),
	}
}

type builder func(opts Options) *Scene

var builders = map[string]builder{
	"cornell":       NewCornellScene,
	"cornell-smoke": NewCornellSmokeScene,
	"spheres":       NewSpheresScene,
	"earth":         NewEarthScene,
	"emission":      NewEmissionScene,
}

// Names returns the names accepted by New in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene, applies the options and prepares it for rendering
func New(name string, opts Options) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	opts.Logger = opts.logger()

	s := build(opts)
	s.applyOptions(opts)

	if err := s.Preprocess(core.NewSeededSampler(opts.Seed)); err != nil {
		return nil, err
	}

	opts.Logger.Printf("Scene %s: %d objects, %d lights, BVH %d nodes (max depth %d)\n",
		s.Name, len(s.Shapes), s.Lights.Len(), s.BVHStats.Nodes, s.BVHStats.MaxDepth)
	return s, nil
}

// applyOptions overrides image size and sampling settings and creates the camera
func (s *Scene) applyOptions(opts Options) {
	if opts.Width > 0 {
		s.CameraConfig.Width = opts.Width
	}
	if opts.Width > 0 && opts.Height > 0 {
		s.CameraConfig.AspectRatio = float64(opts.Width) / float64(opts.Height)
	}
	if opts.SamplesPerPixel > 0 {
		s.SamplingConfig.SamplesPerPixel = opts.SamplesPerPixel
	}
	if opts.MaxDepth > 0 {
		s.SamplingConfig.MaxDepth = opts.MaxDepth
	}

	s.Camera = renderer.NewCamera(s.CameraConfig)
	s.SamplingConfig.Width, s.SamplingConfig.Height = s.Camera.ImageSize()
}

// Preprocess builds the BVH over all shapes
func (s *Scene) Preprocess(sampler core.Sampler) error {
	if s.Camera == nil {
		s.Camera = renderer.NewCamera(s.CameraConfig)
	}

	bvh, err := geometry.NewBVH(s.Shapes, sampler)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	s.World = bvh
	s.BVHStats = bvh.Stats()
	return nil
}

// GetWorld returns the root of the scene geometry
func (s *Scene) GetWorld() geometry.Hittable {
	return s.World
}

// GetLights returns the light list, or nil when the scene has no sampled lights
func (s *Scene) GetLights() pdf.Target {
	if s.Lights == nil || s.Lights.Len() == 0 {
		return nil
	}
	return s.Lights
}

// BackgroundColor blends from BottomColor to TopColor with the ray's elevation
func (s *Scene) BackgroundColor(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Y + 1.0)
	return s.BottomColor.Multiply(1.0 - t).Add(s.TopColor.Multiply(t))
}

func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.SamplingConfig
}

// SetBackground sets a constant background radiance
func (s *Scene) SetBackground(color core.Vec3) {
	s.TopColor = color
	s.BottomColor = color
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Hittable) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddSphere allocates a sphere from the scene arena and adds it
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere := s.NewSphere(center, radius, mat)
	s.Add(sphere)
	return sphere
}

// NewSphere allocates a sphere from the scene arena without adding it
func (s *Scene) NewSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	return s.spheres.New(*geometry.NewSphere(center, radius, mat))
}

// AddQuad allocates a quad from the scene arena and adds it
func (s *Scene) AddQuad(corner, u, v core.Vec3, mat material.Material) *geometry.Quad {
	quad := s.quads.New(*geometry.NewQuad(corner, u, v, mat))
	s.Add(quad)
	return quad
}

// AddQuadLight adds an emissive quad that is also sampled as a light
func (s *Scene) AddQuadLight(corner, u, v, emission core.Vec3) *geometry.Quad {
	quad := s.AddQuad(corner, u, v, material.NewEmissive(emission))
	s.Lights.Add(quad)
	return quad
}

// AddSphereLight adds an emissive sphere that is also sampled as a light
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) *geometry.Sphere {
	sphere := s.AddSphere(center, radius, material.NewEmissive(emission))
	s.Lights.Add(sphere)
	return sphere
}

// Lambertian allocates a diffuse material from the scene arena
func (s *Scene) Lambertian(albedo core.Vec3) *material.Lambertian {
	return s.lambertians.New(*material.NewLambertian(albedo))
}

// TexturedLambertian allocates a textured diffuse material from the scene arena
func (s *Scene) TexturedLambertian(texture material.ColorSource) *material.Lambertian {
	return s.lambertians.New(*material.NewTexturedLambertian(texture))
}

// AddGroundSphere adds the huge sphere used as a ground plane
func (s *Scene) AddGroundSphere(mat material.Material) *geometry.Sphere {
	return s.AddSphere(core.NewVec3(0, -1000, 0), 1000, mat)
}
