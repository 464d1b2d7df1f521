package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        40.0,
		Aperture:    0.0, // No depth of field for Cornell box
	}
}

// addCornellWalls adds the five walls of the box with a red left and green right wall
func (s *Scene) addCornellWalls() (white *material.Lambertian) {
	white = s.Lambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := s.Lambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := s.Lambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Right wall (green) - YZ plane at x=boxSize
	s.AddQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green)
	// Left wall (red) - YZ plane at x=0
	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red)
	// Floor (white) - XZ plane at y=0
	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	// Ceiling (white) - XZ plane at y=boxSize
	s.AddQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	// Back wall (white) - XY plane at z=boxSize
	s.AddQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white)

	return white
}

// cornellBoxes returns the tall and short blocks, rotated and moved into place
func cornellBoxes(mat material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), 15),
		core.NewVec3(265, 0, 295),
	)
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat), -18),
		core.NewVec3(130, 0, 65),
	)
	return tall, short
}

// NewCornellScene creates a classic Cornell box scene with quad walls and area lighting
func NewCornellScene(opts Options) *Scene {
	s := NewScene("cornell", cornellCamera())
	s.SamplingConfig.SamplesPerPixel = 150
	s.SamplingConfig.MaxDepth = 40

	white := s.addCornellWalls()

	// Ceiling light facing down into the box
	s.AddQuadLight(
		core.NewVec3(213, boxSize-1, 227),
		core.NewVec3(130, 0, 0),
		core.NewVec3(0, 0, 105),
		core.NewVec3(15, 15, 15),
	)

	tall, short := cornellBoxes(white)
	s.Add(tall, short)
	return s
}

// NewCornellSmokeScene fills the Cornell box blocks with dark and light participating media
func NewCornellSmokeScene(opts Options) *Scene {
	s := NewScene("cornell-smoke", cornellCamera())
	s.SamplingConfig.SamplesPerPixel = 200
	s.SamplingConfig.MaxDepth = 50

	white := s.addCornellWalls()

	// Larger, dimmer light so the smoke is evenly lit
	s.AddQuadLight(
		core.NewVec3(113, boxSize-1, 127),
		core.NewVec3(330, 0, 0),
		core.NewVec3(0, 0, 305),
		core.NewVec3(7, 7, 7),
	)

	tall, short := cornellBoxes(white)
	s.Add(
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)
	return s
}
