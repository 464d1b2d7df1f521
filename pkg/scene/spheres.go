package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

const sphereFieldSize = 11

// NewSpheresScene creates a field of small random spheres around three large ones,
// on a checkered ground and with a shallow depth of field
func NewSpheresScene(opts Options) *Scene {
	s := NewScene("spheres", renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	})
	s.TopColor = core.NewVec3(0.5, 0.7, 1.0)
	s.BottomColor = core.NewVec3(1.0, 1.0, 1.0)
	s.SamplingConfig.SamplesPerPixel = 100
	s.SamplingConfig.MaxDepth = 50

	random := core.NewSeededSampler(opts.Seed)
	randomColor := func(lo, hi float64) core.Vec3 {
		return core.NewVec3(random.Range(lo, hi), random.Range(lo, hi), random.Range(lo, hi))
	}

	ground := s.TexturedLambertian(material.NewCheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	s.AddGroundSphere(ground)

	// The small spheres share a sub-BVH, which the scene BVH then treats as one object
	var field []geometry.Hittable
	glass := material.NewDielectric(1.5)
	for a := -sphereFieldSize; a < sphereFieldSize; a++ {
		for b := -sphereFieldSize; b < sphereFieldSize; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Get1D(), 0.2, float64(b)+0.9*random.Get1D())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch choice := random.Get1D(); {
			case choice < 0.6:
				mat = s.Lambertian(randomColor(0, 1).MultiplyVec(randomColor(0, 1)))
			case choice < 0.85:
				mat = material.NewMetal(randomColor(0.5, 1), random.Range(0, 0.5))
			default:
				mat = glass
			}
			field = append(field, s.NewSphere(center, 0.2, mat))
		}
	}
	if bvh, err := geometry.NewBVH(field, random); err == nil {
		s.Add(bvh)
	} else {
		opts.logger().Printf("Scene spheres: %v, adding spheres individually\n", err)
		s.Add(field...)
	}

	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, s.Lambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	return s
}
