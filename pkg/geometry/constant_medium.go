package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ConstantMedium is a homogeneous participating medium filling a closed boundary
type ConstantMedium struct {
	Boundary      Hittable
	Density       float64
	PhaseFunction material.Material
}

// NewConstantMedium fills boundary with an isotropic medium of the given density and color
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// Hit samples a free flight distance -ln(ξ)/density inside the boundary.
// The ray passes through when the distance exceeds the path length inside.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if sampler == nil || m.Density <= 0 {
		return nil, false
	}

	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+0.0001, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	tEnter := math.Max(entry.T, tMin)
	tExit := math.Min(exit.T, tMax)
	if tEnter >= tExit {
		return nil, false
	}
	tEnter = math.Max(tEnter, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (tExit - tEnter) * rayLength
	hitDistance := -math.Log(sampler.Get1D()) / m.Density
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := tEnter + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() (core.AABB, bool) {
	return m.Boundary.BoundingBox()
}
