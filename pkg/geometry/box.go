package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is a closed axis-aligned rectangular prism made up of 6 quads.
// Rotate or move it with RotateY and Translate.
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates the box spanning the two opposite corners a and b
func NewBox(a, b core.Vec3, material material.Material) *Box {
	min := a.Min(b)
	max := a.Max(b)

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	sides := NewHittableList(
		NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, material),          // front
		NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, material), // right
		NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, material), // back
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, material),          // left
		NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), material), // top
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, material),          // bottom
	)

	return &Box{Min: min, Max: max, sides: sides}
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
