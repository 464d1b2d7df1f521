package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a shape by a fixed offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate wraps object so that it appears moved by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into object space, then moves the hit point back
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	moved := core.NewRay(ray.Origin.Subtract(tr.Offset), ray.Direction)

	hit, ok := tr.Object.Hit(moved, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox returns the object's box shifted by the offset
func (tr *Translate) BoundingBox() (core.AABB, bool) {
	box, ok := tr.Object.BoundingBox()
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(tr.Offset), true
}

// RotateY rotates a shape about the Y axis
type RotateY struct {
	Object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
	hasBox   bool
}

// NewRotateY wraps object rotated by angle degrees about +Y
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	box, ok := object.BoundingBox()
	if !ok {
		return r
	}

	corners := box.Corners()
	for i, c := range corners {
		corners[i] = r.toWorld(c)
	}
	r.bbox = core.NewAABBFromPoints(corners[:]...)
	r.hasBox = true

	return r
}

// toObject rotates a world space vector by -angle
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates an object space vector by +angle
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, then rotates the hit point and normal back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRay(r.toObject(ray.Origin), r.toObject(ray.Direction))

	hit, ok := r.Object.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box around the rotated corners of the object's box
func (r *RotateY) BoundingBox() (core.AABB, bool) {
	return r.bbox, r.hasBox
}
