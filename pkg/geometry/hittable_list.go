package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// HittableList is a flat collection of shapes searched linearly
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list holding objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit over all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar, sampler); ok {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of every object's box.
// An empty list, or one holding an unbounded object, has no box.
func (l *HittableList) BoundingBox() (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range l.Objects {
		objectBox, ok := object.BoundingBox()
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = objectBox
		} else {
			box = box.Union(objectBox)
		}
	}
	return box, true
}

// PDFValue averages the light densities of the members.
// Members that cannot be sampled as lights contribute zero.
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	sum := 0.0
	for _, object := range l.Objects {
		if target, ok := object.(pdf.Target); ok {
			sum += target.PDFValue(origin, direction)
		}
	}
	return sum / float64(len(l.Objects))
}

// Random samples a direction towards a uniformly chosen member
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}

	object := l.Objects[sampler.IntRange(0, len(l.Objects))]
	if target, ok := object.(pdf.Target); ok {
		return target.Random(origin, sampler)
	}
	return core.NewVec3(1, 0, 0)
}
