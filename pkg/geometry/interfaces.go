package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect.
// The sampler is only consumed by shapes with stochastic intersections (participating
// media); callers that cannot supply one pass nil and such shapes report a miss.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)
	// BoundingBox returns false when the shape has no finite bounds
	BoundingBox() (core.AABB, bool)
}
