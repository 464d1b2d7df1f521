package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Scene is the read-only view of a scene that light transport needs
type Scene interface {
	// GetWorld returns the root of the scene geometry, usually a BVH
	GetWorld() geometry.Hittable
	// GetLights returns the shapes to importance sample, or nil for none
	GetLights() pdf.Target
	// BackgroundColor returns the radiance arriving along a ray that escapes the scene
	BackgroundColor(ray core.Ray) core.Vec3
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray, following at most depth bounces
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler, depth int) core.Vec3
}
