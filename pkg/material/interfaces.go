package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter samples the material at a hit. It returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// ScatteringPDF returns the density of the material's own scattering distribution
	// for the scattered direction. It must agree with the PDF returned by Scatter.
	ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(hit HitRecord) core.Vec3
}

// ScatterResult contains the result of material scattering.
// Exactly one of Scattered and PDF is meaningful: specular materials return a
// deterministic ray, diffuse materials return a distribution to sample.
type ScatterResult struct {
	Attenuation core.Vec3 // Color attenuation
	Scattered   core.Ray  // Outgoing ray for specular scattering
	PDF         pdf.PDF   // Sampling distribution, nil for specular scattering
}

// IsSpecular returns true if the scattered ray is deterministic (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF == nil
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, facing against the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface parameterization
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
