package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Emissive represents a one-sided light emitting material
type Emissive struct {
	Emission ColorSource
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: NewSolidColor(emission)}
}

// NewTexturedEmissive creates an emitter whose radiance comes from a texture
func NewTexturedEmissive(emission ColorSource) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter never scatters; emitters terminate paths
func (e *Emissive) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// ScatteringPDF is zero since nothing is scattered
func (e *Emissive) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission for front-facing hits and black from behind
func (e *Emissive) Emitted(hit HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return e.Emission.Evaluate(hit.UV, hit.Point)
}
