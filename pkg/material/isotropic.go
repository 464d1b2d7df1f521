package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Isotropic is the phase function of a homogeneous participating medium
type Isotropic struct {
	Albedo ColorSource
}

// NewIsotropic creates an isotropic phase function with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function with a texture
func NewTexturedIsotropic(albedo ColorSource) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter returns the albedo and a uniform sphere distribution
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
		PDF:         pdf.NewSpherePDF(),
	}, true
}

// ScatteringPDF returns 1/4π for every direction
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}
