// Package pdf provides direction sampling distributions used for importance sampling.
package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultMixtureWeight is the probability of drawing from the light distribution
// when a material distribution is mixed with light sampling.
const DefaultMixtureWeight = 0.2

// PDF generates directions and reports the density of a given direction
type PDF interface {
	Value(direction core.Vec3) float64
	Generate(sampler core.Sampler) core.Vec3
}

// Target is implemented by shapes that can be importance sampled as light sources
type Target interface {
	// PDFValue returns the solid angle density of sampling direction from origin
	PDFValue(origin, direction core.Vec3) float64
	// Random returns a direction from origin towards the shape
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// SpherePDF samples directions uniformly over the unit sphere
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere distribution
func NewSpherePDF() SpherePDF {
	return SpherePDF{}
}

// Value returns 1/4π for every direction
func (SpherePDF) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate returns a uniform random unit direction
func (SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}

// CosinePDF samples the hemisphere around a normal with density cosθ/π
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF creates a cosine-weighted distribution around normal
func NewCosinePDF(normal core.Vec3) CosinePDF {
	return CosinePDF{uvw: core.NewONB(normal)}
}

// Value returns cosθ/π, or 0 below the hemisphere
func (p CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate returns a cosine-weighted direction around the normal
func (p CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Local(core.SampleCosineDirection(sampler.Get2D()))
}

// HittablePDF samples directions from origin towards a light shape
type HittablePDF struct {
	origin core.Vec3
	target Target
}

// NewHittablePDF creates a distribution over directions from origin to target
func NewHittablePDF(target Target, origin core.Vec3) HittablePDF {
	return HittablePDF{origin: origin, target: target}
}

// Value delegates to the target's density
func (p HittablePDF) Value(direction core.Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// Generate delegates to the target's sampler
func (p HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.target.Random(p.origin, sampler)
}

// MixturePDF is a convex combination of two distributions.
// P0 is chosen with probability Weight.
type MixturePDF struct {
	P0, P1 PDF
	Weight float64
}

// NewMixturePDF mixes p0 and p1 with DefaultMixtureWeight on p0
func NewMixturePDF(p0, p1 PDF) MixturePDF {
	return NewWeightedMixturePDF(p0, p1, DefaultMixtureWeight)
}

// NewWeightedMixturePDF mixes p0 and p1, clamping weight to [0, 1]
func NewWeightedMixturePDF(p0, p1 PDF, weight float64) MixturePDF {
	return MixturePDF{P0: p0, P1: p1, Weight: math.Max(0, math.Min(1, weight))}
}

// Value returns weight*p0 + (1-weight)*p1
func (m MixturePDF) Value(direction core.Vec3) float64 {
	return m.Weight*m.P0.Value(direction) + (1-m.Weight)*m.P1.Value(direction)
}

// Generate draws from p0 with probability weight, otherwise from p1
func (m MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < m.Weight {
		return m.P0.Generate(sampler)
	}
	return m.P1.Generate(sampler)
}
