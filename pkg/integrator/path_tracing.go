package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// shadowAcneEpsilon keeps secondary rays from re-hitting the surface they leave
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements recursive unidirectional path tracing.
// Diffuse bounces draw from a mixture of light sampling and the material's own
// distribution; specular bounces follow the material's deterministic ray.
type PathTracingIntegrator struct {
	mixtureWeight float64
}

// NewPathTracingIntegrator creates a path tracer using the default light mixture weight
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{mixtureWeight: pdf.DefaultMixtureWeight}
}

// NewPathTracingIntegratorWithWeight creates a path tracer that samples lights
// with probability weight on diffuse bounces
func NewPathTracingIntegratorWithWeight(weight float64) *PathTracingIntegrator {
	return &PathTracingIntegrator{mixtureWeight: weight}
}

// RayColor computes the color for a single ray.
// Exhausting depth returns black rather than terminating probabilistically.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := scene.GetWorld().Hit(ray, shadowAcneEpsilon, math.Inf(1), sampler)
	if !isHit {
		return scene.BackgroundColor(ray)
	}

	colorEmitted := pt.getEmittedLight(hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	if scatter.IsSpecular() {
		incoming := pt.RayColor(scatter.Scattered, scene, sampler, depth-1)
		return colorEmitted.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	return colorEmitted.Add(pt.calculateDiffuseColor(ray, hit, scatter, scene, sampler, depth))
}

// calculateDiffuseColor draws one direction from the light/material mixture and
// weights the recursive estimate by scatteringPDF / samplingPDF
func (pt *PathTracingIntegrator) calculateDiffuseColor(ray core.Ray, hit *material.HitRecord, scatter material.ScatterResult, scene Scene, sampler core.Sampler, depth int) core.Vec3 {
	samplingPDF := scatter.PDF
	if lights := scene.GetLights(); lights != nil {
		lightPDF := pdf.NewHittablePDF(lights, hit.Point)
		samplingPDF = pdf.NewWeightedMixturePDF(lightPDF, scatter.PDF, pt.mixtureWeight)
	}

	scattered := core.NewRay(hit.Point, samplingPDF.Generate(sampler))
	if scattered.IsDegenerate() {
		return core.Vec3{}
	}

	// A direction the mixture cannot produce carries no usable sample
	pdfValue := samplingPDF.Value(scattered.Direction)
	if pdfValue <= 0 || math.IsNaN(pdfValue) || math.IsInf(pdfValue, 0) {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)
	if scatteringPDF <= 0 {
		return core.Vec3{}
	}

	incoming := pt.RayColor(scattered, scene, sampler, depth-1)
	return scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue)
}

// getEmittedLight returns the emitted light from a material if it's emissive
func (pt *PathTracingIntegrator) getEmittedLight(hit *material.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
		return emitter.Emitted(*hit)
	}
	return core.Vec3{}
}
