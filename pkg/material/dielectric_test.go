package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	// 45-degree incoming ray onto an upward facing surface
	rayDirection := core.NewVec3(1, -1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(-1, 1, 0), rayDirection)

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	result, scattered := glass.Scatter(ray, hit, sampler)

	if !scattered {
		t.Error("Dielectric should always scatter")
	}

	expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
	if result.Attenuation != expectedAttenuation {
		t.Errorf("Expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
	}

	if !result.IsSpecular() {
		t.Error("Dielectric scattering should be specular")
	}
	if pdf := glass.ScatteringPDF(ray, hit, result.Scattered); pdf != 0 {
		t.Errorf("Expected scattering PDF 0, got %f", pdf)
	}
}

func TestDielectricNormalIncidenceRefracts(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
		Material:  glass,
	}

	cosTheta := -ray.Direction.Dot(hit.Normal)
	if CannotRefract(cosTheta, 1.0/1.5) {
		t.Fatal("normal incidence must not be total internal reflection")
	}

	sampler := core.NewSeededSampler(7)
	const n = 10000
	refracted := 0
	for i := 0; i < n; i++ {
		result, _ := glass.Scatter(ray, hit, sampler)
		if result.Scattered.Direction.Y < 0 {
			refracted++
			if !result.Scattered.Direction.Equals(core.NewVec3(0, -1, 0)) {
				t.Fatalf("normal incidence should pass straight through, got %v", result.Scattered.Direction)
			}
		}
	}

	// Schlick reflectance at normal incidence is 0.04
	if ratio := float64(refracted) / n; ratio < 0.93 || ratio > 0.99 {
		t.Errorf("refraction ratio %.3f, expected ~0.96", ratio)
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Shallow ray leaving the glass
	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: false,
		Material:  glass,
	}

	cosTheta := -rayDirection.Dot(hit.Normal)
	if !CannotRefract(cosTheta, 1.5) {
		t.Fatalf("Test setup error: this angle should cause total internal reflection")
	}

	for i := 0; i < 10; i++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(int64(i))))
		result, scattered := glass.Scatter(ray, hit, sampler)

		if !scattered {
			t.Error("Dielectric should always scatter")
		}
		if result.Scattered.Direction.Y <= 0 {
			t.Errorf("Expected total internal reflection (ray going up), got %+v", result.Scattered.Direction)
		}
		if math.Abs(result.Scattered.Direction.X-rayDirection.X) > 1e-10 {
			t.Errorf("Expected X component %.6f, got %.6f", rayDirection.X, result.Scattered.Direction.X)
		}
	}
}

func TestReflectanceFunction(t *testing.T) {
	r0 := Reflectance(1.0, 1.0/1.5)
	if r0 < 0.03 || r0 > 0.06 {
		t.Errorf("Normal incidence reflectance = %.3f, expected ~0.04", r0)
	}

	r90 := Reflectance(0.0, 1.0/1.5)
	if r90 < 0.95 {
		t.Errorf("Grazing incidence reflectance = %.3f, expected close to 1.0", r90)
	}

	r45 := Reflectance(0.707, 1.0/1.5)
	if r45 <= r0 || r90 <= r45 {
		t.Errorf("Reflectance should increase with angle: R(0°)=%.3f, R(45°)=%.3f, R(90°)=%.3f", r0, r45, r90)
	}
}
