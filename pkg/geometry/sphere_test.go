package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_CameraScenario(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1), nil)
	if !isHit {
		t.Fatal("Expected hit through image center")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected t=0.5, got %f", hit.T)
	}
	if !hit.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if hit.Material != mat {
		t.Error("Hit record should reference the sphere's material")
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "far root when near root is excluded",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      3.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tMin := 0.001
			if i == 2 {
				tMin = 1.5
			}
			hit, isHit := sphere.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection), tMin, 1000.0, nil)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected FrontFace=%t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !hit.Normal.Equals(tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_PointOnSurface(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, -2, 3), 1.5, nil)
	sampler := core.NewSeededSampler(21)

	hits := 0
	for i := 0; i < 2000; i++ {
		origin := sampler.Get3D().Multiply(10).Subtract(core.NewVec3(5, 5, 5))
		target := sphere.Center.Add(core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(2))
		ray := core.NewRay(origin, target.Subtract(origin))

		hit, ok := sphere.Hit(ray, 0.001, math.Inf(1), nil)
		if !ok {
			continue
		}
		hits++

		if d := ray.At(hit.T).Subtract(sphere.Center).Length(); math.Abs(d-sphere.Radius) > 1e-9 {
			t.Fatalf("hit point at distance %f from center, expected %f", d, sphere.Radius)
		}
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Fatalf("normal not unit length: %v", hit.Normal)
		}
		if hit.Normal.Dot(ray.Direction) > 1e-12 {
			t.Fatalf("normal %v does not face the ray %v", hit.Normal, ray.Direction)
		}
		if hit.UV.X < 0 || hit.UV.X > 1 || hit.UV.Y < 0 || hit.UV.Y > 1 {
			t.Fatalf("UV out of range: %v", hit.UV)
		}
	}
	if hits == 0 {
		t.Fatal("expected some rays to hit the sphere")
	}
}

func TestSphere_Hit_DegenerateRay(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.Vec3{})

	if _, ok := sphere.Hit(ray, 0.001, 1000, nil); ok {
		t.Error("zero-length direction should never hit")
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		point core.Vec3
		uv    core.Vec2
	}{
		{core.NewVec3(1, 0, 0), core.NewVec2(0.5, 0.5)},
		{core.NewVec3(0, 1, 0), core.NewVec2(0.5, 1.0)},
		{core.NewVec3(0, -1, 0), core.NewVec2(0.5, 0.0)},
		{core.NewVec3(-1, 0, 0), core.NewVec2(0.0, 0.5)},
		{core.NewVec3(0, 0, 1), core.NewVec2(0.25, 0.5)},
	}

	for _, tt := range tests {
		uv := sphereUV(tt.point)
		if math.Abs(uv.X-tt.uv.X) > 1e-9 || math.Abs(uv.Y-tt.uv.Y) > 1e-9 {
			t.Errorf("sphereUV(%v) = %v, expected %v", tt.point, uv, tt.uv)
		}
	}
}

func TestSphere_LightSampling(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewSeededSampler(17)

	// Every sampled direction hits the sphere with density 1/solidAngle
	cosThetaMax := math.Sqrt(1 - 1.0/25.0)
	expected := 1 / (2 * math.Pi * (1 - cosThetaMax))
	for i := 0; i < 500; i++ {
		dir := sphere.Random(origin, sampler)
		if got := sphere.PDFValue(origin, dir); math.Abs(got-expected) > 1e-6 {
			t.Fatalf("PDFValue(%v) = %f, expected %f", dir, got, expected)
		}
	}

	if got := sphere.PDFValue(origin, core.NewVec3(0, 0, 1)); got != 0 {
		t.Errorf("direction away from the sphere should have zero density, got %f", got)
	}

	// The density integrates to one over all directions
	const n = 400000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += sphere.PDFValue(origin, core.SampleOnUnitSphere(sampler.Get2D()))
	}
	if integral := sum / n * 4 * math.Pi; math.Abs(integral-1) > 0.05 {
		t.Errorf("sphere light density integrates to %f, expected ~1", integral)
	}

	// From inside the sphere there is no cone to sample
	big := NewSphere(core.NewVec3(0, 0, 0), 2.0, nil)
	inside := core.NewVec3(0.5, 0, 0)
	for _, dir := range []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0.3, -0.4, 0.5),
	} {
		if got := big.PDFValue(inside, dir); got != 0 {
			t.Errorf("PDFValue from inside toward %v = %f, expected 0", dir, got)
		}
	}
}
