package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	if a < 1e-12 {
		return nil, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = sphereUV(outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	), true
}

// PDFValue returns 1/solidAngle of the cone the sphere subtends from origin,
// or zero if direction misses the sphere or origin is inside it
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		return 0
	}
	if _, ok := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), nil); !ok {
		return 0
	}

	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distanceSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	if solidAngle <= 0 {
		return 0
	}
	return 1 / solidAngle
}

// Random samples a direction from origin inside the cone subtended by the sphere
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	uvw := core.NewONB(direction)
	return uvw.Local(core.SampleToSphere(s.Radius, distanceSquared, sampler.Get2D()))
}

// sphereUV maps a point on the unit sphere to (u, v) ∈ [0,1]²:
// u is the angle around Y from X=-1, v the angle from Y=-1 to Y=+1
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
