package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Unit normal (U × V normalized)
	Material material.Material // Material of the quad
	D        float64           // Plane equation constant: n·p = D
	W        core.Vec3         // n / (n·n) for projecting hits onto (U, V)
	Area     float64           // |U × V|
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	var w core.Vec3
	if nn := n.LengthSquared(); nn > 0 {
		w = n.Multiply(1.0 / nn)
	}

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        w,
		Area:     n.Length(),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the plane (or a degenerate quad)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	// Planar coordinates of the hit in the (U, V) basis
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the box spanning all four corners, padded if flat
func (q *Quad) BoundingBox() (core.AABB, bool) {
	return core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	), true
}

// PDFValue converts the uniform area density into solid angle density
// seen from origin: distance² / (|cosθ| · area)
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction)
	hit, ok := q.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T
	cosine := math.Abs(ray.Direction.Dot(q.Normal))
	if cosine < 1e-8 || q.Area <= 0 {
		return 0
	}
	return distanceSquared / (cosine * q.Area)
}

// Random returns the direction from origin to a uniformly sampled point on the quad
func (q *Quad) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	point := q.Corner.Add(q.U.Multiply(sample.X)).Add(q.V.Multiply(sample.Y))
	return point.Subtract(origin)
}
