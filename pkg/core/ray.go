package core

// Ray represents a ray with an origin and a unit-length direction.
// InvDirection and Sign are precomputed for the AABB slab test.
type Ray struct {
	Origin       Vec3
	Direction    Vec3
	InvDirection Vec3
	Sign         [3]int // 1 where the inverse direction is negative
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction Vec3) Ray {
	dir := direction.Normalize()
	inv := Vec3{1.0 / dir.X, 1.0 / dir.Y, 1.0 / dir.Z}

	r := Ray{Origin: origin, Direction: dir, InvDirection: inv}
	if inv.X < 0 {
		r.Sign[0] = 1
	}
	if inv.Y < 0 {
		r.Sign[1] = 1
	}
	if inv.Z < 0 {
		r.Sign[2] = 1
	}
	return r
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// IsDegenerate reports whether the ray has no direction
func (r Ray) IsDegenerate() bool {
	return r.Direction.IsZero()
}
