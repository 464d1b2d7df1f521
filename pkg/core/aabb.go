package core

// aabbPadding is the minimum extent of an AABB along any axis
const aabbPadding = 1e-4

// AABB represents an axis-aligned bounding box. Bounds[0] is the minimum corner
// and Bounds[1] the maximum corner, indexed so a ray's sign bit selects the near plane.
type AABB struct {
	Bounds [2]Vec3
}

// NewAABB creates a new AABB from min and max points, padding degenerate axes
func NewAABB(min, max Vec3) AABB {
	return AABB{Bounds: [2]Vec3{min, max}}.Pad()
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for _, point := range points[1:] {
		min = min.Min(point)
		max = max.Max(point)
	}

	return NewAABB(min, max)
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return aabb.Bounds[0]
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return aabb.Bounds[1]
}

// Hit tests if a ray intersects with this AABB using the slab method.
// The ray's sign bits pick the near plane per axis so no swap is needed.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	if ray.IsDegenerate() {
		return false
	}

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		invDir := ray.InvDirection.Axis(axis)
		sign := ray.Sign[axis]

		t0 := (aabb.Bounds[sign].Axis(axis) - origin) * invDir
		t1 := (aabb.Bounds[1-sign].Axis(axis) - origin) * invDir

		// A ray lying exactly on a slab plane yields NaN; keep the running interval then
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Union returns the smallest AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Bounds: [2]Vec3{
		aabb.Bounds[0].Min(other.Bounds[0]),
		aabb.Bounds[1].Max(other.Bounds[1]),
	}}
}

// Pad returns a copy with every axis narrower than the padding widened symmetrically
func (aabb AABB) Pad() AABB {
	min, max := aabb.Bounds[0], aabb.Bounds[1]
	if max.X-min.X < aabbPadding {
		min.X -= aabbPadding / 2
		max.X += aabbPadding / 2
	}
	if max.Y-min.Y < aabbPadding {
		min.Y -= aabbPadding / 2
		max.Y += aabbPadding / 2
	}
	if max.Z-min.Z < aabbPadding {
		min.Z -= aabbPadding / 2
		max.Z += aabbPadding / 2
	}
	return AABB{Bounds: [2]Vec3{min, max}}
}

// Translate returns the box moved by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{Bounds: [2]Vec3{aabb.Bounds[0].Add(offset), aabb.Bounds[1].Add(offset)}}
}

// Corners returns the 8 corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		corners[i] = Vec3{
			X: aabb.Bounds[i&1].X,
			Y: aabb.Bounds[(i>>1)&1].Y,
			Z: aabb.Bounds[(i>>2)&1].Z,
		}
	}
	return corners
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Bounds[0].Add(aabb.Bounds[1]).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Bounds[1].Subtract(aabb.Bounds[0])
}

// IsValid returns true if min <= max for all axes
func (aabb AABB) IsValid() bool {
	return aabb.Bounds[0].X <= aabb.Bounds[1].X &&
		aabb.Bounds[0].Y <= aabb.Bounds[1].Y &&
		aabb.Bounds[0].Z <= aabb.Bounds[1].Z
}

// Contains reports whether other lies entirely inside this box
func (aabb AABB) Contains(other AABB) bool {
	for axis := 0; axis < 3; axis++ {
		if other.Bounds[0].Axis(axis) < aabb.Bounds[0].Axis(axis) ||
			other.Bounds[1].Axis(axis) > aabb.Bounds[1].Axis(axis) {
			return false
		}
	}
	return true
}
