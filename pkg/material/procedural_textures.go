package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NoiseTexture is a marble pattern driven by Perlin turbulence:
// 0.5·(1 + sin(scale·z + 10·turb(p))) times the base color
type NoiseTexture struct {
	Color core.Vec3
	Scale float64
}

// NewNoiseTexture creates a white marble texture with the given scale
func NewNoiseTexture(scale float64) *NoiseTexture {
	return &NoiseTexture{Color: core.NewVec3(1, 1, 1), Scale: scale}
}

// Evaluate returns the marble color at point
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	phase := n.Scale*point.Z + 10*Turbulence(point, 7)
	return n.Color.Multiply(0.5 * (1 + math.Sin(phase)))
}

// Turbulence sums |noise| over octaves of doubling frequency and halving weight
func Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * Noise(p)
		weight *= 0.5
		p = p.Multiply(2)
	}
	return math.Abs(accum)
}

// Noise evaluates 3D gradient noise at p. The result lies roughly in [-1, 1]
// and is zero at integer lattice points.
func Noise(p core.Vec3) float64 {
	fx, fy, fz := math.Floor(p.X), math.Floor(p.Y), math.Floor(p.Z)
	cx := uint32(int32(fx) & 0xff)
	cy := uint32(int32(fy) & 0xff)
	cz := uint32(int32(fz) & 0xff)
	x, y, z := p.X-fx, p.Y-fy, p.Z-fz
	u, v, w := fade(x), fade(y), fade(z)

	return lerp(w,
		lerp(v,
			lerp(u, dotGrad(cx, cy, cz, x, y, z), dotGrad(cx+1, cy, cz, x-1, y, z)),
			lerp(u, dotGrad(cx, cy+1, cz, x, y-1, z), dotGrad(cx+1, cy+1, cz, x-1, y-1, z)),
		),
		lerp(v,
			lerp(u, dotGrad(cx, cy, cz+1, x, y, z-1), dotGrad(cx+1, cy, cz+1, x-1, y, z-1)),
			lerp(u, dotGrad(cx, cy+1, cz+1, x, y-1, z-1), dotGrad(cx+1, cy+1, cz+1, x-1, y-1, z-1)),
		),
	)
}

// hash mixes the 24 lattice bits of a cell into a gradient selector
func hash(x uint32) uint32 {
	x = ((x >> 16) ^ x) * 0x45d9f3b
	x = ((x >> 16) ^ x) * 0x45d9f3b
	return (x >> 16) ^ x
}

// dotGrad dots the offset with one of 12 edge gradients (4 repeated) picked by the cell hash
func dotGrad(cx, cy, cz uint32, dx, dy, dz float64) float64 {
	h := hash(((cx & 0xff) << 16) | ((cy & 0xff) << 8) | (cz & 0xff))

	switch h & 0x0f {
	case 0x0, 0xc:
		return dx + dy
	case 0x1:
		return dx - dy
	case 0x2, 0xd:
		return -dx + dy
	case 0x3:
		return -dx - dy
	case 0x4:
		return dy + dz
	case 0x5:
		return dy - dz
	case 0x6, 0xe:
		return -dy + dz
	case 0x7, 0xf:
		return -dy - dz
	case 0x8:
		return dz + dx
	case 0x9:
		return dz - dx
	case 0xa:
		return -dz + dx
	default:
		return -dz - dx
	}
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}

func lerp(t, a, b float64) float64 {
	return (1-t)*a + t*b
}
