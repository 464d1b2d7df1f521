package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// MissingTextureColor is returned by image textures without pixel data
var MissingTextureColor = core.NewVec3(1, 0, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewMissingTexture creates a texture standing in for an image that failed to load
func NewMissingTexture() *ImageTexture {
	return &ImageTexture{}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// UV is clamped to [0, 1]; V=0 is the bottom row of the image.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return MissingTextureColor
	}

	u := clamp01(uv.X)
	v := 1.0 - clamp01(uv.Y)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
