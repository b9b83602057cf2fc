package texture

import (
	"math"

	"github.com/adityavsankar/raytracer/pkg/core"
)

// CheckerTexture is a 3D checkerboard that alternates between two child
// textures based on world-space position, independent of surface orientation
type CheckerTexture struct {
	invScale  float64
	even, odd core.Texture
}

// NewCheckerTexture creates a checker pattern with the given cell scale
func NewCheckerTexture(scale float64, even, odd core.Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, even: even, odd: odd}
}

// NewCheckerColors creates a checker pattern between two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// ColorValue picks the child texture by the parity of the summed integer
// lattice coordinates of the point
func (c *CheckerTexture) ColorValue(u, v float64, p core.Vec3) core.Vec3 {
	xInt := int(math.Floor(c.invScale * p.X))
	yInt := int(math.Floor(c.invScale * p.Y))
	zInt := int(math.Floor(c.invScale * p.Z))

	if (xInt+yInt+zInt)%2 == 0 {
		return c.even.ColorValue(u, v, p)
	}
	return c.odd.ColorValue(u, v, p)
}
