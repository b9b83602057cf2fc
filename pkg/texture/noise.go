package texture

import (
	"math"
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
)

const turbulenceDepth = 7

// NoiseTexture produces a marble-like pattern by phase-shifting a sine with
// Perlin turbulence
type NoiseTexture struct {
	perlin *Perlin
	scale  float64
}

// NewNoiseTexture creates a marble texture; rng seeds the noise tables
func NewNoiseTexture(scale float64, rng *rand.Rand) *NoiseTexture {
	return &NoiseTexture{perlin: NewPerlin(rng), scale: scale}
}

// ColorValue returns a grayscale marble color in [0,1]
func (n *NoiseTexture) ColorValue(u, v float64, p core.Vec3) core.Vec3 {
	value := 0.5 * (1 + math.Sin(n.scale*p.Z+10*n.perlin.Turbulence(p, turbulenceDepth)))
	return core.NewVec3(value, value, value)
}
