package material

import (
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
	"github.com/adityavsankar/raytracer/pkg/texture"
)

// DiffuseLight is an emissive material. It never scatters; it is the only
// source of radiance that is not reflected light.
type DiffuseLight struct {
	Emission core.Texture
}

// NewDiffuseLight creates a light emitting the texture's color
func NewDiffuseLight(emission core.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// NewDiffuseLightColor creates a light emitting a constant color
func NewDiffuseLightColor(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: texture.NewSolidColor(emission)}
}

// Scatter absorbs all incoming rays
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns the emission texture's color
func (dl *DiffuseLight) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return dl.Emission.ColorValue(u, v, p)
}
