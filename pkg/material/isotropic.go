package material

import (
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
	"github.com/adityavsankar/raytracer/pkg/texture"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly in all directions
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic phase function with a textured albedo
func NewIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// NewIsotropicColor creates an isotropic phase function with a solid color
func NewIsotropicColor(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolidColor(albedo)}
}

// Scatter picks a uniformly random outgoing direction
func (iso *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: iso.Albedo.ColorValue(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRay(hit.Point, core.RandomUnitVector(rng), rayIn.Time),
	}, true
}

// Emit returns no radiance
func (iso *Isotropic) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
