package material

import (
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
	"github.com/adityavsankar/raytracer/pkg/texture"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a diffuse material with a textured albedo
func NewLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewLambertianColor creates a diffuse material with a solid color albedo
func NewLambertianColor(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolidColor(albedo)}
}

// Scatter bounces the ray in a cosine-weighted random direction around the
// normal. The Lambertian BRDF's cos(θ)/π cancels exactly under this sampling
// strategy, so no explicit PDF term appears.
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(rng))

	// A random vector nearly opposite the normal would cancel to zero and
	// produce NaNs on normalization
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.ScatterResult{
		Attenuation: l.Albedo.ColorValue(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRay(hit.Point, scatterDirection, rayIn.Time),
	}, true
}

// Emit returns no radiance; diffuse surfaces only reflect
func (l *Lambertian) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
