package material

import (
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
)

// Metal represents a specular reflector with optional fuzz
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // 0 = perfect mirror, 1 = maximally glossy
}

// NewMetal creates a metal material, clamping fuzz to [0,1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the ray about the normal and perturbs it by the fuzz
// factor. Rays perturbed below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Reflect(hit.Normal).Normalize().
		Add(core.RandomUnitVector(rng).Multiply(m.Fuzz))
	scattered := core.NewRay(hit.Point, reflected, rayIn.Time)

	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Attenuation: m.Albedo,
		Scattered:   scattered,
	}, true
}

// Emit returns no radiance
func (m *Metal) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
