package material

import (
	"math"
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
)

// Dielectric represents a transparent refractive material such as glass.
// Clear glass absorbs nothing, so attenuation is always unit.
type Dielectric struct {
	RefractionIndex float64
}

// NewDielectric creates a dielectric material with the given refractive index
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter refracts or reflects the ray. Reflection occurs on total internal
// reflection and, probabilistically, per the Schlick reflectance.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	ratio := d.RefractionIndex
	if hit.FrontFace {
		ratio = 1.0 / d.RefractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var direction core.Vec3
	if ratio*sinTheta > 1.0 || d.reflectance(cosTheta) > rng.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, ratio)
	}

	return core.ScatterResult{
		Attenuation: core.NewVec3(1, 1, 1),
		Scattered:   core.NewRay(hit.Point, direction, rayIn.Time),
	}, true
}

// reflectance approximates the Fresnel reflection coefficient using
// Schlick's polynomial
func (d *Dielectric) reflectance(cosine float64) float64 {
	r0 := (1 - d.RefractionIndex) / (1 + d.RefractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// Emit returns no radiance
func (d *Dielectric) Emit(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
