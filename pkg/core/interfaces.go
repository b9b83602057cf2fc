package core

import "math/rand"

// HitRecord contains information about a ray-surface intersection.
// Records are built transiently per intersection test and never stored
// beyond one shading step.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, oriented against the incoming ray
	T         float64  // Ray parameter at the intersection
	U, V      float64  // Surface parametrization
	FrontFace bool     // Whether the ray hit the outward-facing side
	Material  Material // Material of the hit object
}

// SetFaceNormal orients the normal against the incoming ray and records
// which side was hit
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is implemented by anything a ray can intersect. Hit reports the
// closest intersection with a parameter inside tRange, or false if there is
// none. The rng is used by probabilistic primitives (participating media);
// passing it explicitly keeps renders reproducible under a fixed seed.
// Implementations are immutable after construction and safe for concurrent
// reads.
type Hittable interface {
	Hit(ray Ray, tRange Interval, rng *rand.Rand) (*HitRecord, bool)
	BoundingBox() AABB
}

// ScatterResult contains the outgoing ray and attenuation produced by a
// material scattering event
type ScatterResult struct {
	Attenuation Vec3 // Multiplicative color factor for the scattered path
	Scattered   Ray  // The scattered ray
}

// Material decides how light interacts with a surface. Scatter returns
// false when the incoming ray is absorbed. Emit returns emitted radiance
// and is zero for all non-emissive materials.
type Material interface {
	Scatter(rayIn Ray, hit *HitRecord, rng *rand.Rand) (ScatterResult, bool)
	Emit(u, v float64, p Vec3) Vec3
}

// Texture provides a color for a surface point, addressed both by UV
// coordinates and by the world-space point
type Texture interface {
	ColorValue(u, v float64, p Vec3) Vec3
}
