package geometry

import (
	"math"
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
)

// ConstantMedium treats a boundary primitive as a volume of constant density
// such as fog or smoke. Rays passing through it scatter at an exponentially
// distributed depth; the phase function decides the outgoing direction.
type ConstantMedium struct {
	boundary      core.Hittable
	negInvDensity float64
	phaseFunction core.Material
}

// NewConstantMedium wraps boundary as a participating medium with the given
// density and phase function material
func NewConstantMedium(boundary core.Hittable, density float64, phaseFunction core.Material) *ConstantMedium {
	return &ConstantMedium{
		boundary:      boundary,
		negInvDensity: -1.0 / density,
		phaseFunction: phaseFunction,
	}
}

// Hit finds the ray's entry and exit against the boundary, draws a free-path
// distance and reports a scatter event if it falls inside the boundary
func (m *ConstantMedium) Hit(ray core.Ray, tRange core.Interval, rng *rand.Rand) (*core.HitRecord, bool) {
	entry, ok := m.boundary.Hit(ray, core.UniverseInterval, rng)
	if !ok {
		return nil, false
	}
	exit, ok := m.boundary.Hit(ray, core.NewInterval(entry.T+1e-4, math.Inf(1)), rng)
	if !ok {
		return nil, false
	}

	t1, t2 := entry.T, exit.T
	if t1 < tRange.Start {
		t1 = tRange.Start
	}
	if t2 > tRange.End {
		t2 = tRange.End
	}
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(rng.Float64())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength

	// Normal and UV are meaningless for a volume scatter event
	return &core.HitRecord{
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		T:         t,
		FrontFace: true,
		Material:  m.phaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.boundary.BoundingBox()
}
