package integrator

import (
	"math"
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
)

// Paths start just past the origin to avoid re-hitting the surface they
// scattered from ("shadow acne")
const rayEpsilon = 0.001

// PathTracer estimates radiance along a ray by brute-force Monte Carlo path
// tracing: no light sampling, no Russian roulette, a hard bounce limit.
type PathTracer struct {
	MaxDepth   int
	Background core.Vec3
}

// NewPathTracer creates a path tracer with the given bounce limit and
// constant background radiance
func NewPathTracer(maxDepth int, background core.Vec3) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth, Background: background}
}

// RayColor traces one path through the scene. At each bounce the closest hit
// contributes its emission weighted by the accumulated throughput; scattering
// multiplies the throughput by the material attenuation and continues. A ray
// that escapes contributes the background. Paths that survive MaxDepth
// bounces are truncated, a small deterministic energy loss.
func (pt *PathTracer) RayColor(ray core.Ray, world core.Hittable, rng *rand.Rand) core.Vec3 {
	color := core.NewVec3(0, 0, 0)
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; depth < pt.MaxDepth; depth++ {
		hit, ok := world.Hit(ray, core.NewInterval(rayEpsilon, math.Inf(1)), rng)
		if !ok {
			return color.Add(throughput.MultiplyVec(pt.Background))
		}

		color = color.Add(throughput.MultiplyVec(hit.Material.Emit(hit.U, hit.V, hit.Point)))

		scatter, ok := hit.Material.Scatter(ray, hit, rng)
		if !ok {
			return color
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return color
}
