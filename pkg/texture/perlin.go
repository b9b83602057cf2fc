package texture

import (
	"math"
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
)

const perlinPointCount = 256

// Perlin holds the precomputed gradient vectors and permutation tables for
// gradient noise. Built once at texture construction, read-only afterwards.
type Perlin struct {
	randVec             []core.Vec3
	permX, permY, permZ []int
}

// NewPerlin generates the gradient vectors and three independent axis
// permutations from rng
func NewPerlin(rng *rand.Rand) *Perlin {
	randVec := make([]core.Vec3, perlinPointCount)
	for i := range randVec {
		randVec[i] = core.RandomVec3(rng, -1, 1).Normalize()
	}
	return &Perlin{
		randVec: randVec,
		permX:   rng.Perm(perlinPointCount),
		permY:   rng.Perm(perlinPointCount),
		permZ:   rng.Perm(perlinPointCount),
	}
}

// Noise evaluates gradient noise at p by trilinear interpolation over the
// 8 surrounding lattice corners, with Hermite smoothing per axis. Values
// lie in [-1, 1].
func (pl *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var corners [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				corners[di][dj][dk] = pl.randVec[pl.permX[(i+di)&(perlinPointCount-1)]^
					pl.permY[(j+dj)&(perlinPointCount-1)]^
					pl.permZ[(k+dk)&(perlinPointCount-1)]]
			}
		}
	}

	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				fi, fj, fk := float64(di), float64(dj), float64(dk)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					corners[di][dj][dk].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums noise octaves of doubling frequency and halving amplitude
// and returns the absolute value
func (pl *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * pl.Noise(p)
		weight *= 0.5
		p = p.Multiply(2)
	}
	return math.Abs(accum)
}
