package geometry

import (
	"math"
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
)

// Quad represents a finite parallelogram patch defined by a corner point and
// two edge vectors
type Quad struct {
	q        core.Vec3 // Corner point
	u, v     core.Vec3 // Edge vectors spanning the patch
	w        core.Vec3 // Cached (u×v)/|u×v|² for planar coordinates
	normal   core.Vec3
	d        float64 // Plane equation constant: normal·p = d
	material core.Material
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(q, u, v core.Vec3, material core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	// The box of a planar patch is degenerate along its normal; the AABB
	// constructor pads it to minimum thickness.
	d1 := core.NewAABBFromPoints(q, q.Add(u).Add(v))
	d2 := core.NewAABBFromPoints(q.Add(u), q.Add(v))

	return &Quad{
		q:        q,
		u:        u,
		v:        v,
		w:        n.Multiply(1.0 / n.LengthSquared()),
		normal:   normal,
		d:        normal.Dot(q),
		material: material,
		bbox:     d1.Union(d2),
	}
}

// Hit intersects the ray with the quad's plane, then checks that the hit
// point lies within the patch in its local (α,β) basis
func (q *Quad) Hit(ray core.Ray, tRange core.Interval, rng *rand.Rand) (*core.HitRecord, bool) {
	denominator := q.normal.Dot(ray.Direction)
	if math.Abs(denominator) < 1e-6 {
		return nil, false // Ray is parallel to the plane
	}

	t := (q.d - q.normal.Dot(ray.Origin)) / denominator
	if !tRange.Contains(t) {
		return nil, false
	}

	point := ray.At(t)
	planar := point.Subtract(q.q)
	alpha := q.w.Dot(planar.Cross(q.v))
	beta := q.w.Dot(q.u.Cross(planar))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &core.HitRecord{
		Point:    point,
		T:        t,
		U:        alpha,
		V:        beta,
		Material: q.material,
	}
	hit.SetFaceNormal(ray, q.normal)
	return hit, true
}

// BoundingBox returns the padded box for the quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
