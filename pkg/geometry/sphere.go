package geometry

import (
	"math"
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
)

// Sphere represents a sphere, optionally moving linearly between two center
// positions over the ray time range [0,1]
type Sphere struct {
	center    core.Vec3
	radius    float64
	material  core.Material
	isMoving  bool
	centerVec core.Vec3 // Displacement from center at time 0 to center at time 1
	bbox      core.AABB
}

// NewSphere creates a stationary sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		center:   center,
		radius:   radius,
		material: material,
		bbox:     core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere moving from center1 at time 0 to center2
// at time 1. Its bounding box encloses both keyframe positions.
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material core.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	box2 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))
	return &Sphere{
		center:    center1,
		radius:    radius,
		material:  material,
		isMoving:  true,
		centerVec: center2.Subtract(center1),
		bbox:      box1.Union(box2),
	}
}

// centerAt returns the sphere center at the given time
func (s *Sphere) centerAt(time float64) core.Vec3 {
	return s.center.Add(s.centerVec.Multiply(time))
}

// Hit solves the quadratic |O + tD - C|² = r² using the half-b reduction
func (s *Sphere) Hit(ray core.Ray, tRange core.Interval, rng *rand.Rand) (*core.HitRecord, bool) {
	center := s.center
	if s.isMoving {
		center = s.centerAt(ray.Time)
	}

	oc := center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	halfB := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.radius*s.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	invA := 1.0 / a

	// Try the nearer root first, then the farther one
	root := (halfB - sqrtD) * invA
	if !tRange.Surrounds(root) {
		root = (halfB + sqrtD) * invA
		if !tRange.Surrounds(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.radius)
	u, v := sphereUV(outwardNormal)

	hit := &core.HitRecord{
		Point:    point,
		T:        root,
		U:        u,
		V:        v,
		Material: s.material,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns the precomputed box for the sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// sphereUV maps a point on the unit sphere to spherical (u,v) coordinates
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
