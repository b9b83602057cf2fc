package geometry

import (
	"math"
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
)

// Mat3 is a 3x3 matrix used for instance rotations
type Mat3 [3][3]float64

// RotationX returns the rotation matrix about the X axis by angle degrees
func RotationX(angle float64) Mat3 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return Mat3{
		{1, 0, 0},
		{0, cos, -sin},
		{0, sin, cos},
	}
}

// RotationY returns the rotation matrix about the Y axis by angle degrees
func RotationY(angle float64) Mat3 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return Mat3{
		{cos, 0, sin},
		{0, 1, 0},
		{-sin, 0, cos},
	}
}

// RotationZ returns the rotation matrix about the Z axis by angle degrees
func RotationZ(angle float64) Mat3 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return Mat3{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// Transpose returns the transposed matrix. For rotation matrices this is
// also the inverse.
func (m Mat3) Transpose() Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[j][i]
		}
	}
	return result
}

// Mul returns the matrix product m * other
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

// MulVec returns the matrix-vector product m * v
func (m Mat3) MulVec(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		m[0][0]*v.X+m[0][1]*v.Y+m[0][2]*v.Z,
		m[1][0]*v.X+m[1][1]*v.Y+m[1][2]*v.Z,
		m[2][0]*v.X+m[2][1]*v.Y+m[2][2]*v.Z,
	)
}

// Translated shifts a wrapped hittable by a fixed offset. Rays are offset
// into the wrapped object's local frame instead of moving the geometry.
type Translated struct {
	object core.Hittable
	offset core.Vec3
	bbox   core.AABB
}

// NewTranslated wraps object with a translation by offset
func NewTranslated(object core.Hittable, offset core.Vec3) *Translated {
	return &Translated{
		object: object,
		offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit offsets the ray into local space, delegates, and shifts the hit point
// back into world space
func (t *Translated) Hit(ray core.Ray, tRange core.Interval, rng *rand.Rand) (*core.HitRecord, bool) {
	offsetRay := core.NewRay(ray.Origin.Subtract(t.offset), ray.Direction, ray.Time)
	hit, ok := t.object.Hit(offsetRay, tRange, rng)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.offset)
	return hit, true
}

// BoundingBox returns the child's box shifted by the offset
func (t *Translated) BoundingBox() core.AABB {
	return t.bbox
}

// Rotated rotates a wrapped hittable by per-axis Euler angles. The rotation
// matrix and its transpose are precomputed; incoming rays are transformed by
// the inverse rotation and results rotated back.
type Rotated struct {
	object   core.Hittable
	rotation Mat3
	inverse  Mat3
	bbox     core.AABB
}

// NewRotated wraps object with a rotation given as per-axis angles in
// degrees, applied in X, Y, Z order. The bounding box is computed once by
// rotating all 8 corners of the child's box and taking the component-wise
// extremes; this is a conservative, not minimal, box.
func NewRotated(object core.Hittable, angles core.Vec3) *Rotated {
	rotation := RotationX(angles.X).Mul(RotationY(angles.Y)).Mul(RotationZ(angles.Z))
	inverse := rotation.Transpose()

	childBox := object.BoundingBox()
	lo := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*childBox.X.End + float64(1-i)*childBox.X.Start
				y := float64(j)*childBox.Y.End + float64(1-j)*childBox.Y.Start
				z := float64(k)*childBox.Z.End + float64(1-k)*childBox.Z.Start

				corner := rotation.MulVec(core.NewVec3(x, y, z))

				lo = core.NewVec3(min(lo.X, corner.X), min(lo.Y, corner.Y), min(lo.Z, corner.Z))
				hi = core.NewVec3(max(hi.X, corner.X), max(hi.Y, corner.Y), max(hi.Z, corner.Z))
			}
		}
	}

	return &Rotated{
		object:   object,
		rotation: rotation,
		inverse:  inverse,
		bbox:     core.NewAABBFromPoints(lo, hi),
	}
}

// Hit transforms the ray into the child's frame by the inverse rotation,
// delegates, then rotates the hit point and normal back
func (r *Rotated) Hit(ray core.Ray, tRange core.Interval, rng *rand.Rand) (*core.HitRecord, bool) {
	rotatedRay := core.NewRay(
		r.inverse.MulVec(ray.Origin),
		r.inverse.MulVec(ray.Direction),
		ray.Time,
	)

	hit, ok := r.object.Hit(rotatedRay, tRange, rng)
	if !ok {
		return nil, false
	}
	hit.Point = r.rotation.MulVec(hit.Point)
	hit.Normal = r.rotation.MulVec(hit.Normal)
	return hit, true
}

// BoundingBox returns the precomputed rotated box
func (r *Rotated) BoundingBox() core.AABB {
	return r.bbox
}
