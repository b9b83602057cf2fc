package core

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// Minimum thickness for any axis of a bounding box. Flat primitives such as
// quads would otherwise produce zero-volume boxes that break BVH splits.
const aabbMinimumSize = 1e-4

// NewAABB creates a bounding box from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	box := AABB{X: x, Y: y, Z: z}
	box.padToMinimums()
	return box
}

// NewAABBFromPoints creates the minimal bounding box containing two corner
// points, regardless of which corner is the minimum
func NewAABBFromPoints(a, b Vec3) AABB {
	box := AABB{
		X: Interval{Start: min(a.X, b.X), End: max(a.X, b.X)},
		Y: Interval{Start: min(a.Y, b.Y), End: max(a.Y, b.Y)},
		Z: Interval{Start: min(a.Z, b.Z), End: max(a.Z, b.Z)},
	}
	box.padToMinimums()
	return box
}

// padToMinimums expands any degenerate axis to the minimum thickness
func (aabb *AABB) padToMinimums() {
	if aabb.X.Size() < aabbMinimumSize {
		aabb.X = aabb.X.Expand(aabbMinimumSize)
	}
	if aabb.Y.Size() < aabbMinimumSize {
		aabb.Y = aabb.Y.Expand(aabbMinimumSize)
	}
	if aabb.Z.Size() < aabbMinimumSize {
		aabb.Z = aabb.Z.Expand(aabbMinimumSize)
	}
}

// Axis returns the interval for the given axis index (0=X, 1=Y, 2=Z)
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Union returns the smallest box containing both boxes
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: aabb.X.Union(other.X),
		Y: aabb.Y.Union(other.Y),
		Z: aabb.Z.Union(other.Z),
	}
}

// Grow expands the box in place to also contain other
func (aabb *AABB) Grow(other AABB) {
	aabb.X = aabb.X.Union(other.X)
	aabb.Y = aabb.Y.Union(other.Y)
	aabb.Z = aabb.Z.Union(other.Z)
}

// Translate returns the box shifted by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Shift(offset.X),
		Y: aabb.Y.Shift(offset.Y),
		Z: aabb.Z.Shift(offset.Z),
	}
}

// Hit tests whether the ray intersects the box within tRange using the slab
// method. Zero direction components are deliberately not special-cased: IEEE
// division yields ±Inf which propagates correctly through the comparisons.
func (aabb AABB) Hit(ray Ray, tRange Interval) bool {
	for axis := 0; axis < 3; axis++ {
		axisInterval := aabb.Axis(axis)
		invD := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (axisInterval.Start - origin) * invD
		t1 := (axisInterval.End - origin) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tRange.Start {
			tRange.Start = t0
		}
		if t1 < tRange.End {
			tRange.End = t1
		}

		if tRange.End <= tRange.Start {
			return false
		}
	}
	return true
}
