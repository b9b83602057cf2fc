package core

import (
	"math/rand"
	"sort"
)

// BVHNode is a node in a bounding volume hierarchy. Each node holds two
// children (themselves Hittables, possibly further BVH nodes) and a cached
// box enclosing both. Nodes are built once and read-only afterwards, so a
// single tree is shared by all render workers.
type BVHNode struct {
	left, right Hittable
	bbox        AABB
}

// NewBVH recursively partitions objects into a hierarchy. The split axis is
// chosen uniformly at random, objects are sorted by their bounding-box
// minimum on that axis and split at the midpoint. A single object becomes
// both children of its node; the redundant second hit query is cheaper than
// special-casing leaves. The slice is reordered in place.
func NewBVH(objects []Hittable, rng *rand.Rand) *BVHNode {
	axis := rng.Intn(3)

	var left, right Hittable
	switch len(objects) {
	case 1:
		left, right = objects[0], objects[0]
	case 2:
		left, right = objects[0], objects[1]
	default:
		sort.Slice(objects, func(i, j int) bool {
			return objects[i].BoundingBox().Axis(axis).Start < objects[j].BoundingBox().Axis(axis).Start
		})
		mid := len(objects) / 2
		left = NewBVH(objects[:mid], rng)
		right = NewBVH(objects[mid:], rng)
	}

	return &BVHNode{
		left:  left,
		right: right,
		bbox:  left.BoundingBox().Union(right.BoundingBox()),
	}
}

// Hit tests the node's box first and prunes the whole subtree on a miss.
// Both children are queried over the same input interval and the closer of
// the two hits wins.
func (n *BVHNode) Hit(ray Ray, tRange Interval, rng *rand.Rand) (*HitRecord, bool) {
	if !n.bbox.Hit(ray, tRange) {
		return nil, false
	}

	hitLeft, okLeft := n.left.Hit(ray, tRange, rng)
	hitRight, okRight := n.right.Hit(ray, tRange, rng)

	switch {
	case okLeft && okRight:
		if hitLeft.T < hitRight.T {
			return hitLeft, true
		}
		return hitRight, true
	case okLeft:
		return hitLeft, true
	case okRight:
		return hitRight, true
	default:
		return nil, false
	}
}

// BoundingBox returns the cached box enclosing both children
func (n *BVHNode) BoundingBox() AABB {
	return n.bbox
}
