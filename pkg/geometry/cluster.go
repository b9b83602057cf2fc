package geometry

import (
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
)

// Cluster is an unordered aggregate of hittables, queried by linear scan
type Cluster struct {
	objects []core.Hittable
	bbox    core.AABB
}

// NewCluster creates an empty cluster
func NewCluster() *Cluster {
	return &Cluster{bbox: core.AABB{X: core.EmptyInterval, Y: core.EmptyInterval, Z: core.EmptyInterval}}
}

// Add appends an object and grows the cluster's bounding box to contain it
func (c *Cluster) Add(object core.Hittable) {
	c.bbox.Grow(object.BoundingBox())
	c.objects = append(c.objects, object)
}

// Objects returns the cluster members, e.g. for BVH construction
func (c *Cluster) Objects() []core.Hittable {
	return c.objects
}

// Hit scans all members, shrinking the search interval to the closest hit
// found so far
func (c *Cluster) Hit(ray core.Ray, tRange core.Interval, rng *rand.Rand) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tRange.End

	for _, object := range c.objects {
		if hit, ok := object.Hit(ray, core.NewInterval(tRange.Start, closestSoFar), rng); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the box grown over all members
func (c *Cluster) BoundingBox() core.AABB {
	return c.bbox
}
