package geometry

import (
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
)

// Cuboid is an axis-aligned box composed of six quads sharing one material
type Cuboid struct {
	faces *Cluster
}

// NewCuboid creates a box spanning the two opposite corners a and b
func NewCuboid(a, b core.Vec3, material core.Material) *Cuboid {
	lo := core.NewVec3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z))
	hi := core.NewVec3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z))

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	faces := NewCluster()
	faces.Add(NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy, material))          // front
	faces.Add(NewQuad(core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy, material)) // right
	faces.Add(NewQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy, material)) // back
	faces.Add(NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy, material))          // left
	faces.Add(NewQuad(core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate(), material)) // top
	faces.Add(NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz, material))          // bottom

	return &Cuboid{faces: faces}
}

// Hit delegates to the cluster of faces
func (c *Cuboid) Hit(ray core.Ray, tRange core.Interval, rng *rand.Rand) (*core.HitRecord, bool) {
	return c.faces.Hit(ray, tRange, rng)
}

// BoundingBox returns the box enclosing all six faces
func (c *Cuboid) BoundingBox() core.AABB {
	return c.faces.BoundingBox()
}
