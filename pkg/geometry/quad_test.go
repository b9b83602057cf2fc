package geometry

import (
	"math"
	"testing"

	"github.com/adityavsankar/raytracer/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	// Unit quad in the z=0 plane
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), flatGray{})
	rng := testRNG()

	t.Run("center hit", func(t *testing.T) {
		ray := core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1), 0)
		hit, ok := quad.Hit(ray, fullRange, rng)
		if !ok {
			t.Fatal("Expected a hit")
		}
		if math.Abs(hit.T-1) > 1e-9 {
			t.Errorf("Expected t=1, got %f", hit.T)
		}
		if math.Abs(hit.U-0.5) > 1e-9 || math.Abs(hit.V-0.5) > 1e-9 {
			t.Errorf("Expected uv (0.5, 0.5), got (%f, %f)", hit.U, hit.V)
		}
		if !hit.FrontFace {
			t.Error("Expected front face hit")
		}
		if math.Abs(hit.Normal.Z-1) > 1e-9 {
			t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
		}
	})

	t.Run("corner uv", func(t *testing.T) {
		ray := core.NewRay(core.NewVec3(0.25, 0.75, 1), core.NewVec3(0, 0, -1), 0)
		hit, ok := quad.Hit(ray, fullRange, rng)
		if !ok {
			t.Fatal("Expected a hit")
		}
		if math.Abs(hit.U-0.25) > 1e-9 || math.Abs(hit.V-0.75) > 1e-9 {
			t.Errorf("Expected uv (0.25, 0.75), got (%f, %f)", hit.U, hit.V)
		}
	})

	t.Run("outside the patch", func(t *testing.T) {
		ray := core.NewRay(core.NewVec3(1.5, 0.5, 1), core.NewVec3(0, 0, -1), 0)
		if _, ok := quad.Hit(ray, fullRange, rng); ok {
			t.Error("Expected no hit on the plane outside the patch")
		}
	})

	t.Run("parallel ray", func(t *testing.T) {
		ray := core.NewRay(core.NewVec3(-1, 0.5, 0), core.NewVec3(1, 0, 0), 0)
		if _, ok := quad.Hit(ray, fullRange, rng); ok {
			t.Error("Expected no hit for a ray in the plane")
		}
	})

	t.Run("back face", func(t *testing.T) {
		ray := core.NewRay(core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1), 0)
		hit, ok := quad.Hit(ray, fullRange, rng)
		if !ok {
			t.Fatal("Expected a hit from behind")
		}
		if hit.FrontFace {
			t.Error("Expected back face hit")
		}
		if math.Abs(hit.Normal.Z+1) > 1e-9 {
			t.Errorf("Expected flipped normal (0,0,-1), got %v", hit.Normal)
		}
	})

	t.Run("edge is inside", func(t *testing.T) {
		ray := core.NewRay(core.NewVec3(0, 0.5, 1), core.NewVec3(0, 0, -1), 0)
		if _, ok := quad.Hit(ray, fullRange, rng); !ok {
			t.Error("Expected a hit exactly on the patch edge")
		}
	})
}

func TestQuad_NonAxisAligned(t *testing.T) {
	// Parallelogram with skewed edges
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(1, 2, 0), flatGray{})
	rng := testRNG()

	// Point q + 0.5u + 0.5v = (1.5, 1, 0)
	ray := core.NewRay(core.NewVec3(1.5, 1, 1), core.NewVec3(0, 0, -1), 0)
	hit, ok := quad.Hit(ray, fullRange, rng)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if math.Abs(hit.U-0.5) > 1e-9 || math.Abs(hit.V-0.5) > 1e-9 {
		t.Errorf("Expected uv (0.5, 0.5), got (%f, %f)", hit.U, hit.V)
	}
}

func TestQuad_BoundingBox(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 5), core.NewVec3(1, 0, 0), core.NewVec3(0, 2, 0), flatGray{})
	box := quad.BoundingBox()

	if box.X.Start != 0 || box.X.End != 1 {
		t.Errorf("Expected X (0, 1), got (%f, %f)", box.X.Start, box.X.End)
	}
	if box.Y.Start != 0 || box.Y.End != 2 {
		t.Errorf("Expected Y (0, 2), got (%f, %f)", box.Y.Start, box.Y.End)
	}
	// The normal axis is padded to minimum thickness
	if box.Z.Size() < 1e-4 {
		t.Errorf("Expected padded Z axis, got size %g", box.Z.Size())
	}
	if !box.Z.Contains(5) {
		t.Errorf("Expected Z interval around 5, got (%f, %f)", box.Z.Start, box.Z.End)
	}
}
