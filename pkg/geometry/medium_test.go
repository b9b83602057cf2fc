package geometry

import (
	"testing"

	"github.com/adityavsankar/raytracer/pkg/core"
)

func TestConstantMedium_DenseScattersNearEntry(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, flatGray{})
	medium := NewConstantMedium(boundary, 1e6, flatGray{})
	rng := testRNG()

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	for i := 0; i < 100; i++ {
		hit, ok := medium.Hit(ray, fullRange, rng)
		if !ok {
			t.Fatal("Expected a dense medium to scatter")
		}
		// Entry is at t=4; the free path in a dense medium is tiny
		if hit.T < 4 || hit.T > 4.001 {
			t.Fatalf("Expected scatter near the entry point, got t=%f", hit.T)
		}
		if _, isPhase := hit.Material.(flatGray); !isPhase {
			t.Fatal("Expected the phase function material on the record")
		}
		if !hit.FrontFace {
			t.Fatal("Expected a front face scatter record")
		}
	}
}

func TestConstantMedium_ThinRarelyScatters(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, flatGray{})
	medium := NewConstantMedium(boundary, 1e-9, flatGray{})
	rng := testRNG()

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	for i := 0; i < 100; i++ {
		if _, ok := medium.Hit(ray, fullRange, rng); ok {
			t.Fatal("Expected a near-vacuum medium to pass rays through")
		}
	}
}

func TestConstantMedium_MissesBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, flatGray{})
	medium := NewConstantMedium(boundary, 1e6, flatGray{})
	rng := testRNG()

	ray := core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1), 0)
	if _, ok := medium.Hit(ray, fullRange, rng); ok {
		t.Error("Expected no scatter when the ray misses the boundary")
	}
}

func TestConstantMedium_OriginInside(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, flatGray{})
	medium := NewConstantMedium(boundary, 1e6, flatGray{})
	rng := testRNG()

	// The segment inside the boundary is clamped to start at the query range
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	hit, ok := medium.Hit(ray, fullRange, rng)
	if !ok {
		t.Fatal("Expected a scatter starting inside the medium")
	}
	if hit.T < 0.001 || hit.T > 0.002 {
		t.Errorf("Expected scatter just past the range start, got t=%f", hit.T)
	}
}

func TestConstantMedium_RangeClamping(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, flatGray{})
	medium := NewConstantMedium(boundary, 1e6, flatGray{})
	rng := testRNG()

	// tRange ends before the boundary entry, so no overlap remains
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	if _, ok := medium.Hit(ray, core.NewInterval(0.001, 3), rng); ok {
		t.Error("Expected no scatter outside the query range")
	}
}

func TestConstantMedium_BoundingBox(t *testing.T) {
	boundary := NewSphere(core.NewVec3(1, 2, 3), 2, flatGray{})
	medium := NewConstantMedium(boundary, 0.5, flatGray{})

	if medium.BoundingBox() != boundary.BoundingBox() {
		t.Error("Expected the medium to report its boundary's box")
	}
}
