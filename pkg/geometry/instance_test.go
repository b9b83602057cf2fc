package geometry

import (
	"math"
	"testing"

	"github.com/adityavsankar/raytracer/pkg/core"
)

func TestRotationMatrices(t *testing.T) {
	tests := []struct {
		name     string
		rotation Mat3
		in       core.Vec3
		expected core.Vec3
	}{
		{"x by 90", RotationX(90), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1)},
		{"y by 90", RotationY(90), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1)},
		{"z by 90", RotationZ(90), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)},
		{"y by 180", RotationY(180), core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0)},
		{"identity", RotationY(0), core.NewVec3(1, 2, 3), core.NewVec3(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rotation.MulVec(tt.in)
			if got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMat3_TransposeIsInverse(t *testing.T) {
	rotation := RotationX(30).Mul(RotationY(45)).Mul(RotationZ(60))
	product := rotation.Mul(rotation.Transpose())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			expected := 0.0
			if i == j {
				expected = 1.0
			}
			if math.Abs(product[i][j]-expected) > 1e-12 {
				t.Fatalf("Expected identity, got %v", product)
			}
		}
	}
}

func TestTranslated_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, flatGray{})
	moved := NewTranslated(sphere, core.NewVec3(0, 0, -5))
	rng := testRNG()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	hit, ok := moved.Hit(ray, fullRange, rng)
	if !ok {
		t.Fatal("Expected a hit on the translated sphere")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
	// The hit point must be reported in world space
	if math.Abs(hit.Point.Z+4) > 1e-9 {
		t.Errorf("Expected world-space hit point z=-4, got %f", hit.Point.Z)
	}

	// The original position no longer intersects
	ray = core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0), 0)
	if _, ok := moved.Hit(ray, fullRange, rng); ok {
		t.Error("Expected no hit at the untranslated position")
	}
}

func TestTranslated_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, flatGray{})
	moved := NewTranslated(sphere, core.NewVec3(10, 0, 0))
	box := moved.BoundingBox()

	if box.X.Start != 9 || box.X.End != 11 {
		t.Errorf("Expected X (9, 11), got (%f, %f)", box.X.Start, box.X.End)
	}
}

func TestRotated_Hit(t *testing.T) {
	// A sphere at (2,0,0) rotated 90 degrees about Y lands at (0,0,-2)
	sphere := NewSphere(core.NewVec3(2, 0, 0), 1, flatGray{})
	rotated := NewRotated(sphere, core.NewVec3(0, 90, 0))
	rng := testRNG()

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	hit, ok := rotated.Hit(ray, fullRange, rng)
	if !ok {
		t.Fatal("Expected a hit on the rotated sphere")
	}
	if math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected t=6, got %f", hit.T)
	}
	if hit.Point.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected world-space hit point (0,0,-1), got %v", hit.Point)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected world-space normal (0,0,1), got %v", hit.Normal)
	}

	// The unrotated position no longer intersects
	ray = core.NewRay(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1), 0)
	if _, ok := rotated.Hit(ray, fullRange, rng); ok {
		t.Error("Expected no hit at the unrotated position")
	}
}

func TestRotated_CuboidFaceNormal(t *testing.T) {
	cube := NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), flatGray{})
	rotated := NewRotated(cube, core.NewVec3(0, 90, 0))
	rng := testRNG()

	// After rotation the cube occupies x in [0,1], y in [0,1], z in [-1,0]
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1), 0)
	hit, ok := rotated.Hit(ray, fullRange, rng)
	if !ok {
		t.Fatal("Expected a hit on the rotated cuboid")
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("Expected t=5, got %f", hit.T)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected rotated normal (0,0,1), got %v", hit.Normal)
	}
}

func TestRotated_BoundingBox(t *testing.T) {
	cube := NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), flatGray{})
	rotated := NewRotated(cube, core.NewVec3(0, 90, 0))
	box := rotated.BoundingBox()

	// Allow for the minimum-thickness padding the face quads carry
	tolerance := 1e-3
	if math.Abs(box.X.Start) > tolerance || math.Abs(box.X.End-1) > tolerance {
		t.Errorf("Expected X (0, 1), got (%f, %f)", box.X.Start, box.X.End)
	}
	if math.Abs(box.Z.Start+1) > tolerance || math.Abs(box.Z.End) > tolerance {
		t.Errorf("Expected Z (-1, 0), got (%f, %f)", box.Z.Start, box.Z.End)
	}
}
