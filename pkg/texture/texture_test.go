package texture

import (
	"testing"

	"github.com/adityavsankar/raytracer/pkg/core"
	"github.com/adityavsankar/raytracer/pkg/loaders"
)

func TestSolidColor(t *testing.T) {
	color := core.NewVec3(0.1, 0.5, 0.9)
	solid := NewSolidColor(color)

	if got := solid.ColorValue(0, 0, core.Vec3{}); got != color {
		t.Errorf("Expected %v, got %v", color, got)
	}
	if got := solid.ColorValue(0.7, 0.3, core.NewVec3(100, -5, 3)); got != color {
		t.Errorf("Expected position-independent color, got %v", got)
	}

	rgb := NewSolidColorRGB(0.1, 0.5, 0.9)
	if rgb.Color != color {
		t.Errorf("Expected %v, got %v", color, rgb.Color)
	}
}

func TestCheckerTexture_Parity(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	checker := NewCheckerColors(1.0, white, black)

	tests := []struct {
		name     string
		p        core.Vec3
		expected core.Vec3
	}{
		{"origin cell", core.NewVec3(0.5, 0.5, 0.5), white},
		{"one step in x", core.NewVec3(1.5, 0.5, 0.5), black},
		{"one step in y", core.NewVec3(0.5, 1.5, 0.5), black},
		{"one step in z", core.NewVec3(0.5, 0.5, 1.5), black},
		{"two steps in x", core.NewVec3(2.5, 0.5, 0.5), white},
		{"diagonal step", core.NewVec3(1.5, 1.5, 0.5), white},
		{"negative cell", core.NewVec3(-0.5, 0.5, 0.5), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.ColorValue(0, 0, tt.p); got != tt.expected {
				t.Errorf("At %v: expected %v, got %v", tt.p, tt.expected, got)
			}
		})
	}
}

func TestCheckerTexture_ScaleFlip(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	checker := NewCheckerColors(0.32, white, black)

	// Moving exactly one cell width along any single axis flips the color
	p := core.NewVec3(0.1, 0.2, 0.3)
	base := checker.ColorValue(0, 0, p)
	for axis := 0; axis < 3; axis++ {
		step := core.Vec3{}
		switch axis {
		case 0:
			step.X = 0.32
		case 1:
			step.Y = 0.32
		case 2:
			step.Z = 0.32
		}
		if got := checker.ColorValue(0, 0, p.Add(step)); got == base {
			t.Errorf("Expected a flip after one cell step on axis %d", axis)
		}
	}
}

func TestImageTexture_Sampling(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	green := core.NewVec3(0, 1, 0)
	blue := core.NewVec3(0, 0, 1)
	yellow := core.NewVec3(1, 1, 0)

	// 2x2 image, row-major from the top: red green / blue yellow
	img := &loaders.ImageData{
		Width:  2,
		Height: 2,
		Pixels: []core.Vec3{red, green, blue, yellow},
	}
	tex := NewImageTexture(img)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"bottom left", 0.0, 0.0, blue},
		{"bottom right", 0.9, 0.0, yellow},
		{"top left", 0.0, 0.9, red},
		{"top right", 0.9, 0.9, green},
		{"u past 1 clamps", 5.0, 0.0, yellow},
		{"v past 1 clamps", 0.0, 5.0, red},
		{"negative u clamps", -3.0, 0.0, blue},
		{"exact corner", 1.0, 1.0, green},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.ColorValue(tt.u, tt.v, core.Vec3{}); got != tt.expected {
				t.Errorf("uv (%f, %f): expected %v, got %v", tt.u, tt.v, tt.expected, got)
			}
		})
	}
}
