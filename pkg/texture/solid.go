package texture

import "github.com/adityavsankar/raytracer/pkg/core"

// SolidColor returns a constant color regardless of surface position
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidColorRGB creates a solid color texture from components
func NewSolidColorRGB(r, g, b float64) *SolidColor {
	return &SolidColor{Color: core.NewVec3(r, g, b)}
}

// ColorValue returns the constant color
func (s *SolidColor) ColorValue(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}
