package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/adityavsankar/raytracer/pkg/core"
)

// Framebuffer is a flat row-major buffer of linear-space RGB pixels
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Pixels[j*Width + i]
}

// NewFramebuffer allocates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the linear color at pixel (i,j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[j*fb.Width+i]
}

// Set writes the linear color at pixel (i,j)
func (fb *Framebuffer) Set(i, j int, c core.Vec3) {
	fb.Pixels[j*fb.Width+i] = c
}

// ToRGBA converts the linear buffer to 8-bit RGBA using the fixed output
// contract: sqrt as gamma 2.0, clamp to [0, 0.999], scale by 256
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			r, g, b := RGB8(fb.At(i, j))
			img.SetRGBA(i, j, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// RGB8 converts one linear color to output bytes
func RGB8(c core.Vec3) (r, g, b uint8) {
	return channelByte(c.X), channelByte(c.Y), channelByte(c.Z)
}

// channelByte applies gamma, clamps and scales one channel
func channelByte(component float64) uint8 {
	gamma := linearToGamma(component)
	if gamma > 0.999 {
		gamma = 0.999
	}
	return uint8(256 * gamma)
}

// linearToGamma applies the gamma 2.0 approximation to one channel
func linearToGamma(component float64) float64 {
	if component < 0 {
		return 0
	}
	return math.Sqrt(component)
}
