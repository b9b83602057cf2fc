package texture

import (
	"github.com/adityavsankar/raytracer/pkg/core"
	"github.com/adityavsankar/raytracer/pkg/loaders"
)

// ImageTexture samples colors from a decoded raster image
type ImageTexture struct {
	width, height int
	pixels        []core.Vec3 // Row-major: pixels[y*width + x]
}

// NewImageTexture creates a texture over a decoded image
func NewImageTexture(img *loaders.ImageData) *ImageTexture {
	return &ImageTexture{width: img.Width, height: img.Height, pixels: img.Pixels}
}

// NewImageTextureFromFile loads and decodes an image file into a texture
func NewImageTextureFromFile(filename string) (*ImageTexture, error) {
	img, err := loaders.LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(img), nil
}

// ColorValue maps (u,v) in [0,1]² to pixel coordinates, flipping v so that
// v=0 addresses the bottom row, and clamps indices to the image bounds
func (t *ImageTexture) ColorValue(u, v float64, p core.Vec3) core.Vec3 {
	u = clamp01(u)
	v = clamp01(v)

	x := int(u * float64(t.width))
	y := int((1.0 - v) * float64(t.height))

	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}

	return t.pixels[y*t.width+x]
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
