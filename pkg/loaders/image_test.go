package loaders

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG encodes a 2x1 image with a red and a green pixel
func writeTestPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})

	path := filepath.Join(t.TempDir(), "test.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	data, err := LoadImage(writeTestPNG(t))
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if data.Width != 2 || data.Height != 1 {
		t.Fatalf("Expected 2x1 image, got %dx%d", data.Width, data.Height)
	}
	if len(data.Pixels) != 2 {
		t.Fatalf("Expected 2 pixels, got %d", len(data.Pixels))
	}

	red := data.Pixels[0]
	if math.Abs(red.X-1) > 1e-3 || red.Y > 1e-3 || red.Z > 1e-3 {
		t.Errorf("Expected red pixel, got %v", red)
	}
	green := data.Pixels[1]
	if green.X > 1e-3 || math.Abs(green.Y-1) > 1e-3 || green.Z > 1e-3 {
		t.Errorf("Expected green pixel, got %v", green)
	}
}

func TestLoadImage_MissingFile(t *testing.T) {
	if _, err := LoadImage("does-not-exist.png"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoadImage_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("Expected a decode error")
	}
}
