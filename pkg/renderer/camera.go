package renderer

import (
	"math"
	"math/rand"

	"github.com/adityavsankar/raytracer/pkg/core"
)

// CameraConfig is the fully-resolved user-facing camera parameter set
type CameraConfig struct {
	AspectRatio     float64
	ImageWidth      int
	SamplesPerPixel int
	MaxDepth        int
	VerticalFOV     float64 // In degrees
	LookFrom        core.Vec3
	LookAt          core.Vec3
	ViewUp          core.Vec3
	Background      core.Vec3
	DefocusAngle    float64 // In degrees; 0 disables defocus blur
	FocusDistance   float64
}

// Camera holds the derived state for primary ray generation. All fields are
// computed once in NewCamera and read concurrently by render workers.
type Camera struct {
	imageWidth, imageHeight int
	samplesPerPixel         int
	maxDepth                int
	center                  core.Vec3
	background              core.Vec3

	pixel00      core.Vec3 // Center of pixel (0,0)
	pixelDeltaU  core.Vec3 // Offset between horizontally adjacent pixels
	pixelDeltaV  core.Vec3 // Offset between vertically adjacent pixels
	defocusAngle float64
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera derives the camera basis, viewport and defocus disk from the
// configuration
func NewCamera(cfg CameraConfig) *Camera {
	imageHeight := int(float64(cfg.ImageWidth) / cfg.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	center := cfg.LookFrom

	theta := cfg.VerticalFOV * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDistance
	viewportWidth := viewportHeight * float64(cfg.ImageWidth) / float64(imageHeight)

	// Orthonormal basis: w points from the target back to the camera
	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.ViewUp.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(cfg.ImageWidth))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(cfg.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := cfg.FocusDistance * math.Tan(cfg.DefocusAngle/2*math.Pi/180)

	return &Camera{
		imageWidth:      cfg.ImageWidth,
		imageHeight:     imageHeight,
		samplesPerPixel: cfg.SamplesPerPixel,
		maxDepth:        cfg.MaxDepth,
		center:          center,
		background:      cfg.Background,
		pixel00:         pixel00,
		pixelDeltaU:     pixelDeltaU,
		pixelDeltaV:     pixelDeltaV,
		defocusAngle:    cfg.DefocusAngle,
		defocusDiskU:    u.Multiply(defocusRadius),
		defocusDiskV:    v.Negate().Multiply(defocusRadius),
	}
}

// ImageWidth returns the output width in pixels
func (c *Camera) ImageWidth() int { return c.imageWidth }

// ImageHeight returns the output height derived from the aspect ratio
func (c *Camera) ImageHeight() int { return c.imageHeight }

// SamplesPerPixel returns the configured sample count
func (c *Camera) SamplesPerPixel() int { return c.samplesPerPixel }

// MaxDepth returns the configured bounce limit
func (c *Camera) MaxDepth() int { return c.maxDepth }

// Background returns the constant background radiance
func (c *Camera) Background() core.Vec3 { return c.background }

// GetRay generates a primary ray for pixel (i,j): jittered within the pixel,
// originating on the defocus disk when defocus is enabled, with a uniform
// random time in [0,1) for motion blur
func (c *Camera) GetRay(i, j int, rng *rand.Rand) core.Ray {
	offsetX := rng.Float64() - 0.5
	offsetY := rng.Float64() - 0.5

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.defocusAngle > 0 {
		origin = c.defocusDiskSample(rng)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin), rng.Float64())
}

// defocusDiskSample picks a random origin on the defocus disk
func (c *Camera) defocusDiskSample(rng *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(rng)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}
