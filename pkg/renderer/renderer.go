package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/adityavsankar/raytracer/log"
	"github.com/adityavsankar/raytracer/pkg/core"
	"github.com/adityavsankar/raytracer/pkg/integrator"
)

// Options controls execution of a render; the scene content and camera are
// configured separately
type Options struct {
	Seed       int64 // Base seed for all per-pixel generators
	NumWorkers int   // 0 means runtime.NumCPU()
}

// RenderStats summarizes a completed render
type RenderStats struct {
	Width       int
	Height      int
	Samples     int
	Workers     int
	PrimaryRays int64
	Duration    time.Duration
}

// Renderer drives the sampling loop: it owns the immutable scene root, the
// camera and the integrator, and distributes scanlines over a fixed worker
// pool. The scene is never mutated during rendering, so workers share it
// without locks.
type Renderer struct {
	world      core.Hittable
	camera     *Camera
	integrator *integrator.PathTracer
	opts       Options
	logger     log.Logger
}

// New creates a renderer for a scene root and camera
func New(world core.Hittable, camera *Camera, opts Options, logger log.Logger) *Renderer {
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = runtime.NumCPU()
	}
	return &Renderer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracer(camera.MaxDepth(), camera.Background()),
		opts:       opts,
		logger:     logger,
	}
}

// Render traces the configured number of samples for every pixel and returns
// the resolved framebuffer. Each pixel draws from its own deterministically
// seeded generator, so the result is identical for any worker count.
func (r *Renderer) Render() (*Framebuffer, RenderStats) {
	width := r.camera.ImageWidth()
	height := r.camera.ImageHeight()
	samples := r.camera.SamplesPerPixel()
	fb := NewFramebuffer(width, height)

	start := time.Now()
	r.logger.Infof("rendering %dx%d, %d samples/pixel, depth %d, %d workers",
		width, height, samples, r.camera.MaxDepth(), r.opts.NumWorkers)

	rows := make(chan int, height)
	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < r.opts.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				r.renderRow(fb, j)
			}
		}()
	}
	wg.Wait()

	stats := RenderStats{
		Width:       width,
		Height:      height,
		Samples:     samples,
		Workers:     r.opts.NumWorkers,
		PrimaryRays: int64(width) * int64(height) * int64(samples),
		Duration:    time.Since(start),
	}
	r.logger.Infof("render finished in %s", stats.Duration)
	return fb, stats
}

// renderRow resolves every pixel of one scanline
func (r *Renderer) renderRow(fb *Framebuffer, j int) {
	width := fb.Width
	samples := r.camera.SamplesPerPixel()
	scale := 1.0 / float64(samples)

	for i := 0; i < width; i++ {
		rng := rand.New(rand.NewSource(r.pixelSeed(i, j)))

		sum := core.NewVec3(0, 0, 0)
		for s := 0; s < samples; s++ {
			ray := r.camera.GetRay(i, j, rng)
			sum = sum.Add(r.integrator.RayColor(ray, r.world, rng))
		}

		fb.Set(i, j, sum.Multiply(scale))
	}
}

// pixelSeed derives a per-pixel seed so pixel values are independent of how
// scanlines are partitioned across workers
func (r *Renderer) pixelSeed(i, j int) int64 {
	return r.opts.Seed + int64(j)*int64(r.camera.ImageWidth()) + int64(i)
}
