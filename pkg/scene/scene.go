package scene

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/adityavsankar/raytracer/pkg/core"
	"github.com/adityavsankar/raytracer/pkg/renderer"
)

// Scene couples a fully-built primitive hierarchy with the camera
// configuration that frames it
type Scene struct {
	World  core.Hittable
	Camera renderer.CameraConfig
}

// Options carries the inputs scene builders need: a randomness source for
// procedural placement, noise tables and BVH construction, and the path to
// the raster used by image-textured scenes
type Options struct {
	Rand         *rand.Rand
	EarthTexture string
}

// Builder constructs a named scene
type Builder func(opts Options) (*Scene, error)

var builders = map[string]Builder{
	"spheres":           Spheres,
	"checkered-spheres": CheckeredSpheres,
	"perlin-spheres":    PerlinSpheres,
	"earth":             Earth,
	"quads":             Quads,
	"simple-light":      SimpleLight,
	"cornell":           Cornell,
	"cornell-smoke":     CornellSmoke,
	"final":             Final,
}

// List returns the available scene names in sorted order
func List() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds the named scene
func Create(name string, opts Options) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return builder(opts)
}
