package scene

import (
	"github.com/adityavsankar/raytracer/pkg/core"
	"github.com/adityavsankar/raytracer/pkg/geometry"
	"github.com/adityavsankar/raytracer/pkg/material"
	"github.com/adityavsankar/raytracer/pkg/renderer"
	"github.com/adityavsankar/raytracer/pkg/texture"
)

// Quads builds five axis-facing colored quads
func Quads(opts Options) (*Scene, error) {
	world := geometry.NewCluster()

	leftRed := material.NewLambertianColor(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertianColor(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertianColor(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertianColor(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertianColor(core.NewVec3(0.2, 0.8, 0.8))

	world.Add(geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed))
	world.Add(geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen))
	world.Add(geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue))
	world.Add(geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange))
	world.Add(geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal))

	return &Scene{
		World: core.NewBVH(world.Objects(), opts.Rand),
		Camera: renderer.CameraConfig{
			AspectRatio:     1.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VerticalFOV:     80,
			LookFrom:        core.NewVec3(0, 0, 9),
			LookAt:          core.NewVec3(0, 0, 0),
			ViewUp:          core.NewVec3(0, 1, 0),
			Background:      skyBackground,
			FocusDistance:   10.0,
		},
	}, nil
}

// SimpleLight builds a marble sphere lit by an emissive quad and an emissive
// sphere against a black background
func SimpleLight(opts Options) (*Scene, error) {
	world := geometry.NewCluster()

	marble := material.NewLambertian(texture.NewNoiseTexture(4, opts.Rand))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble))
	world.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble))

	light := material.NewDiffuseLightColor(core.NewVec3(4, 4, 4))
	world.Add(geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light))
	world.Add(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light))

	return &Scene{
		World: core.NewBVH(world.Objects(), opts.Rand),
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VerticalFOV:     20,
			LookFrom:        core.NewVec3(26, 3, 6),
			LookAt:          core.NewVec3(0, 2, 0),
			ViewUp:          core.NewVec3(0, 1, 0),
			Background:      core.NewVec3(0, 0, 0),
			FocusDistance:   10.0,
		},
	}, nil
}
