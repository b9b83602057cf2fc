package scene

import (
	"github.com/adityavsankar/raytracer/pkg/core"
	"github.com/adityavsankar/raytracer/pkg/geometry"
	"github.com/adityavsankar/raytracer/pkg/material"
	"github.com/adityavsankar/raytracer/pkg/renderer"
	"github.com/adityavsankar/raytracer/pkg/texture"
)

// Sky blue used as background radiance for the daylight scenes
var skyBackground = core.NewVec3(0.70, 0.80, 1.00)

// Spheres builds a field of small random spheres around three large ones,
// with motion blur on a third of the diffuse spheres and defocus blur on the
// camera
func Spheres(opts Options) (*Scene, error) {
	rng := opts.Rand
	world := geometry.NewCluster()

	ground := material.NewLambertian(texture.NewCheckerColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := core.NewVec3(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(rng, 0, 1).MultiplyVec(core.RandomVec3(rng, 0, 1))
				mat := material.NewLambertianColor(albedo)
				if chooseMat < 0.27 {
					center2 := center.Add(core.NewVec3(0, 0.5*rng.Float64(), 0))
					world.Add(geometry.NewMovingSphere(center, center2, 0.2, mat))
				} else {
					world.Add(geometry.NewSphere(center, 0.2, mat))
				}
			case chooseMat < 0.95:
				albedo := core.RandomVec3(rng, 0.5, 1)
				fuzz := 0.5 * rng.Float64()
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0,
		material.NewLambertianColor(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0,
		material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return &Scene{
		World: core.NewBVH(world.Objects(), rng),
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VerticalFOV:     20,
			LookFrom:        core.NewVec3(13, 2, 3),
			LookAt:          core.NewVec3(0, 0, 0),
			ViewUp:          core.NewVec3(0, 1, 0),
			Background:      skyBackground,
			DefocusAngle:    0.6,
			FocusDistance:   10.0,
		},
	}, nil
}

// CheckeredSpheres builds two large spheres sharing one checker texture
func CheckeredSpheres(opts Options) (*Scene, error) {
	world := geometry.NewCluster()

	checker := texture.NewCheckerColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world.Add(geometry.NewSphere(core.NewVec3(0, -10, 0), 10, material.NewLambertian(checker)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 10, 0), 10, material.NewLambertian(checker)))

	return &Scene{
		World: core.NewBVH(world.Objects(), opts.Rand),
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VerticalFOV:     20,
			LookFrom:        core.NewVec3(13, 2, 3),
			LookAt:          core.NewVec3(0, 0, 0),
			ViewUp:          core.NewVec3(0, 1, 0),
			Background:      skyBackground,
			FocusDistance:   10.0,
		},
	}, nil
}

// PerlinSpheres builds a marble-textured sphere resting on a marble ground
func PerlinSpheres(opts Options) (*Scene, error) {
	world := geometry.NewCluster()

	marble := material.NewLambertian(texture.NewNoiseTexture(4, opts.Rand))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble))
	world.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble))

	return &Scene{
		World: core.NewBVH(world.Objects(), opts.Rand),
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VerticalFOV:     20,
			LookFrom:        core.NewVec3(13, 2, 3),
			LookAt:          core.NewVec3(0, 0, 0),
			ViewUp:          core.NewVec3(0, 1, 0),
			Background:      skyBackground,
			FocusDistance:   10.0,
		},
	}, nil
}

// Earth builds a single sphere wrapped in an equirectangular image texture.
// A missing or undecodable image file fails scene construction, before any
// sampling starts.
func Earth(opts Options) (*Scene, error) {
	earthTexture, err := texture.NewImageTextureFromFile(opts.EarthTexture)
	if err != nil {
		return nil, err
	}

	world := geometry.NewCluster()
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewLambertian(earthTexture)))

	return &Scene{
		World: core.NewBVH(world.Objects(), opts.Rand),
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VerticalFOV:     20,
			LookFrom:        core.NewVec3(0, 0, 12),
			LookAt:          core.NewVec3(0, 0, 0),
			ViewUp:          core.NewVec3(0, 1, 0),
			Background:      skyBackground,
			FocusDistance:   10.0,
		},
	}, nil
}
