package scene

import (
	"github.com/adityavsankar/raytracer/pkg/core"
	"github.com/adityavsankar/raytracer/pkg/geometry"
	"github.com/adityavsankar/raytracer/pkg/material"
	"github.com/adityavsankar/raytracer/pkg/renderer"
	"github.com/adityavsankar/raytracer/pkg/texture"
)

// Final combines every primitive, material and texture variant in one scene:
// a cuboid floor grid, a moving sphere, glass, metal, a subsurface sphere,
// global fog, a marble sphere and a rotated, translated cluster of small
// spheres
func Final(opts Options) (*Scene, error) {
	rng := opts.Rand
	world := geometry.NewCluster()

	ground := material.NewLambertianColor(core.NewVec3(0.48, 0.83, 0.53))
	boxes := geometry.NewCluster()
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := 1 + 100*rng.Float64()
			boxes.Add(geometry.NewCuboid(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+w, y1, z0+w),
				ground,
			))
		}
	}
	world.Add(core.NewBVH(boxes.Objects(), rng))

	light := material.NewDiffuseLightColor(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center1, center2, 50,
		material.NewLambertianColor(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Subsurface blue sphere: a glass shell filled with a dense blue medium
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMedium(boundary, 0.2,
		material.NewIsotropicColor(core.NewVec3(0.2, 0.4, 0.9))))

	// Thin global fog over the whole scene
	fogBoundary := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMedium(fogBoundary, 0.0001,
		material.NewIsotropicColor(core.NewVec3(1, 1, 1))))

	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
		material.NewLambertian(texture.NewNoiseTexture(0.2, rng))))

	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	cluster := geometry.NewCluster()
	for i := 0; i < 1000; i++ {
		cluster.Add(geometry.NewSphere(core.RandomVec3(rng, 0, 165), 10, white))
	}
	var spheres core.Hittable = core.NewBVH(cluster.Objects(), rng)
	spheres = geometry.NewRotated(spheres, core.NewVec3(0, 15, 0))
	spheres = geometry.NewTranslated(spheres, core.NewVec3(-100, 270, 395))
	world.Add(spheres)

	return &Scene{
		World: core.NewBVH(world.Objects(), rng),
		Camera: renderer.CameraConfig{
			AspectRatio:     1.0,
			ImageWidth:      400,
			SamplesPerPixel: 250,
			MaxDepth:        40,
			VerticalFOV:     40,
			LookFrom:        core.NewVec3(478, 278, -600),
			LookAt:          core.NewVec3(278, 278, 0),
			ViewUp:          core.NewVec3(0, 1, 0),
			Background:      core.NewVec3(0, 0, 0),
			FocusDistance:   10.0,
		},
	}, nil
}
