package scene

import (
	"github.com/adityavsankar/raytracer/pkg/core"
	"github.com/adityavsankar/raytracer/pkg/geometry"
	"github.com/adityavsankar/raytracer/pkg/material"
	"github.com/adityavsankar/raytracer/pkg/renderer"
	"github.com/adityavsankar/raytracer/pkg/texture"
)

// cornellBox builds the five walls and the ceiling light of the classic
// Cornell box
func cornellBox(world *geometry.Cluster) {
	red := material.NewLambertianColor(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertianColor(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLightColor(core.NewVec3(15, 15, 15))

	world.Add(geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red))
	world.Add(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white))
	world.Add(geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white))
}

// cornellCamera frames the box
func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		AspectRatio:     1.0,
		ImageWidth:      400,
		SamplesPerPixel: 200,
		MaxDepth:        50,
		VerticalFOV:     40,
		LookFrom:        core.NewVec3(278, 278, -800),
		LookAt:          core.NewVec3(278, 278, 0),
		ViewUp:          core.NewVec3(0, 1, 0),
		Background:      core.NewVec3(0, 0, 0),
		FocusDistance:   10.0,
	}
}

// Cornell builds the Cornell box with two rotated, translated cuboids
func Cornell(opts Options) (*Scene, error) {
	world := geometry.NewCluster()
	cornellBox(world)

	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))

	var tall core.Hittable = geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewRotated(tall, core.NewVec3(0, 15, 0))
	tall = geometry.NewTranslated(tall, core.NewVec3(265, 0, 295))
	world.Add(tall)

	var short core.Hittable = geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewRotated(short, core.NewVec3(0, -18, 0))
	short = geometry.NewTranslated(short, core.NewVec3(130, 0, 65))
	world.Add(short)

	return &Scene{
		World:  core.NewBVH(world.Objects(), opts.Rand),
		Camera: cornellCamera(),
	}, nil
}

// CornellSmoke builds the Cornell box with the cuboids replaced by smoke and
// fog volumes
func CornellSmoke(opts Options) (*Scene, error) {
	world := geometry.NewCluster()
	cornellBox(world)

	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))

	var tall core.Hittable = geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewRotated(tall, core.NewVec3(0, 15, 0))
	tall = geometry.NewTranslated(tall, core.NewVec3(265, 0, 295))
	world.Add(geometry.NewConstantMedium(tall, 0.01,
		material.NewIsotropic(texture.NewSolidColorRGB(0, 0, 0))))

	var short core.Hittable = geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewRotated(short, core.NewVec3(0, -18, 0))
	short = geometry.NewTranslated(short, core.NewVec3(130, 0, 65))
	world.Add(geometry.NewConstantMedium(short, 0.01,
		material.NewIsotropic(texture.NewSolidColorRGB(1, 1, 1))))

	return &Scene{
		World:  core.NewBVH(world.Objects(), opts.Rand),
		Camera: cornellCamera(),
	}, nil
}
