package main

import (
	"bytes"
	"fmt"
	"image/png"
	"math/rand"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/adityavsankar/raytracer/log"
	"github.com/adityavsankar/raytracer/pkg/renderer"
	"github.com/adityavsankar/raytracer/pkg/scene"
)

var logger = log.New("raytracer")

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		if ctx.Bool("v") {
			log.SetLevel(log.Debug, "")
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a PNG file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "spheres",
					Usage: "scene name (see list-scenes)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "override output width in pixels",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "override samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "override maximum ray bounce depth",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (default: all CPUs)",
				},
				cli.StringFlag{
					Name:  "texture",
					Value: "earthmap.jpg",
					Usage: "image file for image-textured scenes",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "output PNG filename",
				},
			},
			Action: renderScene,
		},
		{
			Name:   "list-scenes",
			Usage:  "list the available built-in scenes",
			Action: listScenes,
		},
	}
	return app
}

func renderScene(ctx *cli.Context) error {
	seed := ctx.Int64("seed")

	sc, err := scene.Create(ctx.String("scene"), scene.Options{
		Rand:         rand.New(rand.NewSource(seed)),
		EarthTexture: ctx.String("texture"),
	})
	if err != nil {
		return err
	}

	if width := ctx.Int("width"); width > 0 {
		sc.Camera.ImageWidth = width
	}
	if spp := ctx.Int("spp"); spp > 0 {
		sc.Camera.SamplesPerPixel = spp
	}
	if depth := ctx.Int("depth"); depth > 0 {
		sc.Camera.MaxDepth = depth
	}

	r := renderer.New(sc.World, renderer.NewCamera(sc.Camera), renderer.Options{
		Seed:       seed,
		NumWorkers: ctx.Int("workers"),
	}, logger)

	fb, stats := r.Render()

	out := ctx.String("out")
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToRGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	displayRenderStats(stats, out)
	return nil
}

func displayRenderStats(stats renderer.RenderStats, out string) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Output", "Resolution", "Samples", "Primary rays", "Workers", "Render time"})
	table.Append([]string{
		out,
		fmt.Sprintf("%d x %d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.Samples),
		fmt.Sprintf("%d", stats.PrimaryRays),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%s", stats.Duration),
	})
	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}

func listScenes(ctx *cli.Context) error {
	for _, name := range scene.List() {
		fmt.Println(name)
	}
	return nil
}
