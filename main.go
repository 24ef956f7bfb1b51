package main

import (
	"os"

	"github.com/df07/go-raytracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-raytracer"
	app.Usage = "render built-in scenes with a path tracer or a Whitted ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:        "render",
			Usage:       "render a scene to a png file",
			ArgsUsage:   "[scene]",
			Description: `
Render one of the built-in scenes. Every scene carries recommended camera and
sampling settings; the flags below override them individually. With --passes N
the image is rendered once and then resumed N-1 times, each pass adding --spp
samples per pixel.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "name of the built-in scene",
				},
				cli.StringFlag{
					Name:  "integrator, i",
					Usage: "light transport: path or whitted (default: the scene's choice)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width; height follows the scene aspect ratio (default: the scene's setting)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel per pass (default: the scene's setting)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray recursion depth (default: the scene's setting)",
				},
				cli.Uint64Flag{
					Name:  "seed",
					Usage: "master random seed (default: the scene's setting)",
				},
				cli.IntFlag{
					Name:  "aa",
					Usage: "anti-aliasing grid size M; 0 jitters samples at random",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Usage: "number of parallel workers (0 = number of CPUs)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "edge length of the square tiles handed to workers",
				},
				cli.IntFlag{
					Name:  "passes",
					Value: 1,
					Usage: "number of progressive passes",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.Render,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		cmd.Fatal(err)
	}
}
