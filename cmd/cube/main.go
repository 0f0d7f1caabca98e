package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"freelook/internal/camera"
	"freelook/internal/config"
	"freelook/internal/demo"
	"freelook/internal/graphics"
	"freelook/internal/scene"
	"freelook/internal/vmath"
)

func init() {
	runtime.LockOSThread()
}

// cube draws one spinning cube seen from a fixed point.
type cube struct {
	mesh *graphics.Mesh
}

func (c *cube) Init(ctx *demo.Context) error {
	mesh, err := graphics.NewMesh(scene.Cube())
	if err != nil {
		return err
	}
	c.mesh = mesh
	ctx.Viewer = camera.NewFixed(vmath.V3(1.5, 1.5, 3), vmath.V3(0, 0, 0))
	return nil
}

func (c *cube) Update(ctx *demo.Context) {
	ctx.Transform = scene.Spin(ctx.Time)
}

func (c *cube) Render(*demo.Context) {
	c.mesh.Draw()
}

func (c *cube) Dispose() {
	if c.mesh != nil {
		c.mesh.Delete()
	}
}

func main() {
	args, err := demo.ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	base := config.Default()
	base.Window.Title = "cube"
	base.Window.FBOScale = 1
	s, err := config.LoadWith(args.Config, base)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	if err := demo.Run(s, args.Vertex, args.Fragment, &cube{}); err != nil {
		log.Fatalf("cube: %v", err)
	}
}
