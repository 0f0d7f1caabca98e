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

// instanced draws the 4x4 floor of shrinking cubes in one instanced call.
type instanced struct {
	mesh *graphics.Mesh
}

func (d *instanced) Init(ctx *demo.Context) error {
	data := scene.Cube()
	data.Instances = scene.SmallGrid.Instances()
	mesh, err := graphics.NewMesh(data)
	if err != nil {
		return err
	}
	d.mesh = mesh

	ctx.Viewer = camera.NewFixed(vmath.V3(7.5, 7.5, -12.5), vmath.V3(0, 0, 0))
	ctx.Model = scene.Model(1)
	return nil
}

func (d *instanced) Update(ctx *demo.Context) {
	ctx.Transform = scene.Spin(ctx.Time)
}

func (d *instanced) Render(*demo.Context) {
	d.mesh.Draw()
}

func (d *instanced) Dispose() {
	if d.mesh != nil {
		d.mesh.Delete()
	}
}

func main() {
	args, err := demo.ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	base := config.Default()
	base.Window.Title = "instanced"
	base.Window.FBOScale = 1
	s, err := config.LoadWith(args.Config, base)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	if err := demo.Run(s, args.Vertex, args.Fragment, &instanced{}); err != nil {
		log.Fatalf("instanced: %v", err)
	}
}
