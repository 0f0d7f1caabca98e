package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"freelook/internal/config"
	"freelook/internal/demo"
	"freelook/internal/graphics"
	"freelook/internal/scene"
)

func init() {
	runtime.LockOSThread()
}

// wall is the 8x8 indexed, instanced grid explored with WASD and mouse look.
// The default free-look viewer built from the settings is kept.
type wall struct {
	mesh *graphics.Mesh
}

func (w *wall) Init(ctx *demo.Context) error {
	data := scene.IndexedCube()
	data.Instances = scene.LargeGrid.Instances()
	mesh, err := graphics.NewMesh(data)
	if err != nil {
		return err
	}
	w.mesh = mesh
	ctx.Model = scene.Model(1.25)
	return nil
}

func (w *wall) Update(ctx *demo.Context) {
	ctx.Transform = scene.Spin(ctx.Time)
}

func (w *wall) Render(*demo.Context) {
	w.mesh.Draw()
}

func (w *wall) Dispose() {
	if w.mesh != nil {
		w.mesh.Delete()
	}
}

func main() {
	args, err := demo.ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	s, err := config.Load(args.Config)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	if err := demo.Run(s, args.Vertex, args.Fragment, &wall{}); err != nil {
		log.Fatalf("freelook: %v", err)
	}
}
