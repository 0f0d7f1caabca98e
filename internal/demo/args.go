package demo

import (
	"errors"
	"flag"
	"fmt"
)

// Args are the command-line inputs every demo takes:
//
//	demo [-config settings.toml] vertex.glsl fragment.glsl
type Args struct {
	Config   string
	Vertex   string
	Fragment string
}

var errUsage = errors.New("usage: [-config settings.toml] vertex.glsl fragment.glsl")

// ParseArgs registers the demo flags on fs and parses args.
func ParseArgs(fs *flag.FlagSet, args []string) (Args, error) {
	var a Args
	fs.StringVar(&a.Config, "config", "", "TOML settings `file`; missing keys keep the demo defaults")
	if err := fs.Parse(args); err != nil {
		return a, err
	}
	if fs.NArg() != 2 {
		return a, fmt.Errorf("%s: %w", fs.Name(), errUsage)
	}
	a.Vertex, a.Fragment = fs.Arg(0), fs.Arg(1)
	return a, nil
}
