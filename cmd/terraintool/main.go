// terraintool is a CLI utility for inspecting generated terrain without opening a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Faultbox/midgard-terrain/internal/engine/debug"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/noise"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args)
	case "sample", "h":
		err = cmdSample(args)
	case "heightmap", "png":
		err = cmdHeightmap(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terraintool - procedural terrain inspector

Usage:
  terraintool <command> [options]

Commands:
  info                       Show mesh statistics
  sample <x> <z>             Print the terrain height at world (x, z)
  heightmap <output.png>     Write a grayscale heightmap

Common options:
  -grid N        grid width and depth (default 50)
  -noise KIND    value, perlin or simplex (default value)
  -seed N        seed for perlin and simplex

Examples:
  terraintool info -grid 100
  terraintool sample 2.5 -4
  terraintool heightmap -noise simplex -seed 7 -size 512 terrain.png`)
}

// generatorFlags registers the options shared by every command.
type generatorFlags struct {
	grid   *int
	kind   *string
	seed   *int64
	scale  *float64
	height *float64
}

func newGeneratorFlags(fs *flag.FlagSet) generatorFlags {
	return generatorFlags{
		grid:   fs.Int("grid", terrain.DefaultWidth, "Grid width and depth"),
		kind:   fs.String("noise", noise.KindValue, "Noise base: value, perlin or simplex"),
		seed:   fs.Int64("seed", 0, "Noise seed"),
		scale:  fs.Float64("scale", terrain.DefaultScale, "Noise-space span of the grid"),
		height: fs.Float64("height", terrain.DefaultHeight, "Height multiplier"),
	}
}

func (gf generatorFlags) generator() (*terrain.Generator, error) {
	base, err := noise.NewSource(*gf.kind, *gf.seed)
	if err != nil {
		return nil, err
	}
	field := noise.Default()
	field.Base = base

	params := terrain.DefaultParams()
	params.Width = *gf.grid
	params.Depth = *gf.grid
	params.Scale = *gf.scale
	params.Height = *gf.height
	return terrain.New(params, field)
}

func cmdInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	gf := newGeneratorFlags(fs)
	fs.Parse(args)

	gen, err := gf.generator()
	if err != nil {
		return err
	}
	mesh := gen.Build()
	p := gen.Params()

	fmt.Printf("Grid:      %d x %d\n", p.Width, p.Depth)
	fmt.Printf("Noise:     %s (seed %d)\n", *gf.kind, *gf.seed)
	fmt.Printf("Vertices:  %d\n", len(mesh.Vertices))
	fmt.Printf("Triangles: %d\n", mesh.TriangleCount())
	fmt.Printf("Bounds:    (%.2f, %.2f, %.2f) - (%.2f, %.2f, %.2f)\n",
		mesh.Bounds.Min.X, mesh.Bounds.Min.Y, mesh.Bounds.Min.Z,
		mesh.Bounds.Max.X, mesh.Bounds.Max.Y, mesh.Bounds.Max.Z)
	fmt.Printf("Heights:   %.3f to %.3f\n", mesh.Bounds.Min.Y, mesh.Bounds.Max.Y)
	return nil
}

func cmdSample(args []string) error {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	gf := newGeneratorFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 2 {
		return fmt.Errorf("usage: terraintool sample [options] <x> <z>")
	}
	x, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	z, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil {
		return fmt.Errorf("z: %w", err)
	}

	gen, err := gf.generator()
	if err != nil {
		return err
	}
	fmt.Printf("%.6f\n", gen.HeightAt(x, z))
	return nil
}

func cmdHeightmap(args []string) error {
	fs := flag.NewFlagSet("heightmap", flag.ExitOnError)
	gf := newGeneratorFlags(fs)
	size := fs.Int("size", 256, "Image width and height in pixels")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: terraintool heightmap [options] <output.png>")
	}
	if *size <= 0 {
		return fmt.Errorf("size must be positive, got %d", *size)
	}

	gen, err := gf.generator()
	if err != nil {
		return err
	}
	p := gen.Params()
	halfW := float64(p.Width) / 2
	halfD := float64(p.Depth) / 2

	img := debug.HeightmapImage(gen.HeightAt, -halfW, -halfD, halfW, halfD, *size, *size)
	if err := debug.WritePNG(fs.Arg(0), img); err != nil {
		return err
	}
	fmt.Printf("Wrote %dx%d heightmap to %s\n", *size, *size, fs.Arg(0))
	return nil
}
