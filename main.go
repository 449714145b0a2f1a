package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"raytracer/render"
	"raytracer/vector3"
)

var (
	width  = flag.Int("width", 256, "image width in pixels")
	height = flag.Int("height", 256, "image height in pixels")
	format = flag.String("format", "ppm", "output format: ppm or png")
	output = flag.String("o", "", "output file (default stdout)")
)

func main() {
	flag.Parse()

	if err := run(*output, *format, *width, *height); err != nil {
		log.Fatalf("raytracer: %v", err)
	}
}

func run(outPath, format string, width, height int) (err error) {
	var write func(io.Writer, [][]vector3.Color) error
	switch format {
	case "ppm":
		write = render.WritePPM
	case "png":
		write = render.WritePNG
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	pixels, err := render.Gradient(width, height)
	if err != nil {
		return
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		var f *os.File
		if f, err = os.Create(outPath); err != nil {
			return
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	log.Printf("rendering %dx%d %s image", width, height, format)
	if err = write(w, pixels); err != nil {
		return fmt.Errorf("writing %s: %w", format, err)
	}
	log.Println("done")
	return
}
