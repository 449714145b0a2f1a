package render

import (
	"errors"
	"fmt"

	"raytracer/vector3"
)

var (
	ErrBadDimensions = errors.New("render: image dimensions must be positive")
	ErrRaggedImage   = errors.New("render: rows have different widths")
)

// Gradient returns a width x height image, top row first. Red grows left to
// right, green grows bottom to top and blue is fixed at 0.25.
func Gradient(width, height int) ([][]vector3.Color, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}

	rows := make([][]vector3.Color, height)
	for j := 0; j < height; j++ {
		rows[j] = make([]vector3.Color, width)
		for i := 0; i < width; i++ {
			rows[j][i] = vector3.Color{
				X: ratio(i, width),
				Y: ratio(height-1-j, height),
				Z: 0.25,
			}
		}
	}
	return rows, nil
}

func ratio(n, size int) float64 {
	if size == 1 {
		return 0
	}
	return float64(n) / float64(size-1)
}

// bounds checks that pixels is a non-empty rectangle
func bounds(pixels [][]vector3.Color) (width, height int, err error) {
	height = len(pixels)
	if height == 0 || len(pixels[0]) == 0 {
		err = ErrBadDimensions
		return
	}
	width = len(pixels[0])
	for j, row := range pixels {
		if len(row) != width {
			err = fmt.Errorf("%w: row %d has %d pixels, want %d", ErrRaggedImage, j, len(row), width)
			return
		}
	}
	return
}
