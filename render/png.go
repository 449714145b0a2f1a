package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"raytracer/vector3"
)

// Image converts pixels into an RGBA image using the same quantisation as WritePPM
func Image(pixels [][]vector3.Color) (*image.RGBA, error) {
	width, height, err := bounds(pixels)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y, row := range pixels {
		for x, c := range row {
			q := Quantize(c)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(q.X),
				G: uint8(q.Y),
				B: uint8(q.Z),
				A: 255,
			})
		}
	}
	return img, nil
}

// WritePNG encodes pixels as a PNG image
func WritePNG(w io.Writer, pixels [][]vector3.Color) (err error) {
	var img *image.RGBA
	if img, err = Image(pixels); err != nil {
		return
	}
	return png.Encode(w, img)
}
