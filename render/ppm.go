package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"raytracer/vector3"
)

// Quantize maps each channel from [0,1] to an integer in [0,255].
// Channels outside the range are clamped and NaN becomes 0.
func Quantize(c vector3.Color) vector3.Color {
	return vector3.Color{
		X: quantize(c.X),
		Y: quantize(c.Y),
		Z: quantize(c.Z),
	}
}

func quantize(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		f = 0
	}
	if f > 0.999 {
		f = 0.999
	}
	return math.Floor(256 * f)
}

// WritePPM writes pixels as a plain (P3) PPM image
func WritePPM(w io.Writer, pixels [][]vector3.Color) (err error) {
	var width, height int
	if width, height, err = bounds(pixels); err != nil {
		return
	}

	bw := bufio.NewWriter(w)
	if _, err = fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return
	}

	for _, row := range pixels {
		for _, c := range row {
			if _, err = Quantize(c).WriteTo(bw); err != nil {
				return
			}
			if err = bw.WriteByte('\n'); err != nil {
				return
			}
		}
	}

	return bw.Flush()
}
