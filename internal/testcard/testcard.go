// Package testcard generates the sample images written by "ldrhdr sample".
package testcard

import (
	"github.com/drwalton/LDRHDRImageWriter/internal/ir"
	"github.com/drwalton/LDRHDRImageWriter/internal/tga"
)

// gradientBlue is the fixed blue level of the gradient.
const gradientBlue = 0.25

// Gradient returns an 8-bit ramp: red grows left to right, green grows
// from the bottom row to the top row and blue is constant.
func Gradient(width, height int) (*ir.Raster, error) {
	r, err := ir.NewRaster(width, height, 255)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		// Row 0 is the top of the picture, where green is brightest.
		j := height - 1 - y
		for x := 0; x < width; x++ {
			r.SetPixel(x, y, [3]uint16{
				ramp(x, width),
				ramp(j, height),
				to8(gradientBlue),
			})
		}
	}
	return r, nil
}

func ramp(i, n int) uint16 {
	if n < 2 {
		return 0
	}
	return to8(float64(i) / float64(n-1))
}

func to8(f float64) uint16 {
	return uint16(255.999 * f)
}

// Marker returns a black RGB image with a single pixel set to c.
func Marker(width, height, x, y int, c tga.Color) (*tga.Image, error) {
	m, err := tga.NewImage(width, height, tga.RGB)
	if err != nil {
		return nil, err
	}
	if err := m.Set(x, y, c); err != nil {
		return nil, err
	}
	return m, nil
}
