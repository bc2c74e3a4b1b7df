// Package exposure simulates a photographic exposure by scaling every
// channel of a raster and clamping the result to 8 bits.
package exposure

import (
	"fmt"
	"math"

	"github.com/drwalton/LDRHDRImageWriter/internal/ir"
	"github.com/drwalton/LDRHDRImageWriter/internal/tga"
)

// Apply scales each R,G,B sample by ev and rounds the clamped result into
// the 0..255 range.
func Apply(px [3]uint16, ev float64) [3]uint8 {
	var out [3]uint8
	for c, v := range px {
		out[c] = scale(v, ev)
	}
	return out
}

func scale(v uint16, ev float64) uint8 {
	f := ev * float64(v)
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(math.Round(f))
}

// Validate rejects exposure values that are not positive finite numbers.
func Validate(ev float64) error {
	if math.IsNaN(ev) || math.IsInf(ev, 0) || ev <= 0 {
		return fmt.Errorf("%w: exposure must be a positive finite number, got %v", ir.ErrInvalidArgument, ev)
	}
	return nil
}

// Render builds a new TGA image by applying ev to every pixel of src. The
// source raster is left untouched. RGBA output is fully opaque.
func Render(src *ir.Raster, ev float64, format tga.Format) (*tga.Image, error) {
	if err := Validate(ev); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil raster", ir.ErrInvalidArgument)
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	dst, err := tga.NewImage(src.Width, src.Height, format)
	if err != nil {
		return nil, err
	}

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			px := Apply(src.Pixel(x, y), ev)
			// In bounds by construction.
			dst.Set(x, y, tga.NewColor(px[0], px[1], px[2], 255))
		}
	}

	return dst, nil
}
