// Package tga writes uncompressed true-color Truevision TGA images.
package tga

import (
	"errors"
	"fmt"

	"github.com/drwalton/LDRHDRImageWriter/internal/ir"
)

// ErrOutOfBounds is returned by Set for coordinates outside the image.
var ErrOutOfBounds = errors.New("pixel out of bounds")

// Format is the number of bytes stored per pixel.
type Format int

const (
	RGB  Format = 3
	RGBA Format = 4
)

func (f Format) String() string {
	switch f {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts "rgb" or "rgba" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "rgb", "RGB":
		return RGB, nil
	case "rgba", "RGBA":
		return RGBA, nil
	default:
		return 0, fmt.Errorf("unknown pixel format: %q", s)
	}
}

// Color is a pixel in TGA byte order.
type Color struct {
	B, G, R, A uint8
}

// NewColor builds a Color from red, green, blue and alpha components.
func NewColor(r, g, b, a uint8) Color {
	return Color{B: b, G: g, R: r, A: a}
}

// Image is an in-memory TGA raster. Pixels are stored as interleaved
// B,G,R(,A) bytes, row-major, with row 0 written first.
type Image struct {
	Width  int
	Height int
	Format Format
	Pix    []byte // len = Width * Height * int(Format)
}

// NewImage allocates a zeroed (black, transparent) image.
func NewImage(width, height int, format Format) (*Image, error) {
	if format != RGB && format != RGBA {
		return nil, fmt.Errorf("%w: unsupported format %v", ir.ErrInvalidArgument, format)
	}
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("%w: dimensions %dx%d outside 1..%d", ir.ErrInvalidArgument, width, height, maxDimension)
	}
	return &Image{
		Width:  width,
		Height: height,
		Format: format,
		Pix:    make([]byte, width*height*int(format)),
	}, nil
}

func (m *Image) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0, false
	}
	return (y*m.Width + x) * int(m.Format), true
}

// Set stores c at (x, y). Coordinates outside the image leave it unchanged
// and return an error wrapping ErrOutOfBounds. Alpha is dropped for RGB
// images.
func (m *Image) Set(x, y int, c Color) error {
	i, ok := m.offset(x, y)
	if !ok {
		return fmt.Errorf("%w: (%d, %d) in %dx%d image", ErrOutOfBounds, x, y, m.Width, m.Height)
	}
	m.Pix[i] = c.B
	m.Pix[i+1] = c.G
	m.Pix[i+2] = c.R
	if m.Format == RGBA {
		m.Pix[i+3] = c.A
	}
	return nil
}

// At returns the color at (x, y). RGB images report an opaque alpha.
func (m *Image) At(x, y int) (Color, bool) {
	i, ok := m.offset(x, y)
	if !ok {
		return Color{}, false
	}
	c := Color{B: m.Pix[i], G: m.Pix[i+1], R: m.Pix[i+2], A: 255}
	if m.Format == RGBA {
		c.A = m.Pix[i+3]
	}
	return c, true
}

// FlipVertically reverses the row order in place, moving the origin between
// the top-left and bottom-left corners. Flipping twice restores the image.
func (m *Image) FlipVertically() {
	stride := m.Width * int(m.Format)
	tmp := make([]byte, stride)
	for top, bottom := 0, m.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := m.Pix[top*stride : (top+1)*stride]
		b := m.Pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// FlipHorizontally reverses the pixel order of every row in place.
func (m *Image) FlipHorizontally() {
	bpp := int(m.Format)
	tmp := make([]byte, bpp)
	for y := 0; y < m.Height; y++ {
		row := m.Pix[y*m.Width*bpp : (y+1)*m.Width*bpp]
		for l, r := 0, m.Width-1; l < r; l, r = l+1, r-1 {
			a := row[l*bpp : (l+1)*bpp]
			b := row[r*bpp : (r+1)*bpp]
			copy(tmp, a)
			copy(a, b)
			copy(b, tmp)
		}
	}
}
