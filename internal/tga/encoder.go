package tga

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/drwalton/LDRHDRImageWriter/internal/ir"
)

const (
	headerSize   = 18
	maxDimension = 0xFFFF

	imageTypeTrueColor = 2

	// Image descriptor bits.
	descAlphaMask = 0x0F
	descTopLeft   = 0x20
)

// header is the fixed 18-byte TGA 1.0 file header.
type header struct {
	IDLength        uint8
	ColorMapType    uint8
	ImageType       uint8
	ColorMapOrigin  uint16
	ColorMapLength  uint16
	ColorMapDepth   uint8
	XOrigin         uint16
	YOrigin         uint16
	Width           uint16
	Height          uint16
	BitsPerPixel    uint8
	ImageDescriptor uint8
}

// Encode writes m as an uncompressed true-color TGA. Rows are written in
// memory order and the header declares a top-left origin; call
// FlipVertically first when row 0 is meant to be the bottom of the picture.
func Encode(w io.Writer, m *Image) error {
	if err := validate(m); err != nil {
		return err
	}

	h := header{
		ImageType:       imageTypeTrueColor,
		Width:           uint16(m.Width),
		Height:          uint16(m.Height),
		BitsPerPixel:    uint8(m.Format) * 8,
		ImageDescriptor: descTopLeft,
	}
	if m.Format == RGBA {
		h.ImageDescriptor |= 8
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &h); err != nil {
		return err
	}
	if _, err := bw.Write(m.Pix); err != nil {
		return err
	}
	return bw.Flush()
}

// Bytes returns the encoded TGA file contents.
func (m *Image) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if m != nil {
		buf.Grow(headerSize + len(m.Pix))
	}
	if err := Encode(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes m to path.
func WriteFile(path string, m *Image) error {
	data, err := m.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func validate(m *Image) error {
	if m == nil {
		return fmt.Errorf("%w: nil image", ir.ErrInvalidArgument)
	}
	if m.Format != RGB && m.Format != RGBA {
		return fmt.Errorf("%w: unsupported format %v", ir.ErrInvalidArgument, m.Format)
	}
	if m.Width <= 0 || m.Height <= 0 || m.Width > maxDimension || m.Height > maxDimension {
		return fmt.Errorf("%w: dimensions %dx%d outside 1..%d", ir.ErrInvalidArgument, m.Width, m.Height, maxDimension)
	}
	if expected := m.Width * m.Height * int(m.Format); len(m.Pix) != expected {
		return fmt.Errorf("%w: expected %d pixel bytes for %dx%d %v, got %d",
			ir.ErrInvalidArgument, expected, m.Width, m.Height, m.Format, len(m.Pix))
	}
	return nil
}
