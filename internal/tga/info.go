package tga

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/drwalton/LDRHDRImageWriter/internal/ir"
)

// Origin is the corner holding the first stored pixel.
type Origin string

const (
	OriginTopLeft     Origin = "top-left"
	OriginBottomLeft  Origin = "bottom-left"
	OriginTopRight    Origin = "top-right"
	OriginBottomRight Origin = "bottom-right"
)

// ImageInfo contains metadata about a TGA file.
type ImageInfo struct {
	Width        int
	Height       int
	BitsPerPixel int
	AlphaBits    int
	Origin       Origin
	PixelBytes   int // bytes of pixel data following the header and image ID
}

// GetInfo reads the header of an uncompressed true-color TGA without
// decoding the pixels.
func GetInfo(data []byte) (*ImageInfo, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: data too short for TGA header", ir.ErrFormat)
	}

	var h header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &h); err != nil {
		return nil, err
	}

	if h.ImageType != imageTypeTrueColor {
		return nil, fmt.Errorf("%w: TGA image type %d, only uncompressed true-color (2) is supported", ir.ErrFormat, h.ImageType)
	}
	if h.ColorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped TGA not supported", ir.ErrFormat)
	}
	if h.BitsPerPixel != 24 && h.BitsPerPixel != 32 {
		return nil, fmt.Errorf("%w: unsupported TGA depth %d", ir.ErrFormat, h.BitsPerPixel)
	}

	info := &ImageInfo{
		Width:        int(h.Width),
		Height:       int(h.Height),
		BitsPerPixel: int(h.BitsPerPixel),
		AlphaBits:    int(h.ImageDescriptor & descAlphaMask),
		Origin:       originName(h.ImageDescriptor),
	}

	pixelBytes := info.Width * info.Height * info.BitsPerPixel / 8
	if avail := len(data) - headerSize - int(h.IDLength); avail < pixelBytes {
		return nil, fmt.Errorf("%w: truncated TGA: want %d pixel bytes, have %d", ir.ErrFormat, pixelBytes, max(avail, 0))
	}
	info.PixelBytes = pixelBytes

	return info, nil
}

func originName(desc uint8) Origin {
	top := desc&descTopLeft != 0
	right := desc&0x10 != 0
	switch {
	case top && right:
		return OriginTopRight
	case top:
		return OriginTopLeft
	case right:
		return OriginBottomRight
	default:
		return OriginBottomLeft
	}
}
