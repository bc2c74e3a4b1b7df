package tga

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/drwalton/LDRHDRImageWriter/internal/ir"
)

func TestEncodeHeaderRGB(t *testing.T) {
	m, _ := NewImage(2, 1, RGB)
	m.Set(0, 0, NewColor(10, 20, 30, 255))
	m.Set(1, 0, NewColor(40, 50, 60, 255))

	data, err := m.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	want := []byte{
		0, 0, 2, // no ID, no color map, uncompressed true-color
		0, 0, 0, 0, 0, // color map spec
		0, 0, 0, 0, // origin
		2, 0, 1, 0, // width, height
		24, 0x20, // depth, top-left descriptor
		30, 20, 10, 60, 50, 40,
	}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded TGA:\n% x\nwant:\n% x", data, want)
	}
}

func TestEncodeHeaderRGBA(t *testing.T) {
	m, _ := NewImage(300, 2, RGBA)

	data, err := m.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if len(data) != headerSize+300*2*4 {
		t.Fatalf("expected %d bytes, got %d", headerSize+300*2*4, len(data))
	}
	if data[12] != 0x2C || data[13] != 0x01 {
		t.Errorf("width bytes = %#x %#x, want little-endian 300", data[12], data[13])
	}
	if data[16] != 32 || data[17] != 0x28 {
		t.Errorf("depth/descriptor = %d/%#x, want 32/0x28", data[16], data[17])
	}
}

func TestEncodeRejectsInvalidImage(t *testing.T) {
	tests := []struct {
		name string
		m    *Image
	}{
		{"nil", nil},
		{"short pixels", &Image{Width: 2, Height: 2, Format: RGB, Pix: make([]byte, 11)}},
		{"bad format", &Image{Width: 1, Height: 1, Format: 1, Pix: make([]byte, 1)}},
		{"too wide", &Image{Width: 70000, Height: 1, Format: RGB, Pix: make([]byte, 70000*3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, tt.m); !errors.Is(err, ir.ErrInvalidArgument) {
				t.Fatalf("Encode error = %v, want ir.ErrInvalidArgument", err)
			}
			if buf.Len() != 0 {
				t.Errorf("Encode wrote %d bytes before failing", buf.Len())
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	m, _ := NewImage(5, 4, RGBA)
	data, err := m.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	info, err := GetInfo(data)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	want := ImageInfo{Width: 5, Height: 4, BitsPerPixel: 32, AlphaBits: 8, Origin: OriginTopLeft, PixelBytes: 80}
	if *info != want {
		t.Errorf("GetInfo = %+v, want %+v", *info, want)
	}
}

func TestGetInfoErrors(t *testing.T) {
	m, _ := NewImage(2, 2, RGB)
	valid, _ := m.Bytes()

	rle := append([]byte(nil), valid...)
	rle[2] = 10

	mapped := append([]byte(nil), valid...)
	mapped[1] = 1

	depth := append([]byte(nil), valid...)
	depth[16] = 16

	tests := map[string][]byte{
		"short":     valid[:10],
		"rle":       rle,
		"color map": mapped,
		"16-bit":    depth,
		"truncated": valid[:len(valid)-1],
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := GetInfo(data); !errors.Is(err, ir.ErrFormat) {
				t.Errorf("GetInfo error = %v, want ir.ErrFormat", err)
			}
		})
	}
}

func TestOriginName(t *testing.T) {
	for desc, want := range map[uint8]Origin{
		0x00: OriginBottomLeft,
		0x08: OriginBottomLeft,
		0x10: OriginBottomRight,
		0x20: OriginTopLeft,
		0x30: OriginTopRight,
	} {
		if got := originName(desc); got != want {
			t.Errorf("originName(%#x) = %s, want %s", desc, got, want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tga")
	m, _ := NewImage(3, 3, RGB)
	m.Set(1, 1, NewColor(255, 255, 255, 255))

	if err := WriteFile(path, m); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := m.Bytes()
	if !bytes.Equal(data, want) {
		t.Error("file contents differ from Bytes()")
	}
}
