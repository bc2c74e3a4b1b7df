package tga

import (
	"bytes"
	"errors"
	"testing"

	"github.com/drwalton/LDRHDRImageWriter/internal/ir"
)

func TestNewImage(t *testing.T) {
	m, err := NewImage(4, 3, RGBA)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	if len(m.Pix) != 4*3*4 {
		t.Errorf("expected %d pixel bytes, got %d", 4*3*4, len(m.Pix))
	}

	for _, tt := range []struct {
		w, h   int
		format Format
	}{
		{0, 1, RGB},
		{1, -1, RGB},
		{65536, 1, RGB},
		{1, 1, Format(2)},
	} {
		if _, err := NewImage(tt.w, tt.h, tt.format); !errors.Is(err, ir.ErrInvalidArgument) {
			t.Errorf("NewImage(%d, %d, %v) error = %v, want ir.ErrInvalidArgument", tt.w, tt.h, tt.format, err)
		}
	}
}

func TestNewColor(t *testing.T) {
	c := NewColor(1, 2, 3, 4)
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 4 {
		t.Errorf("NewColor(1, 2, 3, 4) = %+v", c)
	}
	if RGBA != Format(4) {
		t.Errorf("RGBA format = %d bytes per pixel, want 4", int(RGBA))
	}
}

func TestSetStoresBGR(t *testing.T) {
	m, _ := NewImage(2, 1, RGB)
	if err := m.Set(1, 0, NewColor(10, 20, 30, 40)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	want := []byte{0, 0, 0, 30, 20, 10}
	if !bytes.Equal(m.Pix, want) {
		t.Errorf("Pix = %v, want %v (B,G,R order)", m.Pix, want)
	}

	c, ok := m.At(1, 0)
	if !ok || c != NewColor(10, 20, 30, 255) {
		t.Errorf("At(1, 0) = %+v, %v; want opaque R=10 G=20 B=30", c, ok)
	}
}

func TestSetRGBAKeepsAlpha(t *testing.T) {
	m, _ := NewImage(1, 1, RGBA)
	m.Set(0, 0, NewColor(1, 2, 3, 4))

	if want := []byte{3, 2, 1, 4}; !bytes.Equal(m.Pix, want) {
		t.Errorf("Pix = %v, want %v", m.Pix, want)
	}
	if c, _ := m.At(0, 0); c.A != 4 {
		t.Errorf("alpha = %d, want 4", c.A)
	}
}

// Out-of-bounds writes are reported and leave the image untouched.
func TestSetOutOfBounds(t *testing.T) {
	m, _ := NewImage(3, 2, RGB)
	red := NewColor(255, 0, 0, 255)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {100, 100}} {
		err := m.Set(p[0], p[1], red)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d, %d) error = %v, want ErrOutOfBounds", p[0], p[1], err)
		}
		if _, ok := m.At(p[0], p[1]); ok {
			t.Errorf("At(%d, %d) reported in bounds", p[0], p[1])
		}
	}

	if !bytes.Equal(m.Pix, make([]byte, len(m.Pix))) {
		t.Error("out-of-bounds Set modified the image")
	}
}

func checkerboard(t *testing.T, w, h int, format Format) *Image {
	t.Helper()
	m, err := NewImage(w, h, format)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	for i := range m.Pix {
		m.Pix[i] = byte(i * 7)
	}
	return m
}

func TestFlipVertically(t *testing.T) {
	for _, h := range []int{1, 2, 3, 4} {
		m := checkerboard(t, 3, h, RGB)
		orig := append([]byte(nil), m.Pix...)

		m.FlipVertically()
		for y := 0; y < h; y++ {
			want, _ := (&Image{Width: 3, Height: h, Format: RGB, Pix: orig}).At(0, h-1-y)
			if got, _ := m.At(0, y); got != want {
				t.Errorf("h=%d: row %d after flip = %+v, want %+v", h, y, got, want)
			}
		}

		m.FlipVertically()
		if !bytes.Equal(m.Pix, orig) {
			t.Errorf("h=%d: flipping twice did not restore the image", h)
		}
	}
}

func TestFlipHorizontally(t *testing.T) {
	m := checkerboard(t, 3, 2, RGBA)
	orig := append([]byte(nil), m.Pix...)
	left, _ := m.At(0, 1)

	m.FlipHorizontally()
	if got, _ := m.At(2, 1); got != left {
		t.Errorf("At(2, 1) after flip = %+v, want %+v", got, left)
	}

	m.FlipHorizontally()
	if !bytes.Equal(m.Pix, orig) {
		t.Error("flipping twice did not restore the image")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"rgb": RGB, "RGBA": RGBA} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("bgr"); err == nil {
		t.Error("ParseFormat(\"bgr\") succeeded")
	}
}
