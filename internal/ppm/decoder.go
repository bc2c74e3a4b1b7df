// Package ppm reads and writes Plain PPM (Netpbm "P3") images.
//
// Samples are kept in file order, which the Netpbm format defines as red,
// green, blue. Conversion to the blue-green-red layout of TGA happens in the
// tga package, never here.
package ppm

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/drwalton/LDRHDRImageWriter/internal/ir"
)

// Magic is the signature on the first line of a Plain PPM file.
const Magic = "P3"

// MaxDimension bounds width and height so a corrupt header cannot request
// an unbounded allocation.
const MaxDimension = 65535

// FormatError reports a Plain PPM stream that cannot be decoded.
type FormatError struct {
	Line   int // 1-based line where decoding stopped, 0 if unknown
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("ppm: not a valid Plain PPM: line %d: %s", e.Line, e.Reason)
	}
	return "ppm: not a valid Plain PPM: " + e.Reason
}

// Unwrap lets callers match any FormatError with errors.Is(err, ir.ErrFormat).
func (e *FormatError) Unwrap() error {
	return ir.ErrFormat
}

// DecodeFile reads a Plain PPM image from path.
func DecodeFile(path string) (*ir.Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a Plain PPM stream. Samples larger than the declared maxVal
// are clamped to it. On error no raster is returned.
func Decode(r io.Reader) (*ir.Raster, error) {
	s := &scanner{line: 1}

	// The signature is checked straight from r so a foreign stream is not
	// buffered past its first few bytes.
	if err := s.magic(r); err != nil {
		return nil, err
	}
	s.r = bufio.NewReader(r)

	width, err := s.header("width", MaxDimension)
	if err != nil {
		return nil, err
	}
	height, err := s.header("height", MaxDimension)
	if err != nil {
		return nil, err
	}
	maxVal, err := s.header("maxVal", ir.MaxSample)
	if err != nil {
		return nil, err
	}

	n := width * height * 3
	// Grow towards n instead of trusting the header with one large allocation.
	pix := make([]uint16, 0, min(n, 1<<20))
	for i := 0; i < n; i++ {
		v, err := s.sample()
		if err != nil {
			return nil, err
		}
		if v > maxVal {
			v = maxVal
		}
		pix = append(pix, uint16(v))
	}

	return &ir.Raster{
		Width:  width,
		Height: height,
		MaxVal: maxVal,
		Pix:    pix,
	}, nil
}

type scanner struct {
	r    *bufio.Reader
	line int
	tok  bytes.Buffer
}

func (s *scanner) fail(format string, args ...any) error {
	return &FormatError{Line: s.line, Reason: fmt.Sprintf(format, args...)}
}

// magic consumes the signature and the whitespace byte after it, reading
// no more than that from r.
func (s *scanner) magic(r io.Reader) error {
	var sig [len(Magic) + 1]byte
	n, err := io.ReadFull(r, sig[:])
	if n < len(Magic) {
		return s.fail("missing magic %q", Magic)
	}
	if string(sig[:len(Magic)]) != Magic {
		return s.fail("bad magic %q, want %q", sig[:len(Magic)], Magic)
	}
	if err != nil {
		return s.fail("missing header after magic")
	}
	b := sig[len(Magic)]
	if !isSpace(b) {
		return s.fail("bad magic %q, want %q", sig[:], Magic)
	}
	if b == '\n' {
		s.line++
	}
	return nil
}

func (s *scanner) header(name string, limit int) (int, error) {
	tok, err := s.token()
	if err != nil {
		return 0, s.fail("reading %s: %v", name, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, s.fail("%s %q is not an integer", name, tok)
	}
	if v <= 0 || v > limit {
		return 0, s.fail("%s %d outside 1..%d", name, v, limit)
	}
	return v, nil
}

func (s *scanner) sample() (int, error) {
	tok, err := s.token()
	if err == io.EOF {
		return 0, s.fail("truncated pixel data")
	}
	if err != nil {
		return 0, s.fail("reading pixel data: %v", err)
	}
	v, err := strconv.ParseUint(tok, 10, 16)
	if err != nil {
		return 0, s.fail("sample %q is not an integer in 0..%d", tok, ir.MaxSample)
	}
	return int(v), nil
}

// token returns the next whitespace-delimited token, skipping '#' comments
// that run to the end of the line.
func (s *scanner) token() (string, error) {
	s.tok.Reset()
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			if err == io.EOF && s.tok.Len() > 0 {
				return s.tok.String(), nil
			}
			return "", err
		}
		switch {
		case b == '#' && s.tok.Len() == 0:
			if err := s.skipComment(); err != nil {
				return "", err
			}
		case isSpace(b):
			if s.tok.Len() > 0 {
				// Leave the delimiter so errors for this token report its own line.
				s.r.UnreadByte()
				return s.tok.String(), nil
			}
			if b == '\n' {
				s.line++
			}
		default:
			s.tok.WriteByte(b)
		}
	}
}

func (s *scanner) skipComment() error {
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' {
			s.line++
			return nil
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
