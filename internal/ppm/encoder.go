package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/drwalton/LDRHDRImageWriter/internal/ir"
)

// Encode writes r as Plain PPM: the magic line, a "width height maxVal"
// line, then one "R G B" line per pixel. The raster is validated before
// anything is written.
func Encode(w io.Writer, r *ir.Raster) error {
	if r == nil {
		return fmt.Errorf("%w: nil raster", ir.ErrInvalidArgument)
	}
	if err := r.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d %d\n", Magic, r.Width, r.Height, r.MaxVal)

	line := make([]byte, 0, 3*6)
	for i := 0; i < len(r.Pix); i += 3 {
		line = line[:0]
		line = strconv.AppendUint(line, uint64(r.Clamp(r.Pix[i])), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(r.Clamp(r.Pix[i+1])), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(r.Clamp(r.Pix[i+2])), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// EncodeFile writes r to path as Plain PPM. The file is only created once
// the raster has been validated.
func EncodeFile(path string, r *ir.Raster) error {
	if r == nil {
		return fmt.Errorf("%w: nil raster", ir.ErrInvalidArgument)
	}
	if err := r.Validate(); err != nil {
		return err
	}

	return writeFile(path, func(w io.Writer) error { return Encode(w, r) })
}

// writeFile creates path and fills it with encode. A failed encode removes
// the partial file.
func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
