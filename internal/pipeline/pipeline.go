package pipeline

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/drwalton/LDRHDRImageWriter/internal/exposure"
	"github.com/drwalton/LDRHDRImageWriter/internal/ir"
	"github.com/drwalton/LDRHDRImageWriter/internal/ppm"
	"github.com/drwalton/LDRHDRImageWriter/internal/tga"
)

// Options controls the PPM → exposure bracket → TGA pipeline.
type Options struct {
	Exposures        []float64  // one output per value, in order
	Format           tga.Format // RGB or RGBA output, default RGB
	FlipVertically   bool       // store rows bottom-up before encoding
	FlipHorizontally bool       // mirror every row before encoding
}

// Output is one encoded exposure.
type Output struct {
	Exposure float64
	Name     string // suggested file name, see OutputName
	Data     []byte // encoded TGA
}

// Result holds the output of a pipeline run.
type Result struct {
	SrcWidth  int
	SrcHeight int
	MaxVal    int
	Outputs   []Output
}

// OutputName returns the file name used for exposure ev, e.g. "output0.5.tga".
func OutputName(ev float64) string {
	return "output" + strconv.FormatFloat(ev, 'g', -1, 64) + ".tga"
}

// Run executes the full pipeline: decode PPM → scale per exposure → encode TGA.
func Run(ppmData []byte, opts Options) (*Result, error) {
	if len(opts.Exposures) == 0 {
		return nil, fmt.Errorf("%w: no exposure values given", ir.ErrInvalidArgument)
	}
	if opts.Format == 0 {
		opts.Format = tga.RGB
	}

	// 1. Decode Plain PPM
	src, err := ppm.Decode(bytes.NewReader(ppmData))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	result := &Result{
		SrcWidth:  src.Width,
		SrcHeight: src.Height,
		MaxVal:    src.MaxVal,
		Outputs:   make([]Output, 0, len(opts.Exposures)),
	}

	for _, ev := range opts.Exposures {
		// 2. Scale every pixel into a fresh image
		img, err := exposure.Render(src, ev, opts.Format)
		if err != nil {
			return nil, fmt.Errorf("exposure %v: %w", ev, err)
		}

		// 3. Optionally move the origin to another corner
		if opts.FlipVertically {
			img.FlipVertically()
		}
		if opts.FlipHorizontally {
			img.FlipHorizontally()
		}

		// 4. Encode TGA
		data, err := img.Bytes()
		if err != nil {
			return nil, fmt.Errorf("encode exposure %v: %w", ev, err)
		}

		result.Outputs = append(result.Outputs, Output{
			Exposure: ev,
			Name:     OutputName(ev),
			Data:     data,
		})
	}

	return result, nil
}
