package ir

import "fmt"

// MaxSample is the largest maxVal a Netpbm file may declare.
const MaxSample = 65535

// Raster is the intermediate representation passed between the PPM codec
// and the exposure transform. Samples are stored as interleaved R,G,B
// values (3 per pixel, row-major order, top row first).
type Raster struct {
	Width  int
	Height int
	MaxVal int      // largest legal sample value, 1..65535
	Pix    []uint16 // len = Width * Height * 3
}

// NewRaster allocates a zeroed raster.
func NewRaster(width, height, maxVal int) (*Raster, error) {
	r := &Raster{Width: width, Height: height, MaxVal: maxVal}
	if err := r.checkHeader(); err != nil {
		return nil, err
	}
	r.Pix = make([]uint16, width*height*3)
	return r, nil
}

// Validate reports whether the raster dimensions and sample count agree.
func (r *Raster) Validate() error {
	if err := r.checkHeader(); err != nil {
		return err
	}
	if expected := r.Width * r.Height * 3; len(r.Pix) != expected {
		return fmt.Errorf("%w: expected %d samples for %dx%d RGB, got %d",
			ErrInvalidArgument, expected, r.Width, r.Height, len(r.Pix))
	}
	return nil
}

func (r *Raster) checkHeader() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidArgument, r.Width, r.Height)
	}
	if r.MaxVal < 1 || r.MaxVal > MaxSample {
		return fmt.Errorf("%w: maxVal %d outside 1..%d", ErrInvalidArgument, r.MaxVal, MaxSample)
	}
	return nil
}

// Pixel returns the R,G,B samples at (x, y). The caller is responsible for
// staying inside the raster.
func (r *Raster) Pixel(x, y int) [3]uint16 {
	i := (y*r.Width + x) * 3
	return [3]uint16{r.Pix[i], r.Pix[i+1], r.Pix[i+2]}
}

// SetPixel stores px at (x, y), clamping every sample to MaxVal.
func (r *Raster) SetPixel(x, y int, px [3]uint16) {
	i := (y*r.Width + x) * 3
	for c := 0; c < 3; c++ {
		r.Pix[i+c] = r.Clamp(px[c])
	}
}

// Clamp limits v to the raster's MaxVal.
func (r *Raster) Clamp(v uint16) uint16 {
	if int(v) > r.MaxVal {
		return uint16(r.MaxVal)
	}
	return v
}
