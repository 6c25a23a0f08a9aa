package slideconv

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Tensor stores a tile as normalized RGB float32 in height, width, channel order.
type Tensor struct {
	Width  int
	Height int
	Pix    []float32 // 3 values per pixel, rows packed without padding
}

// NewTensor allocates a zeroed tensor for a width x height tile.
func NewTensor(width, height int) *Tensor {
	return &Tensor{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height*rgbChannels),
	}
}

// At returns the channels of the pixel at (x, y).
func (t *Tensor) At(x, y int) (r, g, b float32) {
	i := (y*t.Width + x) * rgbChannels
	return t.Pix[i], t.Pix[i+1], t.Pix[i+2]
}

// WriteTo writes Pix as a raw little-endian float32 stream.
// The returned count is the number of bytes w accepted, also on error.
func (t *Tensor) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, len(t.Pix)*floatItemSize)
	for i, v := range t.Pix {
		binary.LittleEndian.PutUint32(buf[i*floatItemSize:], math.Float32bits(v))
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// FloatTile converts a width x height tile of premultiplied ARGB pixels into a new tensor.
// pix is not modified.
func FloatTile(pix []uint32, width, height int, opts ...func(o *Options)) (*Tensor, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tile %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("tile %dx%d needs %d pixels, got %d: %w", width, height, width*height, len(pix), ErrInvalidSize)
	}
	t := NewTensor(width, height)
	if err := ARGBToFloat(pix, t.Pix, opts...); err != nil {
		return nil, err
	}
	return t, nil
}
