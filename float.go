package slideconv

import (
	"encoding/binary"
	"fmt"
	"math"
)

var whiteBits = math.Float32bits(1.0)

// ARGB2Float writes normalized RGB float32 triples for the premultiplied ARGB pixels in src to dst.
//
// Pixels with alpha 0 are composited onto white and become (1, 1, 1).
// Every other pixel is written as channel/255 without dividing by alpha, so partially
// transparent pixels keep their premultiplied intensity. This differs from ARGB2RGBA
// on purpose: callers depend on the premultiplied values.
//
// dst must hold exactly one triple of native-endian float32 per source pixel.
// src is never modified; on error dst is left untouched.
func ARGB2Float(src, dst Buffer, opts ...func(o *Options)) error {
	if err := validateFloat(src, dst); err != nil {
		Logger().Debug("slideconv: argb2float rejected", "error", err)
		return err
	}

	in, out := src.Data, dst.Data
	parallelFor(len(in)/argbItemSize, newOptions(opts), func(start, end int) {
		normalizeRange(
			in[start*argbItemSize:end*argbItemSize],
			out[start*rgbChannels*floatItemSize:end*rgbChannels*floatItemSize],
		)
	})

	return nil
}

// ARGBToFloat writes normalized RGB triples for the premultiplied ARGB pixels in src to dst.
// len(dst) must be 3*len(src) and the slices must not overlap.
func ARGBToFloat(src []uint32, dst []float32, opts ...func(o *Options)) error {
	return ARGB2Float(Uint32Buffer(src).AsReadOnly(), Float32Buffer(dst), opts...)
}

func validateFloat(src, dst Buffer) error {
	if err := src.checkContiguous("argb2float source"); err != nil {
		return err
	}
	if err := dst.checkContiguous("argb2float destination"); err != nil {
		return err
	}
	if err := dst.checkWritable("argb2float destination"); err != nil {
		return err
	}
	if err := src.checkARGB("argb2float source"); err != nil {
		return err
	}
	if len(dst.Data)%floatItemSize != 0 {
		return fmt.Errorf("argb2float destination: length %d is not a multiple of %d: %w",
			len(dst.Data), floatItemSize, ErrInvalidSize)
	}
	elems := len(dst.Data) / floatItemSize
	if elems%rgbChannels != 0 {
		return fmt.Errorf("argb2float destination: %d elements is not a multiple of %d: %w",
			elems, rgbChannels, ErrInvalidSize)
	}
	if pixels := len(src.Data) / argbItemSize; elems/rgbChannels != pixels {
		return fmt.Errorf("argb2float destination: %d triples for %d pixels: %w",
			elems/rgbChannels, pixels, ErrInvalidSize)
	}
	if dst.ItemSize != floatItemSize {
		return fmt.Errorf("argb2float destination: item size %d, want %d: %w",
			dst.ItemSize, floatItemSize, ErrInvalidItemSize)
	}
	if overlaps(src.Data, dst.Data) {
		return fmt.Errorf("argb2float: %w", ErrOverlap)
	}
	return nil
}

func normalizeRange(in, out []byte) {
	for i, j := 0, 0; i+argbItemSize <= len(in); i, j = i+argbItemSize, j+rgbChannels*floatItemSize {
		v := binary.NativeEndian.Uint32(in[i:])
		t := out[j : j+12 : j+12]
		if v>>24 == 0 {
			binary.NativeEndian.PutUint32(t[0:], whiteBits)
			binary.NativeEndian.PutUint32(t[4:], whiteBits)
			binary.NativeEndian.PutUint32(t[8:], whiteBits)
			continue
		}
		binary.NativeEndian.PutUint32(t[0:], math.Float32bits(float32((v>>16)&0xff)/255))
		binary.NativeEndian.PutUint32(t[4:], math.Float32bits(float32((v>>8)&0xff)/255))
		binary.NativeEndian.PutUint32(t[8:], math.Float32bits(float32(v&0xff)/255))
	}
}
