package slideconv

import "encoding/binary"

// ARGB2RGBA converts premultiplied ARGB pixels in buf to straight-alpha RGBA in place.
//
// Each input pixel is a native-endian uint32 with alpha in the most significant byte.
// Each output pixel is laid out in memory as R, G, B, A bytes on every platform.
// Fully transparent pixels become opaque white (all bytes 0xFF).
//
// buf must be contiguous, writable, 4 bytes per item and a multiple of 4 bytes long.
// On error buf is left untouched.
func ARGB2RGBA(buf Buffer, opts ...func(o *Options)) error {
	if err := validateRGBA(buf); err != nil {
		Logger().Debug("slideconv: argb2rgba rejected", "error", err)
		return err
	}

	data := buf.Data
	parallelFor(len(data)/argbItemSize, newOptions(opts), func(start, end int) {
		unpremultiplyRange(data[start*argbItemSize : end*argbItemSize])
	})

	return nil
}

// ARGBToRGBA converts premultiplied ARGB pixels to straight-alpha RGBA in place.
// After the call, reading any element of pix as bytes in memory order yields R, G, B, A.
func ARGBToRGBA(pix []uint32, opts ...func(o *Options)) error {
	return ARGB2RGBA(Uint32Buffer(pix), opts...)
}

func validateRGBA(buf Buffer) error {
	if err := buf.checkContiguous("argb2rgba buffer"); err != nil {
		return err
	}
	if err := buf.checkWritable("argb2rgba buffer"); err != nil {
		return err
	}
	return buf.checkARGB("argb2rgba buffer")
}

func unpremultiplyRange(data []byte) {
	for i := 0; i+argbItemSize <= len(data); i += argbItemSize {
		p := data[i : i+4 : i+4]
		v := binary.NativeEndian.Uint32(p)
		a := uint8(v >> 24)
		switch a {
		case 0:
			p[0], p[1], p[2], p[3] = 0xff, 0xff, 0xff, 0xff
		case 0xff:
			p[0], p[1], p[2], p[3] = uint8(v>>16), uint8(v>>8), uint8(v), a
		default:
			p[0] = unpremultiply(uint8(v>>16), a)
			p[1] = unpremultiply(uint8(v>>8), a)
			p[2] = unpremultiply(uint8(v), a)
			p[3] = a
		}
	}
}

// unpremultiply returns 255*c/a truncated and clamped to 255, a must not be 0.
// Well-formed input has c <= a, so the clamp only affects malformed pixels.
func unpremultiply(c, a uint8) uint8 {
	v := 255 * uint32(c) / uint32(a)
	if v > 255 {
		return 255
	}
	return uint8(v)
}
