package slideconv

import "fmt"

// PremultiplyPixel packs straight-alpha channels into a premultiplied ARGB pixel.
// Each color channel becomes c*a/255 rounded down.
func PremultiplyPixel(r, g, b, a uint8) uint32 {
	switch a {
	case 0:
		return 0
	case 0xff:
		return 0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	}
	m := uint32(a)
	return m<<24 |
		(uint32(r)*m/255)<<16 |
		(uint32(g)*m/255)<<8 |
		uint32(b)*m/255
}

// Premultiply fills dst with premultiplied ARGB pixels from straight RGBA bytes in src.
// It is the inverse of ARGB2RGBA up to integer truncation.
func Premultiply(dst []uint32, src []byte) error {
	if len(src)%4 != 0 {
		return fmt.Errorf("premultiply source: length %d is not a multiple of 4: %w", len(src), ErrInvalidSize)
	}
	if len(dst) != len(src)/4 {
		return fmt.Errorf("premultiply destination: %d pixels for %d source pixels: %w", len(dst), len(src)/4, ErrInvalidSize)
	}
	for i := range dst {
		s := src[i*4 : i*4+4 : i*4+4]
		dst[i] = PremultiplyPixel(s[0], s[1], s[2], s[3])
	}
	return nil
}
