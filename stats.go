package slideconv

// AlphaStats counts premultiplied ARGB pixels by alpha class.
type AlphaStats struct {
	Pixels      int
	Transparent int // alpha 0
	Opaque      int // alpha 255
	Partial     int
	// Malformed counts pixels with a color channel above alpha.
	// ARGB2RGBA clamps their unpremultiplied channels to 255.
	Malformed int
}

// Inspect classifies the alpha of every pixel in pix.
func Inspect(pix []uint32) AlphaStats {
	s := AlphaStats{Pixels: len(pix)}
	for _, v := range pix {
		a := v >> 24
		switch a {
		case 0:
			s.Transparent++
		case 0xff:
			s.Opaque++
		default:
			s.Partial++
		}
		if (v>>16)&0xff > a || (v>>8)&0xff > a || v&0xff > a {
			s.Malformed++
		}
	}
	return s
}
