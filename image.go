package slideconv

import (
	"fmt"
	"image"
	"image/draw"
)

// ARGBFromImage returns the pixels of img as premultiplied ARGB, row by row.
func ARGBFromImage(img image.Image) (pix []uint32, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(b)
		draw.Draw(nrgba, b, img, b.Min, draw.Src)
	}

	pix = make([]uint32, width*height)
	for y := 0; y < height; y++ {
		off := nrgba.PixOffset(b.Min.X, b.Min.Y+y)
		row := nrgba.Pix[off : off+width*4]
		for x := 0; x < width; x++ {
			s := row[x*4 : x*4+4 : x*4+4]
			pix[y*width+x] = PremultiplyPixel(s[0], s[1], s[2], s[3])
		}
	}
	return pix, width, height
}

// NRGBAImage wraps straight-alpha RGBA bytes produced by ARGB2RGBA as an image without copying.
func NRGBAImage(pix []byte, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tile %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("tile %dx%d needs %d bytes, got %d: %w", width, height, width*height*4, len(pix), ErrInvalidSize)
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// RGBATile converts premultiplied ARGB pixels in place and returns them as an image.
// The image shares memory with pix.
func RGBATile(pix []uint32, width, height int, opts ...func(o *Options)) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tile %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	buf := Uint32Buffer(pix)
	if len(pix) != width*height {
		return nil, fmt.Errorf("tile %dx%d needs %d pixels, got %d: %w", width, height, width*height, len(pix), ErrInvalidSize)
	}
	if err := ARGB2RGBA(buf, opts...); err != nil {
		return nil, err
	}
	return NRGBAImage(buf.Data, width, height)
}
