package slideconv

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// Interpolation selects the resampling kernel for ResizeTile.
type Interpolation int

// Resampling kernels, from fastest to sharpest.
const (
	InterpolationNearest Interpolation = iota
	InterpolationBilinear
	InterpolationBicubic
	InterpolationMitchellNetravali
	InterpolationLanczos2
	InterpolationLanczos3
)

// ParseInterpolation maps a name such as "bilinear" or "lanczos3" to an Interpolation.
func ParseInterpolation(name string) (Interpolation, bool) {
	switch name {
	case "nearest":
		return InterpolationNearest, true
	case "bilinear":
		return InterpolationBilinear, true
	case "bicubic":
		return InterpolationBicubic, true
	case "mitchell":
		return InterpolationMitchellNetravali, true
	case "lanczos2":
		return InterpolationLanczos2, true
	case "lanczos3":
		return InterpolationLanczos3, true
	default:
		return InterpolationNearest, false
	}
}

func (i Interpolation) function() resize.InterpolationFunction {
	switch i {
	case InterpolationBilinear:
		return resize.Bilinear
	case InterpolationBicubic:
		return resize.Bicubic
	case InterpolationMitchellNetravali:
		return resize.MitchellNetravali
	case InterpolationLanczos2:
		return resize.Lanczos2
	case InterpolationLanczos3:
		return resize.Lanczos3
	default:
		return resize.NearestNeighbor
	}
}

// ResizeTile scales a straight-alpha tile to width x height.
// A zero width or height keeps the aspect ratio.
func ResizeTile(img *image.NRGBA, width, height uint, interp Interpolation) *image.NRGBA {
	out := resize.Resize(width, height, img, interp.function())
	if n, ok := out.(*image.NRGBA); ok {
		return n
	}
	b := out.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Rect, out, b.Min, draw.Src)
	return n
}
