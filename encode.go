package slideconv

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies a tile file encoding.
type Format int

// Supported tile encodings, FormatUnknown marks an unrecognized one.
const (
	FormatUnknown Format = iota
	FormatPNG
	FormatTIFF
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatTIFF:
		return "tiff"
	case FormatBMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// FormatFromPath guesses the encoding from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	case ".tif", ".tiff":
		return FormatTIFF
	case ".bmp":
		return FormatBMP
	default:
		return FormatUnknown
	}
}

// EncodeTile writes img to w in the given format.
// TIFF output is deflate-compressed and keeps the alpha channel unassociated.
func EncodeTile(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported tile format %q", f)
	}
}

// DecodeTile decodes a PNG, TIFF or BMP image.
func DecodeTile(r io.Reader) (image.Image, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, FormatUnknown, err
	}
	switch name {
	case "png":
		return img, FormatPNG, nil
	case "tiff":
		return img, FormatTIFF, nil
	case "bmp":
		return img, FormatBMP, nil
	default:
		return img, FormatUnknown, nil
	}
}
