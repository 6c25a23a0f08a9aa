package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vearutop/slideconv"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "rgba":
		if err := runRGBA(os.Args[2:]); err != nil {
			fail(err)
		}
	case "float":
		if err := runFloat(os.Args[2:]); err != nil {
			fail(err)
		}
	case "premultiply":
		if err := runPremultiply(os.Args[2:]); err != nil {
			fail(err)
		}
	case "inspect":
		if err := runInspect(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: slideconv <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  rgba        -in tile.argb -w 512 -h 512 -out tile.png [-resize-w 256] [-resize-h 256] [-interp lanczos3]")
	fmt.Fprintln(os.Stderr, "  float       -in tile.argb -w 512 -h 512 -out tile.f32")
	fmt.Fprintln(os.Stderr, "  premultiply -in image.png -out tile.argb")
	fmt.Fprintln(os.Stderr, "  inspect     -in tile.argb -w 512 -h 512")
	fmt.Fprintln(os.Stderr, "Raw .argb input holds native-endian premultiplied ARGB uint32 pixels and needs -w and -h.")
	fmt.Fprintln(os.Stderr, "Any other input is decoded as PNG, TIFF or BMP. Add -v for debug logging.")
}

type tileFlags struct {
	in      *string
	width   *int
	height  *int
	workers *int
	verbose *bool
}

func addTileFlags(fs *flag.FlagSet) tileFlags {
	return tileFlags{
		in:      fs.String("in", "", "input tile"),
		width:   fs.Int("w", 0, "raw tile width"),
		height:  fs.Int("h", 0, "raw tile height"),
		workers: fs.Int("workers", 0, "conversion goroutines, 0 uses GOMAXPROCS"),
		verbose: fs.Bool("v", false, "debug logging"),
	}
}

func (tf tileFlags) setup() {
	if *tf.verbose {
		slideconv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
}

func (tf tileFlags) load() ([]uint32, int, int, error) {
	if *tf.in == "" {
		return nil, 0, 0, errors.New("missing required arguments")
	}
	path := filepath.Clean(*tf.in)
	if isRaw(path) {
		if *tf.width <= 0 || *tf.height <= 0 {
			return nil, 0, 0, errors.New("raw input needs -w and -h")
		}
		pix, err := readRaw(path, *tf.width, *tf.height)
		return pix, *tf.width, *tf.height, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()
	img, _, err := slideconv.DecodeTile(bufio.NewReader(f))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	pix, w, h := slideconv.ARGBFromImage(img)
	slideconv.Logger().Debug("loaded tile", "path", path, "width", w, "height", h)
	return pix, w, h, nil
}

func isRaw(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".argb", ".raw":
		return true
	default:
		return false
	}
}

func readRaw(path string, width, height int) ([]uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("raw tile %dx%d needs %d bytes, got %d", width, height, width*height*4, len(data))
	}
	pix := make([]uint32, width*height)
	for i := range pix {
		pix[i] = binary.NativeEndian.Uint32(data[i*4:])
	}
	return pix, nil
}

func runRGBA(args []string) error {
	fs := flag.NewFlagSet("rgba", flag.ContinueOnError)
	tf := addTileFlags(fs)
	outPath := fs.String("out", "", "output image (.png, .tif, .bmp)")
	resizeW := fs.Uint("resize-w", 0, "resize width, 0 keeps aspect ratio")
	resizeH := fs.Uint("resize-h", 0, "resize height, 0 keeps aspect ratio")
	interpName := fs.String("interp", "lanczos3", "nearest, bilinear, bicubic, mitchell, lanczos2 or lanczos3")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	tf.setup()
	if *outPath == "" {
		return errors.New("missing required arguments")
	}
	format := slideconv.FormatFromPath(*outPath)
	if format == slideconv.FormatUnknown {
		return fmt.Errorf("unsupported output extension %q", filepath.Ext(*outPath))
	}
	interp, ok := slideconv.ParseInterpolation(*interpName)
	if !ok {
		return fmt.Errorf("unknown interpolation %q", *interpName)
	}

	pix, w, h, err := tf.load()
	if err != nil {
		return err
	}
	img, err := slideconv.RGBATile(pix, w, h, slideconv.WithWorkers(*tf.workers))
	if err != nil {
		return err
	}
	if *resizeW > 0 || *resizeH > 0 {
		img = slideconv.ResizeTile(img, *resizeW, *resizeH, interp)
	}

	f, err := os.Create(filepath.Clean(*outPath))
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := slideconv.EncodeTile(bw, img, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func runFloat(args []string) error {
	fs := flag.NewFlagSet("float", flag.ContinueOnError)
	tf := addTileFlags(fs)
	outPath := fs.String("out", "", "output raw little-endian float32 RGB")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	tf.setup()
	if *outPath == "" {
		return errors.New("missing required arguments")
	}

	pix, w, h, err := tf.load()
	if err != nil {
		return err
	}
	t, err := slideconv.FloatTile(pix, w, h, slideconv.WithWorkers(*tf.workers))
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(*outPath))
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if _, err := t.WriteTo(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%dx%dx3 float32\n", t.Width, t.Height)
	return nil
}

func runPremultiply(args []string) error {
	fs := flag.NewFlagSet("premultiply", flag.ContinueOnError)
	tf := addTileFlags(fs)
	outPath := fs.String("out", "", "output raw native-endian ARGB")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	tf.setup()
	if *outPath == "" {
		return errors.New("missing required arguments")
	}

	pix, w, h, err := tf.load()
	if err != nil {
		return err
	}
	data := make([]byte, len(pix)*4)
	for i, v := range pix {
		binary.NativeEndian.PutUint32(data[i*4:], v)
	}
	if err := os.WriteFile(filepath.Clean(*outPath), data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%dx%d\n", w, h)
	return nil
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	tf := addTileFlags(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	tf.setup()

	pix, w, h, err := tf.load()
	if err != nil {
		return err
	}
	s := slideconv.Inspect(pix)
	fmt.Fprintf(os.Stdout, "size:        %dx%d\n", w, h)
	fmt.Fprintf(os.Stdout, "pixels:      %d\n", s.Pixels)
	fmt.Fprintf(os.Stdout, "transparent: %d\n", s.Transparent)
	fmt.Fprintf(os.Stdout, "opaque:      %d\n", s.Opaque)
	fmt.Fprintf(os.Stdout, "partial:     %d\n", s.Partial)
	fmt.Fprintf(os.Stdout, "malformed:   %d\n", s.Malformed)
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
