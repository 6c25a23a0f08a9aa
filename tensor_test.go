package slideconv

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestFloatTile(t *testing.T) {
	pix := []uint32{0x80804040, 0x00000000, 0xff102030, 0xffffffff, 0x01010101, 0x7f000000}
	tt, err := FloatTile(pix, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if tt.Width != 3 || tt.Height != 2 || len(tt.Pix) != 18 {
		t.Fatalf("unexpected tensor shape %dx%d len %d", tt.Width, tt.Height, len(tt.Pix))
	}
	if r, g, b := tt.At(1, 0); r != 1 || g != 1 || b != 1 {
		t.Fatalf("transparent pixel: got %v %v %v", r, g, b)
	}
	if r, g, b := tt.At(0, 1); r != 1 || g != 1 || b != 1 {
		t.Fatalf("opaque white: got %v %v %v", r, g, b)
	}
	if r, _, _ := tt.At(0, 0); r != float32(128)/255 {
		t.Fatalf("half alpha red: got %v", r)
	}
	if r, g, b := tt.At(2, 1); r != 0 || g != 0 || b != 0 {
		t.Fatalf("partial black: got %v %v %v", r, g, b)
	}
}

func TestFloatTileRejects(t *testing.T) {
	if _, err := FloatTile(make([]uint32, 4), 0, 4); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("got %v want ErrInvalidDimensions", err)
	}
	if _, err := FloatTile(make([]uint32, 2), -1, -2); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("got %v want ErrInvalidDimensions", err)
	}
	if _, err := FloatTile(make([]uint32, 5), 2, 2); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("got %v want ErrInvalidSize", err)
	}
}

func TestTensorWriteTo(t *testing.T) {
	tt := NewTensor(1, 2)
	copy(tt.Pix, []float32{0, 0.5, 1, 0.25, 0.75, 1})

	var buf bytes.Buffer
	n, err := tt.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 24 || buf.Len() != 24 {
		t.Fatalf("wrote %d bytes, buffer holds %d, want 24", n, buf.Len())
	}

	got := make([]float32, 6)
	if err := binary.Read(&buf, binary.LittleEndian, got); err != nil {
		t.Fatal(err)
	}
	for i := range got {
		if got[i] != tt.Pix[i] {
			t.Fatalf("element %d: got %v want %v", i, got[i], tt.Pix[i])
		}
	}
}

type limitedWriter struct {
	limit int
	buf   bytes.Buffer
}

var errWriterFull = errors.New("writer full")

func (w *limitedWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit-w.buf.Len() {
		n, _ := w.buf.Write(p[:w.limit-w.buf.Len()])
		return n, errWriterFull
	}
	return w.buf.Write(p)
}

func TestTensorWriteToShortWrite(t *testing.T) {
	tt := NewTensor(2, 1)
	w := &limitedWriter{limit: 4}

	n, err := tt.WriteTo(w)
	if !errors.Is(err, errWriterFull) {
		t.Fatalf("got %v want errWriterFull", err)
	}
	if n != 4 {
		t.Fatalf("reported %d bytes, writer accepted 4", n)
	}
}
