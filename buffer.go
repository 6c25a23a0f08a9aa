package slideconv

import (
	"fmt"
	"unsafe"
)

const (
	argbItemSize  = 4
	floatItemSize = 4
	rgbChannels   = 3
)

// Buffer is a borrowed view over caller-owned memory.
// Ownership never moves: conversions read and write through Data only for the
// duration of the call.
type Buffer struct {
	Data []byte
	// ItemSize is the width of one element in bytes.
	ItemSize int
	// Stride is the distance between consecutive elements in bytes, 0 means ItemSize.
	Stride   int
	ReadOnly bool
}

// Uint32Buffer returns a writable view over pix, 4 bytes per element.
func Uint32Buffer(pix []uint32) Buffer {
	if len(pix) == 0 {
		return Buffer{Data: []byte{}, ItemSize: 4}
	}
	return Buffer{
		Data:     unsafe.Slice((*byte)(unsafe.Pointer(&pix[0])), len(pix)*4),
		ItemSize: 4,
	}
}

// Float32Buffer returns a writable view over f, 4 bytes per element.
func Float32Buffer(f []float32) Buffer {
	if len(f) == 0 {
		return Buffer{Data: []byte{}, ItemSize: 4}
	}
	return Buffer{
		Data:     unsafe.Slice((*byte)(unsafe.Pointer(&f[0])), len(f)*4),
		ItemSize: 4,
	}
}

// BytesBuffer returns a writable view over b with the given element width.
func BytesBuffer(b []byte, itemSize int) Buffer {
	return Buffer{Data: b, ItemSize: itemSize}
}

// AsReadOnly returns a copy of the view that rejects mutation.
func (b Buffer) AsReadOnly() Buffer {
	b.ReadOnly = true
	return b
}

// Len returns the byte length of the view.
func (b Buffer) Len() int {
	return len(b.Data)
}

// Contiguous reports whether elements are packed back to back.
func (b Buffer) Contiguous() bool {
	return b.Stride == 0 || b.Stride == b.ItemSize
}

func (b Buffer) checkARGB(name string) error {
	if len(b.Data)%argbItemSize != 0 {
		return fmt.Errorf("%s: length %d is not a multiple of %d: %w", name, len(b.Data), argbItemSize, ErrInvalidSize)
	}
	if b.ItemSize != argbItemSize {
		return fmt.Errorf("%s: item size %d, want %d: %w", name, b.ItemSize, argbItemSize, ErrInvalidItemSize)
	}
	return nil
}

func (b Buffer) checkContiguous(name string) error {
	if !b.Contiguous() {
		return fmt.Errorf("%s: stride %d with item size %d: %w", name, b.Stride, b.ItemSize, ErrNotContiguous)
	}
	return nil
}

func (b Buffer) checkWritable(name string) error {
	if b.ReadOnly {
		return fmt.Errorf("%s: %w", name, ErrNotWritable)
	}
	return nil
}

// overlaps reports whether the two views share at least one byte.
func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return aStart < bStart+uintptr(len(b)) && bStart < aStart+uintptr(len(a))
}
