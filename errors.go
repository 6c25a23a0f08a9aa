package slideconv

import "errors"

var (
	// ErrNotContiguous is returned when a buffer view is not a single contiguous region.
	ErrNotContiguous = errors.New("buffer is not contiguous")
	// ErrNotWritable is returned when a buffer that must be mutated is read-only.
	ErrNotWritable = errors.New("buffer is not writable")
	// ErrInvalidSize is returned when a buffer length does not fit the required grouping.
	ErrInvalidSize = errors.New("buffer has invalid size")
	// ErrInvalidItemSize is returned when a buffer element is not 4 bytes wide.
	ErrInvalidItemSize = errors.New("buffer has invalid item size")
	// ErrOverlap is returned when source and destination share memory.
	ErrOverlap = errors.New("buffers overlap")
	// ErrInvalidDimensions is returned when a tile width or height is not positive.
	ErrInvalidDimensions = errors.New("invalid tile dimensions")
)
