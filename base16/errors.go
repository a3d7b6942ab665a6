package base16

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNilBuffer indicates a nil byte slice was passed where data is required.
	ErrNilBuffer = errors.New("nil buffer")

	// ErrRange indicates an offset/length pair that falls outside the buffer.
	ErrRange = errors.New("range out of bounds")

	// ErrNotBase16 indicates input that does not satisfy the base16 grammar.
	// Odd length and invalid characters both map here, deliberately
	// undistinguished.
	ErrNotBase16 = errors.New("not a base16 string")
)

// RangeError reports the offset/length pair that violated the buffer
// bounds. It unwraps to ErrRange.
type RangeError struct {
	Err    error // Underlying sentinel error (ErrRange)
	Offset int   // Requested start of the range
	Length int   // Requested length of the range
	Size   int   // Actual buffer size
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: offset %d length %d exceeds buffer of %d bytes",
		e.Err.Error(), e.Offset, e.Length, e.Size)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// newRangeError creates a RangeError for bounds violations.
func newRangeError(offset, length, size int) error {
	return &RangeError{
		Err:    ErrRange,
		Offset: offset,
		Length: length,
		Size:   size,
	}
}
