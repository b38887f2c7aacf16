package bytable

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientElements indicates a read, peek or skip asked for more
	// elements than the buffer holds. The concrete error is always an
	// *InsufficientElementsError carrying the exact numbers.
	ErrInsufficientElements = errors.New("bytable: insufficient elements")

	// ErrDecodeOverflow indicates a minimal-length integer does not fit the
	// requested target type.
	ErrDecodeOverflow = errors.New("bytable: decoded integer overflows target type")

	// ErrTrailingData is returned by Unmarshal when bytes remain after the
	// value has been decoded, indicating a type mismatch or malformed data.
	ErrTrailingData = errors.New("bytable: trailing data found after decoding")

	// ErrInvalidFixed indicates a Fixed payload contains variable-size fields
	// (slices, maps, strings) that encoding/binary cannot lay out.
	ErrInvalidFixed = errors.New("bytable: Fixed payload is not fixed-size")

	// ErrNilIO indicates ReadFrom was called with a nil io.Reader.
	ErrNilIO = errors.New("bytable: ReadFrom called with a nil io.Reader")

	// ErrWriteToNil indicates a WriteTo operation was attempted on a nil io.Writer.
	ErrWriteToNil = errors.New("bytable: WriteTo called with a nil io.Writer")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid count from Write.
	ErrInvalidWrite = errors.New("bytable: writer returned invalid count from Write")
)

// InsufficientElementsError reports an underflow. Requested is the number of
// elements the call needed from the head (offset+count for PeekAt) and
// Available is what the buffer held at the time of the call.
type InsufficientElementsError struct {
	Requested int
	Available int
}

func (e *InsufficientElementsError) Error() string {
	return fmt.Sprintf("%s: requested %d, available %d", ErrInsufficientElements, e.Requested, e.Available)
}

func (e *InsufficientElementsError) Is(target error) bool { return target == ErrInsufficientElements }

// DecodeOverflowError reports a minimal-length integer of Bytes bytes that
// cannot be represented in Type.
type DecodeOverflowError struct {
	Type  string
	Bytes int
}

func (e *DecodeOverflowError) Error() string {
	return fmt.Sprintf("%s: %d-byte value does not fit %s", ErrDecodeOverflow, e.Bytes, e.Type)
}

func (e *DecodeOverflowError) Is(target error) bool { return target == ErrDecodeOverflow }

func insufficient(requested, available int) error {
	return &InsufficientElementsError{Requested: requested, Available: available}
}
