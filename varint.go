package bytable

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// maxIntBytes is the longest minimal encoding: a full 64-bit value.
const maxIntBytes = 8

// AppendSigned appends the minimal two's-complement encoding of v to dst,
// most significant byte first. Leading bytes that only repeat the sign are
// dropped, down to a single byte.
func AppendSigned[T constraints.Signed](dst []byte, v T) []byte {
	var buf [maxIntBytes]byte
	Order.PutUint64(buf[:], uint64(int64(v)))
	return append(dst, buf[signedStart(&buf):]...)
}

// AppendUnsigned appends the minimal binary encoding of v to dst, most
// significant byte first. Leading zero bytes are dropped, down to a single byte.
func AppendUnsigned[T constraints.Unsigned](dst []byte, v T) []byte {
	var buf [maxIntBytes]byte
	Order.PutUint64(buf[:], uint64(v))
	return append(dst, buf[unsignedStart(&buf):]...)
}

// SignedLen returns the length of the minimal encoding of v.
func SignedLen[T constraints.Signed](v T) int {
	var buf [maxIntBytes]byte
	Order.PutUint64(buf[:], uint64(int64(v)))
	return maxIntBytes - signedStart(&buf)
}

// UnsignedLen returns the length of the minimal encoding of v.
func UnsignedLen[T constraints.Unsigned](v T) int {
	var buf [maxIntBytes]byte
	Order.PutUint64(buf[:], uint64(v))
	return maxIntBytes - unsignedStart(&buf)
}

// DecodeSigned sign-extends a big-endian two's-complement value to T.
// An empty slice decodes to zero.
func DecodeSigned[T constraints.Signed](p []byte) (T, error) {
	if len(p) > maxIntBytes {
		return 0, overflow[T](len(p))
	}
	var x int64
	if len(p) > 0 && p[0]&0x80 != 0 {
		x = -1
	}
	for _, c := range p {
		x = x<<8 | int64(c)
	}
	v := T(x)
	if int64(v) != x {
		return 0, overflow[T](len(p))
	}
	return v, nil
}

// DecodeUnsigned zero-extends a big-endian value to T.
// An empty slice decodes to zero.
func DecodeUnsigned[T constraints.Unsigned](p []byte) (T, error) {
	if len(p) > maxIntBytes {
		return 0, overflow[T](len(p))
	}
	var x uint64
	for _, c := range p {
		x = x<<8 | uint64(c)
	}
	v := T(x)
	if uint64(v) != x {
		return 0, overflow[T](len(p))
	}
	return v, nil
}

// signedStart returns the index of the first byte that is not pure sign extension.
func signedStart(buf *[maxIntBytes]byte) int {
	i := 0
	for i < maxIntBytes-1 {
		next := buf[i+1] & 0x80
		if !(buf[i] == 0x00 && next == 0 || buf[i] == 0xFF && next != 0) {
			break
		}
		i++
	}
	return i
}

func unsignedStart(buf *[maxIntBytes]byte) int {
	i := 0
	for i < maxIntBytes-1 && buf[i] == 0 {
		i++
	}
	return i
}

func overflow[T constraints.Integer](n int) error {
	var zero T
	return &DecodeOverflowError{Type: fmt.Sprintf("%T", zero), Bytes: n}
}
