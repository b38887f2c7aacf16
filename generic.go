package bytable

import (
	"fmt"
	"slices"
)

// Marshal encodes v with c into a new byte slice.
func Marshal[T any](c Codec[T], v T) []byte {
	b := getByteBuffer()
	defer putByteBuffer(b)

	c.Encode(b, v)
	return slices.Clone(b.Bytes())
}

// Unmarshal decodes exactly one value from data. Bytes left over after the
// value are reported as ErrTrailingData, which usually means the data was
// encoded with a different codec.
func Unmarshal[T any](c Codec[T], data []byte) (T, error) {
	// Decoding never writes, so data can back the buffer without a copy.
	b := &ByteBuffer{Buffer: Buffer[byte]{elems: data}}
	v, err := c.Decode(b)
	if err == nil {
		err = checkDrained(b)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// MarshalValue encodes a Bytable into a new byte slice.
func MarshalValue(v Bytable) []byte {
	b := getByteBuffer()
	defer putByteBuffer(b)

	v.EncodeTo(b)
	return slices.Clone(b.Bytes())
}

// UnmarshalValue decodes data into v and rejects trailing bytes.
func UnmarshalValue(data []byte, v Bytable) error {
	b := &ByteBuffer{Buffer: Buffer[byte]{elems: data}}
	if err := v.DecodeFrom(b); err != nil {
		return err
	}
	return checkDrained(b)
}

func checkDrained(b *ByteBuffer) error {
	if n := b.Available(); n > 0 {
		return fmt.Errorf("%w: %d bytes left", ErrTrailingData, n)
	}
	return nil
}
