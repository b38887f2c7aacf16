package bytable

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the cost of reflection in `binary.Size` on every call.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed is a Bytable for any struct composed of fixed-size fields. The
// payload is laid out by encoding/binary in Order with no length prefix.
//
// Constraint: Payload MUST NOT contain slices, maps or strings, and MUST
// encode to at least one byte. Encoding any other payload panics with
// ErrInvalidFixed and decoding returns it.
type Fixed[Payload any] struct {
	Payload Payload
}

var _ Bytable = (*Fixed[struct{}])(nil)

// FixedCodec returns the Codec of Fixed[Payload], for use inside composites.
func FixedCodec[Payload any]() Codec[Fixed[Payload]] {
	return Self[Fixed[Payload]]()
}

// Size returns the encoded size in bytes, or -1 if Payload is not fixed-size.
func (c *Fixed[Payload]) Size() int {
	payloadType := reflect.TypeFor[Payload]()
	if size, ok := sizeCache.Load(payloadType); ok {
		return size
	}
	size := binary.Size(&c.Payload)
	sizeCache.Store(payloadType, size)
	return size
}

// layout returns Size, or ErrInvalidFixed for a variable-size or empty payload.
func (c *Fixed[Payload]) layout() (int, error) {
	size := c.Size()
	if size <= 0 {
		return 0, fmt.Errorf("%w: %T", ErrInvalidFixed, c.Payload)
	}
	return size, nil
}

// EncodeTo appends the binary layout of the payload.
func (c *Fixed[Payload]) EncodeTo(b *ByteBuffer) {
	size, err := c.layout()
	if err != nil {
		panic(err)
	}
	b.Grow(size)
	b.elems, err = binary.Append(b.elems, Order, &c.Payload)
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrInvalidFixed, err))
	}
}

// DecodeFrom consumes Size() bytes into the payload.
func (c *Fixed[Payload]) DecodeFrom(b *ByteBuffer) error {
	size, err := c.layout()
	if err != nil {
		return err
	}
	p, err := b.next(size)
	if err != nil {
		return err
	}
	if _, err := binary.Decode(p, Order, &c.Payload); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFixed, err)
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *Fixed[Payload]) MarshalBinary() ([]byte, error) {
	if _, err := c.layout(); err != nil {
		return nil, err
	}
	return MarshalValue(c), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler and rejects
// trailing bytes.
func (c *Fixed[Payload]) UnmarshalBinary(data []byte) error {
	return UnmarshalValue(data, c)
}
