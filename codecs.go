package bytable

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Codecs for the built-in value categories. Integers of every width share
// one stream layout: a count byte followed by the minimal-length encoding.
// int and uint are treated as 64-bit.
var (
	Bool    Codec[bool]    = boolCodec{}
	String  Codec[string]  = stringCodec{}
	Bytes   Codec[[]byte]  = bytesCodec{}
	Float32 Codec[float32] = float32Codec{}
	Float64 Codec[float64] = float64Codec{}

	Int   Codec[int]   = signed[int]{}
	Int8  Codec[int8]  = signed[int8]{}
	Int16 Codec[int16] = signed[int16]{}
	Int32 Codec[int32] = signed[int32]{}
	Int64 Codec[int64] = signed[int64]{}

	Uint   Codec[uint]   = unsigned[uint]{}
	Uint8  Codec[uint8]  = unsigned[uint8]{}
	Uint16 Codec[uint16] = unsigned[uint16]{}
	Uint32 Codec[uint32] = unsigned[uint32]{}
	Uint64 Codec[uint64] = unsigned[uint64]{}
)

// Bools are one byte: 0 is false, anything else is true.
type boolCodec struct{}

func (boolCodec) Encode(b *ByteBuffer, v bool) {
	if v {
		b.Buffer.Write(1)
	} else {
		b.Buffer.Write(0)
	}
}

func (boolCodec) Decode(b *ByteBuffer) (bool, error) {
	c, err := b.Buffer.Read()
	return c != 0, err
}

type signed[T constraints.Signed] struct{}

func (signed[T]) Encode(b *ByteBuffer, v T) { b.writeSigned(int64(v)) }

func (signed[T]) Decode(b *ByteBuffer) (T, error) {
	return readFramed(b, DecodeSigned[T], overflow[T])
}

type unsigned[T constraints.Unsigned] struct{}

func (unsigned[T]) Encode(b *ByteBuffer, v T) { b.writeUnsigned(uint64(v)) }

func (unsigned[T]) Decode(b *ByteBuffer) (T, error) {
	return readFramed(b, DecodeUnsigned[T], overflow[T])
}

type float32Codec struct{}

func (float32Codec) Encode(b *ByteBuffer, v float32) {
	var buf [4]byte
	Order.PutUint32(buf[:], math.Float32bits(v))
	b.Buffer.Write(buf[:]...)
}

func (float32Codec) Decode(b *ByteBuffer) (float32, error) {
	p, err := b.next(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(Order.Uint32(p)), nil
}

type float64Codec struct{}

func (float64Codec) Encode(b *ByteBuffer, v float64) {
	var buf [8]byte
	Order.PutUint64(buf[:], math.Float64bits(v))
	b.Buffer.Write(buf[:]...)
}

func (float64Codec) Decode(b *ByteBuffer) (float64, error) {
	p, err := b.next(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(Order.Uint64(p)), nil
}

// Strings are their UTF-8 bytes behind a byte-length prefix.
type stringCodec struct{}

func (stringCodec) Encode(b *ByteBuffer, v string) {
	b.writeLen(len(v))
	b.Grow(len(v))
	b.elems = append(b.elems, v...)
}

func (stringCodec) Decode(b *ByteBuffer) (string, error) {
	p, err := b.nextPrefixed()
	if err != nil {
		return "", err
	}
	return string(p), nil
}

type bytesCodec struct{}

func (bytesCodec) Encode(b *ByteBuffer, v []byte) {
	b.writeLen(len(v))
	b.Buffer.Write(v...)
}

func (bytesCodec) Decode(b *ByteBuffer) ([]byte, error) {
	p, err := b.nextPrefixed()
	if err != nil {
		return nil, err
	}
	return slices.Clone(p), nil
}

func (b *ByteBuffer) nextPrefixed() ([]byte, error) {
	n, err := b.readLen()
	if err != nil {
		return nil, err
	}
	return b.next(n)
}

type optional[T any] struct{ elem Codec[T] }

// Optional encodes a nil pointer as a single 0 byte and a non-nil one as a
// 1 byte followed by the pointee.
func Optional[T any](elem Codec[T]) Codec[*T] {
	return optional[T]{elem: elem}
}

func (o optional[T]) Encode(b *ByteBuffer, v *T) {
	if v == nil {
		b.Buffer.Write(0)
		return
	}
	b.Buffer.Write(1)
	o.elem.Encode(b, *v)
}

func (o optional[T]) Decode(b *ByteBuffer) (*T, error) {
	present, err := b.Buffer.Read()
	if err != nil || present == 0 {
		return nil, err
	}
	v, err := o.elem.Decode(b)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

type slice[T any] struct{ elem Codec[T] }

// Slice encodes the element count followed by each element in order.
func Slice[T any](elem Codec[T]) Codec[[]T] {
	return slice[T]{elem: elem}
}

func (s slice[T]) Encode(b *ByteBuffer, v []T) {
	b.writeLen(len(v))
	for _, e := range v {
		s.elem.Encode(b, e)
	}
}

func (s slice[T]) Decode(b *ByteBuffer) ([]T, error) {
	n, err := b.readCount()
	if err != nil {
		return nil, err
	}
	values := make([]T, 0, n)
	for range n {
		e, err := s.elem.Decode(b)
		if err != nil {
			return nil, err
		}
		values = append(values, e)
	}
	return values, nil
}

type set[T comparable] struct{ elem Codec[T] }

// Set encodes the number of distinct elements followed by each element in
// map iteration order. Decoding de-duplicates again.
func Set[T comparable](elem Codec[T]) Codec[map[T]struct{}] {
	return set[T]{elem: elem}
}

func (s set[T]) Encode(b *ByteBuffer, v map[T]struct{}) {
	b.writeLen(len(v))
	for e := range v {
		s.elem.Encode(b, e)
	}
}

func (s set[T]) Decode(b *ByteBuffer) (map[T]struct{}, error) {
	n, err := b.readCount()
	if err != nil {
		return nil, err
	}
	values := make(map[T]struct{}, n)
	for range n {
		e, err := s.elem.Decode(b)
		if err != nil {
			return nil, err
		}
		values[e] = struct{}{}
	}
	return values, nil
}

type mapCodec[K comparable, V any] struct {
	key   Codec[K]
	value Codec[V]
}

// Map encodes the entry count followed by key/value pairs in map iteration order.
func Map[K comparable, V any](key Codec[K], value Codec[V]) Codec[map[K]V] {
	return mapCodec[K, V]{key: key, value: value}
}

func (m mapCodec[K, V]) Encode(b *ByteBuffer, v map[K]V) {
	b.writeLen(len(v))
	for k, e := range v {
		m.key.Encode(b, k)
		m.value.Encode(b, e)
	}
}

func (m mapCodec[K, V]) Decode(b *ByteBuffer) (map[K]V, error) {
	n, err := b.readCount()
	if err != nil {
		return nil, err
	}
	values := make(map[K]V, n)
	for range n {
		k, err := m.key.Decode(b)
		if err != nil {
			return nil, err
		}
		e, err := m.value.Decode(b)
		if err != nil {
			return nil, err
		}
		values[k] = e
	}
	return values, nil
}
