package bytable

import (
	"io"
	"math"
	"slices"

	"github.com/valyala/bytebufferpool"
)

// ByteBuffer is a Buffer of raw bytes with typed write and read methods.
// Available reports bytes, not values.
type ByteBuffer struct {
	Buffer[byte]
}

var (
	_ io.ByteReader = (*ByteBuffer)(nil)
	_ io.ByteWriter = (*ByteBuffer)(nil)
	_ io.WriterTo   = (*ByteBuffer)(nil)
	_ io.ReaderFrom = (*ByteBuffer)(nil)
)

// NewByteBuffer creates an empty ByteBuffer.
func NewByteBuffer() *ByteBuffer {
	return &ByteBuffer{}
}

// NewByteBufferSize creates an empty ByteBuffer with room for size bytes.
func NewByteBufferSize(size int) *ByteBuffer {
	return &ByteBuffer{Buffer: *NewBufferSize[byte](size)}
}

// ByteBufferOf creates a ByteBuffer holding a copy of data.
func ByteBufferOf(data []byte) *ByteBuffer {
	return &ByteBuffer{Buffer: *BufferOf(data...)}
}

// Bytes returns a view of the unconsumed bytes. The view is valid until the
// next write.
func (b *ByteBuffer) Bytes() []byte { return b.elems[b.head:] }

// ReadByte implements io.ByteReader, returning io.EOF when empty.
func (b *ByteBuffer) ReadByte() (byte, error) {
	if b.Available() == 0 {
		return 0, io.EOF
	}
	return b.Buffer.Read()
}

// WriteByte implements io.ByteWriter. It never fails.
func (b *ByteBuffer) WriteByte(c byte) error {
	b.Buffer.Write(c)
	return nil
}

// WriteTo drains the unconsumed bytes into w.
func (b *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, ErrWriteToNil
	}
	available := b.Available()
	if available == 0 {
		return 0, nil
	}
	n, err := w.Write(b.Bytes())
	if n < 0 || n > available {
		return 0, ErrInvalidWrite
	}
	b.head += n
	if err == nil && n < available {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// ReadFrom appends everything r produces until io.EOF.
func (b *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	if r == nil {
		return 0, ErrNilIO
	}
	staging := bytebufferpool.Get()
	defer bytebufferpool.Put(staging)

	n, err := staging.ReadFrom(r)
	b.Buffer.Write(staging.B...)
	return n, err
}

// MarshalBinary returns a copy of the unconsumed bytes.
func (b *ByteBuffer) MarshalBinary() ([]byte, error) {
	return slices.Clone(b.Bytes()), nil
}

// UnmarshalBinary replaces the contents of b with a copy of data. data may
// be a view of b itself, such as the result of Bytes.
func (b *ByteBuffer) UnmarshalBinary(data []byte) error {
	old := len(b.elems)
	// append moves overlapping bytes safely; data starts at or after elems[0].
	b.elems = append(b.elems[:0], data...)
	if old > len(b.elems) {
		clear(b.elems[len(b.elems):old])
	}
	b.head = 0
	return nil
}

// next consumes n bytes and returns them as a view into the buffer.
func (b *ByteBuffer) next(n int) ([]byte, error) {
	if err := b.check(0, n); err != nil {
		return nil, err
	}
	p := b.elems[b.head : b.head+n : b.head+n]
	b.head += n
	return p, nil
}

func (b *ByteBuffer) writeSigned(x int64) {
	var frame [1 + maxIntBytes]byte
	enc := AppendSigned(frame[1:1], x)
	frame[0] = byte(len(enc))
	b.Buffer.Write(frame[:1+len(enc)]...)
}

func (b *ByteBuffer) writeUnsigned(x uint64) {
	var frame [1 + maxIntBytes]byte
	enc := AppendUnsigned(frame[1:1], x)
	frame[0] = byte(len(enc))
	b.Buffer.Write(frame[:1+len(enc)]...)
}

// readFramed consumes a count byte and that many minimal-length bytes, then
// hands them to decode.
func readFramed[T any](b *ByteBuffer, decode func([]byte) (T, error), tooLong func(int) error) (T, error) {
	var zero T
	n, err := b.Buffer.Read()
	if err != nil {
		return zero, err
	}
	if n > maxIntBytes {
		return zero, tooLong(int(n))
	}
	p, err := b.next(int(n))
	if err != nil {
		return zero, err
	}
	return decode(p)
}

func (b *ByteBuffer) writeLen(n int) { b.writeUnsigned(uint64(n)) }

// readLen decodes a length prefix as a non-negative int.
func (b *ByteBuffer) readLen() (int, error) {
	n, err := readFramed(b, DecodeUnsigned[uint64], overflow[uint64])
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt {
		return 0, overflow[int](UnsignedLen(n))
	}
	return int(n), nil
}

// readCount decodes the element count of a Slice, Set or Map. Elements take
// at least one byte each, so a count beyond the remaining input is an
// underflow and no decoding work is done for it.
func (b *ByteBuffer) readCount() (int, error) {
	n, err := b.readLen()
	if err != nil {
		return 0, err
	}
	if available := b.Available(); n > available {
		return 0, insufficient(n, available)
	}
	return n, nil
}
