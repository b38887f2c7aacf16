package bytable

// Codec translates values of one type to and from bytes in a ByteBuffer.
// There is one Codec per supported type family; composite codecs are built
// from the codecs of their elements.
//
// Decode may leave the buffer partially consumed when it fails. Use the
// package-level Read, Peek and Skip functions, which restore the cursor.
type Codec[T any] interface {
	// Encode appends the encoding of v. Encoding never fails.
	Encode(b *ByteBuffer, v T)
	// Decode consumes one encoded value from the head of b.
	Decode(b *ByteBuffer) (T, error)
}

// Bytable is implemented by types that encode themselves into a ByteBuffer.
type Bytable interface {
	EncodeTo(b *ByteBuffer)
	DecodeFrom(b *ByteBuffer) error
}

// bytablePtr constrains PT to *T implementing Bytable, so Self can decode
// into a zero T without reflection.
type bytablePtr[T any] interface {
	*T
	Bytable
}

type selfCodec[T any, PT bytablePtr[T]] struct{}

// Self returns the Codec of a type whose pointer implements Bytable.
// It lets user types appear inside Optional, Slice, Set and Map.
func Self[T any, PT bytablePtr[T]]() Codec[T] {
	return selfCodec[T, PT]{}
}

func (selfCodec[T, PT]) Encode(b *ByteBuffer, v T) {
	PT(&v).EncodeTo(b)
}

func (selfCodec[T, PT]) Decode(b *ByteBuffer) (T, error) {
	var v T
	err := PT(&v).DecodeFrom(b)
	return v, err
}

// Write encodes values in order.
func Write[T any](b *ByteBuffer, c Codec[T], values ...T) {
	for _, v := range values {
		c.Encode(b, v)
	}
}

// Read decodes one value. On failure the buffer is left as it was.
func Read[T any](b *ByteBuffer, c Codec[T]) (T, error) {
	head := b.head
	v, err := c.Decode(b)
	if err != nil {
		b.head = head
		var zero T
		return zero, err
	}
	return v, nil
}

// ReadN decodes count values. Either all of them are consumed or, on
// failure, none are.
func ReadN[T any](b *ByteBuffer, c Codec[T], count int) ([]T, error) {
	if count < 0 {
		panic("bytable: ReadN called with a negative count")
	}
	head := b.head
	values := make([]T, 0, min(count, b.Available()))
	for range count {
		v, err := c.Decode(b)
		if err != nil {
			b.head = head
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Peek decodes one value without consuming it.
func Peek[T any](b *ByteBuffer, c Codec[T]) (T, error) {
	head := b.head
	defer func() { b.head = head }()
	return c.Decode(b)
}

// Skip discards one encoded value.
func Skip[T any](b *ByteBuffer, c Codec[T]) error {
	_, err := Read(b, c)
	return err
}

// SkipN discards count encoded values, or none on failure.
func SkipN[T any](b *ByteBuffer, c Codec[T], count int) error {
	_, err := ReadN(b, c, count)
	return err
}
