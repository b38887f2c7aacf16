package bytable

import (
	"iter"
	"slices"
)

// Buffer is a growable FIFO of elements of a single type. Elements are
// written to the tail and consumed from the head.
//
// A Buffer is owned by one caller at a time; it performs no locking.
// Consumers that share a buffer between goroutines must serialize access.
type Buffer[T any] struct {
	elems []T // elems[head:] are the unconsumed elements
	head  int
}

// NewBuffer creates an empty Buffer.
func NewBuffer[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// NewBufferSize creates an empty Buffer with room for size elements.
func NewBufferSize[T any](size int) *Buffer[T] {
	if size < 0 {
		panic("bytable: NewBufferSize called with a negative size")
	}
	return &Buffer[T]{elems: make([]T, 0, size)}
}

// BufferOf creates a Buffer holding a copy of values.
func BufferOf[T any](values ...T) *Buffer[T] {
	return &Buffer[T]{elems: slices.Clone(values)}
}

// Available returns the number of elements not yet consumed.
func (b *Buffer[T]) Available() int { return len(b.elems) - b.head }

// Grow ensures that another n elements can be written without reallocating.
func (b *Buffer[T]) Grow(n int) {
	if n < 0 {
		panic("bytable: Grow called with a negative count")
	}
	b.compact(n)
	b.elems = slices.Grow(b.elems, n)
}

// Write appends values to the tail.
func (b *Buffer[T]) Write(values ...T) {
	if len(values) == 0 {
		return
	}
	b.compact(len(values))
	b.elems = append(b.elems, values...)
}

// WriteSeq appends every value yielded by seq to the tail.
func (b *Buffer[T]) WriteSeq(seq iter.Seq[T]) {
	for v := range seq {
		b.Write(v)
	}
}

// Peek returns the head element without consuming it.
func (b *Buffer[T]) Peek() (T, error) {
	if err := b.check(0, 1); err != nil {
		var zero T
		return zero, err
	}
	return b.elems[b.head], nil
}

// PeekN returns a copy of the next count elements without consuming them.
func (b *Buffer[T]) PeekN(count int) ([]T, error) {
	return b.PeekAt(0, count)
}

// PeekAt returns a copy of count elements starting offset positions after
// the head, without consuming anything.
func (b *Buffer[T]) PeekAt(offset, count int) ([]T, error) {
	if err := b.check(offset, count); err != nil {
		return nil, err
	}
	start := b.head + offset
	return slices.Clone(b.elems[start : start+count : start+count]), nil
}

// Read consumes and returns the head element.
func (b *Buffer[T]) Read() (T, error) {
	v, err := b.Peek()
	if err == nil {
		b.head++
	}
	return v, err
}

// ReadN consumes and returns the next count elements.
func (b *Buffer[T]) ReadN(count int) ([]T, error) {
	values, err := b.PeekAt(0, count)
	if err == nil {
		b.head += count
	}
	return values, err
}

// Skip discards the head element.
func (b *Buffer[T]) Skip() error {
	return b.SkipN(1)
}

// SkipN discards the next count elements without copying them.
func (b *Buffer[T]) SkipN(count int) error {
	if err := b.check(0, count); err != nil {
		return err
	}
	b.head += count
	return nil
}

// All returns an iterator over the unconsumed elements. It does not consume
// them; writing to the buffer while iterating is not supported.
func (b *Buffer[T]) All() iter.Seq[T] {
	return slices.Values(b.elems[b.head:])
}

// Reset discards every element and keeps the allocated storage.
func (b *Buffer[T]) Reset() {
	clear(b.elems)
	b.elems = b.elems[:0]
	b.head = 0
}

// check validates a request for count elements starting offset after the head.
// Negative arguments are a caller bug and panic.
func (b *Buffer[T]) check(offset, count int) error {
	if offset < 0 || count < 0 {
		panic("bytable: negative offset or count")
	}
	if available := b.Available(); offset+count > available {
		return insufficient(offset+count, available)
	}
	return nil
}

// compact reclaims consumed storage before a write of n elements.
// Reads only move the head; consumed elements must stay in place until here
// so that a typed read can rewind the head after a failed decode.
//
// Like bytes.Buffer, live elements slide to the front only when they and the
// write fit in half the capacity. Otherwise the storage doubles, so a full
// buffer used as a steady queue copies each element O(1) times.
func (b *Buffer[T]) compact(n int) {
	if b.head == 0 {
		return
	}
	if b.head == len(b.elems) {
		b.Reset()
		return
	}
	if len(b.elems)+n <= cap(b.elems) {
		return
	}
	live := b.Available()
	if live+n <= cap(b.elems)/2 {
		copy(b.elems, b.elems[b.head:])
		clear(b.elems[live:])
		b.elems = b.elems[:live]
	} else {
		grown := make([]T, live, 2*cap(b.elems)+n)
		copy(grown, b.elems[b.head:])
		b.elems = grown
	}
	b.head = 0
}
