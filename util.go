package bytable

import "encoding/binary"

// Order is the byte order of every multi-byte field: integers, floats and
// Fixed payloads are written most significant byte first.
var Order = binary.BigEndian

const BUFFER_SIZE = 4096

// Ptr returns a pointer to a copy of v, handy for Optional values.
func Ptr[T any](v T) *T { return &v }

// SetOf builds a set from values, dropping duplicates.
func SetOf[T comparable](values ...T) map[T]struct{} {
	s := make(map[T]struct{}, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}
