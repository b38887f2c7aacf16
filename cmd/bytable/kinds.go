package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/oy3o/bytable"
	"golang.org/x/exp/constraints"
)

// kind is one value category that can be named on the command line.
type kind struct {
	// encode parses literal and writes it. present is false for a bare
	// "opt-<type>" token, which writes an absent optional.
	encode func(b *bytable.ByteBuffer, literal string, present bool) error
	decode func(b *bytable.ByteBuffer) (string, error)
}

var kinds = map[string]kind{}

func init() {
	register("bool", bytable.Bool, strconv.ParseBool)
	register("string", bytable.String, func(s string) (string, error) { return s, nil })
	register("float32", bytable.Float32, func(s string) (float32, error) {
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), err
	})
	register("float64", bytable.Float64, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })

	register("int", bytable.Int, parseSigned[int](64))
	register("int8", bytable.Int8, parseSigned[int8](8))
	register("int16", bytable.Int16, parseSigned[int16](16))
	register("int32", bytable.Int32, parseSigned[int32](32))
	register("int64", bytable.Int64, parseSigned[int64](64))

	register("uint", bytable.Uint, parseUnsigned[uint](64))
	register("uint8", bytable.Uint8, parseUnsigned[uint8](8))
	register("uint16", bytable.Uint16, parseUnsigned[uint16](16))
	register("uint32", bytable.Uint32, parseUnsigned[uint32](32))
	register("uint64", bytable.Uint64, parseUnsigned[uint64](64))
}

// register adds name and its optional form "opt-<name>".
func register[T any](name string, c bytable.Codec[T], parse func(string) (T, error)) {
	kinds[name] = kind{
		encode: func(b *bytable.ByteBuffer, literal string, present bool) error {
			if !present {
				return fmt.Errorf("%s needs a literal", name)
			}
			v, err := parse(literal)
			if err != nil {
				return err
			}
			bytable.Write(b, c, v)
			return nil
		},
		decode: func(b *bytable.ByteBuffer) (string, error) {
			v, err := bytable.Read(b, c)
			if err != nil {
				return "", err
			}
			return format(v), nil
		},
	}

	opt := bytable.Optional(c)
	kinds["opt-"+name] = kind{
		encode: func(b *bytable.ByteBuffer, literal string, present bool) error {
			if !present {
				bytable.Write(b, opt, nil)
				return nil
			}
			v, err := parse(literal)
			if err != nil {
				return err
			}
			bytable.Write(b, opt, &v)
			return nil
		},
		decode: func(b *bytable.ByteBuffer) (string, error) {
			v, err := bytable.Read(b, opt)
			if err != nil || v == nil {
				return "nil", err
			}
			return format(*v), nil
		},
	}
}

func format(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprint(v)
}

func parseSigned[T constraints.Signed](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 0, bits)
		return T(v), err
	}
}

func parseUnsigned[T constraints.Unsigned](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 0, bits)
		return T(v), err
	}
}

// lookup finds the kind of a type name.
func lookup(name string) (kind, error) {
	k, ok := kinds[name]
	if !ok {
		return kind{}, fmt.Errorf("unknown type %q (known: %s)", name, strings.Join(kindNames(), ", "))
	}
	return k, nil
}

// splitToken splits "type:literal". A token without a colon has no literal.
func splitToken(token string) (name, literal string, present bool) {
	return strings.Cut(token, ":")
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
