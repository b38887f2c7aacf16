package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/oy3o/bytable"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = newApp(&out, &errOut).Run(append([]string{"bytable"}, args...))
	return out.String(), errOut.String(), err
}

var errClosed = errors.New("stdout closed")

// closedWriter fails every write.
type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Scalars", []string{"bool:true", "string:hi", "int:-1"}, "010102686901ff\n"},
		{"Unsigned", []string{"uint16:0x1234"}, "021234\n"},
		{"OptionalAbsent", []string{"opt-string"}, "00\n"},
		{"OptionalPresent", []string{"opt-int8:-2"}, "0101fe\n"},
		{"Empty", nil, "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"encode"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	_, _, err := run(t, "encode", "complex:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown type "complex"`)

	_, _, err = run(t, "encode", "int8:300")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value 0 (int8:300)")

	_, _, err = run(t, "encode", "bool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bool needs a literal")
}

func TestDecode(t *testing.T) {
	out, _, err := run(t, "decode", "--hex", "010102686901ff", "bool", "string", "int")
	require.NoError(t, err)
	assert.Equal(t, "bool: true\nstring: \"hi\"\nint: -1\n", out)

	out, _, err = run(t, "decode", "--hex", "000101fe", "opt-string", "opt-int8")
	require.NoError(t, err)
	assert.Equal(t, "opt-string: nil\nopt-int8: -2\n", out)
}

func TestDecode_Trailing(t *testing.T) {
	out, logs, err := run(t, "decode", "--hex", "010203", "bool")
	require.NoError(t, err)
	assert.Equal(t, "bool: true\ntrailing: 0203\n", out)
	assert.Contains(t, logs, "Trailing bytes after decoding")
}

func TestDecode_Errors(t *testing.T) {
	_, _, err := run(t, "decode", "--hex", "zz", "bool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --hex")

	_, _, err = run(t, "decode", "--hex", "0102", "string")
	require.ErrorIs(t, err, bytable.ErrInsufficientElements)

	_, _, err = run(t, "decode", "--hex", "020100", "int8")
	require.ErrorIs(t, err, bytable.ErrDecodeOverflow)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tokens := []string{"uint64:18446744073709551615", "float64:1.5", "string:a:b", "opt-bool:false"}
	hexOut, _, err := run(t, append([]string{"encode"}, tokens...)...)
	require.NoError(t, err)

	out, _, err := run(t, "decode", "--hex", hexOut[:len(hexOut)-1], "uint64", "float64", "string", "opt-bool")
	require.NoError(t, err)
	assert.Equal(t, "uint64: 18446744073709551615\nfloat64: 1.5\nstring: \"a:b\"\nopt-bool: false\n", out)
}

func TestVarint(t *testing.T) {
	out, _, err := run(t, "varint", "-129")
	require.NoError(t, err)
	assert.Equal(t, "signed:   ff7f (2 bytes)\nunsigned: out of range\n", out)

	out, _, err = run(t, "varint", "255")
	require.NoError(t, err)
	assert.Equal(t, "signed:   00ff (2 bytes)\nunsigned: ff (1 bytes)\n", out)

	_, _, err = run(t, "varint", "abc")
	assert.Error(t, err)

	_, _, err = run(t, "varint", "1", "2")
	assert.Error(t, err)
}

func TestLogging(t *testing.T) {
	_, logs, err := run(t, "--log.format", "json", "--log.verbosity", "4", "encode", "bool:true")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"Encoded value"`)

	_, logs, err = run(t, "encode", "bool:true")
	require.NoError(t, err)
	assert.Empty(t, logs)

	_, _, err = run(t, "--log.format", "xml", "encode")
	assert.Error(t, err)

	_, _, err = run(t, "--log.verbosity", "6", "encode")
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	log := logrus.New()
	require.NoError(t, setupLogging(log, "text", 0))
	assert.Equal(t, logrus.FatalLevel, log.GetLevel())
	require.NoError(t, setupLogging(log, "text", 5))
	assert.Equal(t, logrus.TraceLevel, log.GetLevel())
}

func TestOutputErrors(t *testing.T) {
	commands := [][]string{
		{"encode", "bool:true"},
		{"decode", "--hex", "01", "bool"},
		{"varint", "-129"},
		{"varint", "18446744073709551615"},
	}
	for _, args := range commands {
		t.Run(args[0], func(t *testing.T) {
			var logs bytes.Buffer
			err := newApp(closedWriter{}, &logs).Run(append([]string{"bytable"}, args...))
			assert.ErrorIs(t, err, errClosed)
		})
	}
}
