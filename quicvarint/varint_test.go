package quicvarint

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimits(t *testing.T) {
	require.Equal(t, 0, Min)
	require.Equal(t, uint64(1<<62-1), uint64(Max))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         []byte
		expectedValue uint64
		expectedLen   int
	}{
		{"1 byte", []byte{0b00011001}, 25, 1},
		{"2 byte", []byte{0b01111011, 0xbd}, 15293, 2},
		{"4 byte", []byte{0b10011101, 0x7f, 0x3e, 0x7d}, 494878333, 4},
		{"8 byte", []byte{0b11000010, 0x19, 0x7c, 0x5e, 0xff, 0x14, 0xe8, 0x8c}, 151288809941952652, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, l, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expectedValue, value)
			require.Equal(t, tt.expectedLen, l)
		})
	}
}

func TestParseTruncated(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expectedErr error
	}{
		{"empty slice", []byte{}, io.EOF},
		{"2-byte encoding, 1 byte", []byte{0b01000001}, io.ErrUnexpectedEOF},
		{"4-byte encoding, 3 bytes", []byte{0b10000000, 0x0, 0x0}, io.ErrUnexpectedEOF},
		{"8-byte encoding, 7 bytes", []byte{0b11000000, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0}, io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, l, err := Parse(tt.input)
			require.Equal(t, tt.expectedErr, err)
			require.Zero(t, value)
			require.Zero(t, l)
		})
	}
}

func TestRead(t *testing.T) {
	b := bytes.NewReader([]byte{0b01111011, 0xbd})
	val, err := Read(b)
	require.NoError(t, err)
	require.Equal(t, uint64(15293), val)
	require.Zero(t, b.Len())
}

// The encoder uses the shortest encoding that holds the value.
// The class boundaries are the interesting inputs.
func TestAppendBoundaries(t *testing.T) {
	tests := []struct {
		value    uint64
		expected []byte
	}{
		{37, []byte{0x25}},
		{maxVarInt1, []byte{0b00111111}},
		{maxVarInt1 + 1, []byte{0x40, maxVarInt1 + 1}},
		{15293, []byte{0b01000000 ^ 0x3b, 0xbd}},
		{maxVarInt2, []byte{0b01111111, 0xff}},
		{maxVarInt2 + 1, []byte{0b10000000, 0, 0x40, 0}},
		{494878333, []byte{0b10000000 ^ 0x1d, 0x7f, 0x3e, 0x7d}},
		{maxVarInt4, []byte{0b10111111, 0xff, 0xff, 0xff}},
		{maxVarInt4 + 1, []byte{0b11000000, 0, 0, 0, 0x40, 0, 0, 0}},
		{151288809941952652, []byte{0xc2, 0x19, 0x7c, 0x5e, 0xff, 0x14, 0xe8, 0x8c}},
		{maxVarInt8, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		b := Append(nil, tt.value)
		require.Equal(t, tt.expected, b)
		require.Equal(t, len(tt.expected), Len(tt.value))

		value, l, err := Parse(b)
		require.NoError(t, err)
		require.Equal(t, tt.value, value)
		require.Equal(t, len(b), l)
	}
}

func TestAppendPanicsOnOverflow(t *testing.T) {
	require.Panics(t, func() { Append(nil, maxVarInt8+1) })
	require.Panics(t, func() { Len(maxVarInt8 + 1) })
}

func TestAppendWithLen(t *testing.T) {
	require.Equal(t, []byte{0x25}, AppendWithLen(nil, 37, 1))
	require.Equal(t, []byte{0b01000000, 0x25}, AppendWithLen(nil, 37, 2))
	require.Equal(t, []byte{0b10000000, 0, 0, 0x25}, AppendWithLen(nil, 37, 4))
	require.Equal(t, []byte{0b11000000, 0, 0, 0, 0, 0, 0, 0x25}, AppendWithLen(nil, 37, 8))

	for _, l := range []int{2, 4, 8} {
		b := AppendWithLen(nil, 1337, l)
		value, n, err := Parse(b)
		require.NoError(t, err)
		require.Equal(t, l, n)
		require.Equal(t, uint64(1337), value)
	}

	require.Panics(t, func() { AppendWithLen(nil, 16384, 2) })
	require.Panics(t, func() { AppendWithLen(nil, 37, 3) })
}

func TestWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, 15293))
	require.Equal(t, []byte{0b01111011, 0xbd}, buf.Bytes())
}

func TestReaderWrapping(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x25}))
	val, err := Read(r)
	require.NoError(t, err)
	require.Equal(t, uint64(0x25), val)

	// an io.Reader that is not an io.ByteReader gets wrapped
	r = NewReader(io.LimitReader(bytes.NewReader([]byte{0x25}), 1))
	val, err = Read(r)
	require.NoError(t, err)
	require.Equal(t, uint64(0x25), val)
}
