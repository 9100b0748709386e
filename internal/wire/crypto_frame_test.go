package wire

import (
	"io"
	"testing"

	"github.com/quicwire/quicwire/internal/protocol"

	"github.com/stretchr/testify/require"
)

func TestParseCryptoFrame(t *testing.T) {
	data := encodeVarInt(0xdecafbad)        // offset
	data = append(data, encodeVarInt(6)...) // length
	data = append(data, []byte("foobar")...)
	frame, l, err := parseCryptoFrame(data)
	require.NoError(t, err)
	require.Equal(t, len(data), l)
	require.Equal(t, protocol.ByteCount(0xdecafbad), frame.Offset)
	require.Equal(t, []byte("foobar"), frame.Data)
}

func TestParseCryptoFrameLengthTooLong(t *testing.T) {
	data := encodeVarInt(0)                 // offset
	data = append(data, encodeVarInt(7)...) // length
	data = append(data, []byte("foobar")...)
	_, _, err := parseCryptoFrame(data)
	require.Equal(t, io.EOF, err)
}

func TestWriteCryptoFrame(t *testing.T) {
	frame := &CryptoFrame{
		Offset: 0,
		Data:   []byte{4, 0, 0, 2, 13, 37},
	}
	b, err := frame.Append(nil)
	require.NoError(t, err)
	expected := []byte{byte(CryptoFrameType)}
	expected = append(expected, encodeVarInt(0)...)
	expected = append(expected, encodeVarInt(6)...)
	expected = append(expected, []byte{4, 0, 0, 2, 13, 37}...)
	require.Equal(t, expected, b)
	require.Equal(t, int(frame.Length()), len(b))
}
