package wire

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConnectionCloseTransport(t *testing.T) {
	reason := []byte("No recent network activity.")
	data := encodeVarInt(0x19)
	data = append(data, encodeVarInt(0x1337)...)              // frame type
	data = append(data, encodeVarInt(uint64(len(reason)+1))...) // reason phrase length, including the NUL
	data = append(data, reason...)
	data = append(data, 0)
	frame, l, err := parseConnectionCloseFrame(data, ConnectionCloseFrameType)
	require.NoError(t, err)
	require.Equal(t, len(data), l)
	require.False(t, frame.IsApplicationError)
	require.Equal(t, uint64(0x19), frame.ErrorCode)
	require.Equal(t, uint64(0x1337), frame.FrameType)
	require.Equal(t, "No recent network activity.", frame.ReasonPhrase)
}

func TestParseConnectionCloseApplication(t *testing.T) {
	// an application close has no frame type field
	data := encodeVarInt(0xcafe)
	data = append(data, encodeVarInt(0)...) // no reason phrase
	frame, l, err := parseConnectionCloseFrame(data, ApplicationCloseFrameType)
	require.NoError(t, err)
	require.Equal(t, len(data), l)
	require.True(t, frame.IsApplicationError)
	require.Equal(t, uint64(0xcafe), frame.ErrorCode)
	require.Empty(t, frame.ReasonPhrase)
}

func TestParseConnectionCloseSingleNUL(t *testing.T) {
	data := encodeVarInt(0x42)
	data = append(data, encodeVarInt(1)...) // a 1-byte phrase: just the NUL
	data = append(data, 0)
	frame, l, err := parseConnectionCloseFrame(data, ApplicationCloseFrameType)
	require.NoError(t, err)
	require.Equal(t, len(data), l)
	require.Empty(t, frame.ReasonPhrase)
}

func TestParseConnectionClosePhraseNotTerminated(t *testing.T) {
	data := encodeVarInt(0x42)
	data = append(data, encodeVarInt(3)...)
	data = append(data, []byte("foo")...) // no trailing NUL
	_, _, err := parseConnectionCloseFrame(data, ApplicationCloseFrameType)
	require.EqualError(t, err, "reason phrase not NUL-terminated")
}

func TestParseConnectionClosePhraseLength(t *testing.T) {
	phrase := func(n int) []byte {
		data := encodeVarInt(0x42)
		data = append(data, encodeVarInt(uint64(n))...)
		for i := 0; i < n-1; i++ {
			data = append(data, 'x')
		}
		return append(data, 0)
	}

	// an 80-byte phrase (including NUL) is accepted
	frame, l, err := parseConnectionCloseFrame(phrase(80), ApplicationCloseFrameType)
	require.NoError(t, err)
	require.Equal(t, len(phrase(80)), l)
	require.Len(t, frame.ReasonPhrase, 79)

	// an 81-byte phrase is not
	_, _, err = parseConnectionCloseFrame(phrase(81), ApplicationCloseFrameType)
	require.EqualError(t, err, "reason phrase too long")
}

func TestParseConnectionCloseTruncatedPhrase(t *testing.T) {
	data := encodeVarInt(0x42)
	data = append(data, encodeVarInt(10)...) // phrase length longer than the data
	data = append(data, []byte("foo")...)
	_, _, err := parseConnectionCloseFrame(data, ApplicationCloseFrameType)
	require.Equal(t, io.EOF, err)
}

func TestWriteConnectionCloseTransport(t *testing.T) {
	frame := &ConnectionCloseFrame{
		ErrorCode:    0xdead,
		FrameType:    0x42,
		ReasonPhrase: "foobar",
	}
	b, err := frame.Append(nil)
	require.NoError(t, err)
	expected := []byte{byte(ConnectionCloseFrameType)}
	expected = append(expected, encodeVarInt(0xdead)...)
	expected = append(expected, encodeVarInt(0x42)...)
	expected = append(expected, encodeVarInt(7)...) // phrase length, including NUL
	expected = append(expected, []byte("foobar")...)
	expected = append(expected, 0)
	require.Equal(t, expected, b)
	require.Equal(t, int(frame.Length()), len(b))
}

func TestWriteConnectionCloseApplicationNoPhrase(t *testing.T) {
	frame := &ConnectionCloseFrame{
		IsApplicationError: true,
		ErrorCode:          0xbeef,
	}
	b, err := frame.Append(nil)
	require.NoError(t, err)
	expected := []byte{byte(ApplicationCloseFrameType)}
	expected = append(expected, encodeVarInt(0xbeef)...)
	expected = append(expected, encodeVarInt(0)...)
	require.Equal(t, expected, b)
	require.Equal(t, int(frame.Length()), len(b))
}

func TestConnectionCloseRoundTrip(t *testing.T) {
	frame := &ConnectionCloseFrame{
		IsApplicationError: true,
		ErrorCode:          0xcafe,
		ReasonPhrase:       "gone",
	}
	b, err := frame.Append(nil)
	require.NoError(t, err)
	parsed, l, err := parseConnectionCloseFrame(b[1:], FrameType(b[0]))
	require.NoError(t, err)
	require.Equal(t, len(b)-1, l)
	require.Equal(t, frame, parsed)
}
