package protocol

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadConnectionID(t *testing.T) {
	buf := bytes.NewBuffer([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	c, err := ReadConnectionID(buf, 4)
	require.NoError(t, err)
	require.Equal(t, ConnectionID{1, 2, 3, 4}, c)

	c, err = ReadConnectionID(buf, 0)
	require.NoError(t, err)
	require.Zero(t, c.Len())

	_, err = ReadConnectionID(buf, 10)
	require.Equal(t, io.EOF, err)
}

func TestConnectionIDEqual(t *testing.T) {
	require.True(t, ConnectionID{1, 2, 3}.Equal(ConnectionID{1, 2, 3}))
	require.False(t, ConnectionID{1, 2, 3}.Equal(ConnectionID{1, 2, 4}))
}

func TestConnectionIDString(t *testing.T) {
	require.Equal(t, "(empty)", ConnectionID{}.String())
	require.Equal(t, "deadbeef", ConnectionID{0xde, 0xad, 0xbe, 0xef}.String())
}
