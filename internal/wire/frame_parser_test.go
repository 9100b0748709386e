package wire

import (
	"io"
	"testing"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/internal/qerr"

	"github.com/stretchr/testify/require"
)

func TestParseNextPing(t *testing.T) {
	p := NewFrameParser()
	typ, frame, l, err := p.ParseNext([]byte{0x01})
	require.NoError(t, err)
	require.Equal(t, PingFrameType, typ)
	require.IsType(t, &PingFrame{}, frame)
	require.Equal(t, 1, l)
}

func TestParseNextEmptyInput(t *testing.T) {
	p := NewFrameParser()
	_, _, _, err := p.ParseNext(nil)
	require.Equal(t, io.EOF, err)
}

func TestParseNextPaddingCollapsesRun(t *testing.T) {
	p := NewFrameParser()
	typ, frame, l, err := p.ParseNext(make([]byte, 13))
	require.NoError(t, err)
	require.Equal(t, PaddingFrameType, typ)
	require.Nil(t, frame)
	require.Equal(t, 13, l)
}

func TestParseNextRejectsUnknownType(t *testing.T) {
	p := NewFrameParser()
	typ, _, _, err := p.ParseNext([]byte{0x1f, 0x00})
	require.Equal(t, FrameType(0x1f), typ)
	var transportErr *qerr.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, qerr.ProtocolViolation, transportErr.ErrorCode)
	require.Equal(t, uint64(0x1f), transportErr.FrameType)
}

func TestParseNextWrapsParseErrors(t *testing.T) {
	p := NewFrameParser()
	// a truncated RESET_STREAM
	_, _, _, err := p.ParseNext([]byte{byte(ResetStreamFrameType), 0x04})
	var transportErr *qerr.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, qerr.FrameEncodingError, transportErr.ErrorCode)
	require.Equal(t, uint64(ResetStreamFrameType), transportErr.FrameType)
}

func TestParseNextStream(t *testing.T) {
	f := &StreamFrame{
		StreamID:       4,
		Data:           []byte("hi"),
		Fin:            true,
		DataLenPresent: true,
	}
	b, err := f.Append(nil)
	require.NoError(t, err)

	p := NewFrameParser()
	typ, frame, l, err := p.ParseNext(b)
	require.NoError(t, err)
	require.True(t, typ.IsStreamFrameType())
	require.Equal(t, len(b), l)
	sf, ok := frame.(*StreamFrame)
	require.True(t, ok)
	require.Equal(t, f, sf)
}

func TestParseNextAckReusesFrame(t *testing.T) {
	f := &AckFrame{AckRanges: []AckRange{{Smallest: 1, Largest: 7}}}
	b, err := f.Append(nil)
	require.NoError(t, err)

	p := NewFrameParser()
	_, frame1, _, err := p.ParseNext(b)
	require.NoError(t, err)
	_, frame2, _, err := p.ParseNext(b)
	require.NoError(t, err)
	require.Same(t, frame1, frame2)
}

func TestParseNextConsumesExactFrameLengths(t *testing.T) {
	var b []byte
	frames := []Frame{
		&PingFrame{},
		&MaxDataFrame{MaximumData: 0xcafe},
		&StreamFrame{StreamID: 0x42, Data: []byte("data"), DataLenPresent: true},
		&RetireConnectionIDFrame{SequenceNumber: 2},
		&HandshakeDoneFrame{},
	}
	for _, f := range frames {
		var err error
		b, err = f.Append(b)
		require.NoError(t, err)
	}

	p := NewFrameParser()
	var parsed int
	for len(b) > 0 {
		_, _, l, err := p.ParseNext(b)
		require.NoError(t, err)
		require.LessOrEqual(t, l, len(b))
		b = b[l:]
		parsed++
	}
	require.Equal(t, len(frames), parsed)
}

// The parser must never read past the end of the input, no matter where the
// input is cut off.
func TestParseNextTruncatedInputs(t *testing.T) {
	var b []byte
	for _, f := range []Frame{
		&AckFrame{AckRanges: []AckRange{{Smallest: 10, Largest: 100}, {Smallest: 1, Largest: 5}}},
		&StreamFrame{StreamID: 0x42, Offset: 100, Data: []byte("data"), DataLenPresent: true},
		&NewTokenFrame{Token: []byte("token")},
		&ConnectionCloseFrame{IsApplicationError: true, ErrorCode: 1, ReasonPhrase: "bye"},
	} {
		var err error
		b, err = f.Append(b)
		require.NoError(t, err)
	}
	for i := range b {
		p := NewFrameParser()
		data := b[:i]
		for len(data) > 0 {
			_, _, l, err := p.ParseNext(data)
			if err != nil {
				break
			}
			require.LessOrEqual(t, l, len(data))
			data = data[l:]
		}
	}
}

func FuzzParseNext(f *testing.F) {
	seed, err := (&AckFrame{AckRanges: []AckRange{{Smallest: 10, Largest: 100}}}).Append(nil)
	if err != nil {
		f.Fatal(err)
	}
	f.Add(seed)
	f.Add([]byte{0x0b, 0x04, 0x02, 'h', 'i'})
	f.Fuzz(func(t *testing.T, data []byte) {
		p := NewFrameParser()
		p.SetAckDelayExponent(protocol.DefaultAckDelayExponent)
		b := data
		for len(b) > 0 {
			_, _, l, err := p.ParseNext(b)
			if err != nil {
				break
			}
			if l <= 0 || l > len(b) {
				t.Fatalf("invalid frame length %d of %d", l, len(b))
			}
			b = b[l:]
		}
	})
}
