package wire

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/quicwire/quicwire/internal/protocol"

	"github.com/stretchr/testify/require"
)

func TestParseAckWithoutRanges(t *testing.T) {
	data := encodeVarInt(100)                // largest acked
	data = append(data, encodeVarInt(0)...)  // delay
	data = append(data, encodeVarInt(0)...)  // num blocks
	data = append(data, encodeVarInt(10)...) // first ack block
	var frame AckFrame
	l, err := parseAckFrame(&frame, data, AckFrameType, protocol.DefaultAckDelayExponent, protocol.MaxAckGaps)
	require.NoError(t, err)
	require.Equal(t, len(data), l)
	require.Equal(t, protocol.PacketNumber(100), frame.LargestAcked())
	require.Equal(t, protocol.PacketNumber(90), frame.LowestAcked())
	require.False(t, frame.HasMissingRanges())
}

func TestParseAckSinglePacket(t *testing.T) {
	data := encodeVarInt(55)                // largest acked
	data = append(data, encodeVarInt(0)...) // delay
	data = append(data, encodeVarInt(0)...) // num blocks
	data = append(data, encodeVarInt(0)...) // first ack block
	var frame AckFrame
	l, err := parseAckFrame(&frame, data, AckFrameType, protocol.DefaultAckDelayExponent, protocol.MaxAckGaps)
	require.NoError(t, err)
	require.Equal(t, len(data), l)
	require.Equal(t, protocol.PacketNumber(55), frame.LargestAcked())
	require.Equal(t, protocol.PacketNumber(55), frame.LowestAcked())
	require.True(t, frame.AcksPacket(55))
	require.False(t, frame.AcksPacket(54))
}

func TestParseAckFirstRangeLargerThanLargest(t *testing.T) {
	data := encodeVarInt(20)                 // largest acked
	data = append(data, encodeVarInt(0)...)  // delay
	data = append(data, encodeVarInt(0)...)  // num blocks
	data = append(data, encodeVarInt(21)...) // first ack block
	var frame AckFrame
	_, err := parseAckFrame(&frame, data, AckFrameType, protocol.DefaultAckDelayExponent, protocol.MaxAckGaps)
	require.EqualError(t, err, "invalid first ACK range")
}

func TestParseAckSingleBlock(t *testing.T) {
	data := encodeVarInt(1000)                // largest acked
	data = append(data, encodeVarInt(0)...)   // delay
	data = append(data, encodeVarInt(1)...)   // num blocks
	data = append(data, encodeVarInt(100)...) // first ack block
	data = append(data, encodeVarInt(98)...)  // gap
	data = append(data, encodeVarInt(50)...)  // ack block
	var frame AckFrame
	l, err := parseAckFrame(&frame, data, AckFrameType, protocol.DefaultAckDelayExponent, protocol.MaxAckGaps)
	require.NoError(t, err)
	require.Equal(t, len(data), l)
	require.Equal(t, protocol.PacketNumber(1000), frame.LargestAcked())
	require.Equal(t, protocol.PacketNumber(750), frame.LowestAcked())
	require.True(t, frame.HasMissingRanges())
	require.Equal(t, []AckRange{
		{Largest: 1000, Smallest: 900},
		{Largest: 800, Smallest: 750},
	}, frame.AckRanges)
}

func TestParseAckMultipleBlocks(t *testing.T) {
	data := encodeVarInt(100)               // largest acked
	data = append(data, encodeVarInt(0)...) // delay
	data = append(data, encodeVarInt(2)...) // num blocks
	data = append(data, encodeVarInt(0)...) // first ack block
	data = append(data, encodeVarInt(0)...) // gap
	data = append(data, encodeVarInt(0)...) // ack block
	data = append(data, encodeVarInt(1)...) // gap
	data = append(data, encodeVarInt(1)...) // ack block
	var frame AckFrame
	l, err := parseAckFrame(&frame, data, AckFrameType, protocol.DefaultAckDelayExponent, protocol.MaxAckGaps)
	require.NoError(t, err)
	require.Equal(t, len(data), l)
	require.Equal(t, protocol.PacketNumber(100), frame.LargestAcked())
	require.Equal(t, protocol.PacketNumber(94), frame.LowestAcked())
	require.Equal(t, []AckRange{
		{Largest: 100, Smallest: 100},
		{Largest: 98, Smallest: 98},
		{Largest: 95, Smallest: 94},
	}, frame.AckRanges)
}

func TestParseAckUsesAckDelayExponent(t *testing.T) {
	const delayTime = 1 << 10 * time.Millisecond
	f := &AckFrame{
		AckRanges: []AckRange{{Smallest: 1, Largest: 1}},
		DelayTime: delayTime,
	}
	b, err := f.Append(nil)
	require.NoError(t, err)
	for i := uint8(0); i < 8; i++ {
		var frame AckFrame
		_, err := parseAckFrame(&frame, b[1:], AckFrameType, protocol.DefaultAckDelayExponent+i, protocol.MaxAckGaps)
		require.NoError(t, err)
		require.Equal(t, delayTime*(1<<i), frame.DelayTime)
	}
}

func TestParseAckDelayOverflow(t *testing.T) {
	data := encodeVarInt(100)                              // largest acked
	data = append(data, encodeVarInt(math.MaxUint64/5)...) // delay
	data = append(data, encodeVarInt(0)...)                // num blocks
	data = append(data, encodeVarInt(0)...)                // first ack block
	var frame AckFrame
	_, err := parseAckFrame(&frame, data, AckFrameType, protocol.DefaultAckDelayExponent, protocol.MaxAckGaps)
	require.NoError(t, err)
	require.Greater(t, frame.DelayTime, time.Duration(0))
}

func TestParseAckRangeCountLimit(t *testing.T) {
	writeAck := func(numRanges int) []byte {
		data := encodeVarInt(uint64(100 * numRanges))      // largest acked
		data = append(data, encodeVarInt(0)...)            // delay
		data = append(data, encodeVarInt(uint64(numRanges))...) // num blocks
		data = append(data, encodeVarInt(0)...)            // first ack block
		for i := 0; i < numRanges; i++ {
			data = append(data, encodeVarInt(97)...) // gap
			data = append(data, encodeVarInt(1)...)  // ack block
		}
		return data
	}

	var frame AckFrame
	l, err := parseAckFrame(&frame, writeAck(16), AckFrameType, protocol.DefaultAckDelayExponent, protocol.MaxAckGaps)
	require.NoError(t, err)
	require.Equal(t, len(writeAck(16)), l)
	require.Len(t, frame.AckRanges, 17)

	frame.Reset()
	_, err = parseAckFrame(&frame, writeAck(17), AckFrameType, protocol.DefaultAckDelayExponent, protocol.MaxAckGaps)
	require.EqualError(t, err, "AckFrame: too many ACK ranges")
}

func TestParseAckECNCounts(t *testing.T) {
	data := encodeVarInt(100)                 // largest acked
	data = append(data, encodeVarInt(0)...)   // delay
	data = append(data, encodeVarInt(0)...)   // num blocks
	data = append(data, encodeVarInt(10)...)  // first ack block
	data = append(data, encodeVarInt(0x42)...)   // ECT(0)
	data = append(data, encodeVarInt(0x12345)...) // ECT(1)
	data = append(data, encodeVarInt(0x12)...)   // ECN-CE
	var frame AckFrame
	l, err := parseAckFrame(&frame, data, AckECNFrameType, protocol.DefaultAckDelayExponent, protocol.MaxAckGaps)
	require.NoError(t, err)
	require.Equal(t, len(data), l)
	require.Equal(t, uint64(0x42), frame.ECT0)
	require.Equal(t, uint64(0x12345), frame.ECT1)
	require.Equal(t, uint64(0x12), frame.ECNCE)
}

func TestParseAckErrorsOnEOF(t *testing.T) {
	data := encodeVarInt(1000)                // largest acked
	data = append(data, encodeVarInt(0)...)   // delay
	data = append(data, encodeVarInt(1)...)   // num blocks
	data = append(data, encodeVarInt(100)...) // first ack block
	data = append(data, encodeVarInt(98)...)  // gap
	data = append(data, encodeVarInt(50)...)  // ack block
	var frame AckFrame
	l, err := parseAckFrame(&frame, data, AckFrameType, protocol.DefaultAckDelayExponent, protocol.MaxAckGaps)
	require.NoError(t, err)
	require.Equal(t, len(data), l)
	for i := range data {
		frame.Reset()
		_, err := parseAckFrame(&frame, data[:i], AckFrameType, protocol.DefaultAckDelayExponent, protocol.MaxAckGaps)
		require.Equal(t, io.EOF, err)
	}
}

func TestWriteAckSimpleFrame(t *testing.T) {
	f := &AckFrame{AckRanges: []AckRange{{Smallest: 100, Largest: 1337}}}
	b, err := f.Append(nil)
	require.NoError(t, err)
	expected := []byte{byte(AckFrameType)}
	expected = append(expected, encodeVarInt(1337)...)
	expected = append(expected, 0)
	expected = append(expected, encodeVarInt(0)...)
	expected = append(expected, encodeVarInt(1337-100)...)
	require.Equal(t, expected, b)
	require.Equal(t, int(f.Length()), len(b))
}

func TestWriteAckSinglePacket(t *testing.T) {
	// ACK for a single packet 7, no delay
	f := &AckFrame{AckRanges: []AckRange{{Smallest: 7, Largest: 7}}}
	b, err := f.Append(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x07, 0x00, 0x00, 0x00}, b)
}

func TestWriteAckWithRanges(t *testing.T) {
	f := &AckFrame{AckRanges: []AckRange{
		{Smallest: 400, Largest: 1000},
		{Smallest: 100, Largest: 200},
	}}
	b, err := f.Append(nil)
	require.NoError(t, err)
	require.Equal(t, int(f.Length()), len(b))

	var frame AckFrame
	l, err := parseAckFrame(&frame, b[1:], AckFrameType, protocol.DefaultAckDelayExponent, protocol.MaxAckGaps)
	require.NoError(t, err)
	require.Equal(t, len(b)-1, l)
	require.Equal(t, f.AckRanges, frame.AckRanges)
}

func TestAckDelayRoundTrip(t *testing.T) {
	f := &AckFrame{
		AckRanges: []AckRange{{Smallest: 1, Largest: 100}},
		DelayTime: 800 * time.Microsecond,
	}
	b, err := f.Append(nil)
	require.NoError(t, err)
	var frame AckFrame
	_, err = parseAckFrame(&frame, b[1:], AckFrameType, protocol.DefaultAckDelayExponent, protocol.MaxAckGaps)
	require.NoError(t, err)
	require.Equal(t, f.DelayTime, frame.DelayTime)
}
