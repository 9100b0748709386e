package wire

import (
	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/quicvarint"
)

// A StreamsBlockedFrame is a STREAMS_BLOCKED frame
type StreamsBlockedFrame struct {
	Type        protocol.StreamType
	StreamLimit uint64
}

func parseStreamsBlockedFrame(b []byte, typ FrameType) (*StreamsBlockedFrame, int, error) {
	f := &StreamsBlockedFrame{}
	switch typ {
	case BidiStreamsBlockedFrameType:
		f.Type = protocol.StreamTypeBidi
	case UniStreamsBlockedFrameType:
		f.Type = protocol.StreamTypeUni
	}
	streamLimit, l, err := quicvarint.Parse(b)
	if err != nil {
		return nil, 0, replaceUnexpectedEOF(err)
	}
	f.StreamLimit = streamLimit
	return f, l, nil
}

func (f *StreamsBlockedFrame) Append(b []byte) ([]byte, error) {
	switch f.Type {
	case protocol.StreamTypeBidi:
		b = append(b, byte(BidiStreamsBlockedFrameType))
	case protocol.StreamTypeUni:
		b = append(b, byte(UniStreamsBlockedFrameType))
	}
	b = quicvarint.Append(b, f.StreamLimit)
	return b, nil
}

// Length of a written frame
func (f *StreamsBlockedFrame) Length() protocol.ByteCount {
	return 1 + protocol.ByteCount(quicvarint.Len(f.StreamLimit))
}
