package wire

import (
	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/quicvarint"
)

// A MaxStreamsFrame is a MAX_STREAMS frame
type MaxStreamsFrame struct {
	Type         protocol.StreamType
	MaxStreamNum uint64
}

func parseMaxStreamsFrame(b []byte, typ FrameType) (*MaxStreamsFrame, int, error) {
	f := &MaxStreamsFrame{}
	switch typ {
	case BidiMaxStreamsFrameType:
		f.Type = protocol.StreamTypeBidi
	case UniMaxStreamsFrameType:
		f.Type = protocol.StreamTypeUni
	}
	streamNum, l, err := quicvarint.Parse(b)
	if err != nil {
		return nil, 0, replaceUnexpectedEOF(err)
	}
	f.MaxStreamNum = streamNum
	return f, l, nil
}

func (f *MaxStreamsFrame) Append(b []byte) ([]byte, error) {
	switch f.Type {
	case protocol.StreamTypeBidi:
		b = append(b, byte(BidiMaxStreamsFrameType))
	case protocol.StreamTypeUni:
		b = append(b, byte(UniMaxStreamsFrameType))
	}
	b = quicvarint.Append(b, f.MaxStreamNum)
	return b, nil
}

// Length of a written frame
func (f *MaxStreamsFrame) Length() protocol.ByteCount {
	return 1 + protocol.ByteCount(quicvarint.Len(f.MaxStreamNum))
}
