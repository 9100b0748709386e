package wire

import (
	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/quicvarint"
)

// A StopSendingFrame is a STOP_SENDING frame
type StopSendingFrame struct {
	StreamID  protocol.StreamID
	ErrorCode protocol.StreamErrorCode
}

func parseStopSendingFrame(b []byte) (*StopSendingFrame, int, error) {
	startLen := len(b)
	sid, l, err := quicvarint.Parse(b)
	if err != nil {
		return nil, 0, replaceUnexpectedEOF(err)
	}
	b = b[l:]
	errorCode, l, err := quicvarint.Parse(b)
	if err != nil {
		return nil, 0, replaceUnexpectedEOF(err)
	}
	b = b[l:]
	return &StopSendingFrame{
		StreamID:  protocol.StreamID(sid),
		ErrorCode: protocol.StreamErrorCode(errorCode),
	}, startLen - len(b), nil
}

func (f *StopSendingFrame) Append(b []byte) ([]byte, error) {
	b = append(b, byte(StopSendingFrameType))
	b = quicvarint.Append(b, uint64(f.StreamID))
	b = quicvarint.Append(b, uint64(f.ErrorCode))
	return b, nil
}

// Length of a written frame
func (f *StopSendingFrame) Length() protocol.ByteCount {
	return 1 + protocol.ByteCount(quicvarint.Len(uint64(f.StreamID))+quicvarint.Len(uint64(f.ErrorCode)))
}
