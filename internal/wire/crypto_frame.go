package wire

import (
	"io"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/quicvarint"
)

// A CryptoFrame is a CRYPTO frame
type CryptoFrame struct {
	Offset protocol.ByteCount
	Data   []byte
}

func parseCryptoFrame(b []byte) (*CryptoFrame, int, error) {
	startLen := len(b)
	offset, l, err := quicvarint.Parse(b)
	if err != nil {
		return nil, 0, replaceUnexpectedEOF(err)
	}
	b = b[l:]
	frame := &CryptoFrame{Offset: protocol.ByteCount(offset)}
	dataLen, l, err := quicvarint.Parse(b)
	if err != nil {
		return nil, 0, replaceUnexpectedEOF(err)
	}
	b = b[l:]
	if dataLen > uint64(len(b)) {
		return nil, 0, io.EOF
	}
	if dataLen != 0 {
		frame.Data = make([]byte, dataLen)
		copy(frame.Data, b)
		b = b[dataLen:]
	}
	return frame, startLen - len(b), nil
}

func (f *CryptoFrame) Append(b []byte) ([]byte, error) {
	b = append(b, byte(CryptoFrameType))
	b = quicvarint.Append(b, uint64(f.Offset))
	b = quicvarint.Append(b, uint64(len(f.Data)))
	b = append(b, f.Data...)
	return b, nil
}

// Length of a written frame
func (f *CryptoFrame) Length() protocol.ByteCount {
	return 1 + protocol.ByteCount(quicvarint.Len(uint64(f.Offset))+quicvarint.Len(uint64(len(f.Data)))+len(f.Data))
}
