package wire

import (
	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/quicvarint"
)

// A MaxDataFrame carries flow control information for the connection
type MaxDataFrame struct {
	MaximumData protocol.ByteCount
}

func parseMaxDataFrame(b []byte) (*MaxDataFrame, int, error) {
	maxData, l, err := quicvarint.Parse(b)
	if err != nil {
		return nil, 0, replaceUnexpectedEOF(err)
	}
	return &MaxDataFrame{MaximumData: protocol.ByteCount(maxData)}, l, nil
}

func (f *MaxDataFrame) Append(b []byte) ([]byte, error) {
	b = append(b, byte(MaxDataFrameType))
	b = quicvarint.Append(b, uint64(f.MaximumData))
	return b, nil
}

// Length of a written frame
func (f *MaxDataFrame) Length() protocol.ByteCount {
	return 1 + protocol.ByteCount(quicvarint.Len(uint64(f.MaximumData)))
}
