package wire

import "github.com/quicwire/quicwire/internal/protocol"

// A PaddingFrame is a run of PADDING.
// On the wire it is Size zero bytes followed by a single type byte,
// so the encoded length is always Size + 1.
type PaddingFrame struct {
	Size protocol.ByteCount
}

func (f *PaddingFrame) Append(b []byte) ([]byte, error) {
	for i := protocol.ByteCount(0); i < f.Size; i++ {
		b = append(b, 0)
	}
	return append(b, byte(PaddingFrameType)), nil
}

// Length of a written frame
func (f *PaddingFrame) Length() protocol.ByteCount {
	return f.Size + 1
}
