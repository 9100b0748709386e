package quicwire

import (
	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/internal/wire"
)

// A FrameBuffer owns the encoded bytes of a single outbound frame, together
// with the send-side metadata the packet builder and the retransmission
// queue need.
type FrameBuffer struct {
	Data []byte

	// FrameType is the frame's type byte. For STREAM frames it carries the
	// subflag bits; for CONNECTION_CLOSE it keeps the 0x1c/0x1d distinction.
	FrameType wire.FrameType

	Stream       *Stream
	StreamOffset protocol.ByteCount
	DataBytes    protocol.ByteCount
	ErrCode      uint64
}

// frameBufferScratch is the initial allocation for an encoded frame.
// Control frames fit; STREAM and CRYPTO payloads grow the buffer.
const frameBufferScratch = 64

func newFrameBuffer(typ wire.FrameType) *FrameBuffer {
	return &FrameBuffer{
		Data:      make([]byte, 0, frameBufferScratch),
		FrameType: typ,
	}
}

// Len returns the encoded length of the frame.
func (b *FrameBuffer) Len() protocol.ByteCount {
	return protocol.ByteCount(len(b.Data))
}

// A RecvFrame is the received slice of a STREAM frame, handed to the
// inbound queue for reassembly. Data is a copy, not a view of the packet.
type RecvFrame struct {
	Stream *Stream
	Offset protocol.ByteCount
	Fin    bool
	Data   []byte
}
