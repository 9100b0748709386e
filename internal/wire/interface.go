package wire

import (
	"github.com/quicwire/quicwire/internal/protocol"
)

// A Frame in QUIC
type Frame interface {
	Append(b []byte) ([]byte, error)
	Length() protocol.ByteCount
}
