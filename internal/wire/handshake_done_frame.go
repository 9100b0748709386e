package wire

import "github.com/quicwire/quicwire/internal/protocol"

// A HandshakeDoneFrame is a HANDSHAKE_DONE frame
type HandshakeDoneFrame struct{}

func (f *HandshakeDoneFrame) Append(b []byte) ([]byte, error) {
	return append(b, byte(HandshakeDoneFrameType)), nil
}

// Length of a written frame
func (f *HandshakeDoneFrame) Length() protocol.ByteCount {
	return 1
}
