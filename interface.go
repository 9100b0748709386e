package quicwire

import (
	"net"
	"time"

	"github.com/quicwire/quicwire/internal/protocol"
)

// A GapAckBlock is a run of missing packet numbers between two acknowledged
// runs. End >= Start; offset 1 is the base packet, so the missing packet
// numbers are BasePacket()+Start-1 through BasePacket()+End-1.
type GapAckBlock struct {
	Start protocol.PacketNumber
	End   protocol.PacketNumber
}

// A PacketNumberMap tracks the packet numbers received on a path.
// ACK frames are generated from its state.
type PacketNumberMap interface {
	MaxPacketSeen() protocol.PacketNumber
	MinPacketSeen() protocol.PacketNumber
	// MaxPacketTime is the arrival time of the highest packet seen.
	MaxPacketTime() time.Time
	BasePacket() protocol.PacketNumber
	// GapBlocks fills gabs, lowest block first, and returns the number of
	// blocks written. It writes at most len(gabs) blocks.
	GapBlocks(gabs []GapAckBlock) int
}

// An OutboundQueue owns sent-but-unacknowledged frames and the send-side
// connection flow control state.
type OutboundQueue interface {
	AckDelayExponent() uint8

	CloseErrorCode() uint64
	CloseFrameType() uint64
	ClosePhrase() string

	MaxBytes() protocol.ByteCount
	SetMaxBytes(protocol.ByteCount)
	DataBlocked() bool
	SetDataBlocked(bool)

	// RetransmitCheck releases the packets in [smallest, largest] from the
	// retransmission queue. For the first range of an ACK frame, ackPn and
	// delay carry the largest acknowledged packet and the ACK delay that seed
	// the RTT estimator; for the other ranges both are zero.
	RetransmitCheck(largest, smallest, ackPn protocol.PacketNumber, delay time.Duration)

	// CtrlTail appends a control frame to the outbound queue.
	// FIFO order is preserved for frames enqueued from within a decoder.
	CtrlTail(f *FrameBuffer, urgent bool) error
}

// An InboundQueue owns the reassembly queue and the receive-side connection
// flow control state.
type InboundQueue interface {
	MaxBytes() protocol.ByteCount
	SetMaxBytes(protocol.ByteCount)
	Bytes() protocol.ByteCount
	Window() protocol.ByteCount

	// ReassembleTail hands a received STREAM frame to the reassembly queue.
	ReassembleTail(f *RecvFrame) error
}

// A StreamTable looks up and creates streams.
type StreamTable interface {
	// Find returns the stream, or nil if it doesn't exist.
	Find(id protocol.StreamID) *Stream
	// RecvGet returns the stream, creating it if the peer is allowed to open it.
	RecvGet(id protocol.StreamID, isServer bool) (*Stream, error)
	// SendGet returns the stream for sending, creating it if allowed.
	SendGet(id protocol.StreamID, isServer bool) (*Stream, error)

	Send() *StreamLimits
	Recv() *StreamLimits
}

// ConnState is the connection state visible to the socket layer.
type ConnState uint8

const (
	ConnStateClosed ConnState = iota
	ConnStateListening
	ConnStateEstablishing
	ConnStateEstablished
	// ConnStateUserClosed is entered when a CONNECTION_CLOSE arrives;
	// blocked readers are woken and observe the socket error.
	ConnStateUserClosed
)

// A Socket receives the connection-level events the frame core triggers.
type Socket interface {
	SetError(err error)
	SetState(state ConnState)
	// StateChange wakes waiters blocked on a state transition.
	StateChange()
	// WriteSpace wakes writers blocked on stream limits.
	WriteSpace()
	// SetAddr rebinds the local (local=true) or peer address.
	SetAddr(addr net.Addr, local bool)
	// ReleaseAltSocket drops the UDP socket bound to the abandoned
	// local address after path validation completes.
	ReleaseAltSocket()
}

// A PacketContext exposes the size budget of the packet under construction.
type PacketContext interface {
	MaxPayload() protocol.ByteCount
}
