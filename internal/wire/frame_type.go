package wire

import "fmt"

// A FrameType is the type byte of a QUIC frame.
// Only the base range 0x00..0x1e is carried by this core;
// the type is always encoded as a single octet.
type FrameType uint8

// The constants need to match the ones from RFC 9000.
// This allows us to easily convert a FrameType into the corresponding byte.
const (
	PaddingFrameType     FrameType = 0x0
	PingFrameType        FrameType = 0x1
	AckFrameType         FrameType = 0x2
	AckECNFrameType      FrameType = 0x3
	ResetStreamFrameType FrameType = 0x4
	StopSendingFrameType FrameType = 0x5
	CryptoFrameType      FrameType = 0x6
	NewTokenFrameType    FrameType = 0x7

	// 0x8 to 0xf are STREAM frames, with the three low bits carrying
	// the OFF, LEN and FIN flags.
	StreamFrameType FrameType = 0x8

	MaxDataFrameType            FrameType = 0x10
	MaxStreamDataFrameType      FrameType = 0x11
	BidiMaxStreamsFrameType     FrameType = 0x12
	UniMaxStreamsFrameType      FrameType = 0x13
	DataBlockedFrameType        FrameType = 0x14
	StreamDataBlockedFrameType  FrameType = 0x15
	BidiStreamsBlockedFrameType FrameType = 0x16
	UniStreamsBlockedFrameType  FrameType = 0x17
	NewConnectionIDFrameType    FrameType = 0x18
	RetireConnectionIDFrameType FrameType = 0x19
	PathChallengeFrameType      FrameType = 0x1a
	PathResponseFrameType       FrameType = 0x1b
	ConnectionCloseFrameType    FrameType = 0x1c
	ApplicationCloseFrameType   FrameType = 0x1d
	HandshakeDoneFrameType      FrameType = 0x1e

	// MaxFrameType is the highest type byte handled by this core.
	MaxFrameType FrameType = HandshakeDoneFrameType
)

// The STREAM frame subflag bits.
const (
	StreamBitFin FrameType = 0x1
	StreamBitLen FrameType = 0x2
	StreamBitOff FrameType = 0x4
)

func (t FrameType) String() string {
	if t.IsStreamFrameType() {
		return "stream"
	}
	switch t {
	case PaddingFrameType:
		return "padding"
	case PingFrameType:
		return "ping"
	case AckFrameType:
		return "ack"
	case AckECNFrameType:
		return "ack_ecn"
	case ResetStreamFrameType:
		return "reset_stream"
	case StopSendingFrameType:
		return "stop_sending"
	case CryptoFrameType:
		return "crypto"
	case NewTokenFrameType:
		return "new_token"
	case MaxDataFrameType:
		return "max_data"
	case MaxStreamDataFrameType:
		return "max_stream_data"
	case BidiMaxStreamsFrameType:
		return "max_streams_bidi"
	case UniMaxStreamsFrameType:
		return "max_streams_uni"
	case DataBlockedFrameType:
		return "data_blocked"
	case StreamDataBlockedFrameType:
		return "stream_data_blocked"
	case BidiStreamsBlockedFrameType:
		return "streams_blocked_bidi"
	case UniStreamsBlockedFrameType:
		return "streams_blocked_uni"
	case NewConnectionIDFrameType:
		return "new_connection_id"
	case RetireConnectionIDFrameType:
		return "retire_connection_id"
	case PathChallengeFrameType:
		return "path_challenge"
	case PathResponseFrameType:
		return "path_response"
	case ConnectionCloseFrameType:
		return "connection_close"
	case ApplicationCloseFrameType:
		return "application_close"
	case HandshakeDoneFrameType:
		return "handshake_done"
	default:
		return fmt.Sprintf("unknown_%#x", uint8(t))
	}
}

// IsValid says if the type byte is within the handled base range.
func (t FrameType) IsValid() bool {
	return t <= MaxFrameType
}

// IsStreamFrameType says if this is a STREAM frame type (0x8 to 0xf).
func (t FrameType) IsStreamFrameType() bool {
	return t&0xf8 == 0x8
}

// IsAckEliciting says if a frame of this type mandates that the peer
// eventually sends an ACK.
func (t FrameType) IsAckEliciting() bool {
	switch t {
	case PaddingFrameType, AckFrameType, AckECNFrameType,
		ConnectionCloseFrameType, ApplicationCloseFrameType:
		return false
	default:
		return true
	}
}

// IsAckImmediate says if a frame of this type demands an immediate ACK,
// rather than one on the delayed-ACK schedule.
func (t FrameType) IsAckImmediate() bool {
	if t.IsStreamFrameType() {
		return true
	}
	switch t {
	case ResetStreamFrameType, StopSendingFrameType, CryptoFrameType,
		NewTokenFrameType, HandshakeDoneFrameType:
		return true
	default:
		return false
	}
}

// IsNonProbing says if a frame of this type, received from a new address,
// confirms the peer's reachability on the new path.
func (t FrameType) IsNonProbing() bool {
	switch t {
	case PaddingFrameType, PathChallengeFrameType, PathResponseFrameType,
		NewConnectionIDFrameType:
		return false
	default:
		return true
	}
}
