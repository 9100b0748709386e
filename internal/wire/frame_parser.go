package wire

import (
	"fmt"
	"io"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/internal/qerr"
)

// The FrameParser parses QUIC frames, one by one.
type FrameParser struct {
	ackDelayExponent uint8
	maxAckRanges     int

	// To avoid allocating when parsing, keep a single ACK frame struct.
	// It is used over and over again.
	ackFrame *AckFrame
}

// NewFrameParser creates a new frame parser.
func NewFrameParser() *FrameParser {
	return &FrameParser{
		ackDelayExponent: protocol.DefaultAckDelayExponent,
		maxAckRanges:     protocol.MaxAckGaps,
		ackFrame:         &AckFrame{},
	}
}

// SetAckDelayExponent sets the acknowledgment delay exponent (received in the
// peer's transport parameters). This value is used to scale the ACK Delay
// field in received ACK frames.
func (p *FrameParser) SetAckDelayExponent(exp uint8) {
	p.ackDelayExponent = exp
}

// SetMaxAckRanges sets the limit on the number of additional ACK ranges
// accepted in a received ACK frame.
func (p *FrameParser) SetMaxAckRanges(n int) {
	p.maxAckRanges = n
}

// ParseNext parses the frame at the start of b.
// It returns the frame's type, the parsed frame, and the number of bytes
// consumed, including the type byte. A PADDING run returns a nil Frame and
// consumes the remainder of b.
func (p *FrameParser) ParseNext(b []byte) (FrameType, Frame, int, error) {
	if len(b) == 0 {
		return 0, nil, 0, io.EOF
	}
	typ := FrameType(b[0])
	if !typ.IsValid() {
		return typ, nil, 1, &qerr.TransportError{
			ErrorCode:    qerr.ProtocolViolation,
			FrameType:    uint64(typ),
			ErrorMessage: "unknown frame type",
		}
	}
	if typ == PaddingFrameType {
		// A PADDING run is collapsed: it consumes the rest of the payload.
		return typ, nil, len(b), nil
	}
	frame, l, err := p.parseFrame(typ, b[1:])
	if err != nil {
		return typ, nil, 1 + l, &qerr.TransportError{
			ErrorCode:    qerr.FrameEncodingError,
			FrameType:    uint64(typ),
			ErrorMessage: err.Error(),
		}
	}
	return typ, frame, 1 + l, nil
}

func (p *FrameParser) parseFrame(typ FrameType, b []byte) (Frame, int, error) {
	if typ.IsStreamFrameType() {
		return parseStreamFrame(b, typ)
	}
	switch typ {
	case PingFrameType:
		return &PingFrame{}, 0, nil
	case AckFrameType, AckECNFrameType:
		p.ackFrame.Reset()
		l, err := parseAckFrame(p.ackFrame, b, typ, p.ackDelayExponent, p.maxAckRanges)
		if err != nil {
			return nil, l, err
		}
		return p.ackFrame, l, nil
	case ResetStreamFrameType:
		return parseResetStreamFrame(b)
	case StopSendingFrameType:
		return parseStopSendingFrame(b)
	case CryptoFrameType:
		return parseCryptoFrame(b)
	case NewTokenFrameType:
		return parseNewTokenFrame(b)
	case MaxDataFrameType:
		return parseMaxDataFrame(b)
	case MaxStreamDataFrameType:
		return parseMaxStreamDataFrame(b)
	case BidiMaxStreamsFrameType, UniMaxStreamsFrameType:
		return parseMaxStreamsFrame(b, typ)
	case DataBlockedFrameType:
		return parseDataBlockedFrame(b)
	case StreamDataBlockedFrameType:
		return parseStreamDataBlockedFrame(b)
	case BidiStreamsBlockedFrameType, UniStreamsBlockedFrameType:
		return parseStreamsBlockedFrame(b, typ)
	case NewConnectionIDFrameType:
		return parseNewConnectionIDFrame(b)
	case RetireConnectionIDFrameType:
		return parseRetireConnectionIDFrame(b)
	case PathChallengeFrameType:
		return parsePathChallengeFrame(b)
	case PathResponseFrameType:
		return parsePathResponseFrame(b)
	case ConnectionCloseFrameType, ApplicationCloseFrameType:
		return parseConnectionCloseFrame(b, typ)
	case HandshakeDoneFrameType:
		return &HandshakeDoneFrame{}, 0, nil
	default:
		return nil, 0, fmt.Errorf("unhandled frame type %#x", uint8(typ))
	}
}

func replaceUnexpectedEOF(e error) error {
	if e == io.ErrUnexpectedEOF {
		return io.EOF
	}
	return e
}
