package quicwire

import (
	"errors"
	"syscall"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/internal/qerr"
	"github.com/quicwire/quicwire/internal/utils"
	"github.com/quicwire/quicwire/internal/wire"
)

// PacketInfo accumulates the per-packet flags the ACK scheduler consumes.
// The flags start out false and are only ever set during the frame loop.
type PacketInfo struct {
	AckEliciting bool
	AckImmediate bool
	NonProbing   bool
}

// ProcessPayload iterates the frames of a decrypted packet payload, applying
// each frame's side effects in wire order.
//
// On error the packet is abandoned immediately; the outer cursor is never
// partially advanced past a broken frame.
func (c *Conn) ProcessPayload(b []byte, pki *PacketInfo) error {
	if len(b) == 0 {
		return &qerr.TransportError{
			ErrorCode:    qerr.ProtocolViolation,
			ErrorMessage: "empty packet payload",
		}
	}
	for len(b) > 0 {
		typ, frame, n, err := c.parser.ParseNext(b)
		if err != nil {
			if !typ.IsValid() {
				utils.ErrorfOnce(c.logger, "unsupported-frame", "frame err: unsupported frame %#x", uint8(typ))
				framesRejected.WithLabelValues("unsupported").Inc()
			} else {
				c.logger.Errorf("frame err %#x: %s", uint8(typ), err)
				framesRejected.WithLabelValues("invalid").Inc()
			}
			return err
		}
		c.logger.Debugf("frame process %#x", uint8(typ))
		if frame != nil {
			wire.LogFrame(c.logger, frame, false)
		}
		if err := c.handleFrame(typ, frame, pki); err != nil {
			c.logger.Errorf("frame err %#x: %s", uint8(typ), err)
			framesRejected.WithLabelValues(rejectReason(err)).Inc()
			return err
		}
		framesProcessed.WithLabelValues(frameTypeLabel(typ)).Inc()
		if c.tracer != nil {
			c.tracer.ProcessedFrame(typ, protocol.ByteCount(n))
		}

		if typ.IsAckEliciting() {
			pki.AckEliciting = true
			if typ.IsAckImmediate() {
				pki.AckImmediate = true
			}
		}
		if typ.IsNonProbing() {
			pki.NonProbing = true
		}
		b = b[n:]
	}
	if c.tracer != nil {
		c.tracer.ProcessedPacket(pki.AckEliciting, pki.AckImmediate, pki.NonProbing)
	}
	return nil
}

func rejectReason(err error) string {
	var te *qerr.TransportError
	if errors.As(err, &te) {
		return "invalid"
	}
	return "internal"
}

func (c *Conn) handleFrame(typ wire.FrameType, frame wire.Frame, pki *PacketInfo) error {
	if frame == nil { // PADDING
		return nil
	}
	switch f := frame.(type) {
	case *wire.PingFrame, *wire.HandshakeDoneFrame:
		return nil
	case *wire.AckFrame:
		return c.handleAckFrame(f, typ)
	case *wire.StreamFrame:
		return c.handleStreamFrame(f)
	case *wire.CryptoFrame:
		return c.handleCryptoFrame(f)
	case *wire.NewTokenFrame:
		c.token = f.Token
		return nil
	case *wire.ResetStreamFrame:
		return c.handleResetStreamFrame(f)
	case *wire.StopSendingFrame:
		return c.handleStopSendingFrame(f)
	case *wire.MaxDataFrame:
		c.handleMaxDataFrame(f)
		return nil
	case *wire.MaxStreamDataFrame:
		return c.handleMaxStreamDataFrame(f)
	case *wire.MaxStreamsFrame:
		c.handleMaxStreamsFrame(f)
		return nil
	case *wire.DataBlockedFrame:
		return c.handleDataBlockedFrame(f)
	case *wire.StreamDataBlockedFrame:
		return c.handleStreamDataBlockedFrame(f)
	case *wire.StreamsBlockedFrame:
		return c.handleStreamsBlockedFrame(f)
	case *wire.NewConnectionIDFrame:
		return c.handleNewConnectionIDFrame(f)
	case *wire.RetireConnectionIDFrame:
		return c.handleRetireConnectionIDFrame(f)
	case *wire.PathChallengeFrame:
		return c.handlePathChallengeFrame(f)
	case *wire.PathResponseFrame:
		c.handlePathResponseFrame(f, pki)
		return nil
	case *wire.ConnectionCloseFrame:
		c.handleConnectionCloseFrame(f)
		return nil
	default:
		return &qerr.TransportError{
			ErrorCode:    qerr.ProtocolViolation,
			FrameType:    uint64(typ),
			ErrorMessage: "unhandled frame",
		}
	}
}

// handleAckFrame releases acknowledged packets range by range. The first
// range carries the packet number and delay that seed the RTT estimator.
func (c *Conn) handleAckFrame(f *wire.AckFrame, typ wire.FrameType) error {
	for i, r := range f.AckRanges {
		if i == 0 {
			c.outq.RetransmitCheck(r.Largest, r.Smallest, r.Largest, f.DelayTime)
			continue
		}
		c.outq.RetransmitCheck(r.Largest, r.Smallest, 0, 0)
	}
	if typ == wire.AckECNFrameType {
		// TODO: feed the ECN counts into congestion control instead of
		// dropping them.
		ackECNDiscarded.Inc()
	}
	return nil
}

// handleStreamFrame clones the payload out of the packet and hands it to the
// reassembly queue.
func (c *Conn) handleStreamFrame(f *wire.StreamFrame) error {
	stream, err := c.streams.RecvGet(f.StreamID, c.isServer)
	if err != nil {
		return &qerr.TransportError{
			ErrorCode:    qerr.StreamStateError,
			FrameType:    uint64(f.Type()),
			ErrorMessage: err.Error(),
		}
	}
	return c.inq.ReassembleTail(&RecvFrame{
		Stream: stream,
		Offset: f.Offset,
		Fin:    f.Fin,
		Data:   f.Data,
	})
}

// handleCryptoFrame accepts session tickets: a NewSessionTicket handshake
// message at offset zero. Anything else on the crypto stream is not
// expected after the handshake completed.
func (c *Conn) handleCryptoFrame(f *wire.CryptoFrame) error {
	if f.Offset != 0 {
		return &qerr.TransportError{
			ErrorCode:    qerr.ProtocolViolation,
			FrameType:    uint64(wire.CryptoFrameType),
			ErrorMessage: "unexpected crypto stream offset",
		}
	}
	if len(f.Data) == 0 || f.Data[0] != 4 { // TLS NewSessionTicket message type
		return &qerr.TransportError{
			ErrorCode:    qerr.ProtocolViolation,
			FrameType:    uint64(wire.CryptoFrameType),
			ErrorMessage: "expected a NewSessionTicket message",
		}
	}
	c.ticket = f.Data
	return nil
}

func (c *Conn) handleResetStreamFrame(f *wire.ResetStreamFrame) error {
	stream, err := c.streams.RecvGet(f.StreamID, c.isServer)
	if err != nil {
		return &qerr.TransportError{
			ErrorCode:    qerr.StreamStateError,
			FrameType:    uint64(wire.ResetStreamFrameType),
			ErrorMessage: err.Error(),
		}
	}
	stream.Recv.State = RecvStreamResetRecvd
	return nil
}

// handleStopSendingFrame answers with a RESET_STREAM carrying the peer's
// error code.
func (c *Conn) handleStopSendingFrame(f *wire.StopSendingFrame) error {
	stream, err := c.streams.SendGet(f.StreamID, c.isServer)
	if err != nil {
		return &qerr.TransportError{
			ErrorCode:    qerr.StreamStateError,
			FrameType:    uint64(wire.StopSendingFrameType),
			ErrorMessage: err.Error(),
		}
	}
	buf, err := c.CreateFrame(wire.ResetStreamFrameType, ErrInfo{
		StreamID: f.StreamID,
		ErrCode:  uint64(f.ErrorCode),
	})
	if err != nil {
		return err
	}
	stream.Send.State = SendStreamResetSent
	return c.outq.CtrlTail(buf, true)
}

// handleMaxDataFrame raises the send-side connection limit.
// A decrease is ignored.
func (c *Conn) handleMaxDataFrame(f *wire.MaxDataFrame) {
	if f.MaximumData >= c.outq.MaxBytes() {
		c.outq.SetMaxBytes(f.MaximumData)
		c.outq.SetDataBlocked(false)
	}
}

func (c *Conn) handleMaxStreamDataFrame(f *wire.MaxStreamDataFrame) error {
	stream := c.streams.Find(f.StreamID)
	if stream == nil {
		return &qerr.TransportError{
			ErrorCode:    qerr.StreamStateError,
			FrameType:    uint64(wire.MaxStreamDataFrameType),
			ErrorMessage: "unknown stream",
		}
	}
	if f.MaximumStreamData >= stream.Send.MaxBytes {
		stream.Send.MaxBytes = f.MaximumStreamData
		stream.Send.DataBlocked = false
	}
	return nil
}

// handleMaxStreamsFrame raises the stream-count limit and wakes writers
// blocked on it. The next creatable stream ID is derived from the new limit
// so a woken writer can pick it up.
func (c *Conn) handleMaxStreamsFrame(f *wire.MaxStreamsFrame) {
	send := c.streams.Send()
	pers := protocol.PerspectiveClient
	if c.isServer {
		pers = protocol.PerspectiveServer
	}
	switch f.Type {
	case protocol.StreamTypeUni:
		if f.MaxStreamNum < send.MaxStreamsUni {
			return
		}
		send.MaxStreamsUni = f.MaxStreamNum
		send.StreamsUni = f.MaxStreamNum
		send.NextUniStreamID = protocol.MaxStreamID(protocol.StreamTypeUni, f.MaxStreamNum, pers)
	case protocol.StreamTypeBidi:
		if f.MaxStreamNum < send.MaxStreamsBidi {
			return
		}
		send.MaxStreamsBidi = f.MaxStreamNum
		send.StreamsBidi = f.MaxStreamNum
		send.NextBidiStreamID = protocol.MaxStreamID(protocol.StreamTypeBidi, f.MaxStreamNum, pers)
	}
	c.socket.WriteSpace()
}

// handleDataBlockedFrame advances the receive window and announces the new
// limit. If the announcement cannot be built, the window advance is
// reverted.
func (c *Conn) handleDataBlockedFrame(f *wire.DataBlockedFrame) error {
	c.logger.Debugf("peer data blocked at %d", f.MaximumData)
	prev := c.inq.MaxBytes()
	c.inq.SetMaxBytes(c.inq.Bytes() + c.inq.Window())
	buf, err := c.CreateFrame(wire.MaxDataFrameType, nil)
	if err != nil {
		c.inq.SetMaxBytes(prev)
		return err
	}
	return c.outq.CtrlTail(buf, true)
}

func (c *Conn) handleStreamDataBlockedFrame(f *wire.StreamDataBlockedFrame) error {
	stream := c.streams.Find(f.StreamID)
	if stream == nil {
		return &qerr.TransportError{
			ErrorCode:    qerr.StreamStateError,
			FrameType:    uint64(wire.StreamDataBlockedFrameType),
			ErrorMessage: "unknown stream",
		}
	}
	prev := stream.Recv.MaxBytes
	stream.Recv.MaxBytes = stream.Recv.Bytes + stream.Recv.Window
	if prev == stream.Recv.MaxBytes {
		return nil
	}
	buf, err := c.CreateFrame(wire.MaxStreamDataFrameType, stream)
	if err != nil {
		stream.Recv.MaxBytes = prev
		return err
	}
	return c.outq.CtrlTail(buf, true)
}

// handleStreamsBlockedFrame grants the peer's requested stream count if it is
// at least the current receive-side limit: it sends MAX_STREAMS with that
// count and raises the limit to it. A lower count is ignored.
func (c *Conn) handleStreamsBlockedFrame(f *wire.StreamsBlockedFrame) error {
	recv := c.streams.Recv()
	var limit *uint64
	typ := wire.BidiMaxStreamsFrameType
	switch f.Type {
	case protocol.StreamTypeUni:
		limit = &recv.MaxStreamsUni
		typ = wire.UniMaxStreamsFrameType
	case protocol.StreamTypeBidi:
		limit = &recv.MaxStreamsBidi
	}
	if f.StreamLimit < *limit {
		return nil
	}
	buf, err := c.CreateFrame(typ, f.StreamLimit)
	if err != nil {
		return err
	}
	if err := c.outq.CtrlTail(buf, true); err != nil {
		return err
	}
	*limit = f.StreamLimit
	return nil
}

// handleNewConnectionIDFrame appends the peer's new ID and retires
// everything below the Retire Prior To threshold, one RETIRE_CONNECTION_ID
// frame per retired sequence number.
func (c *Conn) handleNewConnectionIDFrame(f *wire.NewConnectionIDFrame) error {
	if f.SequenceNumber != c.dest.LastNumber()+1 {
		return &qerr.TransportError{
			ErrorCode:    qerr.ProtocolViolation,
			FrameType:    uint64(wire.NewConnectionIDFrameType),
			ErrorMessage: "connection ID sequence number gap",
		}
	}
	if err := c.dest.Append(ConnIDEntry{
		SequenceNumber:      f.SequenceNumber,
		ConnectionID:        f.ConnectionID,
		StatelessResetToken: f.StatelessResetToken,
	}); err != nil {
		return err
	}
	for first := c.dest.FirstNumber(); first < f.RetirePriorTo; first++ {
		buf, err := c.CreateFrame(wire.RetireConnectionIDFrameType, first)
		if err != nil {
			return err
		}
		if err := c.outq.CtrlTail(buf, true); err != nil {
			return err
		}
	}
	return nil
}

// handleRetireConnectionIDFrame drops the retired ID and issues a
// replacement, keeping the source set filled up to its capacity.
func (c *Conn) handleRetireConnectionIDFrame(f *wire.RetireConnectionIDFrame) error {
	last := c.source.LastNumber()
	first := c.source.FirstNumber()
	if f.SequenceNumber != first || f.SequenceNumber == last {
		return &qerr.TransportError{
			ErrorCode:    qerr.ProtocolViolation,
			FrameType:    uint64(wire.RetireConnectionIDFrameType),
			ErrorMessage: "retired connection ID is not the oldest issued",
		}
	}
	if err := c.source.Remove(f.SequenceNumber); err != nil {
		return err
	}
	if last-f.SequenceNumber >= uint64(c.source.MaxCount()) {
		return nil
	}
	buf, err := c.CreateFrame(wire.NewConnectionIDFrameType, f.SequenceNumber+1)
	if err != nil {
		return err
	}
	return c.outq.CtrlTail(buf, true)
}

// handlePathChallengeFrame echoes the challenge entropy in a PATH_RESPONSE.
func (c *Conn) handlePathChallengeFrame(f *wire.PathChallengeFrame) error {
	buf, err := c.CreateFrame(wire.PathResponseFrameType, f.Data)
	if err != nil {
		return err
	}
	return c.outq.CtrlTail(buf, true)
}

// handlePathResponseFrame finishes path validation when the echoed entropy
// matches a pending probe. A response matching a probe of the peer's address
// confirms reachability and counts as non-probing for migration purposes.
func (c *Conn) handlePathResponseFrame(f *wire.PathResponseFrame, pki *PacketInfo) {
	if path := &c.srcPath; path.Entropy == f.Data && path.Pending {
		path.Pending = false
		c.socket.ReleaseAltSocket()
		path.clearAlt()
		c.socket.SetAddr(path.ActiveAddr(), true)
	}
	if path := &c.dstPath; path.Entropy == f.Data && path.Pending {
		path.Pending = false
		path.clearAlt()
		c.socket.SetAddr(path.ActiveAddr(), false)
		pki.NonProbing = true
	}
}

// handleConnectionCloseFrame moves the connection to the user-closed state
// and wakes anyone blocked on it.
func (c *Conn) handleConnectionCloseFrame(f *wire.ConnectionCloseFrame) {
	c.socket.SetError(syscall.EPIPE)
	c.socket.SetState(ConnStateUserClosed)
	c.socket.StateChange()
}
