package quicwire

import (
	"errors"
	"fmt"
	"time"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/internal/wire"
	"github.com/quicwire/quicwire/quicvarint"
)

// ErrInfo names the stream and the application error code for RESET_STREAM
// and STOP_SENDING.
type ErrInfo struct {
	StreamID protocol.StreamID
	ErrCode  uint64
}

// StreamInfo carries a send request for a STREAM frame.
type StreamInfo struct {
	Stream *Stream
	Data   []byte
	// Fin requests the FIN bit. It is only set on the wire if the whole
	// remaining message fits into the frame.
	Fin bool
}

var errUnknownPayload = errors.New("invalid payload for frame type")

// CreateFrame encodes one outbound frame of the given type.
//
// Side effects commit before the buffer is returned: a STREAM frame advances
// the stream's send offset, NEW_CONNECTION_ID appends to the source set, and
// RETIRE_CONNECTION_ID removes from the destination set. On error no buffer
// is returned and the caller must not retry without reconstructing the
// inputs.
func (c *Conn) CreateFrame(typ wire.FrameType, data any) (*FrameBuffer, error) {
	if !typ.IsValid() {
		return nil, fmt.Errorf("cannot create frame of unknown type %#x", uint8(typ))
	}
	b, err := c.createFrame(typ, data)
	if err != nil {
		c.logger.Errorf("frame create failed %#x: %s", uint8(typ), err)
		return nil, err
	}
	if b.FrameType == 0 {
		b.FrameType = typ
	}
	c.logger.Debugf("frame create %#x", uint8(b.FrameType))
	if c.tracer != nil {
		c.tracer.CreatedFrame(b.FrameType, b.Len())
	}
	return b, nil
}

func (c *Conn) createFrame(typ wire.FrameType, data any) (*FrameBuffer, error) {
	if typ.IsStreamFrameType() {
		info, ok := data.(*StreamInfo)
		if !ok {
			return nil, errUnknownPayload
		}
		return c.createStream(info)
	}
	switch typ {
	case wire.PaddingFrameType:
		size, ok := data.(protocol.ByteCount)
		if !ok {
			return nil, errUnknownPayload
		}
		return c.appendFrame(typ, &wire.PaddingFrame{Size: size})
	case wire.PingFrameType:
		return c.appendFrame(typ, &wire.PingFrame{})
	case wire.AckFrameType, wire.AckECNFrameType:
		return c.createAck()
	case wire.ResetStreamFrameType:
		info, ok := data.(ErrInfo)
		if !ok {
			return nil, errUnknownPayload
		}
		return c.createResetStream(info)
	case wire.StopSendingFrameType:
		info, ok := data.(ErrInfo)
		if !ok {
			return nil, errUnknownPayload
		}
		return c.appendFrame(typ, &wire.StopSendingFrame{
			StreamID:  info.StreamID,
			ErrorCode: protocol.StreamErrorCode(info.ErrCode),
		})
	case wire.CryptoFrameType:
		ticket, ok := data.([]byte)
		if !ok {
			return nil, errUnknownPayload
		}
		// only session tickets are carried here, always at offset zero
		return c.appendFrame(typ, &wire.CryptoFrame{Offset: 0, Data: ticket})
	case wire.NewTokenFrameType:
		token, ok := data.([]byte)
		if !ok {
			return nil, errUnknownPayload
		}
		return c.appendFrame(typ, &wire.NewTokenFrame{Token: token})
	case wire.MaxDataFrameType:
		return c.appendFrame(typ, &wire.MaxDataFrame{MaximumData: c.inq.MaxBytes()})
	case wire.MaxStreamDataFrameType:
		stream, ok := data.(*Stream)
		if !ok {
			return nil, errUnknownPayload
		}
		return c.appendFrame(typ, &wire.MaxStreamDataFrame{
			StreamID:          stream.ID,
			MaximumStreamData: stream.Recv.MaxBytes,
		})
	case wire.BidiMaxStreamsFrameType, wire.UniMaxStreamsFrameType:
		max, ok := data.(uint64)
		if !ok {
			return nil, errUnknownPayload
		}
		stype := protocol.StreamTypeBidi
		if typ == wire.UniMaxStreamsFrameType {
			stype = protocol.StreamTypeUni
		}
		return c.appendFrame(typ, &wire.MaxStreamsFrame{Type: stype, MaxStreamNum: max})
	case wire.DataBlockedFrameType:
		return c.appendFrame(typ, &wire.DataBlockedFrame{MaximumData: c.outq.MaxBytes()})
	case wire.StreamDataBlockedFrameType:
		stream, ok := data.(*Stream)
		if !ok {
			return nil, errUnknownPayload
		}
		return c.appendFrame(typ, &wire.StreamDataBlockedFrame{
			StreamID:          stream.ID,
			MaximumStreamData: stream.Send.MaxBytes,
		})
	case wire.BidiStreamsBlockedFrameType, wire.UniStreamsBlockedFrameType:
		limit, ok := data.(uint64)
		if !ok {
			return nil, errUnknownPayload
		}
		stype := protocol.StreamTypeBidi
		if typ == wire.UniStreamsBlockedFrameType {
			stype = protocol.StreamTypeUni
		}
		// The limit arrives as a stream ID; the wire carries a stream count.
		// Verify against RFC 9000 §19.14 before interop.
		return c.appendFrame(typ, &wire.StreamsBlockedFrame{
			Type:        stype,
			StreamLimit: (limit >> 2) + 1,
		})
	case wire.NewConnectionIDFrameType:
		prior, ok := data.(uint64)
		if !ok {
			return nil, errUnknownPayload
		}
		return c.createNewConnectionID(prior)
	case wire.RetireConnectionIDFrameType:
		seq, ok := data.(uint64)
		if !ok {
			return nil, errUnknownPayload
		}
		return c.createRetireConnectionID(seq)
	case wire.PathChallengeFrameType:
		path, ok := data.(*PathAddr)
		if !ok {
			return nil, errUnknownPayload
		}
		return c.createPathChallenge(path)
	case wire.PathResponseFrameType:
		entropy, ok := data.([8]byte)
		if !ok {
			return nil, errUnknownPayload
		}
		return c.appendFrame(typ, &wire.PathResponseFrame{Data: entropy})
	case wire.ConnectionCloseFrameType, wire.ApplicationCloseFrameType:
		return c.createConnectionClose(typ)
	case wire.HandshakeDoneFrameType:
		return c.appendFrame(typ, &wire.HandshakeDoneFrame{})
	default:
		return nil, fmt.Errorf("cannot create frame of type %#x", uint8(typ))
	}
}

// appendFrame encodes a side-effect-free frame into a fresh buffer.
func (c *Conn) appendFrame(typ wire.FrameType, f wire.Frame) (*FrameBuffer, error) {
	buf := newFrameBuffer(typ)
	data, err := f.Append(buf.Data)
	if err != nil {
		return nil, err
	}
	buf.Data = data
	return buf, nil
}

// createAck builds an ACK frame from the packet number map.
// ECN counts are never emitted, so the frame type is always 0x02.
func (c *Conn) createAck() (*FrameBuffer, error) {
	var gabs [protocol.MaxAckGaps]GapAckBlock
	numGabs := c.pnMap.GapBlocks(gabs[:])

	largest := c.pnMap.MaxPacketSeen()
	smallest := c.pnMap.MinPacketSeen()
	base := c.pnMap.BasePacket()
	if numGabs > 0 {
		smallest = base + gabs[numGabs-1].End
	}

	delay := time.Since(c.pnMap.MaxPacketTime())

	f := &wire.AckFrame{
		DelayTime:        delay,
		AckDelayExponent: c.outq.AckDelayExponent(),
	}
	f.AckRanges = append(f.AckRanges, wire.AckRange{Smallest: smallest, Largest: largest})
	if numGabs > 0 {
		for i := numGabs - 1; i > 0; i-- {
			f.AckRanges = append(f.AckRanges, wire.AckRange{
				Smallest: base + gabs[i-1].End,
				Largest:  base + gabs[i].Start - 2,
			})
		}
		f.AckRanges = append(f.AckRanges, wire.AckRange{
			Smallest: base,
			Largest:  base + gabs[0].Start - 2,
		})
	}
	return c.appendFrame(wire.AckFrameType, f)
}

// createStream encodes as much of info.Data as fits into the packet budget.
// The OFF bit is set iff the stream's send offset is non-zero; the LEN bit is
// always set; the FIN bit survives only if the whole message fits.
// On success the stream's send offset advances by the number of bytes taken.
func (c *Conn) createStream(info *StreamInfo) (*FrameBuffer, error) {
	stream := info.Stream
	maxFrameLen := c.maxPayload()

	hlen := protocol.ByteCount(1 + quicvarint.Len(uint64(stream.ID)))
	if stream.Send.Offset > 0 {
		hlen += protocol.ByteCount(quicvarint.Len(uint64(stream.Send.Offset)))
	}
	hlen += protocol.ByteCount(quicvarint.Len(uint64(maxFrameLen)))
	if maxFrameLen <= hlen {
		return nil, errors.New("packet payload budget cannot fit a stream frame header")
	}

	msgLen := protocol.ByteCount(len(info.Data))
	fin := false
	if msgLen <= maxFrameLen-hlen {
		fin = info.Fin
	} else {
		msgLen = maxFrameLen - hlen
	}

	f := &wire.StreamFrame{
		StreamID:       stream.ID,
		Offset:         stream.Send.Offset,
		Data:           info.Data[:msgLen],
		Fin:            fin,
		DataLenPresent: true,
	}
	buf := newFrameBuffer(f.Type())
	data, err := f.Append(buf.Data)
	if err != nil {
		return nil, err
	}
	buf.Data = data
	buf.Stream = stream
	buf.StreamOffset = stream.Send.Offset
	buf.DataBytes = msgLen

	stream.Send.Offset += msgLen
	return buf, nil
}

// createResetStream encodes a RESET_STREAM with the stream's current send
// offset as the final size. If the stream owns the send path, it gives it up
// so another stream can take over.
func (c *Conn) createResetStream(info ErrInfo) (*FrameBuffer, error) {
	stream := c.streams.Find(info.StreamID)
	if stream == nil {
		return nil, fmt.Errorf("stream %d does not exist", info.StreamID)
	}
	buf, err := c.appendFrame(wire.ResetStreamFrameType, &wire.ResetStreamFrame{
		StreamID:  info.StreamID,
		ErrorCode: protocol.StreamErrorCode(info.ErrCode),
		FinalSize: stream.Send.Offset,
	})
	if err != nil {
		return nil, err
	}
	buf.Stream = stream
	buf.ErrCode = info.ErrCode

	send := c.streams.Send()
	if send.ActiveStream == int64(stream.ID) {
		send.ActiveStream = NoActiveStream
	}
	return buf, nil
}

// createNewConnectionID issues the next connection ID in sequence.
// The new ID is appended to the source set before the frame is returned;
// if the append fails, the frame is dropped.
func (c *Conn) createNewConnectionID(prior uint64) (*FrameBuffer, error) {
	seqno := c.source.LastNumber() + 1

	connID := make(protocol.ConnectionID, protocol.ConnectionIDLen)
	if err := c.randBytes(connID); err != nil {
		return nil, err
	}
	token := c.resetter.GetStatelessResetToken(connID)

	buf, err := c.appendFrame(wire.NewConnectionIDFrameType, &wire.NewConnectionIDFrame{
		SequenceNumber:      seqno,
		RetirePriorTo:       prior,
		ConnectionID:        connID,
		StatelessResetToken: token,
	})
	if err != nil {
		return nil, err
	}
	if err := c.source.Append(ConnIDEntry{
		SequenceNumber:      seqno,
		ConnectionID:        connID,
		StatelessResetToken: token,
	}); err != nil {
		return nil, err
	}
	return buf, nil
}

// createRetireConnectionID drops the retired ID from the destination set
// before the frame is returned.
func (c *Conn) createRetireConnectionID(seqno uint64) (*FrameBuffer, error) {
	buf, err := c.appendFrame(wire.RetireConnectionIDFrameType, &wire.RetireConnectionIDFrame{
		SequenceNumber: seqno,
	})
	if err != nil {
		return nil, err
	}
	if err := c.dest.Remove(seqno); err != nil {
		return nil, err
	}
	return buf, nil
}

// createPathChallenge draws fresh entropy into the path state and echoes it
// in the frame.
func (c *Conn) createPathChallenge(path *PathAddr) (*FrameBuffer, error) {
	if err := c.randBytes(path.Entropy[:]); err != nil {
		return nil, err
	}
	return c.appendFrame(wire.PathChallengeFrameType, &wire.PathChallengeFrame{Data: path.Entropy})
}

// createConnectionClose takes the error code, offending frame type and
// phrase from the outbound queue's close state.
func (c *Conn) createConnectionClose(typ wire.FrameType) (*FrameBuffer, error) {
	f := &wire.ConnectionCloseFrame{
		IsApplicationError: typ == wire.ApplicationCloseFrameType,
		ErrorCode:          c.outq.CloseErrorCode(),
		ReasonPhrase:       c.outq.ClosePhrase(),
	}
	if !f.IsApplicationError {
		f.FrameType = c.outq.CloseFrameType()
	}
	buf, err := c.appendFrame(typ, f)
	if err != nil {
		return nil, err
	}
	buf.FrameType = typ
	buf.ErrCode = f.ErrorCode
	return buf, nil
}
