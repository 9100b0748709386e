package wire

import (
	"errors"
	"io"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/quicvarint"
)

// A StreamFrame of QUIC.
// The STREAM frame family occupies the type bytes 0x8 to 0xf,
// with the three low bits carrying the OFF, LEN and FIN flags.
type StreamFrame struct {
	StreamID       protocol.StreamID
	Offset         protocol.ByteCount
	Data           []byte
	Fin            bool
	DataLenPresent bool
}

func parseStreamFrame(b []byte, typ FrameType) (*StreamFrame, int, error) {
	startLen := len(b)
	hasOffset := typ&StreamBitOff != 0
	fin := typ&StreamBitFin != 0
	hasDataLen := typ&StreamBitLen != 0

	streamID, l, err := quicvarint.Parse(b)
	if err != nil {
		return nil, 0, replaceUnexpectedEOF(err)
	}
	b = b[l:]
	var offset uint64
	if hasOffset {
		offset, l, err = quicvarint.Parse(b)
		if err != nil {
			return nil, 0, replaceUnexpectedEOF(err)
		}
		b = b[l:]
	}

	var dataLen uint64
	if hasDataLen {
		dataLen, l, err = quicvarint.Parse(b)
		if err != nil {
			return nil, 0, replaceUnexpectedEOF(err)
		}
		b = b[l:]
		if dataLen > uint64(len(b)) {
			return nil, 0, io.EOF
		}
	} else {
		// The rest of the packet is data
		dataLen = uint64(len(b))
	}

	frame := &StreamFrame{
		StreamID:       protocol.StreamID(streamID),
		Offset:         protocol.ByteCount(offset),
		Fin:            fin,
		DataLenPresent: hasDataLen,
	}
	if dataLen != 0 {
		frame.Data = make([]byte, dataLen)
		copy(frame.Data, b)
		b = b[dataLen:]
	}
	if frame.Offset+frame.DataLen() > protocol.MaxByteCount {
		return nil, 0, errors.New("stream data overflows maximum offset")
	}
	return frame, startLen - len(b), nil
}

// Type returns the frame's type byte, with the subflag bits filled in.
// The OFF bit is set iff the frame carries a non-zero offset.
func (f *StreamFrame) Type() FrameType {
	typ := StreamFrameType
	if f.Offset != 0 {
		typ |= StreamBitOff
	}
	if f.DataLenPresent {
		typ |= StreamBitLen
	}
	if f.Fin {
		typ |= StreamBitFin
	}
	return typ
}

func (f *StreamFrame) Append(b []byte) ([]byte, error) {
	if len(f.Data) == 0 && !f.Fin {
		return nil, errors.New("StreamFrame: attempting to write empty frame without FIN")
	}

	b = append(b, byte(f.Type()))
	b = quicvarint.Append(b, uint64(f.StreamID))
	if f.Offset != 0 {
		b = quicvarint.Append(b, uint64(f.Offset))
	}
	if f.DataLenPresent {
		b = quicvarint.Append(b, uint64(f.DataLen()))
	}
	b = append(b, f.Data...)
	return b, nil
}

// Length returns the total length of the STREAM frame
func (f *StreamFrame) Length() protocol.ByteCount {
	length := 1 + quicvarint.Len(uint64(f.StreamID))
	if f.Offset != 0 {
		length += quicvarint.Len(uint64(f.Offset))
	}
	if f.DataLenPresent {
		length += quicvarint.Len(uint64(f.DataLen()))
	}
	return protocol.ByteCount(length) + f.DataLen()
}

// DataLen gives the length of data in bytes
func (f *StreamFrame) DataLen() protocol.ByteCount {
	return protocol.ByteCount(len(f.Data))
}

// MaxDataLen returns the maximum data length this frame can carry if the
// whole frame must not exceed maxSize bytes.
// If 0 is returned, writing will fail (a STREAM frame must contain at least
// 1 byte of data, unless it carries a FIN).
func (f *StreamFrame) MaxDataLen(maxSize protocol.ByteCount) protocol.ByteCount {
	headerLen := 1 + protocol.ByteCount(quicvarint.Len(uint64(f.StreamID)))
	if f.Offset != 0 {
		headerLen += protocol.ByteCount(quicvarint.Len(uint64(f.Offset)))
	}
	if f.DataLenPresent {
		// Pretend that the data size will be 1 byte.
		// If it turns out that varint encoding the length will consume 2
		// bytes, we need to adjust the data length afterward.
		headerLen++
	}
	if headerLen > maxSize {
		return 0
	}
	maxDataLen := maxSize - headerLen
	if f.DataLenPresent && quicvarint.Len(uint64(maxDataLen)) != 1 {
		maxDataLen--
	}
	return maxDataLen
}
