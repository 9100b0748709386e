package quicwire

import (
	"fmt"

	"github.com/quicwire/quicwire/internal/protocol"
)

// SendStreamState is the state of the send side of a stream (RFC 9000 §3.1).
type SendStreamState uint8

const (
	SendStreamReady SendStreamState = iota
	SendStreamSend
	SendStreamDataSent
	SendStreamResetSent
	SendStreamDataRecvd
	SendStreamResetRecvd
)

// RecvStreamState is the state of the receive side of a stream (RFC 9000 §3.2).
type RecvStreamState uint8

const (
	RecvStreamRecv RecvStreamState = iota
	RecvStreamSizeKnown
	RecvStreamDataRecvd
	RecvStreamResetRecvd
	RecvStreamDataRead
	RecvStreamResetRead
)

// StreamSend is the send-side state of a stream.
type StreamSend struct {
	Offset      protocol.ByteCount
	MaxBytes    protocol.ByteCount
	DataBlocked bool
	State       SendStreamState
}

// StreamRecv is the receive-side state of a stream.
type StreamRecv struct {
	MaxBytes protocol.ByteCount
	Bytes    protocol.ByteCount
	Window   protocol.ByteCount
	State    RecvStreamState
}

// A Stream is the per-stream record the frame core operates on.
type Stream struct {
	ID   protocol.StreamID
	Send StreamSend
	Recv StreamRecv
}

// NoActiveStream marks that no stream currently owns the send path.
const NoActiveStream int64 = -1

// StreamLimits holds one direction's stream-count state.
type StreamLimits struct {
	MaxStreamsBidi uint64
	MaxStreamsUni  uint64
	StreamsBidi    uint64
	StreamsUni     uint64

	// ActiveStream is the stream currently owning the send path,
	// or NoActiveStream.
	ActiveStream int64

	// The next stream IDs a woken writer may create, derived from the
	// peer's MAX_STREAMS announcements.
	NextBidiStreamID protocol.StreamID
	NextUniStreamID  protocol.StreamID
}

// A StreamMap is an in-memory stream table.
type StreamMap struct {
	streams map[protocol.StreamID]*Stream

	send StreamLimits
	recv StreamLimits

	// flow control defaults for newly created streams
	sendMaxBytes protocol.ByteCount
	recvWindow   protocol.ByteCount
}

var _ StreamTable = &StreamMap{}

// NewStreamMap creates a stream table.
// sendMaxBytes and recvWindow are the per-stream flow control defaults from
// the transport parameters.
func NewStreamMap(maxStreamsBidi, maxStreamsUni uint64, sendMaxBytes, recvWindow protocol.ByteCount) *StreamMap {
	return &StreamMap{
		streams: make(map[protocol.StreamID]*Stream),
		send: StreamLimits{
			MaxStreamsBidi: maxStreamsBidi,
			MaxStreamsUni:  maxStreamsUni,
			StreamsBidi:    maxStreamsBidi,
			StreamsUni:     maxStreamsUni,
			ActiveStream:   NoActiveStream,
		},
		recv: StreamLimits{
			MaxStreamsBidi: maxStreamsBidi,
			MaxStreamsUni:  maxStreamsUni,
			StreamsBidi:    maxStreamsBidi,
			StreamsUni:     maxStreamsUni,
			ActiveStream:   NoActiveStream,
		},
		sendMaxBytes: sendMaxBytes,
		recvWindow:   recvWindow,
	}
}

func (m *StreamMap) Send() *StreamLimits { return &m.send }
func (m *StreamMap) Recv() *StreamLimits { return &m.recv }

// Find returns the stream, or nil if it doesn't exist.
func (m *StreamMap) Find(id protocol.StreamID) *Stream {
	return m.streams[id]
}

// RecvGet returns the stream, creating it if the peer is allowed to open it.
func (m *StreamMap) RecvGet(id protocol.StreamID, isServer bool) (*Stream, error) {
	if s, ok := m.streams[id]; ok {
		return s, nil
	}
	local := protocol.PerspectiveClient
	if isServer {
		local = protocol.PerspectiveServer
	}
	// A peer-initiated stream is created on first sight; a frame for a
	// locally initiated stream that was never opened is a protocol error.
	if id.InitiatedBy() == local {
		return nil, fmt.Errorf("stream %d does not exist", id)
	}
	if err := m.checkLimit(&m.recv, id); err != nil {
		return nil, err
	}
	return m.create(id), nil
}

// SendGet returns the stream for sending, creating it if allowed.
func (m *StreamMap) SendGet(id protocol.StreamID, isServer bool) (*Stream, error) {
	if s, ok := m.streams[id]; ok {
		return s, nil
	}
	local := protocol.PerspectiveClient
	if isServer {
		local = protocol.PerspectiveServer
	}
	// Receiving STOP_SENDING for a peer-initiated receive-only stream
	// makes no sense; only bidirectional peer streams have a send side.
	if id.InitiatedBy() != local && id.IsUniDirectional() {
		return nil, fmt.Errorf("no send side on stream %d", id)
	}
	if id.InitiatedBy() == local {
		if err := m.checkLimit(&m.send, id); err != nil {
			return nil, err
		}
	}
	return m.create(id), nil
}

func (m *StreamMap) checkLimit(limits *StreamLimits, id protocol.StreamID) error {
	max := limits.MaxStreamsBidi
	if id.IsUniDirectional() {
		max = limits.MaxStreamsUni
	}
	if id.StreamNum() > max {
		return fmt.Errorf("stream %d exceeds stream limit", id)
	}
	return nil
}

func (m *StreamMap) create(id protocol.StreamID) *Stream {
	s := &Stream{
		ID: id,
		Send: StreamSend{
			MaxBytes: m.sendMaxBytes,
		},
		Recv: StreamRecv{
			Window:   m.recvWindow,
			MaxBytes: m.recvWindow,
		},
	}
	m.streams[id] = s
	return s
}
