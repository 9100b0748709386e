package quicwire

import (
	"crypto/rand"
	"io"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/internal/utils"
	"github.com/quicwire/quicwire/internal/wire"
	"github.com/quicwire/quicwire/qlog"
)

// DefaultActiveConnectionIDLimit bounds the connection ID sets when the
// config doesn't say otherwise.
const DefaultActiveConnectionIDLimit = 8

// A Config wires a Conn to its collaborators.
// PnMap, OutQ, InQ, Streams, Socket and Packet are required.
type Config struct {
	IsServer bool

	PnMap   PacketNumberMap
	OutQ    OutboundQueue
	InQ     InboundQueue
	Streams StreamTable
	Socket  Socket
	Packet  PacketContext

	// SourceCIDs / DestCIDs may be pre-populated with the handshake
	// connection IDs. Nil sets are created with the default limit.
	SourceCIDs *ConnectionIDSet
	DestCIDs   *ConnectionIDSet

	// StatelessResetKey enables deterministic stateless reset tokens on
	// issued connection IDs.
	StatelessResetKey *StatelessResetKey

	// MaxRecvAckRanges bounds the number of additional ACK ranges accepted
	// in a received ACK frame. The zero value means protocol.MaxAckGaps.
	MaxRecvAckRanges int

	// Rand is the entropy source for connection IDs and path challenges.
	// The zero value means crypto/rand.
	Rand io.Reader

	Logger utils.Logger
	Tracer *qlog.ConnectionTracer
}

// A Conn is the frame-driven control core of one QUIC connection.
//
// All methods must be called under the connection's exclusive lock, held by
// the packet dispatch path; nothing here blocks or suspends.
type Conn struct {
	isServer bool

	pnMap   PacketNumberMap
	outq    OutboundQueue
	inq     InboundQueue
	streams StreamTable
	socket  Socket
	packet  PacketContext

	source *ConnectionIDSet
	dest   *ConnectionIDSet

	srcPath PathAddr
	dstPath PathAddr

	resetter *statelessResetter
	rand     io.Reader
	parser   *wire.FrameParser
	logger   utils.Logger
	tracer   *qlog.ConnectionTracer

	// token is the address validation token received in NEW_TOKEN;
	// ticket is the TLS session ticket received on the crypto stream.
	token  []byte
	ticket []byte
}

// NewConn creates the frame core for one connection.
func NewConn(conf *Config) *Conn {
	c := &Conn{
		isServer: conf.IsServer,
		pnMap:    conf.PnMap,
		outq:     conf.OutQ,
		inq:      conf.InQ,
		streams:  conf.Streams,
		socket:   conf.Socket,
		packet:   conf.Packet,
		source:   conf.SourceCIDs,
		dest:     conf.DestCIDs,
		resetter: newStatelessResetter(conf.StatelessResetKey),
		rand:     conf.Rand,
		parser:   wire.NewFrameParser(),
		logger:   conf.Logger,
		tracer:   conf.Tracer,
	}
	if c.source == nil {
		c.source = NewConnectionIDSet(DefaultActiveConnectionIDLimit)
	}
	if c.dest == nil {
		c.dest = NewConnectionIDSet(DefaultActiveConnectionIDLimit)
	}
	if c.rand == nil {
		c.rand = rand.Reader
	}
	if conf.MaxRecvAckRanges > 0 {
		c.parser.SetMaxAckRanges(conf.MaxRecvAckRanges)
	}
	if c.logger == nil {
		c.logger = utils.DefaultLogger
	}
	return c
}

// SetAckDelayExponent sets the peer's ack delay exponent, received in the
// transport parameters. It scales the ACK Delay field of received ACKs.
func (c *Conn) SetAckDelayExponent(exp uint8) {
	c.parser.SetAckDelayExponent(exp)
}

// SourceCIDs returns the set of connection IDs issued by this endpoint.
func (c *Conn) SourceCIDs() *ConnectionIDSet { return c.source }

// DestCIDs returns the set of connection IDs issued by the peer.
func (c *Conn) DestCIDs() *ConnectionIDSet { return c.dest }

// SourcePath returns the local path-validation state.
func (c *Conn) SourcePath() *PathAddr { return &c.srcPath }

// DestPath returns the peer path-validation state.
func (c *Conn) DestPath() *PathAddr { return &c.dstPath }

// Token returns the stored address validation token.
func (c *Conn) Token() []byte { return c.token }

// SessionTicket returns the stored TLS session ticket.
func (c *Conn) SessionTicket() []byte { return c.ticket }

func (c *Conn) randBytes(b []byte) error {
	_, err := io.ReadFull(c.rand, b)
	return err
}

func (c *Conn) maxPayload() protocol.ByteCount {
	return c.packet.MaxPayload()
}
