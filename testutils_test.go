package quicwire_test

import (
	"net"
	"testing"

	"go.uber.org/mock/gomock"

	quicwire "github.com/quicwire/quicwire"
	"github.com/quicwire/quicwire/internal/mocks"
	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/quicvarint"
)

func encodeVarInt(i uint64) []byte {
	return quicvarint.Append(nil, i)
}

// fakeSocket records the connection-level events the frame core triggers.
type fakeSocket struct {
	err          error
	state        quicwire.ConnState
	stateChanges int
	writeSpace   int
	released     int

	addrs []struct {
		addr  net.Addr
		local bool
	}
}

var _ quicwire.Socket = &fakeSocket{}

func (s *fakeSocket) SetError(err error)                { s.err = err }
func (s *fakeSocket) SetState(state quicwire.ConnState) { s.state = state }
func (s *fakeSocket) StateChange()                      { s.stateChanges++ }
func (s *fakeSocket) WriteSpace()                       { s.writeSpace++ }
func (s *fakeSocket) ReleaseAltSocket()                 { s.released++ }
func (s *fakeSocket) SetAddr(addr net.Addr, local bool) {
	s.addrs = append(s.addrs, struct {
		addr  net.Addr
		local bool
	}{addr, local})
}

type fakePacketCtx struct {
	maxPayload protocol.ByteCount
}

var _ quicwire.PacketContext = fakePacketCtx{}

func (c fakePacketCtx) MaxPayload() protocol.ByteCount { return c.maxPayload }

// patternReader is a deterministic entropy source.
type patternReader struct {
	b byte
}

func (r *patternReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
		r.b++
	}
	return len(p), nil
}

type testEnv struct {
	conn    *quicwire.Conn
	pnMap   *mocks.MockPacketNumberMap
	outq    *mocks.MockOutboundQueue
	inq     *mocks.MockInboundQueue
	streams *quicwire.StreamMap
	socket  *fakeSocket
}

func newTestEnv(t *testing.T, conf *quicwire.Config) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	env := &testEnv{
		pnMap:   mocks.NewMockPacketNumberMap(ctrl),
		outq:    mocks.NewMockOutboundQueue(ctrl),
		inq:     mocks.NewMockInboundQueue(ctrl),
		streams: quicwire.NewStreamMap(100, 100, 1<<20, 1<<20),
		socket:  &fakeSocket{},
	}
	if conf == nil {
		conf = &quicwire.Config{}
	}
	if conf.PnMap == nil {
		conf.PnMap = env.pnMap
	}
	if conf.OutQ == nil {
		conf.OutQ = env.outq
	}
	if conf.InQ == nil {
		conf.InQ = env.inq
	}
	if conf.Streams == nil {
		conf.Streams = env.streams
	}
	if conf.Socket == nil {
		conf.Socket = env.socket
	}
	if conf.Packet == nil {
		conf.Packet = fakePacketCtx{maxPayload: 1200}
	}
	if conf.Rand == nil {
		conf.Rand = &patternReader{}
	}
	env.conn = quicwire.NewConn(conf)
	return env
}
