package qlog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/internal/wire"
)

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }

func TestTracerWritesNDJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewConnectionTracer(nopWriteCloser{buf}, protocol.PerspectiveClient, protocol.ConnectionID{0xde, 0xad, 0xbe, 0xef})

	tracer.CreatedFrame(wire.PingFrameType, 1)
	tracer.ProcessedFrame(wire.AckFrameType, 5)
	tracer.ProcessedPacket(false, false, true)
	require.NoError(t, tracer.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	var header map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &header))
	require.Equal(t, "NDJSON", header["qlog_format"])
	trace := header["trace"].(map[string]interface{})
	vp := trace["vantage_point"].(map[string]interface{})
	require.Equal(t, "client", vp["type"])
	cf := trace["common_fields"].(map[string]interface{})
	require.Equal(t, "deadbeef", cf["ODCID"])

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &created))
	require.Equal(t, "transport:frame_created", created["name"])

	var processed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &processed))
	require.Equal(t, "transport:frame_processed", processed["name"])
	data := processed["data"].(map[string]interface{})
	require.Equal(t, "ack", data["frame_type"])

	var packet map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &packet))
	require.Equal(t, "transport:packet_processed", packet["name"])
	pdata := packet["data"].(map[string]interface{})
	require.Equal(t, false, pdata["ack_eliciting"])
	require.Equal(t, true, pdata["non_probing"])
}
