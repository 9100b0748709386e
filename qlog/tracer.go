// Package qlog writes frame-level qlog traces in the NDJSON
// serialization: one trace header record, then one record per event.
package qlog

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/francoispqt/gojay"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/internal/utils"
	"github.com/quicwire/quicwire/internal/wire"
)

type topLevel struct {
	trace trace
}

func (topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("qlog_format", "NDJSON")
	enc.StringKey("qlog_version", "draft-02")
	enc.StringKeyOmitEmpty("title", "quicwire qlog")
	enc.ObjectKey("trace", l.trace)
}

type commonFields struct {
	ODCID         protocol.ConnectionID
	ReferenceTime time.Time
}

func (f commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	if f.ODCID.Len() > 0 {
		enc.StringKey("ODCID", f.ODCID.String())
		enc.StringKey("group_id", f.ODCID.String())
	}
	enc.Float64Key("reference_time", float64(f.ReferenceTime.UnixNano())/1e6)
	enc.StringKey("time_format", "relative")
}

type trace struct {
	VantagePoint vantagePoint
	CommonFields commonFields
}

func (trace) IsNil() bool { return false }
func (t trace) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("vantage_point", t.VantagePoint)
	enc.ObjectKey("common_fields", t.CommonFields)
}

// A ConnectionTracer records the frame-level events of one connection.
type ConnectionTracer struct {
	mutex sync.Mutex

	w             io.WriteCloser
	buf           *bytes.Buffer
	enc           *gojay.Encoder
	referenceTime time.Time

	logger utils.Logger
}

// NewConnectionTracer creates a qlog tracer writing to w.
func NewConnectionTracer(w io.WriteCloser, p protocol.Perspective, odcid protocol.ConnectionID) *ConnectionTracer {
	buf := &bytes.Buffer{}
	t := &ConnectionTracer{
		w:             w,
		buf:           buf,
		enc:           gojay.NewEncoder(buf),
		referenceTime: time.Now(),
		logger:        utils.DefaultLogger.WithPrefix("qlog"),
	}
	if err := t.enc.Encode(topLevel{
		trace: trace{
			VantagePoint: vantagePoint{Type: p},
			CommonFields: commonFields{
				ODCID:         odcid,
				ReferenceTime: t.referenceTime,
			},
		},
	}); err != nil {
		panic(fmt.Sprintf("qlog encoding into a bytes.Buffer failed: %s", err))
	}
	t.flush()
	return t
}

// CreatedFrame records an outbound frame leaving the frame creator.
func (t *ConnectionTracer) CreatedFrame(typ wire.FrameType, length protocol.ByteCount) {
	t.recordEvent(eventFrameCreated{FrameType: typ, Length: length})
}

// ProcessedFrame records an inbound frame after its side effects applied.
func (t *ConnectionTracer) ProcessedFrame(typ wire.FrameType, length protocol.ByteCount) {
	t.recordEvent(eventFrameProcessed{FrameType: typ, Length: length})
}

// ProcessedPacket records the accumulated per-packet flags after the frame
// loop finished.
func (t *ConnectionTracer) ProcessedPacket(ackEliciting, ackImmediate, nonProbing bool) {
	t.recordEvent(eventPacketProcessed{
		AckEliciting: ackEliciting,
		AckImmediate: ackImmediate,
		NonProbing:   nonProbing,
	})
}

// Close flushes and closes the underlying writer.
func (t *ConnectionTracer) Close() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.w.Close()
}

func (t *ConnectionTracer) recordEvent(details eventDetails) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if err := t.enc.Encode(event{
		RelativeTime: time.Since(t.referenceTime),
		eventDetails: details,
	}); err != nil {
		panic(fmt.Sprintf("qlog encoding into a bytes.Buffer failed: %s", err))
	}
	t.flush()
}

func (t *ConnectionTracer) flush() {
	t.buf.WriteByte('\n')
	if _, err := t.w.Write(t.buf.Bytes()); err != nil {
		t.logger.Errorf("writing qlog failed: %s", err)
	}
	t.buf.Reset()
}
