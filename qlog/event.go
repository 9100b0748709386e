package qlog

import (
	"time"

	"github.com/francoispqt/gojay"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/internal/wire"
)

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONObject = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("time", milliseconds(e.RelativeTime))
	enc.StringKey("name", e.Category().String()+":"+e.Name())
	enc.ObjectKey("data", e.eventDetails)
}

func milliseconds(dur time.Duration) float64 { return float64(dur.Nanoseconds()) / 1e6 }

type eventFrameCreated struct {
	FrameType wire.FrameType
	Length    protocol.ByteCount
}

var _ eventDetails = eventFrameCreated{}

func (e eventFrameCreated) Category() category { return categoryTransport }
func (e eventFrameCreated) Name() string       { return "frame_created" }
func (e eventFrameCreated) IsNil() bool        { return false }
func (e eventFrameCreated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("frame_type", e.FrameType.String())
	enc.Int64Key("length", int64(e.Length))
}

type eventFrameProcessed struct {
	FrameType wire.FrameType
	Length    protocol.ByteCount
}

var _ eventDetails = eventFrameProcessed{}

func (e eventFrameProcessed) Category() category { return categoryTransport }
func (e eventFrameProcessed) Name() string       { return "frame_processed" }
func (e eventFrameProcessed) IsNil() bool        { return false }
func (e eventFrameProcessed) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("frame_type", e.FrameType.String())
	enc.Int64Key("length", int64(e.Length))
}

type eventPacketProcessed struct {
	AckEliciting bool
	AckImmediate bool
	NonProbing   bool
}

var _ eventDetails = eventPacketProcessed{}

func (e eventPacketProcessed) Category() category { return categoryTransport }
func (e eventPacketProcessed) Name() string       { return "packet_processed" }
func (e eventPacketProcessed) IsNil() bool        { return false }
func (e eventPacketProcessed) MarshalJSONObject(enc *gojay.Encoder) {
	enc.BoolKey("ack_eliciting", e.AckEliciting)
	enc.BoolKey("ack_immediate", e.AckImmediate)
	enc.BoolKey("non_probing", e.NonProbing)
}
