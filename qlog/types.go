package qlog

import (
	"github.com/francoispqt/gojay"

	"github.com/quicwire/quicwire/internal/protocol"
)

type category uint8

const (
	categoryConnectivity category = iota
	categoryTransport
)

func (c category) String() string {
	switch c {
	case categoryConnectivity:
		return "connectivity"
	case categoryTransport:
		return "transport"
	default:
		return "unknown category"
	}
}

type vantagePoint struct {
	Name string
	Type protocol.Perspective
}

var _ gojay.MarshalerJSONObject = vantagePoint{}

func (p vantagePoint) IsNil() bool { return false }
func (p vantagePoint) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("name", p.Name)
	switch p.Type {
	case protocol.PerspectiveClient:
		enc.StringKey("type", "client")
	case protocol.PerspectiveServer:
		enc.StringKey("type", "server")
	}
}
