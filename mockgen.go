//go:build generate

package quicwire

//go:generate sh -c "go run go.uber.org/mock/mockgen -package mocks -destination internal/mocks/quicwire.go github.com/quicwire/quicwire PacketNumberMap,OutboundQueue,InboundQueue"
