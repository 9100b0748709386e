package frames

import (
	"fmt"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/internal/wire"
)

// PrefixLen is the number of bytes used for configuration
const PrefixLen = 1

// Fuzz fuzzes the frame parser.
//
//go:generate go run ./cmd/corpus.go
func Fuzz(data []byte) int {
	if len(data) < PrefixLen {
		return 0
	}
	parser := wire.NewFrameParser()
	if data[0]%2 == 0 {
		parser.SetAckDelayExponent(data[0] % 21)
	}
	data = data[PrefixLen:]

	b := data
	var numFrames int
	for len(b) > 0 {
		typ, f, l, err := parser.ParseNext(b)
		if err != nil {
			break
		}
		if l > len(b) {
			panic(fmt.Sprintf("parsing frame %#x consumed more bytes than available", uint8(typ)))
		}
		numFrames++
		b = b[l:]
		if f == nil { // PADDING run
			continue
		}
		// We accept empty STREAM frames, but we don't write them.
		if sf, ok := f.(*wire.StreamFrame); ok {
			if sf.DataLen() == 0 && !sf.Fin {
				continue
			}
		}
		validateFrame(f)
	}
	if numFrames == 0 {
		return 0
	}
	return 1
}

// validateFrame re-encodes the frame and checks that the declared length
// matches what was written.
func validateFrame(f wire.Frame) {
	b, err := f.Append(nil)
	if err != nil {
		panic(fmt.Sprintf("error writing frame %#v: %s", f, err))
	}
	if f.Length() != protocol.ByteCount(len(b)) {
		panic(fmt.Sprintf("inconsistent frame length for %#v: expected %d, got %d", f, len(b), f.Length()))
	}
}
