package wire

import (
	"errors"
	"io"

	"github.com/quicwire/quicwire/internal/protocol"
	"github.com/quicwire/quicwire/quicvarint"
)

// A ConnectionCloseFrame is a CONNECTION_CLOSE frame.
// Type 0x1c closes the transport and carries the type of the offending
// frame; type 0x1d closes on behalf of the application and doesn't.
type ConnectionCloseFrame struct {
	IsApplicationError bool
	ErrorCode          uint64
	FrameType          uint64
	ReasonPhrase       string
}

func parseConnectionCloseFrame(b []byte, typ FrameType) (*ConnectionCloseFrame, int, error) {
	startLen := len(b)
	f := &ConnectionCloseFrame{IsApplicationError: typ == ApplicationCloseFrameType}
	ec, l, err := quicvarint.Parse(b)
	if err != nil {
		return nil, 0, replaceUnexpectedEOF(err)
	}
	b = b[l:]
	f.ErrorCode = ec
	// read the Frame Type, if this is not an application error
	if !f.IsApplicationError {
		ft, l, err := quicvarint.Parse(b)
		if err != nil {
			return nil, 0, replaceUnexpectedEOF(err)
		}
		b = b[l:]
		f.FrameType = ft
	}
	var reasonPhraseLen uint64
	reasonPhraseLen, l, err = quicvarint.Parse(b)
	if err != nil {
		return nil, 0, replaceUnexpectedEOF(err)
	}
	b = b[l:]
	if reasonPhraseLen > uint64(len(b)) {
		return nil, 0, io.EOF
	}
	if reasonPhraseLen != 0 {
		// The phrase is carried as a NUL-terminated string and is bounded,
		// so a malformed close can't force a large allocation.
		if reasonPhraseLen > protocol.MaxReasonPhraseLen {
			return nil, 0, errors.New("reason phrase too long")
		}
		if b[reasonPhraseLen-1] != 0 {
			return nil, 0, errors.New("reason phrase not NUL-terminated")
		}
		f.ReasonPhrase = string(b[:reasonPhraseLen-1])
		b = b[reasonPhraseLen:]
	}
	return f, startLen - len(b), nil
}

func (f *ConnectionCloseFrame) Append(b []byte) ([]byte, error) {
	if f.IsApplicationError {
		b = append(b, byte(ApplicationCloseFrameType))
	} else {
		b = append(b, byte(ConnectionCloseFrameType))
	}

	b = quicvarint.Append(b, f.ErrorCode)
	if !f.IsApplicationError {
		b = quicvarint.Append(b, f.FrameType)
	}
	b = quicvarint.Append(b, uint64(f.phraseLen()))
	if len(f.ReasonPhrase) > 0 {
		b = append(b, []byte(f.ReasonPhrase)...)
		b = append(b, 0)
	}
	return b, nil
}

// Length of a written frame
func (f *ConnectionCloseFrame) Length() protocol.ByteCount {
	length := 1 + protocol.ByteCount(quicvarint.Len(f.ErrorCode)+quicvarint.Len(uint64(f.phraseLen()))) + protocol.ByteCount(f.phraseLen())
	if !f.IsApplicationError {
		length += protocol.ByteCount(quicvarint.Len(f.FrameType))
	}
	return length
}

// phraseLen is the encoded length of the reason phrase.
// A non-empty phrase is carried with its trailing NUL.
func (f *ConnectionCloseFrame) phraseLen() int {
	if len(f.ReasonPhrase) == 0 {
		return 0
	}
	return len(f.ReasonPhrase) + 1
}
