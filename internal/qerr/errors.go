package qerr

import (
	"fmt"
	"net"
)

// A TransportError is a QUIC transport error, as defined in RFC 9000.
type TransportError struct {
	FrameType    uint64
	ErrorCode    TransportErrorCode
	ErrorMessage string
}

var _ error = &TransportError{}

// NewLocalTransportError creates a new TransportError for an error that
// originated locally.
func NewLocalTransportError(code TransportErrorCode, frameType uint64, msg string) *TransportError {
	return &TransportError{
		FrameType:    frameType,
		ErrorCode:    code,
		ErrorMessage: msg,
	}
}

func (e *TransportError) Error() string {
	str := e.ErrorCode.String()
	if e.FrameType != 0 {
		str += fmt.Sprintf(" (frame type: %#x)", e.FrameType)
	}
	if len(e.ErrorMessage) == 0 {
		return str
	}
	return str + ": " + e.ErrorMessage
}

func (e *TransportError) Is(target error) bool {
	_, ok := target.(*TransportError)
	if ok {
		return true
	}
	return target == net.ErrClosed
}

// An ApplicationError is an application-defined error,
// transported in a CONNECTION_CLOSE frame with type 0x1d.
type ApplicationError struct {
	Remote       bool
	ErrorCode    uint64
	ErrorMessage string
}

var _ error = &ApplicationError{}

func (e *ApplicationError) Error() string {
	if len(e.ErrorMessage) == 0 {
		return fmt.Sprintf("Application error %#x", e.ErrorCode)
	}
	return fmt.Sprintf("Application error %#x: %s", e.ErrorCode, e.ErrorMessage)
}

func (e *ApplicationError) Is(target error) bool {
	_, ok := target.(*ApplicationError)
	if ok {
		return true
	}
	return target == net.ErrClosed
}
