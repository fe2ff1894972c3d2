package quictls

import (
	"github.com/nextproto/quictls/internal/qerr"
)

// A TransportError is the error type returned to the transport.
type TransportError = qerr.TransportError

// TransportErrorCode is a QUIC transport error code.
type TransportErrorCode = qerr.TransportErrorCode

// The QUIC transport error codes relevant for this package.
const (
	InternalError = qerr.InternalError
)
