// Package logging defines the events recorded while a handshake session is
// advanced. Tracers are purely passive: they observe, they never influence
// the handshake.
package logging

import (
	"github.com/nextproto/quictls/internal/protocol"
)

// A Perspective is the role of a handshake endpoint.
type Perspective = protocol.Perspective

const (
	// PerspectiveServer is used for a QUIC server
	PerspectiveServer = protocol.PerspectiveServer
	// PerspectiveClient is used for a QUIC client
	PerspectiveClient = protocol.PerspectiveClient
)

// An EncryptionLevel is the encryption level of a packet.
type EncryptionLevel = protocol.EncryptionLevel

const (
	// EncryptionInitial is the Initial encryption level
	EncryptionInitial = protocol.EncryptionInitial
	// EncryptionHandshake is the Handshake encryption level
	EncryptionHandshake = protocol.EncryptionHandshake
	// Encryption0RTT is the 0-RTT encryption level
	Encryption0RTT = protocol.Encryption0RTT
	// Encryption1RTT is the 1-RTT encryption level
	Encryption1RTT = protocol.Encryption1RTT
)

// A ConnectionTracer records events of a single handshake session.
// Any field may be nil.
type ConnectionTracer struct {
	StartedHandshake            func()
	UpdatedKeyFromTLS           func(EncryptionLevel, Perspective)
	ReceivedTransportParameters func(data []byte)
	CompletedHandshake          func()
	FailedHandshake             func(err error)
	Close                       func()
}

// NewMultiplexedConnectionTracer creates a new connection tracer that
// dispatches all events to a number of tracers.
func NewMultiplexedConnectionTracer(tracers ...*ConnectionTracer) *ConnectionTracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &ConnectionTracer{
		StartedHandshake: func() {
			for _, t := range tracers {
				if t.StartedHandshake != nil {
					t.StartedHandshake()
				}
			}
		},
		UpdatedKeyFromTLS: func(encLevel EncryptionLevel, pers Perspective) {
			for _, t := range tracers {
				if t.UpdatedKeyFromTLS != nil {
					t.UpdatedKeyFromTLS(encLevel, pers)
				}
			}
		},
		ReceivedTransportParameters: func(data []byte) {
			for _, t := range tracers {
				if t.ReceivedTransportParameters != nil {
					t.ReceivedTransportParameters(data)
				}
			}
		},
		CompletedHandshake: func() {
			for _, t := range tracers {
				if t.CompletedHandshake != nil {
					t.CompletedHandshake()
				}
			}
		},
		FailedHandshake: func(err error) {
			for _, t := range tracers {
				if t.FailedHandshake != nil {
					t.FailedHandshake(err)
				}
			}
		},
		Close: func() {
			for _, t := range tracers {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}
