// Package quictls bridges a QUIC transport with an external TLS handshake
// engine. The engine performs the TLS 1.3 negotiation, while the transport
// carries the handshake bytes itself; this package owns the session state
// in between and sequences all calls into the engine.
package quictls

import (
	"github.com/nextproto/quictls/cryptosuite"
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

// Status is the result of a call to Session.Advance.
// It is only meaningful when Advance returned a nil error.
type Status uint8

const (
	// StatusInProgress means that no handshake progress was possible.
	// The caller should call Advance again after the waker fired.
	StatusInProgress Status = iota
	// StatusComplete means that the handshake is established.
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// A RunContext is supplied by the owning transport on every call to
// Session.Advance. It receives everything the handshake produces for the
// transport: derived keys, the peer's transport parameters and the
// completion signal.
type RunContext interface {
	// OnHandshakeComplete is called when the handshake completes.
	// The session guarantees that it is called exactly once, no matter how
	// often Advance is called afterwards.
	OnHandshakeComplete() error
	// OnReceivedParams is called when the peer's transport parameters
	// were received.
	OnReceivedParams(data []byte) error
	// SetReadKeys installs the keys for opening packets at the given
	// encryption level.
	SetReadKeys(encLevel EncryptionLevel, suiteID uint16, keys cryptosuite.KeyPair) error
	// SetWriteKeys installs the keys for sealing packets at the given
	// encryption level.
	SetWriteKeys(encLevel EncryptionLevel, suiteID uint16, keys cryptosuite.KeyPair) error
	// Waker returns the function used to signal the transport that another
	// Advance call can make progress.
	Waker() func()
}
