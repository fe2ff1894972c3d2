package quictls

import (
	"crypto/tls"
	"fmt"
)

// NegotiateStatus is the result of a non-blocking negotiate step.
type NegotiateStatus uint8

const (
	// NegotiatePending means the engine is waiting for more handshake data
	// from the peer.
	NegotiatePending NegotiateStatus = iota
	// NegotiateComplete means the handshake is established.
	NegotiateComplete
)

// An Engine creates per-handshake connection handles into an external TLS
// stack.
type Engine interface {
	NewConn(Perspective) (EngineConn, error)
}

// An EngineConn is one handshake's handle into the external TLS engine.
// All methods must be called from the goroutine driving the session; the
// engine never calls back outside the dynamic extent of Negotiate.
type EngineConn interface {
	// BindConfig binds the TLS configuration to the connection.
	// The engine rejects configurations that are incompatible with the
	// connection's role.
	BindConfig(conf *tls.Config) error
	// EnableQUIC switches the engine into QUIC mode: handshake bytes are
	// exchanged through the event handler instead of the TLS record layer.
	EnableQUIC() error
	// SetTransportParameters hands the engine the local transport
	// parameters for delivery to the peer during the handshake.
	SetTransportParameters(params []byte) error
	// DisableBlinding turns off the engine's self-triggered alert delay.
	// The transport times alert delivery itself.
	DisableBlinding() error
	// Negotiate makes one non-blocking attempt at handshake progress.
	// It may invoke the installed event handler any number of times before
	// returning. A failure is reported as an error; if the failure was
	// caused by a TLS alert, the error wraps an AlertError.
	Negotiate() (NegotiateStatus, error)
	// SetEventHandler installs h on the connection. The engine must drop
	// every reference to h when ClearEventHandler is called.
	SetEventHandler(h EventHandler)
	// ClearEventHandler removes the installed event handler.
	ClearEventHandler() error
	// Close releases the connection handle.
	Close() error
}

// An EventHandler receives the events the engine raises during a single
// Negotiate call. It is only valid between SetEventHandler and the matching
// ClearEventHandler; the engine must never invoke it outside that window.
type EventHandler interface {
	// HandshakeData delivers outbound handshake bytes produced by the
	// engine, to be carried by the transport at the given encryption level.
	HandshakeData(encLevel EncryptionLevel, data []byte) error
	// ReadSecret reports a derived read traffic secret.
	ReadSecret(encLevel EncryptionLevel, suiteID uint16, trafficSecret []byte) error
	// WriteSecret reports a derived write traffic secret.
	WriteSecret(encLevel EncryptionLevel, suiteID uint16, trafficSecret []byte) error
	// ReceivedParams reports receipt of the peer's transport parameters.
	ReceivedParams(data []byte) error
	// Alert reports a TLS alert raised during negotiation.
	Alert(code uint8)
	// Waker returns the transport's wake function. The engine may use it
	// to schedule a wakeup before returning NegotiatePending.
	Waker() func()
}

// An AlertError is a TLS alert reported by the engine when negotiation
// fails.
type AlertError uint8

func (e AlertError) Error() string {
	return fmt.Sprintf("tls: alert(%d)", uint8(e))
}

// Alert returns the TLS alert code.
func (e AlertError) Alert() uint8 { return uint8(e) }
