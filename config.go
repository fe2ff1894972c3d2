package quictls

import (
	"context"
	"crypto/tls"

	"github.com/nextproto/quictls/cryptosuite"
	"github.com/nextproto/quictls/logging"
)

// Config contains everything a Session needs besides its role.
type Config struct {
	// TLS is bound to the engine connection at construction.
	// It must be compatible with the session's role; the engine rejects
	// incompatible configurations.
	TLS *tls.Config
	// Suite fixes the key types handed to the RunContext for every key
	// role. If nil, cryptosuite.Default() is used.
	Suite cryptosuite.Suite
	// Tracer records handshake events. Optional.
	Tracer *logging.ConnectionTracer
}

// ClientHelloInfo contains the parts of a ClientHello relevant for
// configuration selection.
type ClientHelloInfo struct {
	ServerName      string
	SupportedProtos []string
}

// A ConfigResolver defers configuration selection until information from
// the ClientHello is available, e.g. to pick a certificate by SNI.
// Resolvers are accepted by NewSession and stored on the Session, but not
// yet consulted by Advance.
type ConfigResolver interface {
	// PollConfig returns the configuration to use, or an error to abort
	// the handshake. It must not block.
	PollConfig(ctx context.Context, info *ClientHelloInfo) (*Config, error)
}
