package quictls

import (
	"errors"

	"github.com/nextproto/quictls/cryptosuite"
	"github.com/nextproto/quictls/internal/protocol"
	"github.com/nextproto/quictls/internal/qerr"
	"github.com/nextproto/quictls/internal/utils"
	"github.com/nextproto/quictls/logging"
)

// A Session owns the state of one handshake, from construction until the
// owning connection is torn down. It is not safe for concurrent use: the
// transport serializes all calls.
type Session struct {
	perspective protocol.Perspective
	conn        EngineConn

	state             handshakeState
	handshakeComplete bool
	sendBuffer        outputBuffer

	suite  cryptosuite.Suite
	tracer *logging.ConnectionTracer
	logger utils.Logger

	// configResolver is an extension point for deferred configuration
	// selection. It is stored but not yet consulted by Advance.
	// TODO: consult the resolver before negotiating once EngineConn
	// exposes the pending ClientHello.
	configResolver ConfigResolver
}

// NewSession creates the engine connection for the given role and prepares
// it for a QUIC handshake: the TLS configuration is bound, the engine is
// switched into QUIC mode, the local transport parameters are injected and
// engine blinding is disabled. Any step the engine rejects fails the
// construction; no connection handle is retained in that case.
func NewSession(
	pers Perspective,
	engine Engine,
	conf *Config,
	transportParams []byte,
	resolver ConfigResolver,
) (*Session, error) {
	if conf == nil || conf.TLS == nil {
		return nil, errors.New("quictls: missing TLS configuration")
	}
	conn, err := engine.NewConn(pers)
	if err != nil {
		return nil, err
	}
	if err := setupConn(conn, conf, transportParams); err != nil {
		conn.Close()
		return nil, err
	}
	suite := conf.Suite
	if suite == nil {
		suite = cryptosuite.Default()
	}
	s := &Session{
		perspective:    pers,
		conn:           conn,
		suite:          suite,
		tracer:         conf.Tracer,
		logger:         utils.DefaultLogger.WithPrefix(pers.String()),
		configResolver: resolver,
	}
	if s.tracer != nil && s.tracer.StartedHandshake != nil {
		s.tracer.StartedHandshake()
	}
	return s, nil
}

func setupConn(conn EngineConn, conf *Config, transportParams []byte) error {
	if err := conn.BindConfig(conf.TLS); err != nil {
		return err
	}
	if err := conn.EnableQUIC(); err != nil {
		return err
	}
	if err := conn.SetTransportParameters(transportParams); err != nil {
		return err
	}
	// the transport times alert delivery itself
	return conn.DisableBlinding()
}

// Advance makes one non-blocking attempt at handshake progress.
// It returns StatusInProgress when the engine is waiting for peer data (the
// RunContext's waker fires when calling again can make progress), or
// StatusComplete when the handshake is established.
// All errors are terminal for the session; the returned Status carries no
// meaning when the error is non-nil.
func (s *Session) Advance(rc RunContext) (Status, error) {
	cb := &callback{
		ctx:         rc,
		perspective: s.perspective,
		state:       &s.state,
		suite:       s.suite,
		sendBuffer:  &s.sendBuffer,
		tracer:      s.tracer,
		logger:      s.logger,
	}

	// The engine may only call into cb during this one Negotiate call:
	// attach immediately before, detach on every path before cb goes out
	// of scope.
	cb.attach(s.conn)
	status, err := s.conn.Negotiate()
	if derr := cb.detach(s.conn); derr != nil {
		return 0, s.failed(&qerr.TransportError{
			ErrorCode:    qerr.InternalError,
			ErrorMessage: "failed to detach handshake callbacks: " + derr.Error(),
		})
	}
	if cb.err != nil {
		err = cb.err
	}

	if err != nil {
		return 0, s.failed(s.translateError(err))
	}
	switch status {
	case NegotiateComplete:
		// only emit handshake done once
		if !s.handshakeComplete {
			if err := rc.OnHandshakeComplete(); err != nil {
				return 0, s.failed(err)
			}
			s.handshakeComplete = true
			s.logger.Debugf("Handshake complete")
			if s.tracer != nil && s.tracer.CompletedHandshake != nil {
				s.tracer.CompletedHandshake()
			}
		}
		return StatusComplete, nil
	default:
		return StatusInProgress, nil
	}
}

const alertHandshakeFailure = 40

// translateError maps an engine failure onto the transport's error type.
// The mapping is total: an alert reported by the engine becomes the
// corresponding crypto error, everything else becomes the generic
// handshake_failure crypto error.
func (s *Session) translateError(err error) error {
	var alertErr AlertError
	if errors.As(err, &alertErr) {
		return qerr.NewLocalCryptoError(uint8(alertErr), err)
	}
	if s.state.hasAlert {
		return qerr.NewLocalCryptoError(s.state.alert, err)
	}
	return qerr.NewLocalCryptoError(alertHandshakeFailure, err)
}

func (s *Session) failed(err error) error {
	s.logger.Errorf("Handshake failed: %s", err)
	if s.tracer != nil && s.tracer.FailedHandshake != nil {
		s.tracer.FailedHandshake(err)
	}
	return err
}

// HandshakeComplete reports whether completion has been signaled to the
// transport.
func (s *Session) HandshakeComplete() bool { return s.handshakeComplete }

// PeerTransportParameters returns the peer's transport parameters.
// It returns nil until they were received.
func (s *Session) PeerTransportParameters() []byte { return s.state.peerParams }

// TakeOutput removes the oldest contiguous run of handshake bytes queued
// by the engine, together with the encryption level they were emitted at.
// A single Negotiate call may queue bytes at more than one level; callers
// must keep draining until the returned data is nil, and frame each run
// into the crypto stream of its own level.
func (s *Session) TakeOutput() (EncryptionLevel, []byte) {
	chunk, ok := s.sendBuffer.pop()
	if !ok {
		return s.state.sendLevel, nil
	}
	return chunk.encLevel, chunk.data
}

// Close releases the engine connection. The session must not be advanced
// afterwards.
func (s *Session) Close() error {
	err := s.conn.Close()
	if s.tracer != nil && s.tracer.Close != nil {
		s.tracer.Close()
	}
	return err
}
