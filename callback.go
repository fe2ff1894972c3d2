package quictls

import (
	"fmt"

	"github.com/nextproto/quictls/cryptosuite"
	"github.com/nextproto/quictls/internal/protocol"
	"github.com/nextproto/quictls/internal/utils"
	"github.com/nextproto/quictls/logging"
)

// handshakeState is the session's persistent progress state.
// It is only mutated through a callback while a Negotiate call is running.
type handshakeState struct {
	peerParams []byte
	sendLevel  protocol.EncryptionLevel
	alert      uint8
	hasAlert   bool
}

// outputBuffer accumulates outbound handshake bytes, segmented by
// encryption level. Bytes of different levels belong to different crypto
// streams and must never be coalesced, even when the engine emits them
// within a single Negotiate call.
type outputBuffer struct {
	chunks []outputChunk
}

type outputChunk struct {
	encLevel protocol.EncryptionLevel
	data     []byte
}

func (b *outputBuffer) queue(encLevel protocol.EncryptionLevel, data []byte) {
	if n := len(b.chunks); n > 0 && b.chunks[n-1].encLevel == encLevel {
		b.chunks[n-1].data = append(b.chunks[n-1].data, data...)
		return
	}
	b.chunks = append(b.chunks, outputChunk{
		encLevel: encLevel,
		data:     append([]byte(nil), data...),
	})
}

// pop removes and returns the oldest contiguous run of same-level bytes.
func (b *outputBuffer) pop() (outputChunk, bool) {
	if len(b.chunks) == 0 {
		return outputChunk{}, false
	}
	chunk := b.chunks[0]
	b.chunks = b.chunks[1:]
	return chunk, true
}

// A callback translates the events the engine raises during a single
// Negotiate call into actions on session-owned state. It is constructed
// fresh for every Advance call, attached to the engine connection
// immediately before Negotiate and detached on every exit path. The engine
// must never hold a reference to it outside that window.
type callback struct {
	ctx         RunContext
	perspective protocol.Perspective
	state       *handshakeState
	suite       cryptosuite.Suite
	sendBuffer  *outputBuffer
	// set when an event handler fails, so the failure surfaces through
	// Advance's return path instead of unwinding through engine frames
	err error

	tracer *logging.ConnectionTracer
	logger utils.Logger

	attached bool
}

var _ EventHandler = &callback{}

func (cb *callback) attach(conn EngineConn) {
	if cb.attached {
		panic("quictls: handshake callback attached twice")
	}
	conn.SetEventHandler(cb)
	cb.attached = true
}

func (cb *callback) detach(conn EngineConn) error {
	if !cb.attached {
		return nil
	}
	cb.attached = false
	return conn.ClearEventHandler()
}

func (cb *callback) HandshakeData(encLevel EncryptionLevel, data []byte) error {
	cb.state.sendLevel = encLevel
	cb.sendBuffer.queue(encLevel, data)
	if cb.logger.Debug() {
		cb.logger.Debugf("Queued %d bytes of %s handshake data", len(data), encLevel)
	}
	return nil
}

func (cb *callback) ReadSecret(encLevel EncryptionLevel, suiteID uint16, trafficSecret []byte) error {
	keys, err := cb.deriveKeys(encLevel, suiteID, trafficSecret)
	if err != nil {
		return cb.fail(err)
	}
	if err := cb.ctx.SetReadKeys(encLevel, suiteID, keys); err != nil {
		return cb.fail(err)
	}
	cb.logger.Debugf("Installed %s Read keys", encLevel)
	if cb.tracer != nil && cb.tracer.UpdatedKeyFromTLS != nil {
		cb.tracer.UpdatedKeyFromTLS(encLevel, cb.perspective.Opposite())
	}
	return nil
}

func (cb *callback) WriteSecret(encLevel EncryptionLevel, suiteID uint16, trafficSecret []byte) error {
	keys, err := cb.deriveKeys(encLevel, suiteID, trafficSecret)
	if err != nil {
		return cb.fail(err)
	}
	if err := cb.ctx.SetWriteKeys(encLevel, suiteID, keys); err != nil {
		return cb.fail(err)
	}
	cb.logger.Debugf("Installed %s Write keys", encLevel)
	if cb.tracer != nil && cb.tracer.UpdatedKeyFromTLS != nil {
		cb.tracer.UpdatedKeyFromTLS(encLevel, cb.perspective)
	}
	return nil
}

func (cb *callback) deriveKeys(encLevel EncryptionLevel, suiteID uint16, trafficSecret []byte) (cryptosuite.KeyPair, error) {
	switch encLevel {
	case protocol.EncryptionHandshake:
		return cb.suite.HandshakeKeys(suiteID, trafficSecret)
	case protocol.Encryption0RTT:
		return cb.suite.ZeroRTTKeys(suiteID, trafficSecret)
	case protocol.Encryption1RTT:
		return cb.suite.OneRTTKeys(suiteID, trafficSecret)
	default:
		return cryptosuite.KeyPair{}, fmt.Errorf("no key role for encryption level %s", encLevel)
	}
}

func (cb *callback) ReceivedParams(data []byte) error {
	cb.state.peerParams = append([]byte(nil), data...)
	if cb.tracer != nil && cb.tracer.ReceivedTransportParameters != nil {
		cb.tracer.ReceivedTransportParameters(cb.state.peerParams)
	}
	if err := cb.ctx.OnReceivedParams(cb.state.peerParams); err != nil {
		return cb.fail(err)
	}
	return nil
}

func (cb *callback) Alert(code uint8) {
	cb.state.alert = code
	cb.state.hasAlert = true
}

func (cb *callback) Waker() func() { return cb.ctx.Waker() }

func (cb *callback) fail(err error) error {
	if cb.err == nil {
		cb.err = err
	}
	return err
}
