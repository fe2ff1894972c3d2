package quictls

import (
	"crypto/tls"
	"errors"
)

// fakeEngine hands out fakeEngineConns and remembers the last one created.
type fakeEngine struct {
	newConnErr error
	conn       *fakeEngineConn
}

func (e *fakeEngine) NewConn(pers Perspective) (EngineConn, error) {
	if e.newConnErr != nil {
		return nil, e.newConnErr
	}
	e.conn = &fakeEngineConn{pers: pers}
	return e.conn, nil
}

// fakeEngineConn records the order of all calls, so tests can verify the
// attach / negotiate / detach discipline.
type fakeEngineConn struct {
	pers   Perspective
	calls  []string
	params []byte

	bindConfigErr   error
	enableQUICErr   error
	setParamsErr    error
	blindingErr     error
	clearHandlerErr error

	// negotiate is invoked with the currently installed event handler
	negotiate func(h EventHandler) (NegotiateStatus, error)

	handler EventHandler
	closed  bool
}

var _ EngineConn = &fakeEngineConn{}

func (c *fakeEngineConn) BindConfig(conf *tls.Config) error {
	c.calls = append(c.calls, "bind-config")
	return c.bindConfigErr
}

func (c *fakeEngineConn) EnableQUIC() error {
	c.calls = append(c.calls, "enable-quic")
	return c.enableQUICErr
}

func (c *fakeEngineConn) SetTransportParameters(params []byte) error {
	c.calls = append(c.calls, "set-params")
	c.params = params
	return c.setParamsErr
}

func (c *fakeEngineConn) DisableBlinding() error {
	c.calls = append(c.calls, "disable-blinding")
	return c.blindingErr
}

func (c *fakeEngineConn) Negotiate() (NegotiateStatus, error) {
	c.calls = append(c.calls, "negotiate")
	if c.handler == nil {
		return 0, errors.New("negotiate called without an event handler")
	}
	if c.negotiate == nil {
		return NegotiatePending, nil
	}
	return c.negotiate(c.handler)
}

func (c *fakeEngineConn) SetEventHandler(h EventHandler) {
	c.calls = append(c.calls, "set-handler")
	c.handler = h
}

func (c *fakeEngineConn) ClearEventHandler() error {
	c.calls = append(c.calls, "clear-handler")
	c.handler = nil
	return c.clearHandlerErr
}

func (c *fakeEngineConn) Close() error {
	c.calls = append(c.calls, "close")
	c.closed = true
	return nil
}
