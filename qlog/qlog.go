// Package qlog records handshake events in a qlog-inspired JSON format,
// one event per line.
package qlog

import (
	"io"
	"sync"
	"time"

	"github.com/francoispqt/gojay"

	"github.com/nextproto/quictls/logging"
)

// NewConnectionTracer creates a tracer that writes the handshake events of
// one session to w. Close on the tracer flushes and closes w.
func NewConnectionTracer(w io.WriteCloser, p logging.Perspective) *logging.ConnectionTracer {
	t := &connectionTracer{
		w:             w,
		perspective:   p,
		referenceTime: time.Now(),
	}
	t.recordEvent(eventHandshakeStarted{Perspective: p})
	return &logging.ConnectionTracer{
		UpdatedKeyFromTLS: func(encLevel logging.EncryptionLevel, pers logging.Perspective) {
			t.recordEvent(eventKeyUpdated{Level: encLevel, Write: pers == p})
		},
		ReceivedTransportParameters: func(data []byte) {
			t.recordEvent(eventTransportParametersReceived{Length: len(data)})
		},
		CompletedHandshake: func() {
			t.recordEvent(eventHandshakeCompleted{})
		},
		FailedHandshake: func(err error) {
			t.recordEvent(eventHandshakeFailed{Err: err})
		},
		Close: func() { t.close() },
	}
}

type connectionTracer struct {
	mutex sync.Mutex

	w             io.WriteCloser
	perspective   logging.Perspective
	referenceTime time.Time
	encodeErr     error
}

func (t *connectionTracer) recordEvent(details eventDetails) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.encodeErr != nil { // if encoding failed, drop all subsequent events
		return
	}
	enc := gojay.NewEncoder(t.w)
	if err := enc.Encode(event{
		RelativeTime: time.Since(t.referenceTime),
		eventDetails: details,
	}); err != nil {
		t.encodeErr = err
		return
	}
	if _, err := t.w.Write([]byte{'\n'}); err != nil {
		t.encodeErr = err
	}
}

func (t *connectionTracer) close() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.w.Close()
}
