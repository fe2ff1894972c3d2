package qlog

import (
	"time"

	"github.com/francoispqt/gojay"

	"github.com/nextproto/quictls/internal/protocol"
)

type category uint8

const (
	categorySecurity category = iota
	categoryTransport
)

func (c category) String() string {
	switch c {
	case categorySecurity:
		return "security"
	case categoryTransport:
		return "transport"
	default:
		return "unknown category"
	}
}

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONObject = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("time", milliseconds(e.RelativeTime))
	enc.StringKey("name", e.Category().String()+":"+e.Name())
	enc.ObjectKey("data", e.eventDetails)
}

func milliseconds(dur time.Duration) float64 { return float64(dur.Nanoseconds()) / 1e6 }

type eventHandshakeStarted struct {
	Perspective protocol.Perspective
}

var _ eventDetails = eventHandshakeStarted{}

func (e eventHandshakeStarted) Category() category { return categoryTransport }
func (e eventHandshakeStarted) Name() string       { return "handshake_started" }
func (e eventHandshakeStarted) IsNil() bool        { return false }

func (e eventHandshakeStarted) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("owner", e.Perspective.String())
}

type eventKeyUpdated struct {
	Level protocol.EncryptionLevel
	// whether this is the key for sealing or for opening packets
	Write bool
}

var _ eventDetails = eventKeyUpdated{}

func (e eventKeyUpdated) Category() category { return categorySecurity }
func (e eventKeyUpdated) Name() string       { return "key_updated" }
func (e eventKeyUpdated) IsNil() bool        { return false }

func (e eventKeyUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("key_type", keyType(e.Level, e.Write))
	enc.StringKey("trigger", "tls")
}

func keyType(encLevel protocol.EncryptionLevel, write bool) string {
	dir := "read"
	if write {
		dir = "write"
	}
	switch encLevel {
	case protocol.EncryptionInitial:
		return "initial_" + dir
	case protocol.EncryptionHandshake:
		return "handshake_" + dir
	case protocol.Encryption0RTT:
		return "0rtt_" + dir
	case protocol.Encryption1RTT:
		return "1rtt_" + dir
	default:
		return "unknown"
	}
}

type eventTransportParametersReceived struct {
	Length int
}

var _ eventDetails = eventTransportParametersReceived{}

func (e eventTransportParametersReceived) Category() category { return categoryTransport }
func (e eventTransportParametersReceived) Name() string       { return "parameters_set" }
func (e eventTransportParametersReceived) IsNil() bool        { return false }

func (e eventTransportParametersReceived) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("owner", "remote")
	enc.IntKey("length", e.Length)
}

type eventHandshakeCompleted struct{}

var _ eventDetails = eventHandshakeCompleted{}

func (e eventHandshakeCompleted) Category() category { return categoryTransport }
func (e eventHandshakeCompleted) Name() string       { return "handshake_completed" }
func (e eventHandshakeCompleted) IsNil() bool        { return false }

func (e eventHandshakeCompleted) MarshalJSONObject(enc *gojay.Encoder) {}

type eventHandshakeFailed struct {
	Err error
}

var _ eventDetails = eventHandshakeFailed{}

func (e eventHandshakeFailed) Category() category { return categoryTransport }
func (e eventHandshakeFailed) Name() string       { return "handshake_failed" }
func (e eventHandshakeFailed) IsNil() bool        { return false }

func (e eventHandshakeFailed) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("error", e.Err.Error())
}
