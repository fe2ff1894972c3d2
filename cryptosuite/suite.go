// Package cryptosuite binds the abstract key roles of a QUIC handshake
// (Initial, Handshake, 0-RTT, 1-RTT and Retry, each paired with a header
// protection key) to concrete cryptographic implementations.
package cryptosuite

import (
	"github.com/nextproto/quictls/internal/protocol"
)

// A Perspective is the role of a handshake endpoint.
type Perspective = protocol.Perspective

// A PacketNumber in QUIC
type PacketNumber = protocol.PacketNumber

// A Key seals and opens packet payloads for one key role.
type Key interface {
	Seal(dst, src []byte, pn PacketNumber, ad []byte) []byte
	Open(dst, src []byte, pn PacketNumber, ad []byte) ([]byte, error)
	Overhead() int
}

// A HeaderKey applies and removes QUIC header protection.
type HeaderKey interface {
	EncryptHeader(sample []byte, firstByte *byte, pnBytes []byte)
	DecryptHeader(sample []byte, firstByte *byte, pnBytes []byte)
}

// A KeyPair couples a role's packet protection key with the header
// protection key derived alongside it.
type KeyPair struct {
	Key       Key
	HeaderKey HeaderKey
}

// A Suite fixes the concrete key implementation for every key role.
// All key material handed out by one Suite value is internally consistent:
// a session captures its suite once at construction, so key types are
// never mixed across suites.
type Suite interface {
	// InitialKeys derives the Initial keys for both directions from the
	// client's destination connection ID. No TLS secret is involved at
	// this level.
	InitialKeys(connID []byte, pers Perspective) (send, receive KeyPair, err error)
	// HandshakeKeys derives the Handshake keys from a TLS handshake
	// traffic secret.
	HandshakeKeys(suiteID uint16, trafficSecret []byte) (KeyPair, error)
	// ZeroRTTKeys derives the 0-RTT keys from the TLS early traffic secret.
	ZeroRTTKeys(suiteID uint16, trafficSecret []byte) (KeyPair, error)
	// OneRTTKeys derives the 1-RTT keys from a TLS application traffic
	// secret.
	OneRTTKeys(suiteID uint16, trafficSecret []byte) (KeyPair, error)
	// RetryTag calculates the integrity tag of a Retry packet.
	RetryTag(retry, origDestConnID []byte) [16]byte
}

// Default returns the TLS 1.3 suite: AES-GCM and ChaCha20-Poly1305 packet
// protection with HKDF-Expand-Label key derivation, as defined in RFC 9001.
func Default() Suite { return tls13Suite{} }

type tls13Suite struct{}

var _ Suite = tls13Suite{}

func (tls13Suite) InitialKeys(connID []byte, pers Perspective) (KeyPair, KeyPair, error) {
	return newInitialKeys(connID, pers)
}

func (tls13Suite) HandshakeKeys(suiteID uint16, trafficSecret []byte) (KeyPair, error) {
	return newSecretKeys(suiteID, trafficSecret)
}

func (tls13Suite) ZeroRTTKeys(suiteID uint16, trafficSecret []byte) (KeyPair, error) {
	return newSecretKeys(suiteID, trafficSecret)
}

func (tls13Suite) OneRTTKeys(suiteID uint16, trafficSecret []byte) (KeyPair, error) {
	return newSecretKeys(suiteID, trafficSecret)
}

func (tls13Suite) RetryTag(retry, origDestConnID []byte) [16]byte {
	return retryIntegrityTag(retry, origDestConnID)
}

func newSecretKeys(suiteID uint16, trafficSecret []byte) (KeyPair, error) {
	suite, err := getCipherSuite(suiteID)
	if err != nil {
		return KeyPair{}, err
	}
	key := hkdfExpandLabel(suite.Hash, trafficSecret, []byte{}, "quic key", suite.KeyLen)
	iv := hkdfExpandLabel(suite.Hash, trafficSecret, []byte{}, "quic iv", suite.IVLen())
	hp, err := newHeaderProtector(suite, trafficSecret, true)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{
		Key:       newAEADKey(suite.AEAD(key, iv)),
		HeaderKey: hp,
	}, nil
}
