package cryptosuite

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"
)

// ErrDecryptionFailed is returned when the AEAD fails to authenticate the packet.
var ErrDecryptionFailed = errors.New("decryption failed")

type aeadKey struct {
	aead cipher.AEAD

	// use a single slice to avoid allocations
	nonceBuf []byte
}

var _ Key = &aeadKey{}

func newAEADKey(aead cipher.AEAD) *aeadKey {
	return &aeadKey{
		aead:     aead,
		nonceBuf: make([]byte, aead.NonceSize()),
	}
}

func (k *aeadKey) Seal(dst, src []byte, pn PacketNumber, ad []byte) []byte {
	binary.BigEndian.PutUint64(k.nonceBuf[len(k.nonceBuf)-8:], uint64(pn))
	// The AEAD XORs the nonce provided here with the IV.
	return k.aead.Seal(dst, k.nonceBuf, src, ad)
}

func (k *aeadKey) Open(dst, src []byte, pn PacketNumber, ad []byte) ([]byte, error) {
	binary.BigEndian.PutUint64(k.nonceBuf[len(k.nonceBuf)-8:], uint64(pn))
	dec, err := k.aead.Open(dst, k.nonceBuf, src, ad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return dec, nil
}

func (k *aeadKey) Overhead() int { return k.aead.Overhead() }
