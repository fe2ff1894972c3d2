package cryptosuite

import (
	"crypto"
	"crypto/tls"

	"golang.org/x/crypto/hkdf"

	"github.com/nextproto/quictls/internal/protocol"
)

var quicSaltV1 = []byte{0x38, 0x76, 0x2c, 0xf7, 0xf5, 0x59, 0x34, 0xb3, 0x4d, 0x17, 0x9a, 0xe6, 0xa4, 0xc8, 0x0c, 0xad, 0xcc, 0xbb, 0x7f, 0x0a}

const initialKeyLen = 16

// newInitialKeys derives the Initial role keys for both directions from the
// client's destination connection ID, as defined in RFC 9001, section 5.2.
func newInitialKeys(connID []byte, pers Perspective) (send, receive KeyPair, err error) {
	clientSecret, serverSecret := computeSecrets(connID)
	var mySecret, otherSecret []byte
	if pers == protocol.PerspectiveClient {
		mySecret = clientSecret
		otherSecret = serverSecret
	} else {
		mySecret = serverSecret
		otherSecret = clientSecret
	}
	send, err = newInitialKeyPair(mySecret)
	if err != nil {
		return
	}
	receive, err = newInitialKeyPair(otherSecret)
	return
}

func computeSecrets(connID []byte) (clientSecret, serverSecret []byte) {
	initialSecret := hkdf.Extract(crypto.SHA256.New, connID, quicSaltV1)
	clientSecret = hkdfExpandLabel(crypto.SHA256, initialSecret, []byte{}, "client in", crypto.SHA256.Size())
	serverSecret = hkdfExpandLabel(crypto.SHA256, initialSecret, []byte{}, "server in", crypto.SHA256.Size())
	return
}

func computeInitialKeyAndIV(secret []byte) (key, iv []byte) {
	key = hkdfExpandLabel(crypto.SHA256, secret, []byte{}, "quic key", initialKeyLen)
	iv = hkdfExpandLabel(crypto.SHA256, secret, []byte{}, "quic iv", aeadNonceLength)
	return
}

func newInitialKeyPair(secret []byte) (KeyPair, error) {
	// Initial packets are always protected with AES-128-GCM
	suite, err := getCipherSuite(tls.TLS_AES_128_GCM_SHA256)
	if err != nil {
		return KeyPair{}, err
	}
	key, iv := computeInitialKeyAndIV(secret)
	hp, err := newHeaderProtector(suite, secret, true)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{
		Key:       newAEADKey(suite.AEAD(key, iv)),
		HeaderKey: hp,
	}, nil
}
