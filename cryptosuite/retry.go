package cryptosuite

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"sync"
)

var (
	retryAEAD  cipher.AEAD
	retryBuf   bytes.Buffer
	retryMutex sync.Mutex

	// key and nonce defined in RFC 9001, section 5.8
	retryKey   = [16]byte{0xbe, 0x0c, 0x69, 0x0b, 0x9f, 0x66, 0x57, 0x5a, 0x1d, 0x76, 0x6b, 0x54, 0xe3, 0x68, 0xc8, 0x4e}
	retryNonce = [12]byte{0x46, 0x15, 0x99, 0xd3, 0x5d, 0x63, 0x2b, 0xf2, 0x23, 0x98, 0x25, 0xbb}
)

func init() {
	aes, err := aes.NewCipher(retryKey[:])
	if err != nil {
		panic(err)
	}
	aead, err := cipher.NewGCM(aes)
	if err != nil {
		panic(err)
	}
	retryAEAD = aead
}

// retryIntegrityTag calculates the integrity tag on a Retry packet.
func retryIntegrityTag(retry, origDestConnID []byte) [16]byte {
	retryMutex.Lock()
	defer retryMutex.Unlock()

	retryBuf.WriteByte(uint8(len(origDestConnID)))
	retryBuf.Write(origDestConnID)
	retryBuf.Write(retry)
	defer retryBuf.Reset()

	var tag [16]byte
	sealed := retryAEAD.Seal(tag[:0], retryNonce[:], nil, retryBuf.Bytes())
	if len(sealed) != 16 {
		panic(fmt.Sprintf("unexpected Retry integrity tag length: %d", len(sealed)))
	}
	return tag
}
