package cryptosuite

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/tls"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

const hkdfHeaderProtectionLabel = "quic hp"

func newHeaderProtector(suite *cipherSuite, trafficSecret []byte, isLongHeader bool) (HeaderKey, error) {
	switch suite.ID {
	case tls.TLS_AES_128_GCM_SHA256, tls.TLS_AES_256_GCM_SHA384:
		return newAESHeaderProtector(suite, trafficSecret, isLongHeader)
	case tls.TLS_CHACHA20_POLY1305_SHA256:
		return newChaChaHeaderProtector(suite, trafficSecret, isLongHeader), nil
	default:
		return nil, fmt.Errorf("invalid cipher suite id: %d", suite.ID)
	}
}

type aesHeaderProtector struct {
	mask         []byte
	block        cipher.Block
	isLongHeader bool
}

var _ HeaderKey = &aesHeaderProtector{}

func newAESHeaderProtector(suite *cipherSuite, trafficSecret []byte, isLongHeader bool) (HeaderKey, error) {
	hpKey := hkdfExpandLabel(suite.Hash, trafficSecret, []byte{}, hkdfHeaderProtectionLabel, suite.KeyLen)
	block, err := aes.NewCipher(hpKey)
	if err != nil {
		return nil, fmt.Errorf("error creating new AES cipher: %w", err)
	}
	return &aesHeaderProtector{
		block:        block,
		mask:         make([]byte, block.BlockSize()),
		isLongHeader: isLongHeader,
	}, nil
}

func (p *aesHeaderProtector) DecryptHeader(sample []byte, firstByte *byte, pnBytes []byte) {
	p.apply(sample, firstByte, pnBytes)
}

func (p *aesHeaderProtector) EncryptHeader(sample []byte, firstByte *byte, pnBytes []byte) {
	p.apply(sample, firstByte, pnBytes)
}

func (p *aesHeaderProtector) apply(sample []byte, firstByte *byte, pnBytes []byte) {
	if len(sample) != len(p.mask) {
		panic("invalid sample size")
	}
	p.block.Encrypt(p.mask, sample)
	if p.isLongHeader {
		*firstByte ^= p.mask[0] & 0xf
	} else {
		*firstByte ^= p.mask[0] & 0x1f
	}
	for i := range pnBytes {
		pnBytes[i] ^= p.mask[i+1]
	}
}

type chachaHeaderProtector struct {
	mask [5]byte
	key  [32]byte

	isLongHeader bool
}

var _ HeaderKey = &chachaHeaderProtector{}

func newChaChaHeaderProtector(suite *cipherSuite, trafficSecret []byte, isLongHeader bool) HeaderKey {
	hpKey := hkdfExpandLabel(suite.Hash, trafficSecret, []byte{}, hkdfHeaderProtectionLabel, suite.KeyLen)

	p := &chachaHeaderProtector{
		isLongHeader: isLongHeader,
	}
	copy(p.key[:], hpKey)
	return p
}

func (p *chachaHeaderProtector) DecryptHeader(sample []byte, firstByte *byte, pnBytes []byte) {
	p.apply(sample, firstByte, pnBytes)
}

func (p *chachaHeaderProtector) EncryptHeader(sample []byte, firstByte *byte, pnBytes []byte) {
	p.apply(sample, firstByte, pnBytes)
}

func (p *chachaHeaderProtector) apply(sample []byte, firstByte *byte, pnBytes []byte) {
	if len(sample) != 16 {
		panic("invalid sample size")
	}
	for i := 0; i < 5; i++ {
		p.mask[i] = 0
	}
	cipher, err := chacha20.NewUnauthenticatedCipher(p.key[:], sample[4:])
	if err != nil {
		panic(err)
	}
	cipher.SetCounter(binary.LittleEndian.Uint32(sample[:4]))
	cipher.XORKeyStream(p.mask[:], p.mask[:])
	p.applyMask(firstByte, pnBytes)
}

func (p *chachaHeaderProtector) applyMask(firstByte *byte, pnBytes []byte) {
	if p.isLongHeader {
		*firstByte ^= p.mask[0] & 0xf
	} else {
		*firstByte ^= p.mask[0] & 0x1f
	}
	for i := range pnBytes {
		pnBytes[i] ^= p.mask[i+1]
	}
}
