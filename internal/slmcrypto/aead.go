// Package slmcrypto provides the authenticated-encryption, key-derivation,
// and MAC primitives the archive codec is built on.
package slmcrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// AEAD field sizes, fixed by the archive format.
const (
	KeySize   = 32
	NonceSize = 12
	TagSize   = 16
)

// Encrypt seals plaintext with AES-256-GCM under key and a fresh nonce the
// caller supplies. It returns ciphertext and tag separately, matching the
// on-disk framing ([ciphertext || nonce || tag]) rather than Go's usual
// tag-appended convention.
func Encrypt(key, nonce, plaintext, aad []byte) (ciphertext, tag []byte, err error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	if len(nonce) != NonceSize {
		return nil, nil, fmt.Errorf("aead: nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}

	sealed := aead.Seal(nil, nonce, plaintext, aad)
	ct := sealed[:len(sealed)-TagSize]
	tg := sealed[len(sealed)-TagSize:]
	return ct, tg, nil
}

// Decrypt opens ciphertext with AES-256-GCM under key, nonce, and tag. It
// fails closed: any authentication failure returns ErrAuthFail and no
// plaintext.
func Decrypt(key, nonce, ciphertext, tag, aad []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("aead: nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("aead: tag must be %d bytes, got %d", TagSize, len(tag))
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFail, err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("aead: key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aead: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("aead: %w", err)
	}
	return aead, nil
}
