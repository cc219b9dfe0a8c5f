package slmcrypto

import (
	"crypto/rand"
	"fmt"
)

// RandomBytes returns n cryptographically random bytes. It fails only if
// the OS entropy source itself fails.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropySource, err)
	}
	return buf, nil
}

// RandomNonce returns a fresh AEAD nonce. Each call must be used for at
// most one encryption under a given key.
func RandomNonce() ([]byte, error) {
	return RandomBytes(NonceSize)
}
