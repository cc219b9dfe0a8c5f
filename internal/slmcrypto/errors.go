package slmcrypto

import "errors"

var (
	// ErrAuthFail is returned when an AEAD tag fails to verify.
	ErrAuthFail = errors.New("authentication failed")
	// ErrEntropySource is returned when the OS CSPRNG cannot be read.
	ErrEntropySource = errors.New("entropy source unavailable")
)
