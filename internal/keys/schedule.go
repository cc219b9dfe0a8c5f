// Package keys implements the archive's two-key schedule: one password,
// one salt, two domain-separated 256-bit keys.
package keys

import "github.com/kUrOSH1R0oo/Seclume-Linux/internal/slmcrypto"

// Info strings are the literal, exact ASCII domain-separation labels. They
// must match the reference implementation byte for byte, with no trailing
// NUL, or archives will not round-trip across implementations.
const (
	FileKeyInfo = "file encryption"
	MetaKeyInfo = "metadata encryption"
)

// Schedule holds the two keys derived for a single archive operation. Both
// must be zeroed via Zero before the schedule is discarded.
type Schedule struct {
	FileKey []byte
	MetaKey []byte
}

// Derive computes the file-key and meta-key for (password, salt).
func Derive(password []byte, salt []byte) Schedule {
	return Schedule{
		FileKey: slmcrypto.DeriveKey(password, salt, FileKeyInfo, slmcrypto.KeySize),
		MetaKey: slmcrypto.DeriveKey(password, salt, MetaKeyInfo, slmcrypto.KeySize),
	}
}

// Zero overwrites both keys in place. Call on every exit path, including
// error paths.
func (s *Schedule) Zero() {
	slmcrypto.SecureZero(s.FileKey)
	slmcrypto.SecureZero(s.MetaKey)
}
