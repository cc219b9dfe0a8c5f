package slmcrypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2Iterations is the fixed iteration count for password-based key
// derivation. It is not configurable: archives written with a different
// count would not be readable by other implementations of this format.
const PBKDF2Iterations = 1_000_000

// DeriveKey stretches password into a keyLen-byte key using PBKDF2-HMAC-SHA256.
// info domain-separates independent keys derived from the same password and
// salt by suffixing it onto the salt before stretching; the reference
// implementation's literal info strings must be passed unmodified (no
// trailing NUL) for interoperability.
func DeriveKey(password []byte, salt []byte, info string, keyLen int) []byte {
	domainSalt := make([]byte, 0, len(salt)+len(info))
	domainSalt = append(domainSalt, salt...)
	domainSalt = append(domainSalt, []byte(info)...)
	return pbkdf2.Key(password, domainSalt, PBKDF2Iterations, keyLen, sha256.New)
}
