package slmcrypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
)

// HMACSize is the output size of HMAC-SHA256, and the fixed size of the
// archive header's integrity field.
const HMACSize = 32

// HMACSHA256 computes the keyed MAC of data under key.
func HMACSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// ConstantTimeEqual reports whether a and b are equal using a comparison
// whose running time does not depend on where they first differ.
func ConstantTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
