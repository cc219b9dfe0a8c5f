package slmcrypto

// SecureZero overwrites buf with zeroes, one element at a time through the
// slice. It is the closest Go equivalent to the reference implementation's
// volatile-pointer zeroing loop; Go has no volatile qualifier, so this is a
// best-effort defense against dead-store elimination, not a guarantee.
func SecureZero(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
