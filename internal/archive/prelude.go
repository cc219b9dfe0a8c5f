package archive

import (
	"fmt"
	"os"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/format"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/keys"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/slmcrypto"
)

// openedArchive is the result of the prelude Unpack, List, and ViewComment
// all run before diverging.
type openedArchive struct {
	data   []byte
	header *format.Header
	sched  keys.Schedule
	algo   byte
}

// openArchive implements the shared consumer-side prelude: START ->
// HEADER_READ -> HEADER_AUTH_OK. Any failure here is an ABORT; callers must
// not attempt to recover from it.
func openArchive(path string, password []byte) (*openedArchive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}
	if len(data) < format.HeaderSize {
		return nil, fmt.Errorf("%w: file shorter than header", ErrMalformedHeader)
	}

	header := &format.Header{}
	if err := header.Unmarshal(data[:format.HeaderSize]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	sched := keys.Derive(password, header.Salt[:])

	expected := slmcrypto.HMACSHA256(sched.FileKey, header.BytesForHMAC())
	if !slmcrypto.ConstantTimeEqual(expected, header.HMAC[:]) {
		sched.Zero()
		return nil, ErrHeaderAuthFail
	}

	algo, err := header.ResolveAlgorithm()
	if err != nil {
		sched.Zero()
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	return &openedArchive{data: data, header: header, sched: sched, algo: algo}, nil
}

// decryptMetaField decrypts one of the header's variable-length
// [ciphertext || nonce(12) || tag(16)] fields, given its declared plaintext
// (ciphertext) length.
func decryptMetaField(key, field []byte, plainLen uint32) (string, error) {
	if plainLen == 0 {
		return "", nil
	}
	if uint64(plainLen)+uint64(format.AEADFrameOverhead) > uint64(len(field)) {
		return "", fmt.Errorf("%w: stored field length exceeds capacity", ErrMalformedHeader)
	}
	ct := field[:plainLen]
	nonce := field[plainLen : plainLen+12]
	tag := field[plainLen+12 : plainLen+28]
	pt, err := slmcrypto.Decrypt(key, nonce, ct, tag, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHeaderAuthFail, err)
	}
	return string(pt), nil
}

// readEntryMetadata decrypts the EntryFrameSize-byte metadata frame at
// data[offset:] and returns the decrypted EntryPlainSize-byte record.
func readEntryMetadata(data []byte, offset int, metaKey []byte) ([]byte, error) {
	if offset+format.EntryFrameSize > len(data) {
		return nil, fmt.Errorf("%w: truncated entry metadata", ErrMalformedHeader)
	}
	frame := data[offset : offset+format.EntryFrameSize]
	nonce := frame[:12]
	tag := frame[12:28]
	ct := frame[28:]
	plain, err := slmcrypto.Decrypt(metaKey, nonce, ct, tag, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntryAuthFail, err)
	}
	return plain, nil
}

// readPayload decrypts the payload frame at data[offset:] for an entry
// declaring compressedSize bytes of ciphertext and returns the still
// compressed plaintext; decompression is left to the caller.
func readPayload(data []byte, offset int, fileKey []byte, compressedSize uint64) ([]byte, error) {
	frameLen := 28 + int(compressedSize)
	if offset+frameLen > len(data) {
		return nil, fmt.Errorf("%w: truncated entry payload", ErrMalformedHeader)
	}
	frame := data[offset : offset+frameLen]
	nonce := frame[:12]
	tag := frame[12:28]
	ct := frame[28:]
	plain, err := slmcrypto.Decrypt(fileKey, nonce, ct, tag, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntryAuthFail, err)
	}
	return plain, nil
}
