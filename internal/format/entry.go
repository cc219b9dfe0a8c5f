package format

import (
	"encoding/binary"
	"fmt"
)

// EntryPlainSize is the fixed size of a decrypted FileEntryPlain record.
const EntryPlainSize = MaxFilename + 8 + 8 + 4 + 4

// EntryFrameSize is the fixed size of an on-disk FileEntry record: a
// 12-byte nonce and 16-byte tag wrapped around an EntryPlainSize-byte
// ciphertext (AEAD ciphertext length equals plaintext length).
const EntryFrameSize = 12 + 16 + EntryPlainSize

// EntryPlain is one file's decrypted metadata record.
type EntryPlain struct {
	Filename       string
	CompressedSize uint64
	OriginalSize   uint64
	Mode           uint32
}

// Marshal serializes e into an EntryPlainSize-byte buffer. A filename longer
// than MaxFilename-1 bytes is rejected with ErrResourceLimit, so the record
// always keeps its NUL terminator.
func (e *EntryPlain) Marshal() ([]byte, error) {
	if len(e.Filename) > MaxFilename-1 {
		return nil, fmt.Errorf("%w: filename %q exceeds %d bytes", ErrResourceLimit, e.Filename, MaxFilename-1)
	}
	buf := make([]byte, EntryPlainSize)
	copy(buf[0:MaxFilename], []byte(e.Filename))
	// buf is zero-initialized, so the NUL terminator (and all padding
	// after the name) is already in place.
	binary.LittleEndian.PutUint64(buf[MaxFilename:], e.CompressedSize)
	binary.LittleEndian.PutUint64(buf[MaxFilename+8:], e.OriginalSize)
	binary.LittleEndian.PutUint32(buf[MaxFilename+16:], e.Mode)
	return buf, nil
}

// UnmarshalEntryPlain parses an EntryPlainSize-byte buffer.
func UnmarshalEntryPlain(buf []byte) (*EntryPlain, error) {
	if len(buf) != EntryPlainSize {
		return nil, fmt.Errorf("%w: entry metadata is %d bytes, want %d", ErrInvalidMetadata, len(buf), EntryPlainSize)
	}
	if buf[MaxFilename-1] != 0 {
		return nil, fmt.Errorf("%w: filename not NUL-terminated", ErrInvalidMetadata)
	}
	nameEnd := 0
	for nameEnd < MaxFilename && buf[nameEnd] != 0 {
		nameEnd++
	}
	name := string(buf[:nameEnd])

	e := &EntryPlain{
		Filename:       name,
		CompressedSize: binary.LittleEndian.Uint64(buf[MaxFilename:]),
		OriginalSize:   binary.LittleEndian.Uint64(buf[MaxFilename+8:]),
		Mode:           binary.LittleEndian.Uint32(buf[MaxFilename+16:]),
	}
	return e, nil
}

// Validate checks the invariants spec.md fixes for a decrypted entry:
// filenames must not traverse out of the extraction root, a nonzero
// compressed size implies a nonzero original size, and original size must
// not exceed the format's ceiling.
func (e *EntryPlain) Validate() error {
	if e.Filename == "" {
		return fmt.Errorf("%w: empty filename", ErrInvalidMetadata)
	}
	if HasPathTraversal(e.Filename) {
		return fmt.Errorf("%w: %q", ErrPathTraversal, e.Filename)
	}
	if e.CompressedSize > 0 && e.OriginalSize == 0 {
		return fmt.Errorf("%w: nonzero compressed_size with zero original_size", ErrInvalidMetadata)
	}
	if e.CompressedSize == 0 && e.OriginalSize > 0 {
		return fmt.Errorf("%w: zero compressed_size with nonzero original_size", ErrInvalidMetadata)
	}
	if e.OriginalSize > MaxFileSize {
		return fmt.Errorf("%w: original_size %d exceeds %d", ErrResourceLimit, e.OriginalSize, MaxFileSize)
	}
	return nil
}
