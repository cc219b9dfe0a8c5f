package archive

import (
	"encoding/binary"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/format"
)

// ListedEntry is one successfully authenticated and validated entry's
// metadata, as reported by List. Lister never decrypts or decompresses
// payloads, so it never reports an error about the payload itself.
type ListedEntry struct {
	Filename     string
	Mode         uint32
	OriginalSize uint64
}

// ListResult is the outcome of a listing pass: every entry whose metadata
// authenticated and validated cleanly, plus a count of entries that
// authenticated but violated an invariant (path traversal, inconsistent
// sizes, oversize) and were skipped.
type ListResult struct {
	Entries []ListedEntry
	Errors  int
	Comment string
}

// List authenticates the header and walks every entry's metadata without
// ever touching payload ciphertext. Its error handling is intentionally
// asymmetric with Unpack's: a metadata authentication failure is
// unrecoverable (compressed_size is untrusted until the AEAD tag verifies,
// so there is no safe way to know how far to skip) and stops the scan
// immediately; an authenticated-but-invariant-violating entry is safe to
// skip over, because its declared compressed_size did authenticate, and the
// scan continues.
func List(path string, password []byte, logger Logger) (*ListResult, error) {
	if logger == nil {
		logger = NoopLogger
	}

	opened, err := openArchive(path, password)
	if err != nil {
		return nil, err
	}
	defer opened.sched.Zero()

	comment, err := decryptMetaField(opened.sched.MetaKey, opened.header.Comment[:], opened.header.CommentLen)
	if err != nil {
		return nil, err
	}

	result := &ListResult{Comment: comment}

	offset := format.HeaderSize
	for i := uint32(0); i < opened.header.FileCount; i++ {
		metaPlain, err := readEntryMetadata(opened.data, offset, opened.sched.MetaKey)
		if err != nil {
			return result, err
		}
		offset += format.EntryFrameSize

		plain, perr := format.UnmarshalEntryPlain(metaPlain)
		if perr == nil {
			perr = plain.Validate()
		}
		if perr != nil {
			result.Errors++
			logger.Log(LevelBasic, "entry %d: skipping invalid metadata: %v", i, perr)
			compressedSize := binary.LittleEndian.Uint64(metaPlain[format.MaxFilename:])
			if compressedSize > 0 {
				offset += 28 + int(compressedSize)
			}
			continue
		}

		result.Entries = append(result.Entries, ListedEntry{
			Filename:     plain.Filename,
			Mode:         plain.Mode,
			OriginalSize: plain.OriginalSize,
		})
		if plain.CompressedSize > 0 {
			offset += 28 + int(plain.CompressedSize)
		}
	}

	return result, nil
}

// ViewComment authenticates the header and returns its decrypted comment
// field without walking any entries.
func ViewComment(path string, password []byte) (string, error) {
	opened, err := openArchive(path, password)
	if err != nil {
		return "", err
	}
	defer opened.sched.Zero()

	return decryptMetaField(opened.sched.MetaKey, opened.header.Comment[:], opened.header.CommentLen)
}
