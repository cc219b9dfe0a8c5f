package archive

import (
	"bytes"
	"fmt"
	"os"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/codec"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/format"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/keys"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/slmcrypto"
)

// Entry is one input file: a logical name, POSIX permission bits, and its
// full plaintext contents. The caller (the enumeration collaborator) has
// already resolved directories, applied exclusions, canonicalized the name
// to forward-slash relative form, and rejected traversing names; the packer
// re-validates anyway, defense in depth.
type Entry struct {
	Name string
	Mode uint32
	Data []byte
}

// PackOptions configures a single pack operation.
type PackOptions struct {
	Algorithm codec.Algorithm
	Level     int
	Comment   string // plaintext; must fit within format.MaxCommentPlain
	Outdir    string // plaintext; must fit within format.MaxOutdirPlain
	DryRun    bool
	Overwrite bool
}

// Pack writes a new archive to archivePath containing entries, encrypted
// and authenticated under password. When opts.DryRun is set, every
// cryptographic and compression step still runs (so password/size/limit
// errors surface identically) but nothing is written to disk.
func Pack(archivePath string, password []byte, entries []Entry, opts PackOptions, logger Logger) error {
	if logger == nil {
		logger = NoopLogger
	}

	if err := validatePackInputs(entries, opts); err != nil {
		return err
	}

	if !opts.DryRun && !opts.Overwrite {
		if _, err := os.Stat(archivePath); err == nil {
			return fmt.Errorf("%w: %s", ErrDestinationExists, archivePath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("%w: stat %s: %v", ErrIO, archivePath, err)
		}
	}

	buf, err := buildArchive(password, entries, opts, logger)
	if err != nil {
		return err
	}

	if opts.DryRun {
		logger.Log(LevelBasic, "dry run: would write %d bytes to %s", buf.Len(), archivePath)
		return nil
	}

	if err := os.WriteFile(archivePath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, archivePath, err)
	}
	logger.Log(LevelBasic, "wrote archive %s (%d files, %d bytes)", archivePath, len(entries), buf.Len())
	return nil
}

func validatePackInputs(entries []Entry, opts PackOptions) error {
	if len(entries) > format.MaxFiles {
		return fmt.Errorf("%w: %d files exceeds MAX_FILES (%d)", ErrResourceLimit, len(entries), format.MaxFiles)
	}
	if !codec.ValidLevel(opts.Level) {
		return fmt.Errorf("%w: compression level %d out of range", ErrResourceLimit, opts.Level)
	}
	if !opts.Algorithm.Valid() {
		return fmt.Errorf("%w: unsupported compression algorithm %d", ErrMalformedHeader, opts.Algorithm)
	}
	if len(opts.Comment) > format.MaxCommentPlain {
		return fmt.Errorf("%w: comment exceeds %d bytes", ErrResourceLimit, format.MaxCommentPlain)
	}
	if len(opts.Outdir) > format.MaxOutdirPlain {
		return fmt.Errorf("%w: stored output directory exceeds %d bytes", ErrResourceLimit, format.MaxOutdirPlain)
	}
	seen := map[string]bool{}
	for _, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("%w: empty entry name", ErrInvalidMetadata)
		}
		if len(e.Name) > format.MaxFilename-1 {
			return fmt.Errorf("%w: name %q exceeds %d bytes", ErrResourceLimit, e.Name, format.MaxFilename-1)
		}
		if format.HasPathTraversal(e.Name) {
			return fmt.Errorf("%w: %q", ErrPathTraversal, e.Name)
		}
		if uint64(len(e.Data)) > format.MaxFileSize {
			return fmt.Errorf("%w: %q is %d bytes, exceeds MAX_FILE_SIZE", ErrResourceLimit, e.Name, len(e.Data))
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate entry name %q", ErrInvalidMetadata, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

func buildArchive(password []byte, entries []Entry, opts PackOptions, logger Logger) (*bytes.Buffer, error) {
	salt, err := slmcrypto.RandomBytes(format.SaltSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoUnavailable, err)
	}

	sched := keys.Derive(password, salt)
	defer sched.Zero()

	header := &format.Header{
		Version:          format.CurrentVersion,
		CompressionAlgo:  byte(opts.Algorithm),
		CompressionLevel: byte(opts.Level),
		FileCount:        uint32(len(entries)),
	}
	copy(header.Salt[:], salt)

	if opts.Comment != "" {
		nonce, err := slmcrypto.RandomNonce()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCryptoUnavailable, err)
		}
		ct, tag, err := slmcrypto.Encrypt(sched.MetaKey, nonce, []byte(opts.Comment), nil)
		if err != nil {
			return nil, fmt.Errorf("%w: encrypt comment: %v", ErrCryptoUnavailable, err)
		}
		packAEADField(header.Comment[:], ct, nonce, tag)
		header.CommentLen = uint32(len(ct))
	}

	if opts.Outdir != "" {
		nonce, err := slmcrypto.RandomNonce()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCryptoUnavailable, err)
		}
		ct, tag, err := slmcrypto.Encrypt(sched.MetaKey, nonce, []byte(opts.Outdir), nil)
		if err != nil {
			return nil, fmt.Errorf("%w: encrypt outdir: %v", ErrCryptoUnavailable, err)
		}
		packAEADField(header.Outdir[:], ct, nonce, tag)
		header.OutdirLen = uint32(len(ct))
	}

	hmacTag := slmcrypto.HMACSHA256(sched.FileKey, header.BytesForHMAC())
	copy(header.HMAC[:], hmacTag)

	out := &bytes.Buffer{}
	out.Write(header.Marshal())

	for i, e := range entries {
		var comp []byte
		if len(e.Data) > 0 {
			comp, err = codec.Compress(e.Data, opts.Algorithm, opts.Level)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %q: %v", ErrCompress, e.Name, err)
			}
		}

		plain := &format.EntryPlain{
			Filename:       e.Name,
			CompressedSize: uint64(len(comp)),
			OriginalSize:   uint64(len(e.Data)),
			Mode:           e.Mode,
		}
		plainBytes, err := plain.Marshal()
		if err != nil {
			return nil, err
		}

		metaNonce, err := slmcrypto.RandomNonce()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCryptoUnavailable, err)
		}
		metaCt, metaTag, err := slmcrypto.Encrypt(sched.MetaKey, metaNonce, plainBytes, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q metadata: %v", ErrCryptoUnavailable, e.Name, err)
		}
		out.Write(metaNonce)
		out.Write(metaTag)
		out.Write(metaCt)

		if plain.OriginalSize > 0 {
			fileNonce, err := slmcrypto.RandomNonce()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCryptoUnavailable, err)
			}
			fileCt, fileTag, err := slmcrypto.Encrypt(sched.FileKey, fileNonce, comp, nil)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %q payload: %v", ErrCryptoUnavailable, e.Name, err)
			}
			out.Write(fileNonce)
			out.Write(fileTag)
			out.Write(fileCt)
		}

		logger.Log(LevelDebug, "packed entry %d/%d: %s (%d -> %d bytes)", i+1, len(entries), e.Name, len(e.Data), len(comp))
	}

	return out, nil
}

// packAEADField writes [ciphertext || nonce || tag] into the low end of
// dst, which is assumed to already be zero-filled padding for the rest.
func packAEADField(dst, ciphertext, nonce, tag []byte) {
	n := copy(dst, ciphertext)
	n += copy(dst[n:], nonce)
	copy(dst[n:], tag)
}
