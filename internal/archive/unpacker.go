package archive

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/codec"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/format"
)

// UnpackOptions configures a single unpack operation.
type UnpackOptions struct {
	// TargetDir, if non-empty, overrides whatever output directory the
	// archive's own header carries. Empty means: use the archive's stored
	// outdir if it set one, otherwise the current directory.
	TargetDir string
	Overwrite bool
	Logger    Logger
}

// UnpackResult reports what a successful (possibly partially successful,
// since extraction writes in place) unpack produced.
type UnpackResult struct {
	ExtractedFiles []string
	Comment        string
}

// Unpack authenticates and extracts every entry in the archive at path
// under password, writing files under the resolved target directory. Any
// failure aborts the whole operation; files already written before the
// failure are not rolled back, matching the reference extractor's posture.
func Unpack(path string, password []byte, opts UnpackOptions) (*UnpackResult, error) {
	logger := opts.Logger
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

	targetDir, err := resolveTargetDir(opened, opts)
	if err != nil {
		return nil, err
	}

	result := &UnpackResult{Comment: comment}

	offset := format.HeaderSize
	for i := uint32(0); i < opened.header.FileCount; i++ {
		metaPlain, err := readEntryMetadata(opened.data, offset, opened.sched.MetaKey)
		if err != nil {
			return result, err
		}
		offset += format.EntryFrameSize

		plain, err := format.UnmarshalEntryPlain(metaPlain)
		if err != nil {
			return result, err
		}
		if err := plain.Validate(); err != nil {
			return result, err
		}

		var fileData []byte
		if plain.CompressedSize > 0 {
			comp, err := readPayload(opened.data, offset, opened.sched.FileKey, plain.CompressedSize)
			if err != nil {
				return result, err
			}
			offset += 28 + int(plain.CompressedSize)

			fileData, err = codec.Decompress(comp, codec.Algorithm(opened.algo), int64(plain.OriginalSize))
			if err != nil {
				return result, fmt.Errorf("%w: entry %q: %v", ErrDecompress, plain.Filename, err)
			}
		}

		outPath := filepath.Join(targetDir, filepath.FromSlash(plain.Filename))
		if !opts.Overwrite {
			if _, statErr := os.Stat(outPath); statErr == nil {
				return result, fmt.Errorf("%w: %s", ErrDestinationExists, outPath)
			}
		}
		if err := EnsureParentDirs(outPath); err != nil {
			return result, err
		}
		mode := os.FileMode(plain.Mode & 0o777)
		if mode == 0 {
			mode = 0o644
		}
		if err := os.WriteFile(outPath, fileData, mode); err != nil {
			return result, fmt.Errorf("%w: write %s: %v", ErrIO, outPath, err)
		}
		if err := os.Chmod(outPath, mode); err != nil {
			logger.Log(LevelBasic, "%v: could not restore mode on %s: %v", ErrPermissionRestoreFailed, outPath, err)
		}

		result.ExtractedFiles = append(result.ExtractedFiles, plain.Filename)
		logger.Log(LevelDebug, "extracted entry %d/%d: %s (%d bytes)", i+1, opened.header.FileCount, plain.Filename, len(fileData))
	}

	logger.Log(LevelBasic, "extracted %d files from %s to %s", len(result.ExtractedFiles), path, targetDir)
	return result, nil
}

// resolveTargetDir applies the priority spec.md's Open Question 3 settles
// on: an explicit caller-supplied directory always wins; otherwise the
// archive's own stored outdir is decrypted and revalidated against the
// traversal predicate before use; with neither, extraction lands in the
// current directory.
func resolveTargetDir(opened *openedArchive, opts UnpackOptions) (string, error) {
	if opts.TargetDir != "" {
		return opts.TargetDir, nil
	}
	if opened.header.OutdirLen == 0 {
		return ".", nil
	}
	outdir, err := decryptMetaField(opened.sched.MetaKey, opened.header.Outdir[:], opened.header.OutdirLen)
	if err != nil {
		return "", err
	}
	if outdir == "" {
		return ".", nil
	}
	if format.HasPathTraversal(outdir) {
		return "", fmt.Errorf("%w: stored output directory %q", ErrPathTraversal, outdir)
	}
	return outdir, nil
}
