// Package enumerate builds the ordered list of archive.Entry values Pack
// consumes, from a mix of file and directory command-line arguments.
package enumerate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/archive"
	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/format"
)

// Walk resolves paths (a mix of files and directories) into a flat,
// lexicographically ordered list of archive.Entry values, reading every
// matched file's contents into memory. include/exclude are shell glob
// patterns (path.Match syntax) tested against both a file's base name and
// its path relative to the directory root it was found under; exclude is
// checked first, so an exclude match always wins over an include match.
// Every produced name is validated against the same path-traversal
// predicate the packer itself enforces, so an adversarial symlink inside a
// walked tree cannot smuggle a ../ escape into the archive.
func Walk(paths []string, include, exclude []string) ([]archive.Entry, error) {
	var entries []archive.Entry

	for _, root := range paths {
		info, err := os.Lstat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if info.Mode().IsRegular() {
			e, err := loadEntry(root, filepath.ToSlash(filepath.Base(root)), info)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
			continue
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is neither a regular file nor a directory", root)
		}

		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			if !info.Mode().IsRegular() {
				return nil
			}

			relPath, _ := filepath.Rel(root, path)
			relPath = filepath.ToSlash(relPath)
			name := filepath.Base(path)

			if matchesAny(exclude, name, relPath) {
				return nil
			}
			if len(include) > 0 && !matchesAny(include, name, relPath) {
				return nil
			}

			e, err := loadEntry(path, relPath, info)
			if err != nil {
				return err
			}
			entries = append(entries, e)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if len(entries) > format.MaxFiles {
		return nil, fmt.Errorf("%d files exceeds MAX_FILES (%d)", len(entries), format.MaxFiles)
	}
	return entries, nil
}

func loadEntry(diskPath, archiveName string, info os.FileInfo) (archive.Entry, error) {
	if format.HasPathTraversal(archiveName) {
		return archive.Entry{}, fmt.Errorf("refusing to add %q: resolves outside the archive root", archiveName)
	}
	if uint64(info.Size()) > format.MaxFileSize {
		return archive.Entry{}, fmt.Errorf("%s is %d bytes, exceeds MAX_FILE_SIZE", diskPath, info.Size())
	}
	data, err := os.ReadFile(diskPath)
	if err != nil {
		return archive.Entry{}, fmt.Errorf("read %s: %w", diskPath, err)
	}
	return archive.Entry{
		Name: archiveName,
		Mode: uint32(info.Mode().Perm()),
		Data: data,
	}, nil
}

func matchesAny(patterns []string, name, relPath string) bool {
	for _, pat := range patterns {
		if ok, _ := filepath.Match(pat, name); ok {
			return true
		}
		if ok, _ := filepath.Match(pat, relPath); ok {
			return true
		}
	}
	return false
}
