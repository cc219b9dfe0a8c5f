package archive

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDirs creates every missing parent directory of targetPath.
// It is strict: if any parent path component already exists but is not a
// directory, it fails rather than recursing past it. This matches the
// reference implementation's create_parent_dirs, which is the behavior
// spec.md's Open Question 1 designates as the one to adopt.
func EnsureParentDirs(targetPath string) error {
	dir := filepath.Dir(targetPath)
	if dir == "" || dir == "." || dir == string(filepath.Separator) {
		return nil
	}
	return ensureDir(dir)
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s exists and is not a directory", ErrIO, dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", ErrIO, dir, err)
	}

	parent := filepath.Dir(dir)
	if parent != dir {
		if err := ensureDir(parent); err != nil {
			return err
		}
	}
	if err := os.Mkdir(dir, 0o755); err != nil && !os.IsExist(err) {
		return fmt.Errorf("%w: mkdir %s: %v", ErrIO, dir, err)
	}
	return nil
}
