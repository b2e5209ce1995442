// Package staticfs exposes a directory tree as an fs.FS that never resolves
// a name to a file outside of its root, neither through ".." elements nor
// through symbolic links.
package staticfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

var _ fs.FS = (*FS)(nil)

type FS struct {
	root string
}

// New fails with the underlying OS error when root is missing or is not a directory.
func New(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("absolute path of %q: %w", root, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}

	fi, err := os.Stat(resolved)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: root, Err: syscall.ENOTDIR}
	}

	return &FS{root: resolved}, nil
}

// Root returns the absolute root with symbolic links resolved.
func (f *FS) Root() string {
	return f.root
}

// Open opens name relative to the root. Names leaving the root report fs.ErrPermission.
func (f *FS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	full, err := f.resolve(name)
	if err != nil {
		return nil, err
	}

	return os.Open(full)
}

func (f *FS) resolve(name string) (string, error) {
	full := filepath.Join(f.root, filepath.FromSlash(name))

	resolved, err := filepath.EvalSymlinks(full)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
		}
		// ENOTDIR and dangling links look like a missing file to clients.
		return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	if !within(f.root, resolved) {
		return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}

	return resolved, nil
}

func within(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}
