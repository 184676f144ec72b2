package filesystem

import (
	"errors"
	iofs "io/fs"
	"path/filepath"
	"syscall"
)

// DirMode is the permission used for every directory the scaffolder creates.
const DirMode = 0755

// EnsureDir makes sure dir and all of its ancestors exist as directories.
//
// It is a no-op when dir already exists as a directory. If dir or any
// ancestor exists but is not a directory, it returns an *Error of
// KindNotDirectory naming the offending path and creates nothing.
func EnsureDir(fsys FS, dir string) error {
	dir = filepath.Clean(dir)

	info, err := fsys.Stat(dir)
	switch {
	case err == nil:
		if info.IsDir() {
			return nil
		}
		return &Error{Op: "mkdir", Path: dir, Kind: KindNotDirectory}
	case !missing(err):
		return &Error{Op: "mkdir", Path: dir, Kind: KindIO, Err: err}
	}

	// Find the deepest existing ancestor before creating anything, so a
	// regular file in the chain is reported instead of half-created dirs.
	for p := filepath.Dir(dir); ; p = filepath.Dir(p) {
		info, err := fsys.Stat(p)
		if err == nil {
			if !info.IsDir() {
				return &Error{Op: "mkdir", Path: p, Kind: KindNotDirectory}
			}
			break
		}
		if !missing(err) {
			return &Error{Op: "mkdir", Path: p, Kind: KindIO, Err: err}
		}
		if filepath.Dir(p) == p {
			break
		}
	}

	if err := fsys.MkdirAll(dir, DirMode); err != nil {
		kind := KindIO
		if errors.Is(err, syscall.ENOTDIR) {
			kind = KindNotDirectory
		}
		return &Error{Op: "mkdir", Path: dir, Kind: kind, Err: err}
	}
	return nil
}

// missing reports whether a Stat error means the path (or one of its
// parents) is absent. ENOTDIR is included because stat on a/b/c returns it
// when a/b is a regular file; the ancestor walk then reports a/b precisely.
func missing(err error) bool {
	return errors.Is(err, iofs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
