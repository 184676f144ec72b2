package filesystem

import (
	"io"
	iofs "io/fs"
	"os"
)

// FS is the set of filesystem calls the scaffolder performs.
// Implementations must return *os.PathError-compatible errors so callers can
// use errors.Is with io/fs sentinels.
type FS interface {
	MkdirAll(path string, perm os.FileMode) error
	Stat(path string) (iofs.FileInfo, error)
	Lstat(path string) (iofs.FileInfo, error)
	Rename(oldpath, newpath string) error
	Remove(path string) error
	Chmod(path string, perm os.FileMode) error
	// CreateTemp creates a temp file in dir and returns its path and a writer.
	// The caller closes the writer and removes the file when done.
	CreateTemp(dir, pattern string) (path string, w io.WriteCloser, err error)
}

// OSFS is the FS backed by the os package.
type OSFS struct{}

// NewOSFS returns the production FS.
func NewOSFS() *OSFS {
	return &OSFS{}
}

func (OSFS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }

func (OSFS) Stat(path string) (iofs.FileInfo, error) { return os.Stat(path) }

func (OSFS) Lstat(path string) (iofs.FileInfo, error) { return os.Lstat(path) }

func (OSFS) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }

func (OSFS) Remove(path string) error { return os.Remove(path) }

func (OSFS) Chmod(path string, perm os.FileMode) error { return os.Chmod(path, perm) }

func (OSFS) CreateTemp(dir, pattern string) (string, io.WriteCloser, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", nil, err
	}
	return f.Name(), f, nil
}
