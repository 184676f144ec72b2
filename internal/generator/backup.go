package generator

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"strconv"

	"github.com/simonhull/nest/internal/filesystem"
)

// Action says how a path is materialized.
type Action int

const (
	// WriteDirect writes a path that does not exist yet.
	WriteDirect Action = iota
	// BackupThenWrite moves the existing entry aside before writing.
	BackupThenWrite
)

func (a Action) String() string {
	if a == BackupThenWrite {
		return "backup-then-write"
	}
	return "write-direct"
}

// Resolution is the Resolver's decision for one path.
type Resolution struct {
	Action     Action
	Path       string
	BackupPath string // set only for BackupThenWrite
}

// BackupRecord pairs a relocated entry with where it went.
type BackupRecord struct {
	Original string
	Backup   string
}

// BackupPath returns the run-scoped backup destination for path.
func BackupPath(path string, stamp int64) string {
	return path + ".bak." + strconv.FormatInt(stamp, 10)
}

// Resolver decides whether an existing entry must be preserved and performs
// the preserving rename. One Resolver serves one run timestamp.
type Resolver struct {
	fs    filesystem.FS
	stamp int64
}

// NewResolver returns a Resolver for the given run timestamp.
func NewResolver(fsys filesystem.FS, stamp int64) *Resolver {
	return &Resolver{fs: fsys, stamp: stamp}
}

// Resolve inspects path without following symlinks. Any existing entry
// (file, directory or symlink) resolves to BackupThenWrite.
func (r *Resolver) Resolve(path string) (Resolution, error) {
	_, err := r.fs.Lstat(path)
	switch {
	case err == nil:
		return Resolution{
			Action:     BackupThenWrite,
			Path:       path,
			BackupPath: BackupPath(path, r.stamp),
		}, nil
	case errors.Is(err, iofs.ErrNotExist):
		return Resolution{Action: WriteDirect, Path: path}, nil
	default:
		return Resolution{}, &filesystem.Error{Op: "stat", Path: path, Kind: filesystem.KindIO, Err: err}
	}
}

// Backup renames res.Path to res.BackupPath. It refuses, with
// *BackupCollisionError, when the backup path already exists: rename would
// silently replace it on POSIX systems.
func (r *Resolver) Backup(res Resolution) (BackupRecord, error) {
	if res.Action != BackupThenWrite {
		return BackupRecord{}, fmt.Errorf("backup requested for %s with action %s", res.Path, res.Action)
	}

	_, err := r.fs.Lstat(res.BackupPath)
	switch {
	case err == nil:
		return BackupRecord{}, &BackupCollisionError{Path: res.Path, BackupPath: res.BackupPath}
	case !errors.Is(err, iofs.ErrNotExist):
		return BackupRecord{}, &filesystem.Error{Op: "stat", Path: res.BackupPath, Kind: filesystem.KindIO, Err: err}
	}

	if err := r.fs.Rename(res.Path, res.BackupPath); err != nil {
		return BackupRecord{}, &filesystem.Error{Op: "rename", Path: res.Path, Kind: filesystem.KindIO, Err: err}
	}
	return BackupRecord{Original: res.Path, Backup: res.BackupPath}, nil
}
