package generator

import (
	"context"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/simonhull/nest/internal/catalog"
	"github.com/simonhull/nest/internal/filesystem"
)

// Operation is one step of a run.
//
// Execute performs the step and records its effects (backups, written files)
// on the run as they happen. Description returns a human-readable summary
// for logs (e.g. "Create packages/backend/package.json (512 bytes)").
type Operation interface {
	Execute(ctx context.Context, run *Run) error
	Description() string
}

// WriteFileOp materializes one file entry.
//
// Execution order is fixed: ensure the parent directory, resolve, back up an
// existing entry (recording it on the run), then write atomically.
type WriteFileOp struct {
	Entry    catalog.Entry
	Path     string        // absolute destination
	Mode     iofs.FileMode // e.g. 0644
	fs       filesystem.FS
	resolver *Resolver
}

func (op *WriteFileOp) Execute(ctx context.Context, run *Run) error {
	if err := filesystem.EnsureDir(op.fs, filepath.Dir(op.Path)); err != nil {
		return err
	}

	res, err := op.resolver.Resolve(op.Path)
	if err != nil {
		return err
	}

	backedUp := false
	if res.Action == BackupThenWrite {
		rec, err := op.resolver.Backup(res)
		if err != nil {
			return err
		}
		run.recordBackup(rec)
		backedUp = true
	}

	if err := filesystem.WriteFileAtomic(op.fs, op.Path, op.Entry.Content, op.Mode); err != nil {
		return err
	}

	run.recordFile(FileResult{
		Package:  op.Entry.Package,
		Path:     op.Entry.TargetPath(),
		Bytes:    len(op.Entry.Content),
		BackedUp: backedUp,
	})
	return nil
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Entry.TargetPath(), len(op.Entry.Content))
}

// ReserveDirOp creates an empty reserved directory.
//
// An existing directory is left alone. Anything else at the path is backed
// up first, like a file entry.
type ReserveDirOp struct {
	Entry    catalog.Entry
	Path     string
	fs       filesystem.FS
	resolver *Resolver
}

func (op *ReserveDirOp) Execute(ctx context.Context, run *Run) error {
	if info, err := op.fs.Stat(op.Path); err == nil && info.IsDir() {
		run.recordDir(op.Entry.TargetPath())
		return nil
	}

	if err := filesystem.EnsureDir(op.fs, filepath.Dir(op.Path)); err != nil {
		return err
	}

	res, err := op.resolver.Resolve(op.Path)
	if err != nil {
		return err
	}
	if res.Action == BackupThenWrite {
		rec, err := op.resolver.Backup(res)
		if err != nil {
			return err
		}
		run.recordBackup(rec)
	}

	if err := filesystem.EnsureDir(op.fs, op.Path); err != nil {
		return err
	}
	run.recordDir(op.Entry.TargetPath())
	return nil
}

func (op *ReserveDirOp) Description() string {
	return fmt.Sprintf("Reserve %s/", op.Entry.TargetPath())
}
