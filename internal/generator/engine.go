package generator

import (
	"context"
	"fmt"

	"github.com/simonhull/nest/internal/catalog"
	"github.com/simonhull/nest/internal/filesystem"
	"github.com/simonhull/nest/internal/logger"
)

// FileMode is the permission given to every generated file.
const FileMode = 0644

// Engine drives a Run's entries through the Resolver and the filesystem.
type Engine struct {
	fs  filesystem.FS
	log logger.Logger
}

// NewEngine returns an Engine writing through fsys. A nil log discards.
func NewEngine(fsys filesystem.FS, log logger.Logger) *Engine {
	if log == nil {
		log = logger.Discard()
	}
	return &Engine{fs: fsys, log: log}
}

// Plan turns the run's entries into operations, in entry order.
func (e *Engine) Plan(run *Run) []Operation {
	resolver := NewResolver(e.fs, run.Timestamp)

	ops := make([]Operation, 0, len(run.Entries))
	for _, entry := range run.Entries {
		switch entry.Kind {
		case catalog.Directory:
			ops = append(ops, &ReserveDirOp{
				Entry:    entry,
				Path:     run.abs(entry),
				fs:       e.fs,
				resolver: resolver,
			})
		default:
			ops = append(ops, &WriteFileOp{
				Entry:    entry,
				Path:     run.abs(entry),
				Mode:     FileMode,
				fs:       e.fs,
				resolver: resolver,
			})
		}
	}
	return ops
}

// Run materializes every entry in order and returns a Report.
//
// The first failing entry moves the run to Aborted and is returned as
// *AbortError; no later entry is attempted. The context is checked between
// entries only.
func (e *Engine) Run(ctx context.Context, run *Run) (*Report, error) {
	if err := run.start(); err != nil {
		return nil, err
	}

	log := e.log.With(logger.F("target", run.TargetRoot), logger.F("stamp", run.Timestamp))
	ops := e.Plan(run)
	log.Debug("scaffold started", logger.F("entries", len(ops)))

	for i, op := range ops {
		entry := run.Entries[i]

		if err := ctx.Err(); err != nil {
			return nil, e.abort(log, run, i, len(ops), entry, fmt.Errorf("cancelled: %w", err))
		}

		before := len(run.backups)
		if err := op.Execute(ctx, run); err != nil {
			return nil, e.abort(log, run, i, len(ops), entry, err)
		}

		for _, b := range run.backups[before:] {
			log.Debug("backup created", logger.F("path", b.Original), logger.F("backup", b.Backup))
		}
		log.Debug(op.Description(), logger.F("step", i+1))
	}

	run.state = Completed
	log.Debug("scaffold completed", logger.F("files", len(run.files)), logger.F("backups", len(run.backups)))
	return run.report(), nil
}

func (e *Engine) abort(log logger.Logger, run *Run, i, total int, entry catalog.Entry, err error) error {
	run.state = Aborted
	log.Debug("scaffold aborted", logger.F("step", i+1), logger.F("path", entry.TargetPath()), logger.F("error", err))
	return &AbortError{Step: i + 1, Total: total, Path: entry.TargetPath(), Err: err}
}
