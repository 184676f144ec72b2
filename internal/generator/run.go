package generator

import (
	"fmt"
	"path/filepath"

	"github.com/simonhull/nest/internal/catalog"
)

// State is the lifecycle of a Run.
type State int

const (
	NotStarted State = iota
	Running
	Completed
	Aborted
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Run is one scaffolding invocation: where to write, which timestamp names
// its backups, and what it has done so far.
type Run struct {
	TargetRoot string
	Timestamp  int64
	Entries    []catalog.Entry

	state   State
	backups []BackupRecord
	files   []FileResult
	dirs    []string
}

// FileResult describes one materialized file.
type FileResult struct {
	Package  catalog.Package
	Path     string // relative to the target, slash-separated
	Bytes    int
	BackedUp bool
}

// Report summarizes a completed Run.
type Report struct {
	TargetRoot  string
	Timestamp   int64
	Files       []FileResult
	Directories []string // reserved directories, relative to the target
	Backups     []BackupRecord
}

// NewRun prepares a run of cat into targetRoot. targetRoot must be absolute;
// stamp is the process-wide timestamp used for every backup suffix.
func NewRun(targetRoot string, stamp int64, cat *catalog.Catalog) (*Run, error) {
	if !filepath.IsAbs(targetRoot) {
		return nil, fmt.Errorf("target root must be absolute: %s", targetRoot)
	}
	return &Run{
		TargetRoot: filepath.Clean(targetRoot),
		Timestamp:  stamp,
		Entries:    cat.Entries(),
	}, nil
}

// State returns the run's lifecycle state.
func (r *Run) State() State {
	return r.state
}

// Backups returns the backups created so far, in creation order. It is
// valid after an abort too, so the caller can report what was moved.
func (r *Run) Backups() []BackupRecord {
	out := make([]BackupRecord, len(r.backups))
	copy(out, r.backups)
	return out
}

// abs returns the absolute path of a catalog entry inside the target.
func (r *Run) abs(e catalog.Entry) string {
	return filepath.Join(r.TargetRoot, filepath.FromSlash(e.TargetPath()))
}

func (r *Run) start() error {
	if r.state != NotStarted {
		return fmt.Errorf("run for %s already %s", r.TargetRoot, r.state)
	}
	r.state = Running
	return nil
}

func (r *Run) recordBackup(b BackupRecord) {
	r.backups = append(r.backups, b)
}

func (r *Run) recordFile(f FileResult) {
	r.files = append(r.files, f)
}

func (r *Run) recordDir(rel string) {
	r.dirs = append(r.dirs, rel)
}

func (r *Run) report() *Report {
	return &Report{
		TargetRoot:  r.TargetRoot,
		Timestamp:   r.Timestamp,
		Files:       append([]FileResult(nil), r.files...),
		Directories: append([]string(nil), r.dirs...),
		Backups:     r.Backups(),
	}
}
