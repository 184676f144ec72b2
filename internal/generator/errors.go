package generator

import "fmt"

// BackupCollisionError means the backup destination for an existing path is
// already taken, usually by a run started in the same second.
type BackupCollisionError struct {
	Path       string
	BackupPath string
}

func (e *BackupCollisionError) Error() string {
	return fmt.Sprintf("cannot back up %s: %s already exists", e.Path, e.BackupPath)
}

// AbortError is returned by Engine.Run when an entry fails. Entries before
// Step were materialized and remain on disk; later ones were never attempted.
type AbortError struct {
	Step  int    // 1-based index of the failing entry
	Total int    // number of entries in the run
	Path  string // failing entry, relative to the target
	Err   error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("scaffold aborted at step %d of %d (%s): %v", e.Step, e.Total, e.Path, e.Err)
}

func (e *AbortError) Unwrap() error {
	return e.Err
}
