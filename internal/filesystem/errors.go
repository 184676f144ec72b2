package filesystem

import (
	"errors"
	"fmt"
)

// Kind classifies a filesystem failure.
type Kind int

const (
	// KindIO covers permissions, disk full and any other OS-level failure.
	KindIO Kind = iota
	// KindNotDirectory means a path component exists but is not a directory.
	KindNotDirectory
)

func (k Kind) String() string {
	switch k {
	case KindNotDirectory:
		return "path is not a directory"
	default:
		return "i/o error"
	}
}

// Error reports a failed directory creation or file write.
type Error struct {
	Op   string // "mkdir", "write", "rename", ...
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotDirectory reports whether err is a KindNotDirectory *Error.
func IsNotDirectory(err error) bool {
	var fsErr *Error
	if errors.As(err, &fsErr) {
		return fsErr.Kind == KindNotDirectory
	}
	return false
}
