package filesystem

import (
	"os"
	"path/filepath"
)

const tempPattern = ".nest-tmp-*"

// WriteFileAtomic writes data to path through a temp file in the same
// directory followed by a rename. Either the full payload lands at path or
// path is left as it was; the temp file never survives a failure.
// The parent directory must already exist.
func WriteFileAtomic(fsys FS, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpPath, w, err := fsys.CreateTemp(dir, tempPattern)
	if err != nil {
		return &Error{Op: "write", Path: path, Kind: KindIO, Err: err}
	}

	success := false
	defer func() {
		if !success {
			_ = fsys.Remove(tmpPath)
		}
	}()

	if _, err := w.Write(data); err != nil {
		w.Close()
		return &Error{Op: "write", Path: path, Kind: KindIO, Err: err}
	}
	if err := w.Close(); err != nil {
		return &Error{Op: "write", Path: path, Kind: KindIO, Err: err}
	}
	if err := fsys.Chmod(tmpPath, perm); err != nil {
		return &Error{Op: "chmod", Path: path, Kind: KindIO, Err: err}
	}
	if err := fsys.Rename(tmpPath, path); err != nil {
		return &Error{Op: "rename", Path: path, Kind: KindIO, Err: err}
	}

	success = true
	return nil
}

// IsTempFile reports whether name looks like a leftover from WriteFileAtomic.
func IsTempFile(name string) bool {
	ok, _ := filepath.Match(tempPattern, name)
	return ok
}
