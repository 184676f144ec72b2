// Package filesystem holds the disk primitives the scaffolder builds on.
//
// # Overview
//
// Every mutation goes through the FS interface so tests can trace or fail
// individual calls:
//   - EnsureDir creates a directory chain, refusing to treat a regular file
//     as a directory
//   - WriteFileAtomic lands a payload in full or not at all
//   - Walk lists a tree while skipping dependency and VCS directories
//
// # Usage
//
//	fsys := filesystem.NewOSFS()
//	if err := filesystem.EnsureDir(fsys, "app/packages/backend/src"); err != nil {
//	    return err
//	}
//	err := filesystem.WriteFileAtomic(fsys, "app/packages/backend/src/index.ts", payload, 0644)
package filesystem
