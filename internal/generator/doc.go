// Package generator materializes a catalog into a target directory.
//
// # Guarantees
//
//   - The parent directory of every entry exists before its content is
//     written (filesystem.EnsureDir runs first, every time).
//   - A path that already exists is never overwritten in place: it is renamed
//     to <path>.bak.<timestamp> and the rename is recorded on the Run before
//     the new content lands.
//   - A backup rename never replaces an earlier backup. If the backup path is
//     taken (two runs in the same second), the run aborts with
//     *BackupCollisionError.
//   - Content is written atomically (temp file + rename).
//   - The first failure aborts the run. Nothing is retried or rolled back;
//     entries already written stay on disk and a rerun backs them up.
//
// # Usage
//
//	cat, _ := catalog.Load()
//	run, err := generator.NewRun("/abs/my-app", time.Now().Unix(), cat)
//	report, err := generator.NewEngine(filesystem.NewOSFS(), log).Run(ctx, run)
//
// Runs are single use and not safe for concurrent use; two processes
// scaffolding the same target at once are not coordinated.
package generator
