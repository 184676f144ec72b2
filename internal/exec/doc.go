// Package exec runs external commands for the scaffolder.
//
// It is used for exactly one thing today, the optional git bootstrap after a
// scaffold, but knows nothing about git:
//
//	ex := exec.NewExecutor(&exec.Options{Dir: target, Stdout: io.Discard})
//	if _, err := ex.LookPath("git"); err != nil {
//	    return // not installed
//	}
//	err := ex.RunWithSpinner(ctx, "Creating initial commit", "git", "commit", "-m", "Initial scaffold")
//	head, err := ex.Output(ctx, "git", "rev-parse", "HEAD")
//
// Commands are started through a replaceable constructor so tests can
// re-exec the test binary instead of touching the real toolchain.
package exec
