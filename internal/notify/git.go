package notify

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/simonhull/nest/internal/logger"
)

// DefaultCommitMessage is used when no message is configured.
const DefaultCommitMessage = "Initial scaffold"

// Runner executes git. *exec.Executor satisfies it.
type Runner interface {
	LookPath(name string) (string, error)
	Run(ctx context.Context, name string, args ...string) error
	RunWithSpinner(ctx context.Context, message string, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// NotifierError is a failed git bootstrap step.
type NotifierError struct {
	Step string // e.g. "init", "commit"
	Err  error
}

func (e *NotifierError) Error() string {
	return fmt.Sprintf("git %s: %v", e.Step, e.Err)
}

func (e *NotifierError) Unwrap() error {
	return e.Err
}

// Bootstrapper initializes a git repository in a freshly scaffolded tree.
type Bootstrapper struct {
	runner  Runner
	message string
	stream  bool
	log     logger.Logger
}

// BootstrapOptions configures a Bootstrapper.
type BootstrapOptions struct {
	CommitMessage string // default DefaultCommitMessage
	Stream        bool   // stream git output instead of showing a spinner
	Logger        logger.Logger
}

// NewBootstrapper returns a Bootstrapper running git through runner.
func NewBootstrapper(runner Runner, opts BootstrapOptions) *Bootstrapper {
	if opts.CommitMessage == "" {
		opts.CommitMessage = DefaultCommitMessage
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	return &Bootstrapper{
		runner:  runner,
		message: opts.CommitMessage,
		stream:  opts.Stream,
		log:     opts.Logger,
	}
}

// TryInitRepo runs git init, stages everything under root and commits it,
// returning the commit id. It is skipped when git is not installed or root
// already holds a repository. Every failure, including "nothing to commit",
// is logged and reported only as ok == false.
func (b *Bootstrapper) TryInitRepo(ctx context.Context, root string) (commitID string, ok bool) {
	log := b.log.With(logger.F("target", root))

	if _, err := b.runner.LookPath("git"); err != nil {
		log.Info("git not found, skipping repository init")
		return "", false
	}
	if _, err := os.Lstat(filepath.Join(root, ".git")); err == nil {
		log.Info("repository already exists, skipping git init")
		return "", false
	}

	id, err := b.bootstrap(ctx, root)
	if err != nil {
		log.Warn("git bootstrap failed", logger.F("error", err))
		return "", false
	}

	log.Debug("initial commit created", logger.F("commit", id))
	return id, true
}

func (b *Bootstrapper) bootstrap(ctx context.Context, root string) (string, error) {
	steps := []struct {
		name    string
		message string
		args    []string
	}{
		{"init", "Initializing git repository", []string{"init"}},
		{"add", "Staging files", []string{"add", "-A"}},
		{"commit", "Creating initial commit", []string{"commit", "-m", b.message}},
	}

	for _, s := range steps {
		args := append([]string{"-C", root}, s.args...)
		var err error
		if b.stream {
			err = b.runner.Run(ctx, "git", args...)
		} else {
			err = b.runner.RunWithSpinner(ctx, s.message, "git", args...)
		}
		if err != nil {
			return "", &NotifierError{Step: s.name, Err: err}
		}
	}

	id, err := b.runner.Output(ctx, "git", "-C", root, "rev-parse", "HEAD")
	if err != nil {
		return "", &NotifierError{Step: "rev-parse", Err: err}
	}
	return id, nil
}
