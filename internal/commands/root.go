package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonhull/nest"
	"github.com/simonhull/nest/internal/catalog"
	"github.com/simonhull/nest/internal/config"
	"github.com/simonhull/nest/internal/exec"
	"github.com/simonhull/nest/internal/filesystem"
	"github.com/simonhull/nest/internal/generator"
	"github.com/simonhull/nest/internal/logger"
	"github.com/simonhull/nest/internal/notify"
	"github.com/simonhull/nest/internal/output"
)

// Options replaces the process-level collaborators of the root command.
// Zero fields use the real ones.
type Options struct {
	LoadConfig func() (*config.Config, error)
	FS         filesystem.FS
	Now        func() time.Time
	Runner     notify.Runner // runs git; nil builds an exec.Executor
	Stdout     io.Writer
	Stderr     io.Writer
}

func (o *Options) defaults() {
	if o.LoadConfig == nil {
		o.LoadConfig = config.Load
	}
	if o.FS == nil {
		o.FS = filesystem.NewOSFS()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// RootCmd creates and returns the nest command.
func RootCmd() *cobra.Command {
	return NewRootCmd(Options{})
}

// NewRootCmd builds the nest command around opts.
func NewRootCmd(opts Options) *cobra.Command {
	opts.defaults()

	cmd := &cobra.Command{
		Use:   "nest [target]",
		Short: "Scaffold a frontend + backend monorepo",
		Long: `Nest writes a ready-to-edit project tree into the target directory:
• packages/backend  (Node, TypeScript, Prisma)
• packages/frontend (Vite, React, Tailwind)
• Makefile, docker-compose.yml and env files at the root
• empty infra/ and .github/workflows/ directories

Nothing is installed, built or run. Existing files are moved to
<name>.bak.<timestamp> before being replaced.

Example:
  nest storefront`,
		Version: nest.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				output.Error(err.Error())
				return err
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return scaffold(cmd.Context(), opts, args)
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		output.Error(err.Error())
		return err
	})
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)

	return cmd
}

func scaffold(ctx context.Context, opts Options, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	restore := output.SetWriter(opts.Stdout)
	defer restore()
	if f, ok := opts.Stdout.(*os.File); ok {
		output.SetPlain(!output.IsTerminal(f))
	} else {
		output.SetPlain(true)
	}

	cfg, err := opts.LoadConfig()
	if err != nil {
		output.Error(err.Error())
		return err
	}
	output.SetVerbose(cfg.Verbose)

	level := logger.LevelInfo
	if cfg.Verbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, opts.Stderr)
	if cfg.Source != "" {
		log.Debug("config loaded", logger.F("file", cfg.Source))
	}

	target := cfg.DefaultTarget
	if len(args) == 1 {
		target = args[0]
	}
	root, err := filepath.Abs(target)
	if err != nil {
		output.Error(fmt.Sprintf("Invalid target %q: %v", target, err))
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		output.Error(err.Error())
		return err
	}

	stamp := opts.Now().Unix()
	run, err := generator.NewRun(root, stamp, cat)
	if err != nil {
		output.Error(err.Error())
		return err
	}
	output.Verbose(fmt.Sprintf("Scaffolding %s (backup suffix .bak.%d)", root, stamp))

	report, err := generator.NewEngine(opts.FS, log).Run(ctx, run)
	if err != nil {
		output.Error(err.Error())
		reportPartialBackups(root, run.Backups())
		return err
	}

	commit, ok := "", false
	if cfg.Git.Enabled {
		commit, ok = bootstrapGit(ctx, opts, cfg, log, root)
	} else {
		log.Debug("git bootstrap disabled")
	}

	notify.PrintSummary(report, commit, ok)
	return nil
}

// bootstrapGit runs the best-effort repository init. Verbose runs stream
// git's own output with a prefix; otherwise a spinner is shown when stderr
// is a terminal.
func bootstrapGit(ctx context.Context, opts Options, cfg *config.Config, log logger.Logger, root string) (string, bool) {
	runner := opts.Runner
	if runner == nil {
		stdout := exec.NewPrefixWriter(opts.Stdout, "   git │ ")
		stderr := exec.NewPrefixWriter(opts.Stderr, "   git │ ")
		defer stdout.Flush()
		defer stderr.Flush()

		interactive := false
		if f, ok := opts.Stderr.(*os.File); ok {
			interactive = output.IsTerminal(f)
		}
		runner = exec.NewExecutor(&exec.Options{
			Stdout:  stdout,
			Stderr:  stderr,
			Spinner: interactive && !cfg.Verbose,
		})
	}

	b := notify.NewBootstrapper(runner, notify.BootstrapOptions{
		CommitMessage: cfg.Git.CommitMessage,
		Stream:        cfg.Verbose,
		Logger:        log,
	})
	return b.TryInitRepo(ctx, root)
}

func reportPartialBackups(root string, backups []generator.BackupRecord) {
	if len(backups) == 0 {
		return
	}
	output.Warn(fmt.Sprintf("%d existing entries were moved aside before the failure:", len(backups)))
	for _, b := range backups {
		orig, _ := filepath.Rel(root, b.Original)
		backup, _ := filepath.Rel(root, b.Backup)
		output.Step(fmt.Sprintf("%s → %s", filepath.ToSlash(orig), filepath.ToSlash(backup)))
	}
}
