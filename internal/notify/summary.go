package notify

import (
	"fmt"
	"path/filepath"

	"github.com/simonhull/nest/internal/catalog"
	"github.com/simonhull/nest/internal/filesystem"
	"github.com/simonhull/nest/internal/generator"
	"github.com/simonhull/nest/internal/output"
)

// shortCommitLen matches git's default abbreviation.
const shortCommitLen = 7

// PrintSummary reports a completed run: files per package, reserved
// directories, every backup as an original → backup pair, the initial commit
// when ok, and the next steps. The next steps are text only.
func PrintSummary(report *generator.Report, commit string, ok bool) {
	name := filepath.Base(report.TargetRoot)
	output.Success(fmt.Sprintf("Scaffolded %s (%d files)", name, len(report.Files)))

	for _, pkg := range []catalog.Package{catalog.Root, catalog.Backend, catalog.Frontend} {
		var files []generator.FileResult
		for _, f := range report.Files {
			if f.Package == pkg {
				files = append(files, f)
			}
		}
		if len(files) == 0 {
			continue
		}

		output.Info(fmt.Sprintf("%s (%d files)", packageLabel(pkg), len(files)))
		for _, f := range files {
			line := f.Path
			if f.BackedUp {
				line += " (replaced)"
			}
			output.Step(line)
		}
	}

	if len(report.Directories) > 0 {
		output.Info("Reserved directories")
		for _, d := range report.Directories {
			output.Step(d + "/")
		}
	}

	if len(report.Backups) > 0 {
		output.Warn(fmt.Sprintf("Backed up %d existing entries (rename to undo)", len(report.Backups)))
		for _, b := range report.Backups {
			output.Step(fmt.Sprintf("%s → %s", rel(report.TargetRoot, b.Original), rel(report.TargetRoot, b.Backup)))
		}
	}

	if ok {
		if len(commit) > shortCommitLen {
			commit = commit[:shortCommitLen]
		}
		output.Success(fmt.Sprintf("Initial commit %s", commit))
	} else {
		output.Verbose("No git commit created")
	}

	if output.IsVerbose() {
		printTree(report.TargetRoot)
	}

	output.Info("Next steps:")
	output.Step(fmt.Sprintf("cd %s", name))
	output.Step("make install")
	output.Step("docker compose up -d db")
	output.Step("make db-migrate && make db-seed")
	output.Step("make dev")
}

func printTree(root string) {
	paths, err := filesystem.Tree(root, filesystem.WalkOptions{})
	if err != nil {
		output.Warn(fmt.Sprintf("Could not list %s: %v", root, err))
		return
	}
	output.Verbose(fmt.Sprintf("Tree of %s:", root))
	for _, p := range paths {
		output.Step(p)
	}
}

func packageLabel(p catalog.Package) string {
	if p == catalog.Root {
		return "Project root"
	}
	return p.Dir()
}

func rel(root, path string) string {
	r, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(r)
}
