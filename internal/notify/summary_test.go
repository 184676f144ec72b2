package notify

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/nest/internal/catalog"
	"github.com/simonhull/nest/internal/generator"
	"github.com/simonhull/nest/internal/output"
)

func captureOutput(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	restore := output.SetWriter(&buf)
	output.SetPlain(true)
	output.SetVerbose(verbose)
	t.Cleanup(func() {
		restore()
		output.SetPlain(false)
		output.SetVerbose(false)
	})
	return &buf
}

func sampleReport(root string) *generator.Report {
	return &generator.Report{
		TargetRoot: root,
		Timestamp:  1700000000,
		Files: []generator.FileResult{
			{Package: catalog.Root, Path: "README.md", Bytes: 10},
			{Package: catalog.Backend, Path: "packages/backend/package.json", Bytes: 20, BackedUp: true},
			{Package: catalog.Frontend, Path: "packages/frontend/index.html", Bytes: 30},
		},
		Directories: []string{"infra", ".github/workflows"},
		Backups: []generator.BackupRecord{{
			Original: filepath.Join(root, "packages", "backend", "package.json"),
			Backup:   filepath.Join(root, "packages", "backend", "package.json.bak.1700000000"),
		}},
	}
}

func TestPrintSummary(t *testing.T) {
	buf := captureOutput(t, false)
	root := filepath.Join(t.TempDir(), "my-app")

	PrintSummary(sampleReport(root), "0123456789abcdef", true)
	out := buf.String()

	assert.Contains(t, out, "Scaffolded my-app (3 files)")
	assert.Contains(t, out, "Project root (1 files)")
	assert.Contains(t, out, "packages/backend (1 files)")
	assert.Contains(t, out, "packages/frontend (1 files)")
	assert.Contains(t, out, "packages/backend/package.json (replaced)")
	assert.Contains(t, out, "infra/")
	assert.Contains(t, out, ".github/workflows/")
	assert.Contains(t, out, "Backed up 1 existing entries")
	assert.Contains(t, out, "packages/backend/package.json → packages/backend/package.json.bak.1700000000")
	assert.Contains(t, out, "Initial commit 0123456")
	assert.NotContains(t, out, "0123456789abcdef")
	assert.Contains(t, out, "Next steps:")
	assert.Contains(t, out, "cd my-app")
	assert.Contains(t, out, "make install")
}

func TestPrintSummary_NoCommitNoBackups(t *testing.T) {
	buf := captureOutput(t, false)
	report := sampleReport(filepath.Join(t.TempDir(), "my-app"))
	report.Backups = nil

	PrintSummary(report, "", false)
	out := buf.String()

	assert.NotContains(t, out, "Backed up")
	assert.NotContains(t, out, "Initial commit")
	assert.NotContains(t, out, "No git commit created", "verbose-only line")
}

func TestPrintSummary_VerbosePrintsTree(t *testing.T) {
	buf := captureOutput(t, true)
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "infra"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0644))

	report := sampleReport(root)
	PrintSummary(report, "", false)
	out := buf.String()

	assert.Contains(t, out, "No git commit created")
	assert.Contains(t, out, "Tree of "+root)
	assert.Contains(t, out, "   README.md\n")
	assert.Contains(t, out, "   infra/\n")
}
