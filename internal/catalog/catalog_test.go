package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BuiltinLayout(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	var got []string
	for _, e := range cat.Entries() {
		got = append(got, e.TargetPath())
	}

	want := []string{
		"README.md",
		".gitignore",
		"Makefile",
		"docker-compose.yml",
		".env.backend",
		"NOTES.txt",
		"infra",
		".github/workflows",
		"packages/backend/package.json",
		"packages/backend/tsconfig.json",
		"packages/backend/tsconfig.build.json",
		"packages/backend/Dockerfile",
		"packages/backend/src/index.ts",
		"packages/backend/prisma/schema.prisma",
		"packages/backend/prisma/seed.ts",
		"packages/frontend/package.json",
		"packages/frontend/tsconfig.json",
		"packages/frontend/vite.config.ts",
		"packages/frontend/tailwind.config.js",
		"packages/frontend/index.html",
		"packages/frontend/Dockerfile",
		"packages/frontend/src/main.tsx",
		"packages/frontend/src/App.tsx",
		"packages/frontend/src/styles.css",
	}
	assert.Equal(t, want, got)
	assert.Equal(t, len(want), cat.Len())
}

func TestLoad_PayloadsAreVerbatim(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	for _, e := range cat.Entries() {
		switch e.Kind {
		case File:
			assert.NotEmpty(t, e.Content, "file %s should carry a payload", e.TargetPath())
		case Directory:
			assert.Nil(t, e.Content, "directory %s should carry no payload", e.TargetPath())
		}
	}

	for _, e := range cat.Entries() {
		if e.TargetPath() == "Makefile" {
			assert.Contains(t, string(e.Content), "\tcd packages/backend && npm install",
				"Makefile recipes must be tab-indented")
		}
	}
}

func TestNew_OrdersByPackageKeepingDeclarationOrder(t *testing.T) {
	cat, err := New(
		Entry{Package: Frontend, Path: "b.txt", Content: []byte("f1")},
		Entry{Package: Root, Path: "z.txt", Content: []byte("r1")},
		Entry{Package: Backend, Path: "y.txt", Content: []byte("b1")},
		Entry{Package: Frontend, Path: "a.txt", Content: []byte("f2")},
		Entry{Package: Root, Path: "a.txt", Content: []byte("r2")},
	)
	require.NoError(t, err)

	var got []string
	for _, e := range cat.Entries() {
		got = append(got, e.TargetPath())
	}
	assert.Equal(t, []string{
		"z.txt",
		"a.txt",
		"packages/backend/y.txt",
		"packages/frontend/b.txt",
		"packages/frontend/a.txt",
	}, got)
}

func TestNew_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		errMsg  string
	}{
		{
			name:    "empty path",
			entries: []Entry{{Package: Root, Path: "", Content: []byte{}}},
			errMsg:  "empty path",
		},
		{
			name:    "absolute path",
			entries: []Entry{{Package: Root, Path: "/etc/passwd", Content: []byte{}}},
			errMsg:  "must be relative",
		},
		{
			name:    "unclean path",
			entries: []Entry{{Package: Root, Path: "a//b", Content: []byte{}}},
			errMsg:  "not a clean slash path",
		},
		{
			name:    "escapes package root",
			entries: []Entry{{Package: Backend, Path: "../frontend/x", Content: []byte{}}},
			errMsg:  "escapes",
		},
		{
			name:    "nil file content",
			entries: []Entry{{Package: Root, Path: "README.md"}},
			errMsg:  "content is nil",
		},
		{
			name:    "directory with content",
			entries: []Entry{{Package: Root, Path: "infra", Kind: Directory, Content: []byte("x")}},
			errMsg:  "carries content",
		},
		{
			name: "duplicate target",
			entries: []Entry{
				{Package: Backend, Path: "package.json", Content: []byte("1")},
				{Package: Root, Path: "packages/backend/package.json", Content: []byte("2")},
			},
			errMsg: "duplicate",
		},
		{
			name: "file shadows directory",
			entries: []Entry{
				{Package: Root, Path: "infra", Content: []byte("x")},
				{Package: Root, Path: "infra/k8s", Kind: Directory},
			},
			errMsg: "below file entry",
		},
		{
			name:    "unknown package",
			entries: []Entry{{Package: Package(9), Path: "x", Content: []byte{}}},
			errMsg:  "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFS_SyntheticManifest(t *testing.T) {
	fsys := fstest.MapFS{
		"manifest.yml": {Data: []byte(`
packages:
  - name: backend
    files:
      - { path: src/index.ts, source: b/index.ts }
  - name: root
    files:
      - { path: README.md, source: r/README.md }
    directories: [infra]
`)},
		"templates/b/index.ts":  {Data: []byte("console.log(1)\n")},
		"templates/r/README.md": {Data: []byte("# hi\n")},
	}

	cat, err := LoadFS(fsys)
	require.NoError(t, err)

	entries := cat.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "README.md", entries[0].TargetPath())
	assert.Equal(t, "infra", entries[1].TargetPath())
	assert.Equal(t, Directory, entries[1].Kind)
	assert.Equal(t, "packages/backend/src/index.ts", entries[2].TargetPath())
	assert.Equal(t, "console.log(1)\n", string(entries[2].Content))
}

func TestLoadFS_Errors(t *testing.T) {
	t.Run("missing manifest", func(t *testing.T) {
		_, err := LoadFS(fstest.MapFS{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "manifest.yml")
	})

	t.Run("unknown package", func(t *testing.T) {
		_, err := LoadFS(fstest.MapFS{
			"manifest.yml": {Data: []byte("packages:\n  - name: mobile\n")},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown package")
	})

	t.Run("missing template", func(t *testing.T) {
		_, err := LoadFS(fstest.MapFS{
			"manifest.yml": {Data: []byte("packages:\n  - name: root\n    files:\n      - { path: a, source: nope }\n")},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading template nope")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadFS(fstest.MapFS{
			"manifest.yml": {Data: []byte("packages: [")},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing")
	})
}

func TestEntries_ReturnsCopy(t *testing.T) {
	cat, err := New(Entry{Package: Root, Path: "a", Content: []byte("x")})
	require.NoError(t, err)

	entries := cat.Entries()
	entries[0].Path = "mutated"

	assert.Equal(t, "a", cat.Entries()[0].Path)
}

func TestPackage_Dir(t *testing.T) {
	assert.Equal(t, "", Root.Dir())
	assert.Equal(t, "packages/backend", Backend.Dir())
	assert.Equal(t, "packages/frontend", Frontend.Dir())
	assert.Equal(t, "backend", Backend.String())
}
