package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic_Basic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")

	data := []byte(`{"name": "backend"}`)
	if err := WriteFileAtomic(NewOSFS(), path, data, 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("content = %q, want %q", got, data)
	}

	assertNoTempFiles(t, dir)
}

func TestWriteFileAtomic_EmptyPayload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty")

	if err := WriteFileAtomic(NewOSFS(), path, []byte{}, 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0", info.Size())
	}
}

func TestWriteFileAtomic_Permissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Makefile")

	if err := WriteFileAtomic(NewOSFS(), path, []byte("all:\n"), 0600); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if got := info.Mode().Perm(); got != 0600 {
		t.Errorf("permissions = %o, want %o", got, 0600)
	}
}

func TestWriteFileAtomic_RenameFailureLeavesOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")

	initial := []byte("# mine")
	if err := os.WriteFile(path, initial, 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	stub := &failingRenameFS{FS: NewOSFS()}
	err := WriteFileAtomic(stub, path, []byte("# generated"), 0644)
	if err == nil {
		t.Fatal("expected error on rename failure")
	}

	var fsErr *Error
	if !errors.As(err, &fsErr) || fsErr.Path != path {
		t.Errorf("expected *Error for %s, got %v", path, err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != string(initial) {
		t.Errorf("original content changed: got %q, want %q", got, initial)
	}

	assertNoTempFiles(t, dir)
}

func TestIsTempFile(t *testing.T) {
	if !IsTempFile(".nest-tmp-12345") {
		t.Error("expected temp file name to match")
	}
	if IsTempFile("package.json") {
		t.Error("regular file should not match")
	}
}

// failingRenameFS fails every Rename.
type failingRenameFS struct {
	FS
}

func (f *failingRenameFS) Rename(oldpath, newpath string) error {
	return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: os.ErrPermission}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if IsTempFile(e.Name()) {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
