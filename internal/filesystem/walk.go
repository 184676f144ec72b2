package filesystem

import (
	iofs "io/fs"
	"path/filepath"
	"sort"
)

// DefaultIgnoreDirs are skipped when listing a scaffolded tree. They hold
// installed dependencies or VCS state, never scaffold output.
var DefaultIgnoreDirs = []string{
	".git", "node_modules", "dist", "build", ".turbo", ".next",
}

// WalkOptions configures Tree.
type WalkOptions struct {
	IgnoreDirs     []string // Directory names to skip (default: DefaultIgnoreDirs)
	IgnorePatterns []string // File name globs to skip (e.g. "*.bak.*")
	FilesOnly      bool     // Omit directory entries from the result
}

// Tree returns every path below root, relative to root and slash-separated,
// sorted lexically. Directories carry a trailing slash unless FilesOnly is set.
func Tree(root string, opts WalkOptions) ([]string, error) {
	ignoreDirs := opts.IgnoreDirs
	if len(ignoreDirs) == 0 {
		ignoreDirs = DefaultIgnoreDirs
	}
	skip := make(map[string]bool, len(ignoreDirs))
	for _, d := range ignoreDirs {
		skip[d] = true
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if skip[d.Name()] {
				return filepath.SkipDir
			}
			if !opts.FilesOnly {
				paths = append(paths, rel+"/")
			}
			return nil
		}

		for _, pattern := range opts.IgnorePatterns {
			if matched, _ := filepath.Match(pattern, d.Name()); matched {
				return nil
			}
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
