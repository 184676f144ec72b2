package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yml templates
var embedded embed.FS

const (
	manifestName = "manifest.yml"
	templateDir  = "templates"
)

// Package scopes an entry to one part of the generated tree.
type Package int

const (
	Root Package = iota
	Backend
	Frontend
)

// String returns the manifest name of the package.
func (p Package) String() string {
	switch p {
	case Root:
		return "root"
	case Backend:
		return "backend"
	case Frontend:
		return "frontend"
	default:
		return fmt.Sprintf("package(%d)", int(p))
	}
}

// Dir returns the package root relative to the target, slash-separated.
// Root maps to the target itself.
func (p Package) Dir() string {
	switch p {
	case Backend:
		return "packages/backend"
	case Frontend:
		return "packages/frontend"
	default:
		return ""
	}
}

// ParsePackage maps a manifest name to a Package.
func ParsePackage(name string) (Package, error) {
	switch name {
	case "root":
		return Root, nil
	case "backend":
		return Backend, nil
	case "frontend":
		return Frontend, nil
	default:
		return 0, fmt.Errorf("unknown package %q (want root, backend or frontend)", name)
	}
}

// Kind distinguishes file entries from reserved directories.
type Kind int

const (
	File Kind = iota
	Directory
)

// Entry is one row of the catalog. Entries are built once and must not be
// mutated, Content included.
type Entry struct {
	Package Package
	Path    string // slash-separated, relative to the package root
	Content []byte // nil for directories; may be empty for files
	Kind    Kind
}

// TargetPath returns the entry's path relative to the scaffold target.
func (e Entry) TargetPath() string {
	return path.Join(e.Package.Dir(), e.Path)
}

// Catalog is an ordered, validated list of entries.
type Catalog struct {
	entries []Entry
}

// New validates entries and returns them as a Catalog, ordered by package
// with declaration order kept inside each package.
func New(entries ...Entry) (*Catalog, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Package < sorted[j].Package
	})

	kinds := make(map[string]Kind, len(sorted))
	for _, e := range sorted {
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		target := e.TargetPath()
		if _, dup := kinds[target]; dup {
			return nil, fmt.Errorf("duplicate catalog path: %s", target)
		}
		kinds[target] = e.Kind
	}

	// A file may not sit where another entry needs a directory.
	for target := range kinds {
		for dir := path.Dir(target); dir != "."; dir = path.Dir(dir) {
			if k, ok := kinds[dir]; ok && k == File {
				return nil, fmt.Errorf("catalog path %s is below file entry %s", target, dir)
			}
		}
	}

	return &Catalog{entries: sorted}, nil
}

func validateEntry(e Entry) error {
	if e.Package < Root || e.Package > Frontend {
		return fmt.Errorf("entry %q has unknown %s", e.Path, e.Package)
	}
	p := e.Path
	switch {
	case p == "" || p == ".":
		return fmt.Errorf("%s entry has an empty path", e.Package)
	case path.IsAbs(p) || strings.HasPrefix(p, "\\"):
		return fmt.Errorf("entry %s must be relative", p)
	case path.Clean(p) != p || strings.Contains(p, "\\"):
		return fmt.Errorf("entry %s is not a clean slash path", p)
	case p == ".." || strings.HasPrefix(p, "../"):
		return fmt.Errorf("entry %s escapes its package root", p)
	}
	switch e.Kind {
	case File:
		if e.Content == nil {
			return fmt.Errorf("content is nil for file entry %s", e.TargetPath())
		}
	case Directory:
		if e.Content != nil {
			return fmt.Errorf("directory entry %s carries content", e.TargetPath())
		}
	default:
		return fmt.Errorf("entry %s has unknown kind %d", e.TargetPath(), e.Kind)
	}
	return nil
}

// Entries returns the catalog in materialization order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// manifest mirrors manifest.yml.
type manifest struct {
	Packages []struct {
		Name  string `yaml:"name"`
		Files []struct {
			Path   string `yaml:"path"`
			Source string `yaml:"source"`
		} `yaml:"files"`
		Directories []string `yaml:"directories"`
	} `yaml:"packages"`
}

// Load returns the built-in scaffold catalog.
func Load() (*Catalog, error) {
	return LoadFS(embedded)
}

// LoadFS reads manifest.yml and the templates/ payloads from fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, manifestName)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", manifestName, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", manifestName, err)
	}

	var entries []Entry
	for _, p := range m.Packages {
		pkg, err := ParsePackage(p.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", manifestName, err)
		}

		for _, f := range p.Files {
			if f.Source == "" {
				return nil, fmt.Errorf("%s: %s file %q has no source", manifestName, pkg, f.Path)
			}
			content, err := fs.ReadFile(fsys, path.Join(templateDir, f.Source))
			if err != nil {
				return nil, fmt.Errorf("reading template %s: %w", f.Source, err)
			}
			entries = append(entries, Entry{Package: pkg, Path: f.Path, Content: content, Kind: File})
		}

		for _, d := range p.Directories {
			entries = append(entries, Entry{Package: pkg, Path: d, Kind: Directory})
		}
	}

	return New(entries...)
}
