// Package catalog defines the scaffold's template table.
//
// The table is data, not code: an embedded manifest.yml lists, per package,
// the files to write and the empty directories to reserve, and each file's
// payload lives under templates/. Payloads are written verbatim; nothing is
// interpolated.
//
// Entries always come back ordered Root, Backend, Frontend, and in manifest
// order within a package, so backup logs and console output are reproducible.
//
//	cat, err := catalog.Load()
//	for _, e := range cat.Entries() {
//	    fmt.Println(e.Package, e.TargetPath())
//	}
//
// Tests build synthetic tables with New.
package catalog
