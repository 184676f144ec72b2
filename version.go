// Package nest scaffolds a multi-package web project (frontend, backend,
// infrastructure) into a target directory without running any package
// manager or build step.
package nest

// Version is the current release of the nest CLI.
const Version = "0.1.0"
