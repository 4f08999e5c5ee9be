package domain

import "errors"

// Fatal preconditions. Any of these aborts the run before traversal starts;
// everything else degrades per-file and is logged instead.
var (
	// ErrMissingSourceRoot means the project has no lib directory to scan.
	ErrMissingSourceRoot = errors.New("source root does not exist")

	// ErrUnknownProjectName means the manifest did not yield the project's
	// own package name, so package: URIs cannot be classified.
	ErrUnknownProjectName = errors.New("project name could not be determined from manifest")

	// ErrNoEntryPoints means no file seeds the reachability closure, leaving
	// "used" undefined.
	ErrNoEntryPoints = errors.New("no entry points found")
)
