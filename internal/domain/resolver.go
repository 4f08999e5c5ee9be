package domain

import (
	"log/slog"
	"path/filepath"
	"strings"

	"dartshake.dev/pkg/dartshake/internal/adapter"
	m "dartshake.dev/pkg/dartshake/internal/model"
)

// URI schemes recognized by the resolver.
const (
	builtinScheme = "dart:"
	packageScheme = "package:"
)

// Resolver maps a raw directive URI to the canonical path of a project file,
// or reports it unresolved. Unresolved is not an error: builtins, foreign
// packages and broken references all simply terminate expansion along that
// edge.
type Resolver struct {
	fs          adapter.SourceFSAdapter
	sourceRoot  m.Path
	projectName string
}

// NewResolver builds a Resolver for the project identified by projectName.
func NewResolver(fs adapter.SourceFSAdapter, sourceRoot m.Path, projectName string) *Resolver {
	return &Resolver{
		fs:          fs,
		sourceRoot:  sourceRoot,
		projectName: projectName,
	}
}

// Resolve applies the resolution policy in order: builtins never resolve,
// package: URIs resolve into lib only for the project's own name, and
// everything else is taken relative to the importing file.
func (r *Resolver) Resolve(raw string, importer m.Path) (m.Path, bool) {
	if strings.HasPrefix(raw, builtinScheme) {
		return "", false
	}

	if rest, ok := strings.CutPrefix(raw, packageScheme); ok {
		return r.resolvePackage(raw, rest, importer)
	}

	return r.resolveRelative(raw, importer)
}

// resolvePackage handles package:<name>/<path> URIs. A URI naming a different
// project must never resolve into this project's tree, even when the relative
// path would collide with a real local file.
func (r *Resolver) resolvePackage(raw, rest string, importer m.Path) (m.Path, bool) {
	name, rel, found := strings.Cut(rest, "/")
	if !found || name != r.projectName {
		return "", false
	}

	target, err := r.fs.Canonical(r.fs.JoinPath(string(r.sourceRoot), rel))
	if err != nil {
		slog.Warn("cannot canonicalize package import", "uri", raw, "importer", importer, "error", err)
		return "", false
	}

	if _, err := r.fs.FileInfo(target); err != nil {
		slog.Warn("package import points at a missing file", "uri", raw, "importer", importer)
		return "", false
	}

	return target, true
}

// resolveRelative handles scheme-less URIs, resolved against the importing
// file's directory.
func (r *Resolver) resolveRelative(raw string, importer m.Path) (m.Path, bool) {
	joined := r.fs.JoinPath(filepath.Dir(string(importer)), raw)

	target, err := r.fs.Canonical(joined)
	if err != nil {
		slog.Warn("cannot canonicalize relative import", "uri", raw, "importer", importer, "error", err)
		return "", false
	}

	if _, err := r.fs.FileInfo(target); err != nil {
		slog.Warn("relative import points at a missing file", "uri", raw, "importer", importer)
		return "", false
	}

	return target, true
}
