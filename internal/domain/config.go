package domain

import (
	"fmt"

	"dartshake.dev/pkg/dartshake/internal/adapter"
	m "dartshake.dev/pkg/dartshake/internal/model"
)

// SourceRootName is the directory under the project root that holds the
// project's own source files.
const SourceRootName = "lib"

// ManifestName is the project manifest file name.
const ManifestName = "pubspec.yaml"

// DefaultTranslationGlobs are the patterns, relative to the project root,
// where translation files are looked up by the key scanner.
var DefaultTranslationGlobs = []string{
	"assets/translations/*.json",
	"lib/l10n/*.arb",
}

// RunConfig is the immutable configuration of a single analysis run. It is
// built once and passed through every component; no component reads process
// globals or changes the working directory.
type RunConfig struct {
	// ProjectRoot is the canonical path of the project directory.
	ProjectRoot m.Path

	// SourceRoot is ProjectRoot/lib, the root of the inventory walk.
	SourceRoot m.Path

	// ManifestPath is ProjectRoot/pubspec.yaml.
	ManifestPath m.Path

	// TranslationGlobs are patterns for translation files, relative to
	// ProjectRoot.
	TranslationGlobs []string

	// Exclude holds regular expressions; files whose project-relative path
	// matches any of them are dropped from the Universe.
	Exclude []string
}

// NewRunConfig canonicalizes the project root and derives the standard
// locations from it.
func NewRunConfig(fs adapter.SourceFSAdapter, projectRoot m.Path, exclude []string) (RunConfig, error) {
	root, err := fs.Canonical(projectRoot)
	if err != nil {
		return RunConfig{}, fmt.Errorf("canonicalize project root: %w", err)
	}

	return RunConfig{
		ProjectRoot:      root,
		SourceRoot:       fs.JoinPath(string(root), SourceRootName),
		ManifestPath:     fs.JoinPath(string(root), ManifestName),
		TranslationGlobs: DefaultTranslationGlobs,
		Exclude:          exclude,
	}, nil
}
