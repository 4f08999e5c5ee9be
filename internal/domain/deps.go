package domain

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"dartshake.dev/pkg/dartshake/internal/adapter"
	m "dartshake.dev/pkg/dartshake/internal/model"
)

// DepsScanner reports manifest dependencies whose package name never appears
// in a package: import anywhere in the source tree.
type DepsScanner struct {
	fs       adapter.SourceFSAdapter
	dart     adapter.DartFileAdapter
	manifest adapter.PubspecAdapter
	cfg      RunConfig
}

// NewDepsScanner creates a DepsScanner for one run.
func NewDepsScanner(
	fs adapter.SourceFSAdapter,
	dart adapter.DartFileAdapter,
	manifest adapter.PubspecAdapter,
	cfg RunConfig,
) *DepsScanner {
	return &DepsScanner{fs: fs, dart: dart, manifest: manifest, cfg: cfg}
}

// Scan collects the imported package names across the tree and diffs them
// against the manifest's regular dependencies. SDK-provided packages never
// count as unused; dev_dependencies are tooling and are not reported.
func (s *DepsScanner) Scan() (m.DepsReport, error) {
	spec, err := s.manifest.Load(s.cfg.ManifestPath)
	if err != nil {
		slog.Warn("manifest could not be loaded", "path", s.cfg.ManifestPath, "error", err)
	}

	imported, err := s.importedPackages()
	if err != nil {
		return m.DepsReport{}, err
	}

	var unused []string

	for _, dep := range spec.Dependencies {
		if dep.SDK || dep.Name == spec.Name {
			continue
		}

		if _, ok := imported[dep.Name]; !ok {
			unused = append(unused, dep.Name)
		}
	}

	sort.Strings(unused)

	return m.DepsReport{
		Declared: len(spec.Dependencies),
		Unused:   unused,
	}, nil
}

// importedPackages walks every Dart file and records the package name of each
// package: import, regardless of whether the import resolves.
func (s *DepsScanner) importedPackages() (map[string]struct{}, error) {
	if _, err := s.fs.FileInfo(s.cfg.SourceRoot); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSourceRoot, s.cfg.SourceRoot)
	}

	imported := make(map[string]struct{})

	err := s.fs.Walk(s.cfg.SourceRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, m.DartSuffix) {
			return nil
		}

		content, err := s.fs.ReadFile(m.Path(path))
		if err != nil {
			slog.Warn("cannot read source file", "path", path, "error", err)
			return nil
		}

		for _, directive := range s.dart.ExtractDirectives(content) {
			if directive.Kind != m.DirectiveImport {
				continue
			}

			rest, ok := strings.CutPrefix(directive.URI, packageScheme)
			if !ok {
				continue
			}

			name, _, _ := strings.Cut(rest, "/")
			if name != "" {
				imported[name] = struct{}{}
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk source root: %w", err)
	}

	return imported, nil
}
