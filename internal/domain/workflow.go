// Package domain implements the reachability engine: inventory, directive
// extraction, import resolution, graph traversal and the partition correction
// pass. The engine is single-threaded and side-effect-free; only the Cleaner
// mutates the filesystem.
package domain

import (
	"fmt"
	"log/slog"
	"sort"

	"dartshake.dev/pkg/dartshake/internal/adapter"
	m "dartshake.dev/pkg/dartshake/internal/model"
)

// Analysis is the complete result of one engine run. All path slices hold
// canonical paths and are sorted; Unused is the Final Unused Set after
// partition correction.
type Analysis struct {
	Pubspec     m.Pubspec
	Universe    []m.Path
	EntryPoints []m.Path
	Reachable   map[m.Path]struct{}
	Unused      []m.Path
}

// Workflow wires the engine components together over the injected adapters.
// One Workflow serves one run: directive extraction is memoized per file and
// the cache is discarded with the Workflow.
type Workflow struct {
	fs       adapter.SourceFSAdapter
	dart     adapter.DartFileAdapter
	manifest adapter.PubspecAdapter
	cfg      RunConfig

	resolver   *Resolver
	directives map[m.Path][]m.Directive
}

// NewWorkflow creates a Workflow for a single analysis run.
func NewWorkflow(
	fs adapter.SourceFSAdapter,
	dart adapter.DartFileAdapter,
	manifest adapter.PubspecAdapter,
	cfg RunConfig,
) *Workflow {
	return &Workflow{
		fs:         fs,
		dart:       dart,
		manifest:   manifest,
		cfg:        cfg,
		directives: make(map[m.Path][]m.Directive),
	}
}

// Analyze runs the full pipeline: manifest, inventory, entry points, closure,
// candidate set, partition correction. Fatal preconditions abort before
// traversal; every per-file problem degrades to the most conservative
// interpretation and the closure is always computed to completion.
func (w *Workflow) Analyze() (*Analysis, error) {
	spec, err := w.manifest.Load(w.cfg.ManifestPath)
	if err != nil {
		slog.Warn("manifest could not be loaded", "path", w.cfg.ManifestPath, "error", err)
	}

	if spec.Name == "" {
		return nil, fmt.Errorf("%w (%s)", ErrUnknownProjectName, w.cfg.ManifestPath)
	}

	w.resolver = NewResolver(w.fs, w.cfg.SourceRoot, spec.Name)

	universe, err := w.inventory()
	if err != nil {
		return nil, err
	}

	entries, err := w.entryPoints(universe, spec)
	if err != nil {
		return nil, err
	}

	reachable := traverse(entries, w.importEdges)

	candidates := make([]m.Path, 0, len(universe))
	candidateSet := make(map[m.Path]struct{})

	for _, path := range universe {
		if _, ok := reachable[path]; !ok {
			candidates = append(candidates, path)
			candidateSet[path] = struct{}{}
		}
	}

	unused := w.correctPartitions(candidates, candidateSet)

	slog.Info("analysis complete",
		"universe", len(universe),
		"entry_points", len(entries),
		"reachable", len(reachable),
		"unused", len(unused),
	)

	return &Analysis{
		Pubspec:     spec,
		Universe:    universe,
		EntryPoints: entries,
		Reachable:   reachable,
		Unused:      unused,
	}, nil
}

// Report shapes an Analysis into the sorted, project-relative form consumed
// by the presentation layer.
func (w *Workflow) Report(analysis *Analysis) m.FilesReport {
	report := m.FilesReport{
		ProjectRoot: string(w.cfg.ProjectRoot),
		TotalFiles:  len(analysis.Universe),
		Reachable:   len(analysis.Reachable),
		EntryPoints: w.relativize(analysis.EntryPoints),
		Unused:      w.relativize(analysis.Unused),
	}

	return report
}

func (w *Workflow) relativize(paths []m.Path) []string {
	out := make([]string, 0, len(paths))

	for _, path := range paths {
		rel, err := w.fs.RelPath(w.cfg.ProjectRoot, path)
		if err != nil {
			rel = path
		}

		out = append(out, string(rel))
	}

	sort.Strings(out)

	return out
}

// importEdges is the traversal relation: the resolved targets of a file's
// import directives. Partition directives are not edges; the correction pass
// handles that linkage separately.
func (w *Workflow) importEdges(path m.Path) []m.Path {
	var targets []m.Path

	for _, directive := range w.directivesFor(path) {
		if directive.Kind != m.DirectiveImport {
			continue
		}

		if target, ok := w.resolver.Resolve(directive.URI, path); ok {
			targets = append(targets, target)
		}
	}

	return targets
}

// directivesFor extracts and memoizes a file's directives. An unreadable file
// degrades to an empty directive list: a leaf with no outgoing edges.
func (w *Workflow) directivesFor(path m.Path) []m.Directive {
	if cached, ok := w.directives[path]; ok {
		return cached
	}

	content, err := w.fs.ReadFile(path)
	if err != nil {
		slog.Warn("cannot read source file, treating as leaf", "path", path, "error", err)

		w.directives[path] = nil

		return nil
	}

	directives := w.dart.ExtractDirectives(content)
	w.directives[path] = directives

	return directives
}
