package domain

import (
	"log/slog"

	m "dartshake.dev/pkg/dartshake/internal/model"
)

// correctPartitions is the follow-up pass over the Unused Candidate Set. A
// `part of` file is stitched into its parent by the toolchain without ever
// being the target of an import, so pure import-graph closure always flags it.
// The partition's own linkage declaration decides instead:
//
//   - parent missing on disk: orphaned partition, dropped from the report
//   - parent itself a candidate: the whole family is dead, partition stays
//   - parent reachable: partition is live by association, dropped
//
// Files without a `part of` directive pass through untouched. When a file
// declares several, only the first counts.
func (w *Workflow) correctPartitions(candidates []m.Path, candidateSet map[m.Path]struct{}) []m.Path {
	final := make([]m.Path, 0, len(candidates))

	for _, candidate := range candidates {
		parentURI, ok := m.FirstPartitionOf(w.directivesFor(candidate))
		if !ok {
			final = append(final, candidate)
			continue
		}

		parent, ok := w.resolver.resolveRelative(parentURI, candidate)
		if !ok {
			slog.Warn("partition has no recoverable parent", "path", candidate, "parent_uri", parentURI)
			continue
		}

		if _, dead := candidateSet[parent]; dead {
			final = append(final, candidate)
			continue
		}

		slog.Debug("partition kept alive by reachable parent", "path", candidate, "parent", parent)
	}

	return final
}
