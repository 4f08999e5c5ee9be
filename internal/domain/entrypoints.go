package domain

import (
	"log/slog"
	"path/filepath"

	m "dartshake.dev/pkg/dartshake/internal/model"
)

// entryPoints selects the traversal roots: every Universe member named
// main.dart. When a Flutter project carries none, the framework's
// conventional lib/main.dart is synthesized if it exists on disk. An empty
// result is a fatal precondition; without roots "used" is undefined.
func (w *Workflow) entryPoints(universe []m.Path, spec m.Pubspec) ([]m.Path, error) {
	var entries []m.Path

	for _, path := range universe {
		if filepath.Base(string(path)) == m.EntryBaseName {
			entries = append(entries, path)
		}
	}

	if len(entries) == 0 && spec.UsesFlutter {
		fallback := w.fs.JoinPath(string(w.cfg.SourceRoot), m.EntryBaseName)
		if _, err := w.fs.FileInfo(fallback); err == nil {
			canonical, err := w.fs.Canonical(fallback)
			if err == nil {
				slog.Debug("synthesized flutter default entry point", "path", canonical)
				entries = append(entries, canonical)
			}
		}
	}

	if len(entries) == 0 {
		return nil, ErrNoEntryPoints
	}

	return entries, nil
}
