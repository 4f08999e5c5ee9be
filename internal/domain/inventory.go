package domain

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "dartshake.dev/pkg/dartshake/internal/model"
)

// inventory walks the source root and returns the Universe: the sorted set of
// canonical paths of every Dart file under it. A missing source root is a
// fatal precondition; unlistable directories are skipped with a warning.
func (w *Workflow) inventory() ([]m.Path, error) {
	if _, err := w.fs.FileInfo(w.cfg.SourceRoot); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSourceRoot, w.cfg.SourceRoot)
	}

	exclude, err := compileExcludes(w.cfg.Exclude)
	if err != nil {
		return nil, err
	}

	var universe []m.Path

	walkErr := w.fs.Walk(w.cfg.SourceRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Warn("skipping unreadable directory entry", "path", path, "error", err)

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() || !strings.HasSuffix(path, m.DartSuffix) {
			return nil
		}

		canonical, err := w.fs.Canonical(m.Path(path))
		if err != nil {
			slog.Warn("skipping file with unresolvable path", "path", path, "error", err)
			return nil
		}

		if w.excluded(exclude, canonical) {
			return nil
		}

		universe = append(universe, canonical)

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk source root: %w", walkErr)
	}

	sort.Slice(universe, func(i, j int) bool { return universe[i] < universe[j] })

	return universe, nil
}

func (w *Workflow) excluded(patterns []*regexp.Regexp, path m.Path) bool {
	if len(patterns) == 0 {
		return false
	}

	rel, err := w.fs.RelPath(w.cfg.ProjectRoot, path)
	if err != nil {
		rel = path
	}

	for _, pattern := range patterns {
		if pattern.MatchString(string(rel)) {
			return true
		}
	}

	return false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}
