package domain

import (
	"log/slog"

	"dartshake.dev/pkg/dartshake/internal/adapter"
	m "dartshake.dev/pkg/dartshake/internal/model"
)

// Cleaner deletes files from the Final Unused Set. Deletion is file-by-file
// with per-file error isolation: one failed delete never aborts the batch and
// there is no rollback.
type Cleaner struct {
	fs adapter.SourceFSAdapter
}

// NewCleaner creates a Cleaner over the given filesystem adapter.
func NewCleaner(fs adapter.SourceFSAdapter) *Cleaner {
	return &Cleaner{fs: fs}
}

// Delete removes every path in the list and reports the per-file outcomes
// plus aggregate counts.
func (c *Cleaner) Delete(paths []m.Path) m.CleanResult {
	result := m.CleanResult{
		Outcomes: make([]m.DeleteOutcome, 0, len(paths)),
	}

	for _, path := range paths {
		err := c.fs.Remove(path)
		if err != nil {
			slog.Warn("failed to delete file", "path", path, "error", err)

			result.Failed++
		} else {
			slog.Info("deleted file", "path", path)

			result.Deleted++
		}

		result.Outcomes = append(result.Outcomes, m.DeleteOutcome{Path: path, Err: err})
	}

	return result
}
