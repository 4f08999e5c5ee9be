package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "dartshake.dev/pkg/dartshake/internal/model"
)

func TestReportStore_FilesReportRoundtrip(t *testing.T) {
	store := NewReportStore()
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))

	saved := m.FilesReport{
		ProjectRoot: "/projects/app",
		TotalFiles:  10,
		Reachable:   8,
		EntryPoints: []string{"lib/main.dart"},
		Unused:      []string{"lib/a.dart", "lib/b.dart"},
	}

	require.NoError(t, store.SaveFilesReport(dir, saved))

	loaded, err := store.LoadFilesReport(dir)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestReportStore_SaveKeysAndDeps(t *testing.T) {
	store := NewReportStore()
	dir := m.Path(t.TempDir())

	require.NoError(t, store.SaveKeysReport(dir, m.KeysReport{DeclaredKeys: 3, Unused: []string{"a"}}))
	require.NoError(t, store.SaveDepsReport(dir, m.DepsReport{Declared: 2, Unused: []string{"http"}}))

	for _, name := range []string{KeysReportName, DepsReportName} {
		_, err := os.Stat(filepath.Join(string(dir), name))
		assert.NoError(t, err)
	}
}

func TestReportStore_LoadMissing(t *testing.T) {
	store := NewReportStore()

	_, err := store.LoadFilesReport(m.Path(t.TempDir()))
	assert.Error(t, err)
}
