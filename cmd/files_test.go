package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesCmd_ReportsUnusedFiles(t *testing.T) {
	root := newFixtureProject(t)
	reports := t.TempDir()

	output, err := executeCommand(t, "files", "-C", root, "-o", reports)
	require.NoError(t, err)

	assert.Contains(t, output, filepath.Join("lib", "island.dart"))
	assert.NotContains(t, output, filepath.Join("lib", "used.dart"))

	// The report is persisted alongside the console output.
	_, statErr := os.Stat(filepath.Join(reports, "unused_files.yaml"))
	assert.NoError(t, statErr)
}

func TestFilesCmd_CleanProjectHasNoUnused(t *testing.T) {
	root := newFixtureProject(t)
	require.NoError(t, os.Remove(filepath.Join(root, "lib", "island.dart")))

	output, err := executeCommand(t, fixtureArgs(t, root, "files")...)
	require.NoError(t, err)

	assert.Contains(t, output, "No unused files")
}

func TestFilesCmd_FatalWithoutSourceRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "pubspec.yaml"), []byte("name: app\n"), 0o600))

	_, err := executeCommand(t, fixtureArgs(t, root, "files")...)
	require.Error(t, err)
}

func TestFilesCmd_FatalWithoutProjectName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "lib", "main.dart"), []byte("void main() {}\n"), 0o600))

	_, err := executeCommand(t, fixtureArgs(t, root, "files")...)
	require.Error(t, err)
}
