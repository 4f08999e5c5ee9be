package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captures its output.
// The log file is redirected into a temp dir so tests never write into the
// working tree.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("DARTSHAKE_LOG_FILENAME", filepath.Join(t.TempDir(), "dartshake.log"))

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

// newFixtureProject writes a small project with one unreachable file.
func newFixtureProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	files := map[string]string{
		"pubspec.yaml":    "name: app\ndependencies:\n  http: ^1.0.0\n",
		"lib/main.dart":   "import 'used.dart';\nvoid main() {}\n",
		"lib/used.dart":   "void helper() {}\n",
		"lib/island.dart": "void nobodyCalls() {}\n",
	}

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return root
}

func fixtureArgs(t *testing.T, root string, sub string, extra ...string) []string {
	t.Helper()

	args := []string{sub, "-C", root, "-o", t.TempDir()}

	return append(args, extra...)
}

func TestRootCmd_ShowsHelp(t *testing.T) {
	output, err := executeCommand(t)
	require.NoError(t, err)

	require.Contains(t, output, "dartshake")
	require.Contains(t, output, "files")
	require.Contains(t, output, "clean")
	require.Contains(t, output, "keys")
	require.Contains(t, output, "deps")
}

func TestRootCmd_RegistersPersistentFlags(t *testing.T) {
	for _, name := range []string{"project", "output", "exclude", "verbose"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
}
