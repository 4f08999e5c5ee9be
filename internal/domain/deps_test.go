package domain

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"dartshake.dev/pkg/dartshake/internal/adapter"
	m "dartshake.dev/pkg/dartshake/internal/model"
)

func newDepsScanner(t *testing.T, root string) *DepsScanner {
	t.Helper()

	fs := adapter.NewLocalSourceFSAdapter()

	cfg, err := NewRunConfig(fs, m.Path(root), nil)
	if err != nil {
		t.Fatalf("NewRunConfig: %v", err)
	}

	return NewDepsScanner(fs, adapter.NewLocalDartFileAdapter(), adapter.NewLocalPubspecAdapter(fs), cfg)
}

func TestDepsScanner(t *testing.T) {
	t.Run("reports dependencies never imported", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "pubspec.yaml"), `
name: app
dependencies:
  flutter:
    sdk: flutter
  http: ^1.2.0
  collection: ^1.18.0
  path: ^1.9.0
`)
		writeFile(t, filepath.Join(root, "lib", "main.dart"),
			"import 'package:http/http.dart';\nimport 'package:app/util.dart';\nvoid main() {}\n")
		writeFile(t, filepath.Join(root, "lib", "util.dart"), "import 'package:path/path.dart';\n")

		report, err := newDepsScanner(t, root).Scan()
		if err != nil {
			t.Fatalf("Scan: %v", err)
		}

		if report.Declared != 4 {
			t.Errorf("declared = %d, want 4", report.Declared)
		}

		want := []string{"collection"}
		if !reflect.DeepEqual(report.Unused, want) {
			t.Errorf("unused = %v, want %v", report.Unused, want)
		}
	})

	t.Run("sdk dependencies are never unused", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "pubspec.yaml"),
			"name: app\ndependencies:\n  flutter:\n    sdk: flutter\n")
		writeFile(t, filepath.Join(root, "lib", "main.dart"), "void main() {}\n")

		report, err := newDepsScanner(t, root).Scan()
		if err != nil {
			t.Fatalf("Scan: %v", err)
		}

		if len(report.Unused) != 0 {
			t.Errorf("unused = %v, want none", report.Unused)
		}
	})

	t.Run("unreadable manifest degrades to empty report", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "lib", "main.dart"), "void main() {}\n")

		report, err := newDepsScanner(t, root).Scan()
		if err != nil {
			t.Fatalf("Scan: %v", err)
		}

		if report.Declared != 0 || len(report.Unused) != 0 {
			t.Errorf("report = %+v, want empty", report)
		}
	})

	t.Run("missing source root is fatal", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "pubspec.yaml"), "name: app\ndependencies:\n  http: ^1.0.0\n")

		_, err := newDepsScanner(t, root).Scan()
		if !errors.Is(err, ErrMissingSourceRoot) {
			t.Fatalf("err = %v, want ErrMissingSourceRoot", err)
		}
	})
}
