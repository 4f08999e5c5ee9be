package domain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"dartshake.dev/pkg/dartshake/internal/adapter"
	m "dartshake.dev/pkg/dartshake/internal/model"
)

func newKeysProject(t *testing.T) string {
	t.Helper()

	root := newProject(t, "app", false)
	writeFile(t, filepath.Join(root, "assets", "translations", "en.json"), `{
  "greeting": {
    "hello": "Hello",
    "bye": "Goodbye"
  },
  "title": "App",
  "@metadata": "ignored"
}`)

	return root
}

func newKeysScanner(t *testing.T, root string) *KeysScanner {
	t.Helper()

	fs := adapter.NewLocalSourceFSAdapter()

	cfg, err := NewRunConfig(fs, m.Path(root), nil)
	if err != nil {
		t.Fatalf("NewRunConfig: %v", err)
	}

	return NewKeysScanner(fs, cfg)
}

func TestKeysScanner(t *testing.T) {
	t.Run("reports keys never referenced", func(t *testing.T) {
		root := newKeysProject(t)
		writeFile(t, filepath.Join(root, "lib", "main.dart"),
			"void main() {\n  print('greeting.hello');\n  show(\"title\");\n}\n")

		report, err := newKeysScanner(t, root).Scan(context.Background())
		if err != nil {
			t.Fatalf("Scan: %v", err)
		}

		if report.TranslationFiles != 1 {
			t.Errorf("translation files = %d, want 1", report.TranslationFiles)
		}

		if report.DeclaredKeys != 3 {
			t.Errorf("declared keys = %d, want 3", report.DeclaredKeys)
		}

		want := []string{"greeting.bye"}
		if !reflect.DeepEqual(report.Unused, want) {
			t.Errorf("unused = %v, want %v", report.Unused, want)
		}
	})

	t.Run("all keys unused without source references", func(t *testing.T) {
		root := newKeysProject(t)
		writeFile(t, filepath.Join(root, "lib", "main.dart"), "void main() {}\n")

		report, err := newKeysScanner(t, root).Scan(context.Background())
		if err != nil {
			t.Fatalf("Scan: %v", err)
		}

		want := []string{"greeting.bye", "greeting.hello", "title"}
		if !reflect.DeepEqual(report.Unused, want) {
			t.Errorf("unused = %v, want %v", report.Unused, want)
		}
	})

	t.Run("malformed translation file is skipped", func(t *testing.T) {
		root := newKeysProject(t)
		writeFile(t, filepath.Join(root, "assets", "translations", "broken.json"), "{not json")
		writeFile(t, filepath.Join(root, "lib", "main.dart"), "void main() {}\n")

		report, err := newKeysScanner(t, root).Scan(context.Background())
		if err != nil {
			t.Fatalf("Scan: %v", err)
		}

		if report.TranslationFiles != 2 {
			t.Errorf("translation files = %d, want 2", report.TranslationFiles)
		}

		if report.DeclaredKeys != 3 {
			t.Errorf("declared keys = %d, want 3 (broken file contributes none)", report.DeclaredKeys)
		}
	})

	t.Run("no translation files yields empty report", func(t *testing.T) {
		root := newProject(t, "app", false)
		writeFile(t, filepath.Join(root, "lib", "main.dart"), "void main() {}\n")

		report, err := newKeysScanner(t, root).Scan(context.Background())
		if err != nil {
			t.Fatalf("Scan: %v", err)
		}

		if report.DeclaredKeys != 0 || len(report.Unused) != 0 {
			t.Errorf("report = %+v, want empty", report)
		}
	})

	t.Run("missing source root is fatal", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "pubspec.yaml"), "name: app\n")

		_, err := newKeysScanner(t, root).Scan(context.Background())
		if !errors.Is(err, ErrMissingSourceRoot) {
			t.Fatalf("err = %v, want ErrMissingSourceRoot", err)
		}
	})

	t.Run("scans many files concurrently", func(t *testing.T) {
		root := newKeysProject(t)

		for i := 0; i < 50; i++ {
			writeFile(t, filepath.Join(root, "lib", fmt.Sprintf("w%02d.dart", i)), "var x = 1;\n")
		}

		writeFile(t, filepath.Join(root, "lib", "user.dart"), "var k = 'greeting.bye';\n")

		report, err := newKeysScanner(t, root).Scan(context.Background())
		if err != nil {
			t.Fatalf("Scan: %v", err)
		}

		want := []string{"greeting.hello", "title"}
		if !reflect.DeepEqual(report.Unused, want) {
			t.Errorf("unused = %v, want %v", report.Unused, want)
		}
	})
}
