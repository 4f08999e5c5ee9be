package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"dartshake.dev/pkg/dartshake/internal/adapter"
	m "dartshake.dev/pkg/dartshake/internal/model"
	"dartshake.dev/pkg/dartshake/pkg"
)

// stringLiteralPattern matches single- or double-quoted literals in Dart
// source. Key usage is a textual property, so a liberal pattern beats a full
// parse here.
var stringLiteralPattern = regexp.MustCompile(`['"]([^'"\r\n]+)['"]`)

// KeysScanner finds translation keys that are declared in the project's
// translation files but never referenced from Dart source. It has no graph
// structure: declared keys minus observed string literals.
type KeysScanner struct {
	fs  adapter.SourceFSAdapter
	cfg RunConfig
}

// NewKeysScanner creates a KeysScanner for one run.
func NewKeysScanner(fs adapter.SourceFSAdapter, cfg RunConfig) *KeysScanner {
	return &KeysScanner{fs: fs, cfg: cfg}
}

// Scan loads declared keys, sweeps the source tree for string literals and
// reports the difference. Source files are scanned concurrently; occurrences
// are spilled to disk so large trees don't hold every literal in memory.
func (s *KeysScanner) Scan(ctx context.Context) (m.KeysReport, error) {
	translationFiles := s.translationFiles()

	declared := s.declaredKeys(translationFiles)

	sources, err := s.dartFiles()
	if err != nil {
		return m.KeysReport{}, err
	}

	used, err := s.scanUsage(ctx, sources, declared)
	if err != nil {
		return m.KeysReport{}, err
	}

	var unused []string

	for key := range declared {
		if _, ok := used[key]; !ok {
			unused = append(unused, key)
		}
	}

	sort.Strings(unused)

	return m.KeysReport{
		TranslationFiles: len(translationFiles),
		DeclaredKeys:     len(declared),
		Unused:           unused,
	}, nil
}

func (s *KeysScanner) translationFiles() []m.Path {
	var files []m.Path

	for _, glob := range s.cfg.TranslationGlobs {
		matches, err := s.fs.Glob(string(s.fs.JoinPath(string(s.cfg.ProjectRoot), glob)))
		if err != nil {
			slog.Warn("bad translation glob", "pattern", glob, "error", err)
			continue
		}

		files = append(files, matches...)
	}

	return files
}

// declaredKeys merges the keys of every translation file. Nested objects are
// flattened with dots, matching how keys are addressed from Dart code. ARB
// metadata entries (leading @) are skipped.
func (s *KeysScanner) declaredKeys(files []m.Path) map[string]struct{} {
	declared := make(map[string]struct{})

	for _, file := range files {
		content, err := s.fs.ReadFile(file)
		if err != nil {
			slog.Warn("cannot read translation file", "path", file, "error", err)
			continue
		}

		var doc map[string]any
		if err := json.Unmarshal(content, &doc); err != nil {
			slog.Warn("translation file is not valid JSON", "path", file, "error", err)
			continue
		}

		flattenKeys("", doc, declared)
	}

	return declared
}

func flattenKeys(prefix string, doc map[string]any, into map[string]struct{}) {
	for key, value := range doc {
		if strings.HasPrefix(key, "@") {
			continue
		}

		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			flattenKeys(full, nested, into)
			continue
		}

		into[full] = struct{}{}
	}
}

func (s *KeysScanner) dartFiles() ([]m.Path, error) {
	if _, err := s.fs.FileInfo(s.cfg.SourceRoot); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSourceRoot, s.cfg.SourceRoot)
	}

	var files []m.Path

	err := s.fs.Walk(s.cfg.SourceRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, m.DartSuffix) {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk source root: %w", err)
	}

	return files, nil
}

// scanUsage sweeps all source files for literals that exactly name a declared
// key. Keys assembled at runtime from fragments are invisible to this scan.
func (s *KeysScanner) scanUsage(ctx context.Context, sources []m.Path, declared map[string]struct{}) (map[string]struct{}, error) {
	spill, err := pkg.NewFileSpill[string]("keys")
	if err != nil {
		return nil, fmt.Errorf("create occurrence spill: %w", err)
	}

	defer func() {
		if err := spill.Close(); err != nil {
			slog.Warn("closing occurrence spill", "error", err)
		}
	}()

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())

	for _, source := range sources {
		source := source

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			content, err := s.fs.ReadFile(source)
			if err != nil {
				slog.Warn("cannot read source file", "path", source, "error", err)
				return nil
			}

			var hits []string

			for _, match := range stringLiteralPattern.FindAllSubmatch(content, -1) {
				literal := string(match[1])
				if _, ok := declared[literal]; ok {
					hits = append(hits, literal)
				}
			}

			if len(hits) == 0 {
				return nil
			}

			return spill.AppendBatch(hits)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("scan key usage: %w", err)
	}

	used := make(map[string]struct{})

	err = spill.Range(func(_ uint64, literal string) error {
		used[literal] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect key occurrences: %w", err)
	}

	return used, nil
}
