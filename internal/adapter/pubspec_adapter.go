package adapter

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	m "dartshake.dev/pkg/dartshake/internal/model"
)

// PubspecAdapter loads the project manifest. Loading is best-effort: malformed
// content leaves individual fields unpopulated instead of failing, so a broken
// manifest never aborts inventory or resolution on its own.
type PubspecAdapter interface {
	Load(path m.Path) (m.Pubspec, error)
}

// LocalPubspecAdapter parses pubspec.yaml from disk.
type LocalPubspecAdapter struct {
	fs SourceFSAdapter
}

// NewLocalPubspecAdapter constructs a LocalPubspecAdapter reading through the
// provided filesystem adapter.
func NewLocalPubspecAdapter(fs SourceFSAdapter) *LocalPubspecAdapter {
	return &LocalPubspecAdapter{fs: fs}
}

// Load reads and decodes the manifest at path. The returned error is non-nil
// only when the file cannot be read at all; decode problems degrade to a
// partially populated Pubspec with a warning.
func (a *LocalPubspecAdapter) Load(path m.Path) (m.Pubspec, error) {
	data, err := a.fs.ReadFile(path)
	if err != nil {
		return m.Pubspec{}, fmt.Errorf("read manifest: %w", err)
	}

	return decodePubspec(path, data), nil
}

// decodePubspec extracts each manifest field independently, so one malformed
// section does not take down the others.
func decodePubspec(path m.Path, data []byte) m.Pubspec {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		slog.Warn("manifest is not valid YAML", "path", path, "error", err)
		return m.Pubspec{}
	}

	var spec m.Pubspec

	if node, ok := doc["name"]; ok {
		if err := node.Decode(&spec.Name); err != nil {
			slog.Warn("manifest name field is malformed", "path", path, "error", err)
		}
	}

	if _, ok := doc["flutter"]; ok {
		spec.UsesFlutter = true
	}

	spec.Dependencies = decodeDependencies(path, doc, "dependencies")
	spec.DevDependencies = decodeDependencies(path, doc, "dev_dependencies")

	for _, dep := range spec.Dependencies {
		if dep.Name == "flutter" {
			spec.UsesFlutter = true
		}
	}

	return spec
}

func decodeDependencies(path m.Path, doc map[string]yaml.Node, section string) []m.Dependency {
	node, ok := doc[section]
	if !ok {
		return nil
	}

	if node.Kind != yaml.MappingNode {
		slog.Warn("manifest dependency section is malformed", "path", path, "section", section)
		return nil
	}

	// Walk the mapping node directly to preserve manifest order.
	deps := make([]m.Dependency, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		deps = append(deps, m.Dependency{
			Name: node.Content[i].Value,
			SDK:  isSDKDependency(*node.Content[i+1]),
		})
	}

	return deps
}

// isSDKDependency reports whether a dependency value is of the
// `sdk: flutter` mapping form, meaning the package ships with the toolchain.
func isSDKDependency(node yaml.Node) bool {
	var value map[string]yaml.Node
	if err := node.Decode(&value); err != nil {
		return false
	}

	_, ok := value["sdk"]

	return ok
}
