package model

// DirectiveKind discriminates the directive statements extracted from a Dart
// source file.
type DirectiveKind int

const (
	// DirectiveImport covers both `import` and `export` statements. Export
	// edges are modeled as plain import edges for reachability purposes.
	DirectiveImport DirectiveKind = iota

	// DirectivePartition is a `part '...'` statement: the file contains the
	// named partition.
	DirectivePartition

	// DirectivePartitionOf is a `part of ...` statement: the file is a
	// partition of the named parent and is never imported directly.
	DirectivePartitionOf
)

// Directive is a single import/export/part/part-of statement with its raw URI
// exactly as written in the source.
type Directive struct {
	Kind DirectiveKind
	URI  string
}

// FirstPartitionOf returns the URI of the first `part of` directive in the
// list. Files declaring more than one are malformed; only the first counts.
func FirstPartitionOf(directives []Directive) (string, bool) {
	for _, d := range directives {
		if d.Kind == DirectivePartitionOf {
			return d.URI, true
		}
	}

	return "", false
}
