package model

// Pubspec holds the fields of a project manifest that the engine cares about.
// Every field is best-effort: malformed manifest content leaves the affected
// field zero-valued instead of failing the load.
type Pubspec struct {
	// Name is the project's own package name. package: URIs naming it resolve
	// into the project's lib tree; any other name is a foreign dependency.
	Name string

	// UsesFlutter is true when the manifest declares the Flutter framework,
	// either through a flutter dependency or a top-level flutter section.
	UsesFlutter bool

	// Dependencies and DevDependencies are the declared package names, in
	// manifest order.
	Dependencies    []Dependency
	DevDependencies []Dependency
}

// Dependency is one entry of a pubspec dependency block.
type Dependency struct {
	Name string

	// SDK dependencies (flutter, flutter_localizations, ...) are provided by
	// the toolchain and never show up as unused.
	SDK bool
}
