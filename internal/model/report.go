package model

// FilesReport is the outcome of one unused-file analysis run. Paths are
// project-relative and sorted so repeated runs over an unchanged tree produce
// identical reports.
type FilesReport struct {
	ProjectRoot string   `yaml:"project_root"`
	TotalFiles  int      `yaml:"total_files"`
	Reachable   int      `yaml:"reachable"`
	EntryPoints []string `yaml:"entry_points"`
	Unused      []string `yaml:"unused"`
}

// KeysReport lists translation keys declared in translation files but never
// referenced from Dart source.
type KeysReport struct {
	TranslationFiles int      `yaml:"translation_files"`
	DeclaredKeys     int      `yaml:"declared_keys"`
	Unused           []string `yaml:"unused"`
}

// DepsReport lists manifest dependencies whose package is never imported.
type DepsReport struct {
	Declared int      `yaml:"declared"`
	Unused   []string `yaml:"unused"`
}

// DeleteOutcome records the result of deleting a single file.
type DeleteOutcome struct {
	Path Path
	Err  error
}

// CleanResult aggregates a deletion batch. A failed deletion never aborts the
// batch, so Deleted+Failed always equals the number of requested paths.
type CleanResult struct {
	Outcomes []DeleteOutcome
	Deleted  int
	Failed   int
}
