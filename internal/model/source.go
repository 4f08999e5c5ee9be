package model

// Path represents a file system path. Canonical paths (absolute, cleaned) are
// the sole identity for a source file: two paths name the same file iff their
// canonical forms are byte-equal.
type Path string

// SourceFile is a canonical path plus its raw content, read once.
type SourceFile struct {
	Path    Path
	Content []byte
}

// DartSuffix is the source-file suffix recognized by the inventory walk.
const DartSuffix = ".dart"

// EntryBaseName is the conventional base name of a program entry file.
const EntryBaseName = "main.dart"
