package adapter

import (
	"regexp"
	"strings"
	"unicode"

	m "dartshake.dev/pkg/dartshake/internal/model"
)

// DartFileAdapter encapsulates Dart-specific directive extraction so the
// domain layer can focus on graph semantics while delegating source-text
// details to an infrastructure component.
type DartFileAdapter interface {
	// ExtractDirectives returns the ordered import/export/part/part-of
	// directives of a source file. Extraction is diagnostics-tolerant: a file
	// with syntax errors yields whatever directives can be recovered, and a
	// file yielding nothing is simply a leaf with no outgoing edges.
	ExtractDirectives(src []byte) []m.Directive
}

// LocalDartFileAdapter provides a concrete DartFileAdapter backed by a
// two-tier extractor: a comment-aware statement scanner as primary, and a
// liberal line-pattern fallback used only when the scanner recovers nothing.
type LocalDartFileAdapter struct{}

// NewLocalDartFileAdapter constructs a LocalDartFileAdapter.
func NewLocalDartFileAdapter() *LocalDartFileAdapter {
	return &LocalDartFileAdapter{}
}

// ExtractDirectives implements DartFileAdapter.
func (a *LocalDartFileAdapter) ExtractDirectives(src []byte) []m.Directive {
	directives := scanDirectives(stripComments(string(src)))
	if len(directives) == 0 {
		directives = fallbackDirectives(string(src))
	}

	return directives
}

// scanDirectives walks comment-stripped source statement by statement and
// collects directive statements. Non-directive statements are ignored, so a
// partially broken file still yields its recoverable directives.
func scanDirectives(src string) []m.Directive {
	var directives []m.Directive

	for _, stmt := range strings.Split(src, ";") {
		stmt = strings.TrimSpace(stmt)

		switch {
		case hasKeyword(stmt, "import"), hasKeyword(stmt, "export"):
			if uri, ok := firstQuoted(stmt); ok {
				directives = append(directives, m.Directive{Kind: m.DirectiveImport, URI: uri})
			}

		case hasKeyword(stmt, "part"):
			rest := strings.TrimSpace(stmt[len("part"):])
			if hasKeyword(rest, "of") {
				target := strings.TrimSpace(rest[len("of"):])
				if uri, ok := firstQuoted(target); ok {
					target = uri
				}

				if target != "" {
					directives = append(directives, m.Directive{Kind: m.DirectivePartitionOf, URI: target})
				}

				continue
			}

			if uri, ok := firstQuoted(rest); ok {
				directives = append(directives, m.Directive{Kind: m.DirectivePartition, URI: uri})
			}
		}
	}

	return directives
}

// hasKeyword reports whether s starts with the keyword followed by a
// non-identifier character, so `importantThing` never matches `import`.
func hasKeyword(s, keyword string) bool {
	if !strings.HasPrefix(s, keyword) {
		return false
	}

	rest := s[len(keyword):]
	if rest == "" {
		return false
	}

	r := rune(rest[0])

	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

// firstQuoted returns the content of the first single- or double-quoted
// string in s.
func firstQuoted(s string) (string, bool) {
	start := strings.IndexAny(s, `'"`)
	if start < 0 {
		return "", false
	}

	quote := s[start]

	end := strings.IndexByte(s[start+1:], quote)
	if end < 0 {
		return "", false
	}

	return s[start+1 : start+1+end], true
}

// stripComments removes // and /* */ comments while leaving string literals
// intact, so a URI containing "//" survives.
func stripComments(src string) string {
	var b strings.Builder

	b.Grow(len(src))

	var inString byte

	escaped := false

	for i := 0; i < len(src); i++ {
		c := src[i]

		if inString != 0 {
			b.WriteByte(c)

			if escaped {
				escaped = false
				continue
			}

			switch c {
			case '\\':
				escaped = true
			case inString:
				inString = 0
			}

			continue
		}

		switch {
		case c == '\'' || c == '"':
			inString = c

			b.WriteByte(c)

		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}

			if i < len(src) {
				b.WriteByte('\n')
			}

		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i += 2
			for i+1 < len(src) && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}

			i++ // land on the closing '/'

		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

var (
	fallbackDirectivePattern  = regexp.MustCompile(`(?m)^\s*(import|export|part\s+of|part)\s+['"]([^'"]+)['"]`)
	fallbackPartOfNamePattern = regexp.MustCompile(`(?m)^\s*part\s+of\s+([A-Za-z_][A-Za-z0-9_.]*)\s*;`)
)

// fallbackDirectives is the liberal text-pattern tier. It runs over the raw
// source line by line and recovers directives even when the statement scanner
// came up empty on a malformed file.
func fallbackDirectives(src string) []m.Directive {
	var directives []m.Directive

	for _, match := range fallbackDirectivePattern.FindAllStringSubmatch(src, -1) {
		keyword := strings.Join(strings.Fields(match[1]), " ")
		uri := match[2]

		switch keyword {
		case "import", "export":
			directives = append(directives, m.Directive{Kind: m.DirectiveImport, URI: uri})
		case "part of":
			directives = append(directives, m.Directive{Kind: m.DirectivePartitionOf, URI: uri})
		case "part":
			directives = append(directives, m.Directive{Kind: m.DirectivePartition, URI: uri})
		}
	}

	for _, match := range fallbackPartOfNamePattern.FindAllStringSubmatch(src, -1) {
		directives = append(directives, m.Directive{Kind: m.DirectivePartitionOf, URI: match[1]})
	}

	return directives
}
