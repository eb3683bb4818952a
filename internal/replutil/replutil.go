// Package replutil holds the small formatting helpers shared between
// cmd/metta's "run" and "repl" subcommands, so the two surfaces render
// interpreter results identically.
package replutil

import (
	"strings"

	"github.com/gitrdm/gokanlogic/pkg/atom"
)

// FormatResults renders the atoms returned by a single top-level "!expr"
// evaluation, one per line, in the order produced.
func FormatResults(results []atom.Atom) string {
	if len(results) == 0 {
		return ""
	}
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// IsDirective reports whether line is a top-level "!expr" directive rather
// than a bare equality/type declaration to load silently into the space.
func IsDirective(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "!")
}

// StripDirective removes the leading "!" marker, leaving the expression
// text to hand to the tokenizer.
func StripDirective(line string) string {
	return strings.TrimPrefix(strings.TrimSpace(line), "!")
}
