// Package normalize provides the text folding used by all dish filters:
// accented characters are decomposed and stripped of combining marks, then
// the result is lowercased, so "Áncash" and "ancash" compare equal.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folder decomposes to NFD and removes nonspacing marks. Safe for concurrent
// use; transform.String never mutates the chain.
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Fold returns s decomposed, stripped of combining marks, and lowercased.
// It is total over any input (including the empty string) and idempotent.
func Fold(s string) string {
	folded, _, err := transform.String(folder, s)
	if err != nil {
		// The chain cannot fail on valid UTF-8; fall back to the input so a
		// stray invalid byte degrades to case-only folding.
		folded = s
	}
	return strings.ToLower(folded)
}

// Contains reports whether the folded form of s contains the folded form of
// substr.
func Contains(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
