// Package normalize canonicalizes free-text queries and names so that
// full-width, half-width and oddly spaced input all compare equal.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const ideographicSpace = '　'

// zeroWidth holds the invisible code points stripped from input. A BOM pasted
// from a spreadsheet export is the usual offender.
var zeroWidth = map[rune]struct{}{
	'\u200b': {}, // zero width space
	'\u200c': {}, // zero width non-joiner
	'\u200d': {}, // zero width joiner
	'\ufeff': {}, // byte order mark
}

// Normalize canonicalizes a free-text query. Steps, in order: NFKC folding
// (full-width forms become half-width equivalents), zero-width stripping,
// ideographic space conversion, whitespace collapsing and trimming. Total:
// any input, including the empty string, yields a well-formed result.
func Normalize(s string) string {
	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, drop := zeroWidth[r]; drop {
			continue
		}
		if r == ideographicSpace {
			r = ' '
		}
		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits a normalized query into search tokens. Empty and
// whitespace-only input yields no tokens.
func Tokenize(s string) []string {
	return strings.Fields(Normalize(s))
}
