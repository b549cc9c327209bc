package strcalc

import (
	"strings"
	"unicode"
)

// Separators contains the runes which separate terms to be added. A run of
// any number of separators is equivalent to a single +.
const Separators = ",:\n"

// Normalize rewrites raw input into the canonical form that Tokenize reads:
// every run of separators becomes +, then all white space is removed. Other
// runes are unchanged.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	sep := false
	for _, r := range s {
		if strings.ContainsRune(Separators, r) {
			if !sep {
				b.WriteByte('+')
				sep = true
			}
			continue
		}
		sep = false
		b.WriteRune(r)
	}
	// Separators are replaced before white space is removed, so "1,\t,2"
	// still has two runs.
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, b.String())
}

// isSpace reports whether r is white space. The byte order mark counts as
// white space, but NEL does not.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
