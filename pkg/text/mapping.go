package text

import (
	"strings"
	"unicode/utf8"
)

// htmlEntities maps the characters that are unsafe in HTML text to their
// entity strings.
var htmlEntities = map[rune]string{
	'<': "&lt;",
	'>': "&gt;",
	'"': "&quot;",
	'&': "&amp;",
}

// dnaComplements pairs each nucleobase with its complement.
var dnaComplements = map[rune]string{
	'A': "T",
	'T': "A",
	'C': "G",
	'G': "C",
}

// MapRunes replaces every rune of s that has an entry in table with the
// mapped string. Runes without an entry pass through unchanged, and so do
// bytes that are not valid UTF-8.
func MapRunes(s string, table map[rune]string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if sub, ok := table[r]; ok && !(r == utf8.RuneError && size == 1) {
			b.WriteString(sub)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// EscapeHTML converts <, >, " and & to their HTML entities.
//
// Example:
//
//	EscapeHTML(`<h2 class="x">Tom & Jerry</h2>`)
//	// &lt;h2 class=&quot;x&quot;&gt;Tom &amp; Jerry&lt;/h2&gt;
func EscapeHTML(s string) string {
	return MapRunes(s, htmlEntities)
}

// ComplementDNA returns the complementary strand of dna (A<->T, C<->G).
// Characters outside {A, T, C, G} are copied as-is.
func ComplementDNA(dna string) string {
	return MapRunes(dna, dnaComplements)
}
