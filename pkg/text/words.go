package text

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matzehuels/kata/pkg/errors"
)

var upper = cases.Upper(language.Und)

// BreakCamelCase inserts a space before every upper-case letter except the
// first rune: "camelCasingTest" becomes "camel Casing Test".
func BreakCamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ReverseWords reverses the order of space-separated words. Runs of spaces
// are kept, so "a  b" becomes "b  a".
func ReverseWords(s string) string {
	words := strings.Split(s, " ")
	slices.Reverse(words)
	return strings.Join(words, " ")
}

// Pluralize appends an "s" to singular.
func Pluralize(singular string) string {
	return singular + "s"
}

// Abbreviate turns a two-word name into upper-case initials separated by a
// dot: "Sam Harris" becomes "S.H".
func Abbreviate(name string) (string, error) {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return "", errors.Empty("name")
	case 2:
	default:
		return "", errors.Invalid("expected a two-word name, got %d words in %q", len(words), name)
	}

	first, _ := utf8.DecodeRuneInString(words[0])
	last, _ := utf8.DecodeRuneInString(words[1])
	return upper.String(string(first)) + "." + upper.String(string(last)), nil
}

// AlphabetPosition replaces each ASCII letter with its 1-based position in
// the alphabet and drops everything else. Positions are space-separated.
func AlphabetPosition(s string) string {
	positions := make([]string, 0, len(s))
	for _, r := range s {
		r = unicode.ToLower(r)
		if r < 'a' || r > 'z' {
			continue
		}
		positions = append(positions, strconv.Itoa(int(r-'a')+1))
	}
	return strings.Join(positions, " ")
}
