// Package tally implements the katas that classify an input by counting
// how often each element occurs.
//
// Each function builds a fresh tally (element -> count) in a single pass,
// derives its answer from it, and discards it. Nothing is cached between
// calls, so every function is safe for concurrent use.
package tally

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

// Tally counts the occurrences of each distinct element of items.
func Tally[K comparable](items []K) map[K]int {
	counts := make(map[K]int, len(items))
	for _, item := range items {
		counts[item]++
	}
	return counts
}

// Runes counts the occurrences of each rune in s.
func Runes(s string) map[rune]int {
	counts := make(map[rune]int, len(s))
	for _, r := range s {
		counts[r]++
	}
	return counts
}

// CountDuplicates returns how many distinct characters occur more than once
// in s, ignoring case. "abbcccd" has two (b and c); "Indivisibilities" has
// two (i and s).
func CountDuplicates(s string) int {
	n := 0
	for _, count := range Runes(strings.ToLower(s)) {
		if count > 1 {
			n++
		}
	}
	return n
}

// EncodeDuplicates replaces each character of s with "(" if it occurs only
// once in s and ")" if it repeats, ignoring case.
func EncodeDuplicates(s string) string {
	folded := strings.ToLower(s)
	counts := Runes(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if counts[r] > 1 {
			b.WriteByte(')')
		} else {
			b.WriteByte('(')
		}
	}
	return b.String()
}

// FixCase returns s entirely lower-cased or upper-cased, whichever needs
// fewer changes. Any rune that is already its own lower-case form (digits
// and punctuation included) counts toward lower case, and ties go to lower
// case: "CoDe" becomes "code", "CODe" becomes "CODE".
func FixCase(s string) string {
	lowerCount, upperCount := 0, 0
	for _, r := range s {
		if unicode.ToLower(r) == r {
			lowerCount++
		} else {
			upperCount++
		}
	}
	if lowerCount >= upperCount {
		return strings.ToLower(s)
	}
	return strings.ToUpper(s)
}

// Mumble expands each character by its 1-based position, capitalizing the
// first copy: "abcd" becomes "A-Bb-Ccc-Dddd".
func Mumble(s string) string {
	parts := make([]string, 0, len(s))
	i := 0
	for _, r := range s {
		ch := string(r)
		parts = append(parts, upper.String(ch)+strings.Repeat(lower.String(ch), i))
		i++
	}
	return strings.Join(parts, "-")
}

// XO reports whether s contains as many x's as o's, ignoring case.
// A string with neither returns true.
func XO(s string) bool {
	counts := Runes(strings.ToLower(s))
	return counts['x'] == counts['o']
}
