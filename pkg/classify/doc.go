// Package classify maps small fixed-shape records to one of a fixed set of
// labels, and parses those labels back from strings.
//
// # Threshold classification
//
// [Categorize] labels a club applicant [Senior] when they are at least 55
// years old and have a handicap above 7, and [Open] otherwise. There are no
// intermediate states.
//
// # Label parsing
//
// Every label type has a total parser ([ParseCategory], [ParsePlatform],
// [ParsePosition]) that either returns the matched variant or an
// *errors.UnrecognizedError naming the rejected input and the accepted
// values. Parsers never panic. Input is trimmed and matched without regard
// to case.
//
// The package also carries two small record types, [Rectangle] and
// [Player], with the behavior their katas ask for.
package classify

import (
	"slices"
	"strings"

	"github.com/matzehuels/kata/pkg/errors"
)

// parseLabel matches s against accepted and returns the matched label.
func parseLabel[L ~string](kind, s string, accepted []L) (L, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	if i := slices.Index(accepted, L(want)); i >= 0 {
		return accepted[i], nil
	}
	names := make([]string, len(accepted))
	for i, a := range accepted {
		names[i] = string(a)
	}
	return "", &errors.UnrecognizedError{Kind: kind, Input: s, Accepted: names}
}
