package seq

import (
	"strings"

	"github.com/matzehuels/kata/pkg/errors"
)

// DefaultPad fills the last group when it is shorter than the group width.
const DefaultPad = '_'

// Group splits s into consecutive groups of k runes. A shorter final group
// is padded with pad up to k runes. An empty s yields an empty slice.
func Group(s string, k int, pad rune) ([]string, error) {
	if err := errors.ValidateWidth(k); err != nil {
		return nil, err
	}

	runes := []rune(s)
	groups := make([]string, 0, (len(runes)+k-1)/k)
	for start := 0; start < len(runes); start += k {
		end := min(start+k, len(runes))
		group := string(runes[start:end])
		if short := k - (end - start); short > 0 {
			group += strings.Repeat(string(pad), short)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// Pairs splits s into two-character groups, padding an odd tail with '_'.
func Pairs(s string) []string {
	groups, _ := Group(s, 2, DefaultPad)
	return groups
}
