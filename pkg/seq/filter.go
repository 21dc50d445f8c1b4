package seq

import (
	"slices"

	"github.com/matzehuels/kata/pkg/errors"
)

// DeleteNth returns items with every value limited to its first n
// occurrences. Order is preserved. Time O(len(items)), space O(distinct).
func DeleteNth[T comparable](items []T, n int) ([]T, error) {
	if err := errors.ValidateCap(n); err != nil {
		return nil, err
	}
	seen := make(map[T]int, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		seen[item]++
		if seen[item] <= n {
			out = append(out, item)
		}
	}
	return out, nil
}

// DeleteNthQuadratic is DeleteNth without a hash index: distinct values and
// their counts live in parallel slices searched linearly for every element.
// Time O(len(items) * distinct), space O(distinct).
func DeleteNthQuadratic[T comparable](items []T, n int) ([]T, error) {
	if err := errors.ValidateCap(n); err != nil {
		return nil, err
	}
	var (
		values []T
		counts []int
	)
	out := make([]T, 0, len(items))
	for _, item := range items {
		i := slices.Index(values, item)
		if i < 0 {
			values = append(values, item)
			counts = append(counts, 0)
			i = len(values) - 1
		}
		if counts[i] < n {
			counts[i]++
			out = append(out, item)
		}
	}
	return out, nil
}
