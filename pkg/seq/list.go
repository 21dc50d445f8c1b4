package seq

import (
	"cmp"
	"slices"

	"github.com/matzehuels/kata/pkg/errors"
)

// CountTo returns [1, 2, ..., n]. It is empty when n < 1.
func CountTo(n int) []int {
	out := make([]int, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		out = append(out, i)
	}
	return out
}

// ReverseSeq returns [n, n-1, ..., 1]. It is empty when n < 1.
func ReverseSeq(n int) []int {
	out := CountTo(n)
	slices.Reverse(out)
	return out
}

// Min returns the smallest element of items.
func Min[T cmp.Ordered](items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, errors.Empty("list")
	}
	return slices.Min(items), nil
}

// OddOrEven reports the parity of the sum of nums as "odd" or "even".
// An empty list sums to zero and is "even".
func OddOrEven(nums []int) string {
	sum := 0
	for _, n := range nums {
		sum += n
	}
	if sum%2 == 0 {
		return "even"
	}
	return "odd"
}
