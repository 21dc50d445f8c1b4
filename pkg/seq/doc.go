// Package seq implements the sequence katas: bounded-occurrence filtering,
// fixed-width grouping, and a few small list builders.
//
// # Bounded-occurrence filter
//
// [DeleteNth] keeps the first n occurrences of every value and drops the
// rest, preserving order:
//
//	seq.DeleteNth([]int{20, 37, 20, 21}, 1) // [20 37 21]
//
// It runs in linear time by indexing counts in a map. [DeleteNthQuadratic]
// computes the same result with two parallel slices and a linear search per
// element; it is kept to contrast the two complexities and is tested to
// agree with [DeleteNth].
//
// # Fixed-width grouping
//
// [Group] cuts a string into runs of k runes. Only a non-empty short
// remainder is padded:
//
//	seq.Pairs("abcdef") // [ab cd ef]
//	seq.Pairs("abcde")  // [ab cd e_]
package seq
