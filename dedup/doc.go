// Package dedup compacts the unique elements of a sorted slice into its
// head, in place, in one pass.
//
// Overview:
//
//	Given a sorted slice, Compact arranges it so that the first n elements
//	are its unique values in their original order and returns n. The tail
//	beyond n is garbage — it holds whatever the swaps left behind, and
//	callers must not read meaning into it.
//
//	    [1, 1, 2, 3, 4, 4, 4, 5]  →  [1, 2, 3, 4, 5, _, _, _], n = 5
//
// Complexity:
//
//   - Time:   O(n), each element visited once.
//   - Memory: O(1), swaps only.
package dedup
