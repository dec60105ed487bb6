// Package search implements classic search routines over sorted slices.
//
// Overview:
//
//	Binary search keeps two inclusive bounds around the part of the slice
//	that may still contain the needle. Each round inspects the median of the
//	bounds: a hit ends the search, otherwise the half that cannot contain
//	the needle is discarded by moving one bound past the median. The bounds
//	are inclusive, so a bound moves to median±1, never to the median itself
//	— the median has just been ruled out. When the lower bound overtakes the
//	upper bound the whole search space has been visited.
//
//	    LB                           UB
//	    ↓                            ↓
//	    [ 4,  7,  9, 49, 50, 80, 85, 99 ]     looking for 9
//	              ↑
//	    [ 4,  7,  9 ]                         49 > 9, UB ← median−1
//
// Complexity:
//
//   - Time:   O(log n) — at most ~20 probes for a million elements.
//   - Memory: O(1).
package search
