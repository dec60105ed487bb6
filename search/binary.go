package search

import "cmp"

// Binary searches for needle in sorted, which must be in ascending order,
// and returns the index of a matching element. The boolean reports whether
// the needle was found; when it is false the index is 0 and meaningless.
// If sorted holds duplicates of the needle, any one of their indices may be
// returned.
func Binary[T cmp.Ordered](needle T, sorted []T) (int, bool) {
	// 1. An empty slice cannot contain the needle.
	if len(sorted) == 0 {
		return 0, false
	}

	// 2. The bounds are inclusive: every index in [lower, upper] may still
	//    hold the needle.
	lower, upper := 0, len(sorted)-1

	for {
		// 3. Integer division floors, biasing the median leftward.
		median := (lower + upper) / 2

		// 4. First loop invariant: a hit ends the search.
		if sorted[median] == needle {
			return median, true
		}

		// 5. Discard the half that cannot hold the needle. The median
		//    itself was just ruled out, hence the ±1.
		if sorted[median] < needle {
			lower = median + 1
		} else {
			upper = median - 1
		}

		// 6. Second loop invariant: crossed bounds mean the search space is
		//    exhausted.
		if lower > upper {
			return 0, false
		}
	}
}
