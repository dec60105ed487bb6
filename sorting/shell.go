package sorting

import (
	"cmp"
	"math/bits"
)

// Shell sorts xs in place, ascending, by insertion with diminishing
// increments. The gap sequence is 3x+1 (1, 4, 7, ...), sized to the slice
// and applied largest gap first; the final gap-1 pass is a plain insertion
// sort over a nearly ordered slice. Not stable.
func Shell[T cmp.Ordered](xs []T) {
	// Slices of fewer than two elements are already sorted.
	if len(xs) < 2 {
		return
	}

	// 1. Size the gap sequence to floor(log2(n))−1, but always at least one
	//    gap so the final insertion pass happens.
	gapCount := bits.Len(uint(len(xs))) - 2
	if gapCount < 1 {
		gapCount = 1
	}

	gaps := make([]int, gapCount)
	for x := range gaps {
		gaps[x] = 3*x + 1
	}

	// 2. Run an insertion sort per gap, largest first. Each pass leaves
	//    every gap-strided subsequence sorted, so later passes move
	//    elements only short distances.
	for gapIndex := gapCount - 1; gapIndex >= 0; gapIndex-- {
		gap := gaps[gapIndex]

		for index := gap; index < len(xs); index++ {
			for tracker := index; tracker >= gap && xs[tracker] < xs[tracker-gap]; tracker -= gap {
				xs[tracker], xs[tracker-gap] = xs[tracker-gap], xs[tracker]
			}
		}
	}
}
