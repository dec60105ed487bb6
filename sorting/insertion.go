package sorting

import "cmp"

// Insertion sorts xs in place, ascending, by straight insertion: each element
// is sunk leftward through the already-sorted prefix with adjacent swaps.
// Stable.
func Insertion[T cmp.Ordered](xs []T) {
	// Slices of fewer than two elements are already sorted.
	if len(xs) < 2 {
		return
	}

	for index := 1; index < len(xs); index++ {
		// Sink xs[index] until its left neighbour is no larger. The strict
		// comparison keeps equal elements in their original order.
		for tracker := index; tracker > 0 && xs[tracker] < xs[tracker-1]; tracker-- {
			xs[tracker], xs[tracker-1] = xs[tracker-1], xs[tracker]
		}
	}
}
