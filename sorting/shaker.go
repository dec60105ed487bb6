package sorting

import "cmp"

// Shaker sorts xs in place, ascending. It improves on Bubble two ways:
// passes alternate direction, so misplaced elements travel fast toward
// either end, and the position of the last exchange bounds the next pass,
// skipping stretches already proven sorted. Stable.
//
// The refinements reduce redundant comparisons, not the number of swaps.
func Shaker[T cmp.Ordered](xs []T) {
	// Slices of fewer than two elements are already sorted.
	if len(xs) < 2 {
		return
	}

	// One moving bound per direction. left indexes the right element of the
	// leftmost unsorted pair, so it starts at 1.
	left, right := 1, len(xs)-1

	// Position of the most recent swap; everything beyond it on the side a
	// pass came from is already in order.
	lastExchange := len(xs) - 1

	for left <= right {
		// Right-to-left pass sifts the smallest remaining element leftward.
		for bubble := right; bubble >= left; bubble-- {
			if xs[bubble-1] > xs[bubble] {
				xs[bubble], xs[bubble-1] = xs[bubble-1], xs[bubble]
				lastExchange = bubble
			}
		}

		// Everything left of the last exchange is sorted; jump the bound.
		left = lastExchange + 1

		// Left-to-right pass sifts the largest remaining element rightward.
		for bubble := left; bubble <= right; bubble++ {
			if xs[bubble-1] > xs[bubble] {
				xs[bubble], xs[bubble-1] = xs[bubble-1], xs[bubble]
				lastExchange = bubble
			}
		}

		// Same acceleration for the right bound.
		right = lastExchange - 1
	}
}
