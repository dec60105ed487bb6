package sorting

import "cmp"

// Bubble sorts xs in place, ascending. Each pass walks from the right end
// down to the current position, swapping out-of-order neighbours, so the
// smallest remaining element sifts to the left end of the unsorted part.
// Stable.
func Bubble[T cmp.Ordered](xs []T) {
	// Slices of fewer than two elements are already sorted.
	if len(xs) < 2 {
		return
	}

	for index := 1; index < len(xs); index++ {
		// Walk right-to-left; the strict comparison keeps the sort stable.
		for bubble := len(xs) - 1; bubble >= index; bubble-- {
			if xs[bubble-1] > xs[bubble] {
				xs[bubble], xs[bubble-1] = xs[bubble-1], xs[bubble]
			}
		}
	}
}
