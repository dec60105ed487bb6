package dedup

// Compact moves the unique elements of the sorted slice xs to its head,
// preserving their order, and returns how many there are. The tail past the
// returned length is garbage. xs must be sorted; on unsorted input the
// result is unspecified.
func Compact[T comparable](xs []T) int {
	// Zero or one element is already compact.
	if len(xs) < 2 {
		return len(xs)
	}

	// The first element is unique by definition; head grows from there.
	head := 1

	for index := 1; index < len(xs); index++ {
		// A new value extends the unique head by one swapped-in element.
		if xs[index] != xs[head-1] {
			xs[head], xs[index] = xs[index], xs[head]
			head++
		}
	}

	return head
}
