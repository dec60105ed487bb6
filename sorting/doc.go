// Package sorting implements four classic in-place sorts on slices of
// ordered elements: straight insertion, bubble, shaker and shell sort.
//
// Overview:
//
//   - Insertion sinks each element leftward through its sorted prefix with
//     adjacent swaps.
//   - Bubble makes repeated passes, each sifting the smallest remaining
//     element to the left end.
//   - Shaker is bubble with two refinements: passes alternate direction, and
//     a last-exchange pointer skips the stretches already proven sorted.
//   - Shell is insertion sort by diminishing increments: elements first move
//     across large gaps, finishing with a plain insertion pass at gap 1.
//
// All four sort ascending and in place. Insertion, bubble and shaker only
// ever swap strictly out-of-order neighbours, so they are stable; shell sort
// is not.
//
// Complexity:
//
//   - Insertion, bubble, shaker: O(n²) worst case, O(1) memory.
//   - Shell: depends on the gap sequence (3x+1 here); O(1) memory.
package sorting
