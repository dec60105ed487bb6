package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/treelab/sorting"
)

// benchInput builds a deterministic pseudo-random slice of size n.
func benchInput(n int) []int {
	rng := rand.New(rand.NewSource(42))
	xs := make([]int, n)
	for i := range xs {
		xs[i] = rng.Intn(n)
	}

	return xs
}

func benchSort(b *testing.B, sortFn func([]int)) {
	const n = 2048
	src := benchInput(n)
	buf := make([]int, n)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		copy(buf, src)
		sortFn(buf)
	}
}

func BenchmarkInsertion(b *testing.B) { benchSort(b, sorting.Insertion[int]) }
func BenchmarkBubble(b *testing.B)    { benchSort(b, sorting.Bubble[int]) }
func BenchmarkShaker(b *testing.B)    { benchSort(b, sorting.Shaker[int]) }
func BenchmarkShell(b *testing.B)     { benchSort(b, sorting.Shell[int]) }
