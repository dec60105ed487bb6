// builder.go - fixture construction for heap-shaped trees.
//
// BuildHeap is the external collaborator the algorithm packages lean on in
// their tests and examples: it owns tree construction so that the algorithms
// themselves never need a building API.

package bintree

import "strconv"

// LabelFn produces the label for the node at 1-based heap index i.
type LabelFn func(i int) string

// Option configures BuildHeap via functional arguments.
type Option func(*buildOptions)

// buildOptions holds the resolved BuildHeap configuration.
type buildOptions struct {
	labelFn LabelFn
}

// WithLabelFn overrides the default decimal-index labels.
func WithLabelFn(fn LabelFn) Option {
	return func(o *buildOptions) {
		if fn != nil {
			o.labelFn = fn
		}
	}
}

// defaultOptions returns the baseline BuildHeap configuration.
func defaultOptions() buildOptions {
	return buildOptions{labelFn: func(i int) string { return strconv.Itoa(i) }}
}

// BuildHeap builds a binary tree shaped like a 1-based binary heap of n nodes
// and returns the nodes indexed by their heap position: h[1] is the root and
// h[i] has children h[2i] and h[2i+1] whenever those indices are ≤ n.
// Slot 0 of the returned slice is always nil.
//
// Construction is bottom-up, leaves first, so every parent receives fully
// built children. The returned slice and the tree share the same nodes —
// h[i] and the corresponding child pointer inside h[i/2] are one node.
//
// Complexity: O(n) time, O(n) space.
//
// Errors:
//   - ErrHeapSize if n < 1.
func BuildHeap(n int, opts ...Option) ([]*Node, error) {
	// 1. Validate the requested size.
	if n < 1 {
		return nil, ErrHeapSize
	}

	// 2. Resolve options.
	cfg := defaultOptions()
	for _, fn := range opts {
		fn(&cfg)
	}

	// 3. Allocate the 1-based slice; slot 0 stays nil.
	h := make([]*Node, n+1)

	// 4. Build bottom-up: children at 2i and 2i+1 already exist (or are
	//    out of range, hence nil) by the time index i is reached.
	var left, right *Node
	for i := n; i >= 1; i-- {
		left, right = nil, nil
		if 2*i <= n {
			left = h[2*i]
		}
		if 2*i+1 <= n {
			right = h[2*i+1]
		}
		h[i] = NewNode(cfg.labelFn(i), left, right)
	}

	return h, nil
}
