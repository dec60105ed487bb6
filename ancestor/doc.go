// Package ancestor resolves the closest common ancestor of two nodes in a
// child-only binary tree — no parent pointers, no per-node bookkeeping.
//
// Overview:
//
//	Given a tree where each node only knows its children, the classic way to
//	find the closest common ancestor of nodes a and b is to climb parent
//	links upward from both until the paths meet. Without parent links that
//	door is closed, so the resolver borrows the addressing scheme of a
//	binary heap instead: pretend the tree is embedded in a complete binary
//	tree whose root has index 1 and where the node at index i has children
//	2i and 2i+1. Under that scheme the parent of index i is simply i/2
//	(integer division) — climbing costs one division, no pointer required.
//
//	        1
//	       / \
//	      2   3
//	     / \
//	    4   5
//
// The resolution runs in four phases:
//
//  1. Locate — one combined depth-first pass finds the heap indices of both
//     targets. The pass short-circuits: when it lands on one target, the
//     other is searched only below that node with a cheaper single-target
//     walk.
//  2. Unify — if both arguments are the same node, the one discovered index
//     stands in for both.
//  3. Climb — halve whichever index is larger until the two meet; the
//     meeting point is the ancestor's heap index.
//  4. Descend — decode the ancestor index back into a left/right path from
//     the root (i mod 2 tells which child each step was) and walk it to
//     recover the actual node.
//
// Result policy:
//
//   - Either argument is the root        → no ancestor (the root has none,
//     and a node is never its own ancestor).
//   - The arguments are the same node    → that node itself.
//   - Either argument is not in the tree → no ancestor.
//   - Otherwise                          → the deepest node above both.
//
// All three "no ancestor" causes collapse into the one nil result on
// purpose; callers that need to tell them apart must re-derive the cause.
//
// Complexity:
//
//   - Time:   O(n) for the locate pass, O(depth) for climb and descend.
//   - Memory: O(depth) recursion in the locate pass, O(log index) for the
//     decoded path.
//
// The resolver never mutates the tree, so any number of resolutions may run
// concurrently over shared nodes.
package ancestor
