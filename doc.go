// Package treelab is an in-memory collection of classic algorithms —
// tree ancestry, searching, sorting and small array puzzles — each one
// self-contained, documented and tested.
//
// 🚀 What is treelab?
//
//	A small, dependency-light teaching library that brings together:
//		• Binary trees: immutable, child-only nodes with pointer identity
//		• Ancestry: closest-common-ancestor resolution without parent links
//		• Searching: classic inclusive-bounds binary search
//		• Sorting: straight insertion, bubble, shaker and shell sort
//		• Array puzzles: in-place duplicate compaction of sorted slices
//
// ✨ Why choose treelab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Exhaustive in-code docs – each routine explains its own invariants
//   - Pure Go – no cgo, no I/O, no hidden state
//   - Every routine is a pure function over its inputs
//
// Under the hood, everything is organized under small subpackages:
//
//	bintree/  — immutable binary tree nodes, fixture builder & ASCII dumps
//	ancestor/ — closest-common-ancestor resolver via heap-index arithmetic
//	search/   — binary search over sorted slices
//	sorting/  — insertion, bubble, shaker and shell sorts
//	dedup/    — in-place duplicate compaction of sorted slices
//
// Quick ASCII example:
//
//	        n1
//	       /  \
//	      n2   n3
//	     / \
//	    n4  n5
//
//	ancestor.ClosestCommonAncestor(n1, n4, n5) returns n2.
//
// Dive into the package docs for full expositions and complexity notes.
//
//	go get github.com/katalvlaran/treelab
package treelab
