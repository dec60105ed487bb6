// Package bintree provides the immutable, child-only binary tree that the
// rest of treelab operates on.
//
// Overview:
//
//   - A Node knows its left and right children and nothing else: no parent
//     link, no mutation after construction. Working around the missing
//     parent pointer is the whole point of the ancestor package.
//   - Node identity is pointer identity. Two distinct nodes with identical
//     subtrees are NOT the same node; compare with Same, never with
//     structural equality.
//   - Nodes are freely shareable: a fixture slice and a parent node may both
//     hold the same *Node, and concurrent readers need no locking because
//     nothing is ever written after construction.
//
// Construction:
//
//   - Trees are built bottom-up, leaves first, because children must exist
//     before their parent: NewLeaf then NewNode, or BuildHeap for the
//     common heap-shaped fixture (h[i] parents h[2i] and h[2i+1]).
//
// Errors:
//
//   - ErrHeapSize — BuildHeap was asked for fewer than one node.
package bintree
