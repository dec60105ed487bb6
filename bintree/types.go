// This file declares the Node type, its constructors, the identity
// predicate, and the sentinel errors of the bintree package.

package bintree

import "errors"

// Sentinel errors for bintree construction.
var (
	// ErrHeapSize indicates BuildHeap was called with a non-positive size.
	ErrHeapSize = errors.New("bintree: heap size must be at least 1")
)

// Node is a vertex of an immutable binary tree. A node only knows its two
// children, if it has any; there is no parent link and no setter. The label
// carries no meaning for any algorithm in treelab — it exists for dumps and
// test diagnostics.
type Node struct {
	label string
	left  *Node
	right *Node
}

// NewLeaf returns a childless node with the given label.
func NewLeaf(label string) *Node {
	return &Node{label: label}
}

// NewNode returns a node with the given label and children. Either child may
// be nil. Children must be fully constructed before the parent, which is what
// keeps the reachable structure acyclic.
func NewNode(label string, left, right *Node) *Node {
	return &Node{label: label, left: left, right: right}
}

// Label returns the node's label.
func (n *Node) Label() string { return n.label }

// Left returns the left child, or nil if the node has none.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil if the node has none.
func (n *Node) Right() *Node { return n.right }

// Same reports whether a and b are the very same node. Identity is pointer
// identity: two distinct nodes with identical subtrees are not Same. This is
// the only equality notion the treelab algorithms use.
func Same(a, b *Node) bool { return a != nil && a == b }
