package ancestor

import "github.com/katalvlaran/treelab/bintree"

// notFound marks an absent heap index. Valid indices start at 1.
const notFound = 0

// ClosestCommonAncestor returns the deepest node that sits above both a and b
// in the tree rooted at root, or nil if no such node exists.
//
// The nil result covers three indistinguishable cases: an argument is the
// root itself, an argument is not reachable from root, or the decoded
// ancestor path hits a missing child link (which only happens when an
// argument did not belong to the tree). If a and b are the same non-root
// node, the node itself is returned.
//
// The tree is only read; calls may run concurrently over shared nodes.
func ClosestCommonAncestor(root, a, b *bintree.Node) *bintree.Node {
	// 1. A nil root holds no ancestors for anything.
	if root == nil {
		return nil
	}

	// 2. The root has no ancestor within the tree, and a node is never its
	//    own ancestor, so a root argument resolves to absence.
	if bintree.Same(a, root) || bintree.Same(b, root) {
		return nil
	}

	// 3. Locate both targets in one pass, as 1-based heap indices.
	idxA, idxB := indexOfTwoNodes(a, b, root, 1)

	// 4. Equal arguments share whichever index the search produced; if
	//    neither search found the node, it is not in the tree.
	if bintree.Same(a, b) {
		idx := idxA
		if idx == notFound {
			idx = idxB
		}
		idxA, idxB = idx, idx
	}

	if idxA == notFound || idxB == notFound {
		return nil
	}

	// 5. Climb: the parent of heap index i is i/2, so halving the larger
	//    index walks the deeper node upward until the two paths meet.
	for idxA != idxB {
		if idxA > idxB {
			idxA /= 2
		} else {
			idxB /= 2
		}
	}

	// 6. Decode the meeting index into a root-to-ancestor path. The low bit
	//    of each index says which child that step was (odd = right child,
	//    even = left); collecting bits while halving yields the path
	//    leaf-ward to root-ward, so it is reversed before walking.
	var path []bool
	for idx := idxA; idx != 1; idx /= 2 {
		path = append(path, idx&1 == 1)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	// 7. Walk the decoded path from the root. A missing link here means the
	//    located indices never described this tree; treat as absence.
	node := root
	for _, isRight := range path {
		if isRight {
			node = node.Right()
		} else {
			node = node.Left()
		}
		if node == nil {
			return nil
		}
	}

	return node
}

// indexOfTwoNodes searches for a and b below node (inclusive), where node
// sits at the given 1-based heap index, and returns their indices
// (notFound for a missing target).
//
// When one target matches the current node the other is searched only below
// it: in the left subtree when one exists, otherwise in the right subtree.
// Results from sibling recursions are merged at each level by preferring a
// found index over notFound.
func indexOfTwoNodes(a, b, node *bintree.Node, index int) (int, int) {
	if bintree.Same(a, node) {
		return index, indexBelow(b, node, index)
	}

	if bintree.Same(b, node) {
		return indexBelow(a, node, index), index
	}

	idxA, idxB := notFound, notFound
	if child := node.Left(); child != nil {
		idxA, idxB = indexOfTwoNodes(a, b, child, 2*index)
	}

	if child := node.Right(); child != nil {
		rightA, rightB := indexOfTwoNodes(a, b, child, 2*index+1)
		if idxA == notFound {
			idxA = rightA
		}
		if idxB == notFound {
			idxB = rightB
		}
	}

	return idxA, idxB
}

// indexBelow searches for target strictly below node, which sits at the
// given heap index: in the left subtree when one exists, otherwise in the
// right subtree.
func indexBelow(target, node *bintree.Node, index int) int {
	if child := node.Left(); child != nil {
		return indexOfOneNode(target, child, 2*index)
	}
	if child := node.Right(); child != nil {
		return indexOfOneNode(target, child, 2*index+1)
	}

	return notFound
}

// indexOfOneNode searches for target below node (inclusive), where node sits
// at the given heap index, and returns its index or notFound.
func indexOfOneNode(target, node *bintree.Node, index int) int {
	if bintree.Same(target, node) {
		return index
	}

	idx := notFound
	if child := node.Left(); child != nil {
		idx = indexOfOneNode(target, child, 2*index)
	}
	if idx == notFound {
		if child := node.Right(); child != nil {
			idx = indexOfOneNode(target, child, 2*index+1)
		}
	}

	return idx
}
