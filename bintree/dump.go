// dump.go - ASCII rendering of trees for docs, examples and test logs.

package bintree

import "github.com/xlab/treeprint"

// Dump renders the tree rooted at root as an ASCII diagram, one line per
// node, children indented under their parent. Unlabeled nodes render as "·".
// Intended for examples and t.Logf diagnostics; the output format is not a
// stable API.
func Dump(root *Node) string {
	printer := treeprint.New()
	if root != nil {
		printer.SetValue(renderLabel(root))
		dumpChildren(printer, root)
	}

	return printer.String()
}

// dumpChildren appends root's children (and their subtrees) to branch.
func dumpChildren(branch treeprint.Tree, node *Node) {
	for _, child := range []*Node{node.left, node.right} {
		if child == nil {
			continue
		}
		if child.left == nil && child.right == nil {
			branch.AddNode(renderLabel(child))

			continue
		}
		dumpChildren(branch.AddBranch(renderLabel(child)), child)
	}
}

// renderLabel substitutes a placeholder for empty labels.
func renderLabel(n *Node) string {
	if n.label == "" {
		return "·"
	}

	return n.label
}
