package bst

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Print returns an indented dump of the shape of a tree, for debugging. Missing children
// of a node with exactly one child are shown as '·'.
func Print(tree Tree) string {
	header := fmt.Sprintf("Tree(size=%d)\n", tree.Size())
	p := tp.New()
	ppt(p, tree)
	return header + p.String()
}

func ppt(p tp.Tree, tree Tree) {
	n, ok := tree.(*Node)
	if !ok {
		return
	}
	_, leftEmpty := n.left.(Empty)
	_, rightEmpty := n.right.(Empty)
	if leftEmpty && rightEmpty {
		p.AddNode(n.value)
		return
	}
	branch := p.AddBranch(n.value)
	for _, ch := range [2]Tree{n.left, n.right} {
		if _, empty := ch.(Empty); empty {
			branch.AddNode("·")
			continue
		}
		ppt(branch, ch)
	}
}
