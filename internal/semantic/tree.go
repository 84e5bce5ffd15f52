package semantic

// Tree groups a flat element sequence by structural nesting.
type Tree struct {
	RootNodes []*TreeNode
}

// TreeNode wraps one element and its nested children. Traversed read-only.
type TreeNode struct {
	Element  *Element
	Children []*TreeNode
}

// structuralRank orders section and title elements: lower ranks contain
// higher ones. Non-structural elements return -1.
func structuralRank(e *Element) int {
	switch e.Kind {
	case KindRootSection:
		return 0
	case KindTitle:
		return e.Level
	}
	return -1
}

// BuildTree nests each element under the most recent structural element of
// lower rank, preserving the original pre-order. Elements ahead of any
// structural element become root nodes.
func BuildTree(elements []*Element) *Tree {
	tree := &Tree{}

	type stackEntry struct {
		node *TreeNode
		rank int
	}
	var stack []stackEntry

	attach := func(node *TreeNode) {
		if len(stack) == 0 {
			tree.RootNodes = append(tree.RootNodes, node)
			return
		}
		top := stack[len(stack)-1].node
		top.Children = append(top.Children, node)
	}

	for _, e := range elements {
		node := &TreeNode{Element: e}
		rank := structuralRank(e)
		if rank < 0 {
			attach(node)
			continue
		}
		for len(stack) > 0 && stack[len(stack)-1].rank >= rank {
			stack = stack[:len(stack)-1]
		}
		attach(node)
		stack = append(stack, stackEntry{node: node, rank: rank})
	}
	return tree
}
