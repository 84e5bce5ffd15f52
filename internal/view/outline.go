package view

import (
	"strconv"

	"github.com/edgarlab/secviz/internal/semantic"
)

// TagMode selects what the tree browser shows next to each node.
type TagMode int

const (
	TagIndex TagMode = iota
	TagTextLength
)

// OutlineNode mirrors one semantic tree node for display. Index is the
// node's pre-order position, which matches the element's position in the
// flat element slice the viewer pane indexes into.
type OutlineNode struct {
	Index    int
	Title    string
	Icon     string
	Tag      string
	Children []*OutlineNode
}

// TreeOutline converts a semantic tree into display nodes, assigning
// sequential pre-order indices.
func TreeOutline(tree *semantic.Tree, mode TagMode) []*OutlineNode {
	next := 0
	var convert func(*semantic.TreeNode) *OutlineNode
	convert = func(n *semantic.TreeNode) *OutlineNode {
		node := &OutlineNode{
			Index: next,
			Title: n.Element.Kind.DisplayName(),
			Icon:  n.Element.Kind.Icon(),
		}
		next++
		if mode == TagTextLength {
			node.Tag = strconv.Itoa(n.Element.TextLen())
		} else {
			node.Tag = strconv.Itoa(node.Index)
		}
		for _, child := range n.Children {
			node.Children = append(node.Children, convert(child))
		}
		return node
	}

	out := make([]*OutlineNode, 0, len(tree.RootNodes))
	for _, root := range tree.RootNodes {
		out = append(out, convert(root))
	}
	return out
}

// OutlineSize returns the number of nodes in the outline.
func OutlineSize(nodes []*OutlineNode) int {
	n := 0
	for _, node := range nodes {
		n += 1 + OutlineSize(node.Children)
	}
	return n
}
