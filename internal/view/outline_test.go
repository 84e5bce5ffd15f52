package view

import (
	"testing"

	"github.com/edgarlab/secviz/internal/semantic"
)

func buildTestTree() *semantic.Tree {
	elements := []*semantic.Element{
		{Kind: semantic.KindRootSection, Text: "Item 2."},
		{Kind: semantic.KindTitle, Level: 1, Text: "Overview"},
		{Kind: semantic.KindText, Text: "Paragraph one."},
		{Kind: semantic.KindTitle, Level: 1, Text: "Risks"},
		{Kind: semantic.KindText, Text: "Paragraph two."},
	}
	return semantic.BuildTree(elements)
}

func TestTreeOutline_PreOrderIndices(t *testing.T) {
	nodes := TreeOutline(buildTestTree(), TagIndex)
	if len(nodes) != 1 {
		t.Fatalf("expected one root, got %d", len(nodes))
	}

	var indices []int
	var walk func(*OutlineNode)
	walk = func(n *OutlineNode) {
		indices = append(indices, n.Index)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(nodes[0])

	for i, idx := range indices {
		if idx != i {
			t.Errorf("pre-order position %d has index %d", i, idx)
		}
	}
	if len(indices) != 5 {
		t.Errorf("expected 5 nodes, got %d", len(indices))
	}
}

func TestTreeOutline_IndexTagMatchesIndex(t *testing.T) {
	nodes := TreeOutline(buildTestTree(), TagIndex)
	root := nodes[0]
	if root.Tag != "0" {
		t.Errorf("expected tag %q, got %q", "0", root.Tag)
	}
	if root.Children[0].Tag != "1" {
		t.Errorf("expected tag %q, got %q", "1", root.Children[0].Tag)
	}
}

func TestTreeOutline_TextLengthTag(t *testing.T) {
	nodes := TreeOutline(buildTestTree(), TagTextLength)
	root := nodes[0]
	if root.Tag != "7" { // len("Item 2.")
		t.Errorf("expected tag %q, got %q", "7", root.Tag)
	}
}

func TestTreeOutline_TitleAndIcon(t *testing.T) {
	nodes := TreeOutline(buildTestTree(), TagIndex)
	root := nodes[0]
	if root.Title != "Root Section" {
		t.Errorf("expected display name, got %q", root.Title)
	}
	if root.Icon != "journal-bookmark" {
		t.Errorf("expected section icon, got %q", root.Icon)
	}
}

func TestOutlineSize(t *testing.T) {
	nodes := TreeOutline(buildTestTree(), TagIndex)
	if got := OutlineSize(nodes); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}
