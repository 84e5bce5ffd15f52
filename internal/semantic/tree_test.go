package semantic

import "testing"

func el(kind Kind, level int, text string) *Element {
	return &Element{Kind: kind, Level: level, Text: text}
}

func TestBuildTree_NestsUnderSectionsAndTitles(t *testing.T) {
	elements := []*Element{
		el(KindRootSection, 0, "Item 2."),
		el(KindTitle, 1, "OVERVIEW"),
		el(KindText, 0, "First paragraph."),
		el(KindTitle, 2, "Revenue"),
		el(KindText, 0, "Second paragraph."),
		el(KindTitle, 1, "RISKS"),
		el(KindText, 0, "Third paragraph."),
	}

	tree := BuildTree(elements)

	if len(tree.RootNodes) != 1 {
		t.Fatalf("expected 1 root node, got %d", len(tree.RootNodes))
	}
	section := tree.RootNodes[0]
	if section.Element.Text != "Item 2." {
		t.Fatalf("expected section root, got %q", section.Element.Text)
	}
	if len(section.Children) != 2 {
		t.Fatalf("expected 2 titles under the section, got %d", len(section.Children))
	}

	overview := section.Children[0]
	if overview.Element.Text != "OVERVIEW" {
		t.Errorf("expected OVERVIEW first, got %q", overview.Element.Text)
	}
	if len(overview.Children) != 2 {
		t.Fatalf("expected paragraph and subtitle under OVERVIEW, got %d", len(overview.Children))
	}
	if overview.Children[0].Element.Text != "First paragraph." {
		t.Errorf("expected paragraph under OVERVIEW, got %q", overview.Children[0].Element.Text)
	}
	revenue := overview.Children[1]
	if revenue.Element.Text != "Revenue" {
		t.Errorf("expected Revenue subtitle, got %q", revenue.Element.Text)
	}
	if len(revenue.Children) != 1 || revenue.Children[0].Element.Text != "Second paragraph." {
		t.Errorf("expected paragraph under Revenue, got %+v", revenue.Children)
	}

	risks := section.Children[1]
	if risks.Element.Text != "RISKS" {
		t.Errorf("expected RISKS as sibling of OVERVIEW, got %q", risks.Element.Text)
	}
	if len(risks.Children) != 1 || risks.Children[0].Element.Text != "Third paragraph." {
		t.Errorf("expected paragraph under RISKS, got %+v", risks.Children)
	}
}

func TestBuildTree_LeadingContentBecomesRoots(t *testing.T) {
	elements := []*Element{
		el(KindText, 0, "Preamble."),
		el(KindTable, 0, ""),
		el(KindTitle, 1, "Section"),
		el(KindText, 0, "Body."),
	}
	tree := BuildTree(elements)
	if len(tree.RootNodes) != 3 {
		t.Fatalf("expected 3 root nodes, got %d", len(tree.RootNodes))
	}
	if tree.RootNodes[2].Element.Text != "Section" {
		t.Errorf("expected title as last root, got %q", tree.RootNodes[2].Element.Text)
	}
	if len(tree.RootNodes[2].Children) != 1 {
		t.Errorf("expected body under title, got %d children", len(tree.RootNodes[2].Children))
	}
}

func TestBuildTree_PreOrderMatchesInputOrder(t *testing.T) {
	elements := []*Element{
		el(KindRootSection, 0, "a"),
		el(KindTitle, 1, "b"),
		el(KindText, 0, "c"),
		el(KindTitle, 1, "d"),
		el(KindText, 0, "e"),
	}
	tree := BuildTree(elements)

	var got []string
	var walk func(*TreeNode)
	walk = func(n *TreeNode) {
		got = append(got, n.Element.Text)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, root := range tree.RootNodes {
		walk(root)
	}

	want := []string{"a", "b", "c", "d", "e"}
	if len(got) != len(want) {
		t.Fatalf("expected %d nodes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pre-order[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestBuildTree_Empty(t *testing.T) {
	tree := BuildTree(nil)
	if len(tree.RootNodes) != 0 {
		t.Errorf("expected no root nodes, got %d", len(tree.RootNodes))
	}
}
