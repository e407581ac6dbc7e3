package doctree

import "slices"

// DocTree is the root of a parsed document outline.
type DocTree struct {
	Title    string     `json:"title"`              // Document title (from metadata or filename)
	Children []*DocNode `json:"children,omitempty"` // Top-level sections
}

// DocNode is a recursive section in the outline.
type DocNode struct {
	Title    string     `json:"title,omitempty"` // Section heading (empty for leaf text)
	Text     string     `json:"text,omitempty"`  // Body text of this node
	Page     int        `json:"page,omitempty"`  // Source page or line (0 if N/A)
	Children []*DocNode `json:"children,omitempty"`
}

// Key is the string a node is ordered by: its title, or its text when
// it has no title.
func (n *DocNode) Key() string {
	if n.Title != "" {
		return n.Title
	}
	return n.Text
}

// SortSections orders the children of every node by Key using cmp.
// Siblings with equal keys keep their document order.
func SortSections(tree *DocTree, cmp func(a, b string) int) {
	sortNodes(tree.Children, cmp)
}

func sortNodes(nodes []*DocNode, cmp func(a, b string) int) {
	slices.SortStableFunc(nodes, func(a, b *DocNode) int {
		return cmp(a.Key(), b.Key())
	})
	for _, n := range nodes {
		sortNodes(n.Children, cmp)
	}
}

// Walk visits every node depth-first with its depth (top level is 0).
func Walk(tree *DocTree, fn func(n *DocNode, depth int)) {
	var walk func(nodes []*DocNode, depth int)
	walk = func(nodes []*DocNode, depth int) {
		for _, n := range nodes {
			fn(n, depth)
			walk(n.Children, depth+1)
		}
	}
	walk(tree.Children, 0)
}

// Titles flattens the outline keys depth-first.
func Titles(tree *DocTree) []string {
	var out []string
	Walk(tree, func(n *DocNode, _ int) {
		out = append(out, n.Key())
	})
	return out
}
