package workspace

import (
	"path/filepath"
	"strings"
)

// Node is a directory or file in the listing tree built by [BuildTree].
type Node struct {
	Name string
	// Path is set for files and empty for directories.
	Path     string
	Children []*Node
}

// IsDir reports whether n is a directory node.
func (n *Node) IsDir() bool {
	return n.Path == ""
}

// Row is one line of a flattened tree.
type Row struct {
	*Node
	Depth int
}

// BuildTree groups entries into a tree of directory nodes under an unnamed
// root. Entries keep their order within each directory, and a directory is
// placed where its first file appears.
func BuildTree(entries []Entry) *Node {
	root := &Node{}
	dirs := map[string]*Node{}

	for _, e := range entries {
		parts := strings.Split(filepath.ToSlash(filepath.Clean(e.Rel)), "/")

		parent := root
		key := ""

		for _, part := range parts[:len(parts)-1] {
			key += part + "/"

			dir, ok := dirs[key]
			if !ok {
				dir = &Node{Name: part}
				dirs[key] = dir
				parent.Children = append(parent.Children, dir)
			}

			parent = dir
		}

		parent.Children = append(parent.Children, &Node{
			Name: parts[len(parts)-1],
			Path: e.Path,
		})
	}

	return root
}

// Flatten returns the descendants of n in display order, depth first.
func (n *Node) Flatten() []Row {
	var rows []Row

	var walk func(*Node, int)

	walk = func(node *Node, depth int) {
		for _, c := range node.Children {
			rows = append(rows, Row{Node: c, Depth: depth})
			walk(c, depth+1)
		}
	}

	walk(n, 0)

	return rows
}
