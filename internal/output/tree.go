package output

import (
	"path"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where descriptions start.
	descriptionColumn = 30
)

// TreeEntry annotates one path of a rendered project tree.
type TreeEntry struct {
	// Description is shown dimmed after the name.
	Description string

	// Status, when set, styles the name with StatusStyle, e.g. StatusRemoved
	// for a path the prune step deleted.
	Status string
}

// treeNode is one file or directory of a rendered tree.
type treeNode struct {
	name     string
	entry    TreeEntry
	isDir    bool
	children []*treeNode
}

// RenderFileTree renders slash-separated relative paths beneath a root
// directory name. Directories sort before files; entries sharing a prefix
// share a branch.
func RenderFileTree(rootName string, entries map[string]TreeEntry) string {
	if len(entries) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, isDir: true}
	for p, entry := range entries {
		root.insert(strings.Split(path.Clean(p), "/"), entry)
	}
	root.sort()

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(rootName + "/"))
	sb.WriteString("\n")
	for i, child := range root.children {
		child.render(&sb, "", i == len(root.children)-1)
	}
	return sb.String()
}

func (n *treeNode) insert(parts []string, entry TreeEntry) {
	var child *treeNode
	for _, c := range n.children {
		if c.name == parts[0] {
			child = c
			break
		}
	}
	if child == nil {
		child = &treeNode{name: parts[0]}
		n.children = append(n.children, child)
	}

	if len(parts) == 1 {
		child.entry = entry
		return
	}
	child.isDir = true
	child.insert(parts[1:], entry)
}

func (n *treeNode) sort() {
	sort.Slice(n.children, func(i, j int) bool {
		a, b := n.children[i], n.children[j]
		if a.isDir != b.isDir {
			return a.isDir
		}
		return a.name < b.name
	})
	for _, c := range n.children {
		c.sort()
	}
}

func (n *treeNode) render(sb *strings.Builder, prefix string, isLast bool) {
	connector, childPrefix := treeEdge, prefix+treeVert
	if isLast {
		connector, childPrefix = treeLast, prefix+treeSpace
	}

	name := n.name
	if n.isDir {
		name += "/"
	}
	width := len([]rune(prefix + connector + name))
	if n.entry.Status != "" {
		name = StatusStyle(n.entry.Status).Render(name)
	}

	sb.WriteString(prefix + connector + name)
	if n.entry.Description != "" {
		sb.WriteString(strings.Repeat(" ", max(descriptionColumn-width, 2)))
		sb.WriteString(StyleDim.Render(n.entry.Description))
	}
	sb.WriteString("\n")

	for i, c := range n.children {
		c.render(sb, childPrefix, i == len(n.children)-1)
	}
}
