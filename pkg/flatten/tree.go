package flatten

import (
	"sort"
	"strings"
)

// treeNode is one directory or file in the rendered listing.
type treeNode struct {
	name     string
	dir      bool
	children map[string]*treeNode
}

// RenderTree renders slash-normalized relative paths as an indented tree.
// It works from the path list alone, not the filesystem, so it renders
// historical revisions the same way as the working tree.
func RenderTree(rootLabel string, paths []string) string {
	root := &treeNode{name: rootLabel, dir: true, children: map[string]*treeNode{}}
	for _, p := range paths {
		insertPath(root, p)
	}

	var sb strings.Builder
	sb.WriteString(rootLabel + "/\n")
	renderChildren(&sb, root, "")
	return sb.String()
}

func insertPath(root *treeNode, path string) {
	node := root
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		child, ok := node.children[seg]
		if !ok {
			child = &treeNode{name: seg, children: map[string]*treeNode{}}
			node.children[seg] = child
		}
		if i < len(segments)-1 {
			child.dir = true
		}
		node = child
	}
}

func renderChildren(sb *strings.Builder, node *treeNode, prefix string) {
	entries := make([]*treeNode, 0, len(node.children))
	for _, c := range node.children {
		entries = append(entries, c)
	}

	// Directories first, then files, alphabetically.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].dir != entries[j].dir {
			return entries[i].dir
		}
		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.dir {
			sb.WriteString(prefix + connector + entry.name + "/\n")
			renderChildren(sb, entry, prefix+extension)
		} else {
			sb.WriteString(prefix + connector + entry.name + "\n")
		}
	}
}
