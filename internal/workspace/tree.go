package workspace

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

type EnvTreeNode struct {
	Name     string
	Children []*EnvTreeNode
	File     *EnvFile // nil for directories
}

func BuildEnvTree(files []EnvFile) *EnvTreeNode {
	root := &EnvTreeNode{Name: "."}

	for i := range files {
		f := &files[i]
		parts := strings.Split(f.Rel, "/")
		cur := root
		for j, part := range parts {
			if j == len(parts)-1 {
				cur.Children = append(cur.Children, &EnvTreeNode{Name: part, File: f})
				break
			}
			var next *EnvTreeNode
			for _, ch := range cur.Children {
				if ch.Name == part && ch.File == nil {
					next = ch
					break
				}
			}
			if next == nil {
				next = &EnvTreeNode{Name: part}
				cur.Children = append(cur.Children, next)
			}
			cur = next
		}
	}

	sortEnvTree(root)
	return root
}

// sortEnvTree puts files before directories, each group by name.
func sortEnvTree(node *EnvTreeNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		ci, cj := node.Children[i], node.Children[j]
		if (ci.File != nil) != (cj.File != nil) {
			return ci.File != nil
		}
		return ci.Name < cj.Name
	})
	for _, ch := range node.Children {
		sortEnvTree(ch)
	}
}

// PrintEnvTree writes the tree with box-drawing connectors. label, when not
// nil, decorates file names.
func PrintEnvTree(w io.Writer, node *EnvTreeNode, label func(*EnvFile) string) {
	printNode(w, node, "", true, label)
}

func printNode(w io.Writer, node *EnvTreeNode, prefix string, last bool, label func(*EnvFile) string) {
	childPrefix := prefix
	if node.Name != "." {
		conn := "├─ "
		if last {
			conn = "└─ "
		}
		name := node.Name
		if node.File != nil && label != nil {
			name = label(node.File)
		}
		fmt.Fprintln(w, prefix+conn+name)
		if last {
			childPrefix += "   "
		} else {
			childPrefix += "│  "
		}
	}

	for i, ch := range node.Children {
		printNode(w, ch, childPrefix, i == len(node.Children)-1, label)
	}
}
