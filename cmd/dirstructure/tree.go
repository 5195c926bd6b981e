// cmd/dirstructure/tree.go
package main

import (
	"io"
	"strings"
)

const (
	branchConnector = "├── "
	lastConnector   = "└── "
	branchIndent    = "│   "
	lastIndent      = "    "
)

// TreeNode is one entry in a scanned directory tree. Children keep the
// sorted order of the scan.
type TreeNode struct {
	Name     string
	IsDir    bool
	Children []*TreeNode
}

// scanTree builds the node tree for the non-excluded contents of path.
// The returned root carries path's base name and is not itself rendered.
func (s *Scanner) scanTree(path string) *TreeNode {
	root := &TreeNode{Name: rootLabel(path), IsDir: true}
	s.fillNode(root, path, ancestry{})
	return root
}

func (s *Scanner) fillNode(node *TreeNode, dir string, seen ancestry) {
	leave, ok := seen.enter(dir)
	if !ok {
		s.logger.Warn("Symlink cycle detected, not descending.", "path", dir)
		return
	}
	defer leave()

	for _, e := range s.visibleChildren(dir) {
		child := &TreeNode{Name: e.name, IsDir: e.isDir}
		if e.isDir {
			s.fillNode(child, e.path, seen)
		}
		node.Children = append(node.Children, child)
	}
	s.logger.Debug("Generated structure.", "path", dir, "children", len(node.Children))
}

// renderNodes writes the children of node, each line prefixed with indent.
// It depends only on the node tree.
func renderNodes(w io.Writer, node *TreeNode, indent string) {
	for i, child := range node.Children {
		isLast := i == len(node.Children)-1
		connector := tern(isLast, lastConnector, branchConnector)
		if child.IsDir {
			io.WriteString(w, indent+connector+child.Name+"/\n")
			renderNodes(w, child, indent+tern(isLast, lastIndent, branchIndent))
			continue
		}
		io.WriteString(w, indent+connector+child.Name+"\n")
	}
}

// RenderTree returns the tree text for the children of path. The root label
// is left to the caller.
func (s *Scanner) RenderTree(path, indent string) string {
	var b strings.Builder
	renderNodes(&b, s.scanTree(path), indent)
	return b.String()
}
