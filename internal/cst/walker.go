package cst

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Walk performs one pre-order traversal from n, visiting every node,
// anonymous tokens included, exactly once in document order. The visit
// function returning false prunes the subtree below the current node.
func Walk(n Node, visit func(Node) bool) {
	cursor := sitter.NewTreeCursor(n.inner)
	defer cursor.Close()

	descend := visit(Node{inner: cursor.CurrentNode(), tree: n.tree})
	for {
		if descend && cursor.GoToFirstChild() {
			descend = visit(Node{inner: cursor.CurrentNode(), tree: n.tree})
			continue
		}
		for {
			// Never step to a sibling of the walk root.
			if cursor.CurrentNode().Equal(n.inner) {
				return
			}
			if cursor.GoToNextSibling() {
				descend = visit(Node{inner: cursor.CurrentNode(), tree: n.tree})
				break
			}
			if !cursor.GoToParent() {
				return
			}
		}
	}
}
