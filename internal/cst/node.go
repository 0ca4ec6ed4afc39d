package cst

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/eleventy7/jruff/internal/source"
)

// Node is a read-only view of one concrete-syntax-tree node. The zero Node
// is invalid; every Node is produced from a Tree and borrows it, so no node
// outlives the tree it came from.
//
// Rules and the dispatcher depend only on this contract, never on the
// underlying parser representation.
type Node struct {
	inner *sitter.Node
	tree  *Tree
}

// Kind returns the grammar kind tag. Anonymous token nodes use their own
// text as the kind ("," has kind ","), which makes token kinds legal rule
// filter entries.
func (n Node) Kind() string {
	return n.inner.Type()
}

// IsNamed reports whether the node is a named grammar node rather than an
// anonymous token.
func (n Node) IsNamed() bool {
	return n.inner.IsNamed()
}

// IsError reports whether the parser emitted this node to recover from a
// syntax error.
func (n Node) IsError() bool {
	return n.inner.IsError()
}

// IsMissing reports whether the parser inserted this node to complete a
// broken construct. Missing nodes are zero width and carry no text.
func (n Node) IsMissing() bool {
	return n.inner.IsMissing()
}

func (n Node) StartByte() uint32 {
	return n.inner.StartByte()
}

func (n Node) EndByte() uint32 {
	return n.inner.EndByte()
}

// Span returns the node's byte range as a source.Span in the tree's file.
func (n Node) Span() source.Span {
	return source.Span{File: n.tree.file, Start: n.inner.StartByte(), End: n.inner.EndByte()}
}

// Text slices the node's byte range out of the tree's source.
func (n Node) Text() string {
	return n.inner.Content(n.tree.src)
}

// ChildCount counts all children, anonymous tokens included.
func (n Node) ChildCount() int {
	return int(n.inner.ChildCount())
}

// Child returns the i-th child (anonymous tokens included).
func (n Node) Child(i int) (Node, bool) {
	return n.wrap(n.inner.Child(i))
}

// Children returns all children in document order, anonymous tokens
// included.
func (n Node) Children() []Node {
	count := int(n.inner.ChildCount())
	out := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		if child, ok := n.wrap(n.inner.Child(i)); ok {
			out = append(out, child)
		}
	}
	return out
}

// NamedChildren returns the named children only.
func (n Node) NamedChildren() []Node {
	count := int(n.inner.NamedChildCount())
	out := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		if child, ok := n.wrap(n.inner.NamedChild(i)); ok {
			out = append(out, child)
		}
	}
	return out
}

// ChildByFieldName returns the child bound to a grammar field ("name",
// "body", "left"), if present.
func (n Node) ChildByFieldName(name string) (Node, bool) {
	return n.wrap(n.inner.ChildByFieldName(name))
}

// Parent returns the parent node, if any.
func (n Node) Parent() (Node, bool) {
	return n.wrap(n.inner.Parent())
}

// NextSibling returns the following sibling, anonymous tokens included.
func (n Node) NextSibling() (Node, bool) {
	return n.wrap(n.inner.NextSibling())
}

// PrevSibling returns the preceding sibling, anonymous tokens included.
func (n Node) PrevSibling() (Node, bool) {
	return n.wrap(n.inner.PrevSibling())
}

// PrevNamedSibling returns the preceding named sibling.
func (n Node) PrevNamedSibling() (Node, bool) {
	return n.wrap(n.inner.PrevNamedSibling())
}

// Equal reports node identity, usable for ancestor/descendant checks.
func (n Node) Equal(other Node) bool {
	return n.inner.Equal(other.inner)
}

// Tree returns the owning tree.
func (n Node) Tree() *Tree {
	return n.tree
}

func (n Node) wrap(raw *sitter.Node) (Node, bool) {
	if raw == nil {
		return Node{}, false
	}
	return Node{inner: raw, tree: n.tree}, true
}
