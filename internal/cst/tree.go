package cst

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/eleventy7/jruff/internal/source"
)

// Tree owns a parsed concrete syntax tree together with the source bytes it
// was produced from. All Nodes borrow the tree; Close releases the parser
// allocation and must not race with node access.
type Tree struct {
	inner *sitter.Tree
	src   []byte
	file  source.FileID
}

// NewTree wraps a parser result. The source slice must be exactly the bytes
// the tree was parsed from; node text slicing depends on it.
func NewTree(inner *sitter.Tree, src []byte, file source.FileID) *Tree {
	return &Tree{inner: inner, src: src, file: file}
}

// Root returns the root node (kind "program" for Java files).
func (t *Tree) Root() Node {
	return Node{inner: t.inner.RootNode(), tree: t}
}

// Source returns the bytes the tree was parsed from.
func (t *Tree) Source() []byte {
	return t.src
}

// File returns the FileID spans produced from this tree carry.
func (t *Tree) File() source.FileID {
	return t.file
}

// Close releases the underlying parse tree.
func (t *Tree) Close() {
	if t.inner != nil {
		t.inner.Close()
		t.inner = nil
	}
}
