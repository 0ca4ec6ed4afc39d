// Package lint defines the rule contract and the tree dispatcher every
// check plugs into. Rules are a closed set behind one interface plus an
// ordered registry; there is no dynamic discovery.
package lint

import (
	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/source"
)

// Rule is the contract every check implements.
//
// Kinds is a dispatch filter: the runner invokes Check only at nodes whose
// kind appears in the returned slice. A nil filter means "visit every
// node". Anonymous token kinds ("," or "{") are legal entries, since a
// token's kind is its text.
//
// Check must be a pure function of the tree: no mutation, no clock, no
// randomness, nothing that could break run-to-run determinism.
type Rule interface {
	Name() string
	Kinds() []string
	Check(ctx *Context, n cst.Node) []diag.Diagnostic
}

// Context carries the per-file state rules read during a walk.
type Context struct {
	File *source.File
	Tree *cst.Tree
}

// NewContext builds a check context for one parsed file.
func NewContext(file *source.File, tree *cst.Tree) *Context {
	return &Context{File: file, Tree: tree}
}

// Src returns the source bytes of the analyzed file.
func (c *Context) Src() []byte {
	return c.File.Content
}

// LineCol resolves a byte offset to a 1-indexed line and column.
func (c *Context) LineCol(off uint32) source.LineCol {
	return c.File.LineColAt(off)
}

// Line returns the 1-indexed line a byte offset falls on.
func (c *Context) Line(off uint32) uint32 {
	return c.File.LineColAt(off).Line
}

// LineStart returns the byte offset of the first character of the line off
// falls on.
func (c *Context) LineStart(off uint32) uint32 {
	src := c.File.Content
	for off > 0 && src[off-1] != '\n' {
		off--
	}
	return off
}

// Indent returns the horizontal whitespace opening the line off falls on.
func (c *Context) Indent(off uint32) string {
	src := c.File.Content
	start := c.LineStart(off)
	end := start
	for end < uint32(len(src)) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return string(src[start:end])
}
