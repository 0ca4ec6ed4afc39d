// Package javaparse wraps the tree-sitter Java grammar behind the cst
// contract. Parsing is the only place the concrete parser library appears;
// everything downstream consumes cst.Tree.
package javaparse

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/source"
)

// ErrUnanalyzable marks a file the parser could not produce a tree for.
// The batch driver records such files and moves on; one broken file never
// stops a batch.
var ErrUnanalyzable = errors.New("file is unanalyzable")

// Parser turns Java source bytes into cst.Trees. A Parser is not safe for
// concurrent use; the driver gives each worker its own.
type Parser struct {
	inner *sitter.Parser
}

// NewParser creates a parser configured for the Java grammar.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())
	return &Parser{inner: p}
}

// Parse produces a tree for src. Structural errors inside the file do not
// fail the parse: tree-sitter recovers and marks error nodes, and rules
// skip the anomalous constructs locally. Only a wholesale failure to build
// a tree returns ErrUnanalyzable.
func (p *Parser) Parse(ctx context.Context, src []byte, file source.FileID) (*cst.Tree, error) {
	tree, err := p.inner.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnanalyzable, err)
	}
	if tree == nil || tree.RootNode() == nil {
		return nil, ErrUnanalyzable
	}
	return cst.NewTree(tree, src, file), nil
}

// Close releases the underlying parser.
func (p *Parser) Close() {
	if p.inner != nil {
		p.inner.Close()
		p.inner = nil
	}
}
