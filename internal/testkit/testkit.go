// Package testkit holds shared helpers for rule and driver tests: parse a
// Java snippet in memory, run rules over it, and render the outcome in the
// one-line-per-entry format golden comparisons use.
package testkit

import (
	"context"
	"fmt"

	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/javaparse"
	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/source"
)

// TestFileName is the virtual path every analyzed snippet gets.
const TestFileName = "Test.java"

// Analyze parses src as a single virtual Java file and runs the given
// rules over it through the standard dispatcher. The returned bag is
// sorted.
func Analyze(src string, rules ...lint.Rule) (*diag.Bag, *source.FileSet, error) {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(TestFileName, []byte(src))
	file := fileSet.Get(fileID)

	parser := javaparse.NewParser()
	defer parser.Close()
	tree, err := parser.Parse(context.Background(), file.Content, fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("parse failed: %w", err)
	}

	bag := diag.NewBag(0)
	runner := lint.NewRunner(rules)
	runner.Run(lint.NewContext(file, tree), tree, bag)
	bag.Sort()
	return bag, fileSet, nil
}

// Short runs Analyze and renders the sorted diagnostics as
// "path:line:col RuleName message" lines, empty string for a clean file.
func Short(src string, rules ...lint.Rule) (string, error) {
	bag, fileSet, err := Analyze(src, rules...)
	if err != nil {
		return "", err
	}
	return diag.FormatShortDiagnostics(bag.Items(), fileSet), nil
}

// ParseTree parses src and returns the tree together with its file, for
// tests that inspect nodes directly.
func ParseTree(src string) (*cst.Tree, *source.File, error) {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(TestFileName, []byte(src))
	file := fileSet.Get(fileID)

	parser := javaparse.NewParser()
	defer parser.Close()
	tree, err := parser.Parse(context.Background(), file.Content, fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("parse failed: %w", err)
	}
	return tree, file, nil
}

// CheckSpanInvariants walks a tree and verifies the span discipline every
// rule relies on: node spans stay inside the file, children stay inside
// their parents, and spans never run backwards.
func CheckSpanInvariants(tree *cst.Tree, file *source.File) error {
	limit := uint32(len(file.Content))
	var walkErr error
	cst.Walk(tree.Root(), func(n cst.Node) bool {
		if walkErr != nil {
			return false
		}
		if n.StartByte() > n.EndByte() {
			walkErr = fmt.Errorf("node %s has backwards span [%d,%d)", n.Kind(), n.StartByte(), n.EndByte())
			return false
		}
		if n.EndByte() > limit {
			walkErr = fmt.Errorf("node %s span end %d beyond content length %d", n.Kind(), n.EndByte(), limit)
			return false
		}
		if parent, ok := n.Parent(); ok {
			if n.StartByte() < parent.StartByte() || n.EndByte() > parent.EndByte() {
				walkErr = fmt.Errorf("node %s span [%d,%d) escapes parent %s [%d,%d)",
					n.Kind(), n.StartByte(), n.EndByte(),
					parent.Kind(), parent.StartByte(), parent.EndByte())
				return false
			}
		}
		return true
	})
	return walkErr
}
