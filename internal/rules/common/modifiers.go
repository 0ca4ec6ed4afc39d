// Package common holds small helpers shared by the rule packages: modifier
// inspection and declarator iteration over the Java grammar shapes.
package common

import (
	"github.com/eleventy7/jruff/internal/cst"
)

// HasModifier reports whether a declaration node carries the given modifier
// keyword ("final", "static", ...). Modifiers usually sit in a "modifiers"
// child; some grammar shapes expose the keyword as a direct child.
func HasModifier(decl cst.Node, keyword string) bool {
	for _, child := range decl.Children() {
		if child.Kind() == keyword {
			return true
		}
		if child.Kind() == "modifiers" {
			for _, mod := range child.Children() {
				if mod.Kind() == keyword {
					return true
				}
			}
		}
	}
	return false
}

// Declarators yields the variable_declarator children of a declaration
// node in document order.
func Declarators(decl cst.Node) []cst.Node {
	var out []cst.Node
	for _, child := range decl.NamedChildren() {
		if child.Kind() == "variable_declarator" {
			out = append(out, child)
		}
	}
	return out
}

// DeclaratorName returns the name node of a variable_declarator, either
// an identifier or the underscore_pattern of an unnamed variable. A
// declarator without a name, or one whose name the parser inserted to
// recover from broken input, is a structural anomaly and reports false;
// callers skip it.
func DeclaratorName(declarator cst.Node) (cst.Node, bool) {
	name, ok := declarator.ChildByFieldName("name")
	if !ok || name.IsMissing() {
		return cst.Node{}, false
	}
	switch name.Kind() {
	case "identifier", "underscore_pattern":
		return name, true
	}
	return cst.Node{}, false
}
