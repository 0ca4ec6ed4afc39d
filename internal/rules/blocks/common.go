// Package blocks holds the brace placement rules.
package blocks

import "github.com/eleventy7/jruff/internal/cst"

// openBrace returns the "{" token opening a body node.
func openBrace(body cst.Node) (cst.Node, bool) {
	for i := 0; i < body.ChildCount(); i++ {
		child, ok := body.Child(i)
		if !ok {
			break
		}
		if child.Kind() == "{" {
			return child, true
		}
	}
	return cst.Node{}, false
}

// closeBrace returns the "}" token closing a body node, searching from the
// end so nested braces inside the body are never picked up.
func closeBrace(body cst.Node) (cst.Node, bool) {
	for i := body.ChildCount(); i > 0; i-- {
		child, ok := body.Child(i - 1)
		if !ok {
			continue
		}
		if child.Kind() == "}" {
			return child, true
		}
	}
	return cst.Node{}, false
}

// tokenChild returns the first anonymous child of n with the given kind.
func tokenChild(n cst.Node, kind string) (cst.Node, bool) {
	for i := 0; i < n.ChildCount(); i++ {
		child, ok := n.Child(i)
		if !ok {
			break
		}
		if child.Kind() == kind {
			return child, true
		}
	}
	return cst.Node{}, false
}
