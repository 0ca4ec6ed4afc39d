// Package imports holds import hygiene rules and the shared import
// collection helpers they build on.
package imports

import (
	"strings"

	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/source"
)

// importInfo is one parsed import declaration.
type importInfo struct {
	path       string
	simpleName string // empty for wildcard imports
	isStatic   bool
	isWildcard bool
	span       source.Span
}

// collectImports gathers the top-level import declarations of a program
// node in document order.
func collectImports(program cst.Node) []importInfo {
	var out []importInfo
	for _, child := range program.NamedChildren() {
		if child.Kind() != "import_declaration" {
			continue
		}
		if info, ok := parseImport(child); ok {
			out = append(out, info)
		}
	}
	return out
}

func parseImport(decl cst.Node) (importInfo, bool) {
	info := importInfo{span: decl.Span()}

	var parts []string
	for _, child := range decl.Children() {
		switch child.Kind() {
		case "static":
			info.isStatic = true
		case "asterisk":
			info.isWildcard = true
		case "identifier", "scoped_identifier":
			parts = append(parts, child.Text())
		}
	}
	if len(parts) == 0 {
		return importInfo{}, false
	}

	info.path = strings.Join(parts, ".")
	if info.isWildcard {
		info.path += ".*"
	} else if idx := strings.LastIndexByte(info.path, '.'); idx >= 0 {
		info.simpleName = info.path[idx+1:]
	} else {
		info.simpleName = info.path
	}
	return info, true
}

// collectReferences walks the program and records every simple name used
// outside package and import declarations.
func collectReferences(program cst.Node, refs map[string]bool) {
	cst.Walk(program, func(n cst.Node) bool {
		switch n.Kind() {
		case "import_declaration", "package_declaration":
			return false
		case "identifier", "type_identifier":
			refs[n.Text()] = true
		}
		return true
	})
}
