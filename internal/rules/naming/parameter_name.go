package naming

import (
	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
)

// ParameterName checks method and constructor parameter names, including
// varargs. Lambda and catch parameters are out of scope, matching
// checkstyle's split of those into separate checks.
type ParameterName struct {
	match   func(string) bool
	pattern string
}

func NewParameterName(props lint.Properties) lint.Rule {
	r := &ParameterName{}
	r.match, r.pattern = formatOf(props, defaultCamelFormat)
	return r
}

func (r *ParameterName) Name() string { return "ParameterName" }

func (r *ParameterName) Kinds() []string {
	return []string{"formal_parameter", "spread_parameter"}
}

func (r *ParameterName) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	name, ok := parameterName(n)
	if !ok {
		return nil
	}
	if r.match(name.Text()) {
		return nil
	}
	return []diag.Diagnostic{nameViolation(r.Name(), name, r.pattern)}
}

// parameterName pulls the identifier out of a parameter node. Varargs
// parameters nest the name inside a variable_declarator child.
func parameterName(n cst.Node) (cst.Node, bool) {
	if name, ok := n.ChildByFieldName("name"); ok && name.Kind() == "identifier" {
		return name, true
	}
	for _, child := range n.NamedChildren() {
		if child.Kind() != "variable_declarator" {
			continue
		}
		if name, ok := child.ChildByFieldName("name"); ok && name.Kind() == "identifier" {
			return name, true
		}
	}
	return cst.Node{}, false
}
