package naming

import (
	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
)

// TypeName checks class, interface, enum, record and annotation names.
type TypeName struct {
	match   func(string) bool
	pattern string
}

func NewTypeName(props lint.Properties) lint.Rule {
	r := &TypeName{}
	r.match, r.pattern = formatOf(props, defaultTypeFormat)
	return r
}

func (r *TypeName) Name() string { return "TypeName" }

func (r *TypeName) Kinds() []string {
	return []string{
		"class_declaration",
		"interface_declaration",
		"enum_declaration",
		"record_declaration",
		"annotation_type_declaration",
	}
}

func (r *TypeName) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	name, ok := n.ChildByFieldName("name")
	if !ok {
		return nil
	}
	if r.match(name.Text()) {
		return nil
	}
	return []diag.Diagnostic{nameViolation(r.Name(), name, r.pattern)}
}
