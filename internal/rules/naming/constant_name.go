package naming

import (
	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
)

// ConstantName checks static final fields and interface or annotation
// fields, which are constants whether or not the modifiers are spelled out.
type ConstantName struct {
	match   func(string) bool
	pattern string
}

func NewConstantName(props lint.Properties) lint.Rule {
	r := &ConstantName{}
	r.match, r.pattern = formatOf(props, defaultConstantFormat)
	return r
}

func (r *ConstantName) Name() string { return "ConstantName" }

// Interface and annotation fields parse as constant_declaration, not
// field_declaration, so both kinds dispatch here.
func (r *ConstantName) Kinds() []string {
	return []string{"field_declaration", "constant_declaration"}
}

func (r *ConstantName) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	isStatic, isFinal, isInterfaceConst := fieldClass(n)
	if !(isStatic && isFinal) && !isInterfaceConst {
		return nil
	}
	return declaratorViolations(r.Name(), n, r.match, r.pattern)
}
