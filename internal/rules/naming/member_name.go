package naming

import (
	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
)

// MemberName checks instance field names. Static fields and implicit
// interface constants belong to StaticVariableName and ConstantName.
type MemberName struct {
	match   func(string) bool
	pattern string
}

func NewMemberName(props lint.Properties) lint.Rule {
	r := &MemberName{}
	r.match, r.pattern = formatOf(props, defaultCamelFormat)
	return r
}

func (r *MemberName) Name() string { return "MemberName" }

func (r *MemberName) Kinds() []string { return []string{"field_declaration"} }

func (r *MemberName) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	isStatic, _, isInterfaceConst := fieldClass(n)
	if isStatic || isInterfaceConst {
		return nil
	}
	return declaratorViolations(r.Name(), n, r.match, r.pattern)
}
