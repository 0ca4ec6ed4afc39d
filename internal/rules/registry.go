// Package rules assembles the rule catalog. The registration order below
// is fixed: it is the tie-break key for diagnostics at the same position,
// so reordering entries changes output.
package rules

import (
	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/rules/blocks"
	"github.com/eleventy7/jruff/internal/rules/coding"
	"github.com/eleventy7/jruff/internal/rules/imports"
	"github.com/eleventy7/jruff/internal/rules/modifier"
	"github.com/eleventy7/jruff/internal/rules/naming"
	"github.com/eleventy7/jruff/internal/rules/whitespace"
)

// Factory builds a configured rule instance from its properties.
type Factory func(lint.Properties) lint.Rule

// Registration ties a rule name to its factory.
type Registration struct {
	Name string
	New  Factory
}

// Catalog returns the full registry in registration order.
func Catalog() []Registration {
	return []Registration{
		{"FinalLocalVariable", modifier.NewFinalLocalVariable},
		{"MultipleVariableDeclarations", coding.NewMultipleVariableDeclarations},
		{"OneStatementPerLine", coding.NewOneStatementPerLine},
		{"UnusedImports", imports.NewUnusedImports},
		{"PackageName", naming.NewPackageName},
		{"TypeName", naming.NewTypeName},
		{"MethodName", naming.NewMethodName},
		{"MemberName", naming.NewMemberName},
		{"ParameterName", naming.NewParameterName},
		{"LocalVariableName", naming.NewLocalVariableName},
		{"LocalFinalVariableName", naming.NewLocalFinalVariableName},
		{"StaticVariableName", naming.NewStaticVariableName},
		{"ConstantName", naming.NewConstantName},
		{"WhitespaceAround", whitespace.NewWhitespaceAround},
		{"WhitespaceAfter", whitespace.NewWhitespaceAfter},
		{"NoWhitespaceAfter", whitespace.NewNoWhitespaceAfter},
		{"ParenPad", whitespace.NewParenPad},
		{"LeftCurly", blocks.NewLeftCurly},
		{"RightCurly", blocks.NewRightCurly},
	}
}

// Names returns the rule names in registration order.
func Names() []string {
	cat := Catalog()
	names := make([]string, len(cat))
	for i, reg := range cat {
		names[i] = reg.Name
	}
	return names
}

// Lookup finds a registration by name.
func Lookup(name string) (Registration, bool) {
	for _, reg := range Catalog() {
		if reg.Name == name {
			return reg, true
		}
	}
	return Registration{}, false
}

// Build instantiates the enabled subset of the catalog in registration
// order. The enabled callback receives each rule name and returns whether
// to include it and with what properties.
func Build(enabled func(name string) (lint.Properties, bool)) []lint.Rule {
	var out []lint.Rule
	for _, reg := range Catalog() {
		props, on := enabled(reg.Name)
		if !on {
			continue
		}
		out = append(out, reg.New(props))
	}
	return out
}
