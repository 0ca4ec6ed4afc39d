// Package modifier holds the effective-finality analysis: the one stateful,
// whole-subtree rule in the catalog. Everything else in internal/rules is a
// local pattern match; this rule does real control-flow reasoning over
// scope nesting, branch merges, loops, and exclusion zones.
package modifier

import (
	"fmt"

	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
	"github.com/eleventy7/jruff/internal/rules/common"
	"github.com/eleventy7/jruff/internal/source"
)

// FinalLocalVariable reports local variables that could legally be declared
// final: exactly one value-giving action across the variable's lifetime,
// where the declaration initializer counts as an action and a fully merged
// branch construct contributes at most one.
//
// Recognized properties: validateEnhancedForLoopVariable (bool, default
// false), validateUnnamedVariables (bool, default false).
type FinalLocalVariable struct {
	validateEnhancedForLoopVariable bool
	validateUnnamedVariables        bool
}

// NewFinalLocalVariable constructs the rule from configuration properties.
func NewFinalLocalVariable(props lint.Properties) lint.Rule {
	return &FinalLocalVariable{
		validateEnhancedForLoopVariable: props.Bool("validateEnhancedForLoopVariable", false),
		validateUnnamedVariables:        props.Bool("validateUnnamedVariables", false),
	}
}

func (r *FinalLocalVariable) Name() string {
	return "FinalLocalVariable"
}

// Kinds lists the scope entry points. Each match runs an independent
// visitor over that body; nested class bodies inside it are left to their
// own dispatcher entries.
func (r *FinalLocalVariable) Kinds() []string {
	return []string{
		"method_declaration",
		"constructor_declaration",
		"static_initializer",
		"block",
	}
}

func (r *FinalLocalVariable) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	switch n.Kind() {
	case "method_declaration", "constructor_declaration":
		if body, ok := n.ChildByFieldName("body"); ok {
			return r.analyze(ctx, body)
		}
	case "static_initializer":
		for _, child := range n.Children() {
			if child.Kind() == "block" {
				return r.analyze(ctx, child)
			}
		}
	case "block":
		// Instance initializer: a block directly inside a class body.
		if parent, ok := n.Parent(); ok && parent.Kind() == "class_body" {
			return r.analyze(ctx, n)
		}
	}
	return nil
}

func (r *FinalLocalVariable) analyze(ctx *lint.Context, body cst.Node) []diag.Diagnostic {
	v := &finalityVisitor{rule: r, ctx: ctx}
	v.visit(body)
	return v.diags
}

// candidateState tracks post-declaration assignment events. The state is
// monotonic: once stateDisqualified a candidate never goes back.
type candidateState uint8

const (
	stateUntouched candidateState = iota
	stateSingleAssigned
	stateDisqualified
)

// advance applies one assignment event.
func (s candidateState) advance() candidateState {
	if s == stateUntouched {
		return stateSingleAssigned
	}
	return stateDisqualified
}

// candidate is a local variable under evaluation. hasInit records whether
// the declarator carried an initializer; the initializer is the variable's
// one permitted value-giving expression, not an assignment event.
type candidate struct {
	name     string
	declSpan source.Span
	hasInit  bool
	state    candidateState
}

// frame is one scope: candidates keyed by name, with declaration order
// preserved for deterministic reporting.
type frame struct {
	order  []*candidate
	byName map[string]*candidate
}

// finalityVisitor performs the structural recursive descent. Frames form an
// explicit stack; branch constructs snapshot candidate state, evaluate each
// alternative as an independent universe, and merge.
type finalityVisitor struct {
	rule   *FinalLocalVariable
	ctx    *lint.Context
	frames []*frame
	diags  []diag.Diagnostic
}

func (v *finalityVisitor) visit(n cst.Node) {
	switch n.Kind() {
	case "block", "constructor_body":
		v.pushFrame()
		v.visitChildren(n)
		v.popFrame()

	case "local_variable_declaration":
		v.declare(n)
		// Initializer expressions can contain assignments and lambdas.
		v.visitChildren(n)

	case "assignment_expression":
		v.recordAssignment(n)
		v.visitChildren(n)

	case "update_expression":
		v.recordUpdate(n)
		v.visitChildren(n)

	case "if_statement":
		v.visitIf(n)

	case "ternary_expression":
		v.visitTernary(n)

	case "switch_expression", "switch_statement":
		v.visitSwitch(n)

	case "try_statement", "try_with_resources_statement":
		v.visitTry(n)

	case "catch_clause":
		// The catch parameter is an exclusion zone; only the body counts.
		if body, ok := n.ChildByFieldName("body"); ok {
			v.visit(body)
		}

	case "resource":
		// Try-with-resources declarations are never candidates, but their
		// value expressions can still assign outer variables.
		if value, ok := n.ChildByFieldName("value"); ok {
			v.visit(value)
		}

	case "lambda_expression":
		// Lambda parameters are an exclusion zone. The body opens its own
		// scope while assignment lookups still reach capturing frames.
		if body, ok := n.ChildByFieldName("body"); ok {
			v.visit(body)
		}

	case "enhanced_for_statement":
		v.visitEnhancedFor(n)

	case "class_body", "interface_body", "enum_body", "annotation_type_body",
		"class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration":
		// Member bodies are separate dispatcher entry points with their
		// own visitors.

	default:
		// Loops included: a loop body is analyzed once with ordinary
		// sequential-composition rules, no extra leniency or penalty.
		v.visitChildren(n)
	}
}

func (v *finalityVisitor) visitChildren(n cst.Node) {
	for _, child := range n.NamedChildren() {
		v.visit(child)
	}
}

// visitIf snapshots state after the condition and treats consequence and
// alternative as mutually exclusive universes. An else-if chain nests
// naturally: the alternative is itself an if_statement.
func (v *finalityVisitor) visitIf(n cst.Node) {
	if cond, ok := n.ChildByFieldName("condition"); ok {
		v.visit(cond)
	}
	var alts []cst.Node
	if cons, ok := n.ChildByFieldName("consequence"); ok {
		alts = append(alts, cons)
	}
	if alt, ok := n.ChildByFieldName("alternative"); ok {
		alts = append(alts, alt)
	}
	v.visitAlternatives(alts)
}

func (v *finalityVisitor) visitTernary(n cst.Node) {
	if cond, ok := n.ChildByFieldName("condition"); ok {
		v.visit(cond)
	}
	var alts []cst.Node
	if cons, ok := n.ChildByFieldName("consequence"); ok {
		alts = append(alts, cons)
	}
	if alt, ok := n.ChildByFieldName("alternative"); ok {
		alts = append(alts, alt)
	}
	v.visitAlternatives(alts)
}

// visitSwitch treats every statement group and arrow rule as one
// alternative. Classic fallthrough across groups is accepted as a false
// negative; only one group executes in the common case.
func (v *finalityVisitor) visitSwitch(n cst.Node) {
	if cond, ok := n.ChildByFieldName("condition"); ok {
		v.visit(cond)
	}
	body, ok := n.ChildByFieldName("body")
	if !ok {
		return
	}
	var alts []cst.Node
	for _, child := range body.NamedChildren() {
		switch child.Kind() {
		case "switch_block_statement_group", "switch_rule":
			alts = append(alts, child)
		}
	}
	v.visitAlternatives(alts)
}

// visitTry runs the body sequentially (it always begins executing),
// snapshots before the catch clauses, merges them as alternatives, and
// runs finally sequentially after the merge.
func (v *finalityVisitor) visitTry(n cst.Node) {
	if res, ok := n.ChildByFieldName("resources"); ok {
		v.visit(res)
	}
	if body, ok := n.ChildByFieldName("body"); ok {
		v.visit(body)
	}
	var alts []cst.Node
	for _, child := range n.NamedChildren() {
		if child.Kind() == "catch_clause" {
			alts = append(alts, child)
		}
	}
	v.visitAlternatives(alts)
	for _, child := range n.NamedChildren() {
		if child.Kind() == "finally_clause" {
			v.visit(child)
		}
	}
}

// visitEnhancedFor excludes the loop variable from candidacy unless
// configured otherwise; when included, the per-iteration binding counts as
// its one value-giving action, so any body assignment disqualifies it.
func (v *finalityVisitor) visitEnhancedFor(n cst.Node) {
	if value, ok := n.ChildByFieldName("value"); ok {
		v.visit(value)
	}
	v.pushFrame()
	if v.rule.validateEnhancedForLoopVariable && !common.HasModifier(n, "final") {
		if name, ok := n.ChildByFieldName("name"); ok && name.Kind() == "identifier" {
			v.register(name, true)
		}
	}
	if body, ok := n.ChildByFieldName("body"); ok {
		v.visit(body)
	}
	v.popFrame()
}

// visitAlternatives evaluates each alternative against a snapshot of
// candidate state at branch entry, as parallel universes, then merges: any
// alternative that itself disqualified a candidate disqualifies it; one
// assignment along at least one alternative counts as a single merged
// value-giving action; untouched alternatives change nothing. A single
// assignment in each of two exclusive alternatives therefore does not
// disqualify.
func (v *finalityVisitor) visitAlternatives(alts []cst.Node) {
	if len(alts) == 0 {
		return
	}
	live, base := v.snapshot()

	type outcome struct {
		disqualified bool
		advanced     bool
	}
	merged := make(map[*candidate]outcome)

	for _, alt := range alts {
		// A frame per alternative keeps candidates declared inside it
		// (switch groups declare into their enclosing scope) from leaking
		// into the next universe.
		v.pushFrame()
		v.visit(alt)
		v.popFrame()

		for _, cand := range live {
			entry := base[cand]
			end := cand.state
			if end == entry {
				continue
			}
			o := merged[cand]
			if end == stateDisqualified {
				o.disqualified = true
			} else {
				o.advanced = true
			}
			merged[cand] = o
			cand.state = entry
		}
	}

	for _, cand := range live {
		o, touched := merged[cand]
		if !touched {
			continue
		}
		switch {
		case o.disqualified:
			cand.state = stateDisqualified
		case o.advanced:
			cand.state = base[cand].advance()
		}
	}
}

// snapshot captures every live candidate across all frames in declaration
// order, with its state at the time of the call. The merge walks the
// ordered slice, never the map, so candidate processing order stays
// deterministic.
func (v *finalityVisitor) snapshot() ([]*candidate, map[*candidate]candidateState) {
	var live []*candidate
	snap := make(map[*candidate]candidateState)
	for _, f := range v.frames {
		for _, c := range f.order {
			live = append(live, c)
			snap[c] = c.state
		}
	}
	return live, snap
}

func (v *finalityVisitor) pushFrame() {
	v.frames = append(v.frames, &frame{byName: make(map[string]*candidate)})
}

// popFrame evaluates the closing scope's candidates in declaration order.
// A candidate is reported iff its total count of value-giving actions is
// exactly one: untouched with an initializer, or a single merged
// assignment without one. Untouched without initializer is an
// unused-variable concern, not a finality one.
func (v *finalityVisitor) popFrame() {
	f := v.frames[len(v.frames)-1]
	v.frames = v.frames[:len(v.frames)-1]
	for _, cand := range f.order {
		reportable := (cand.state == stateUntouched && cand.hasInit) ||
			(cand.state == stateSingleAssigned && !cand.hasInit)
		if reportable {
			v.diags = append(v.diags, diag.New(
				"FinalLocalVariable",
				cand.declSpan,
				fmt.Sprintf("Variable '%s' should be declared final.", cand.name),
			))
		}
	}
}

// declare registers the declarators of a local_variable_declaration as
// candidates in the innermost frame. Declarations already final, and
// variables bound by a for initializer clause, are excluded.
func (v *finalityVisitor) declare(n cst.Node) {
	if parent, ok := n.Parent(); ok && parent.Kind() == "for_statement" {
		return
	}
	if common.HasModifier(n, "final") {
		return
	}
	for _, declarator := range common.Declarators(n) {
		name, ok := common.DeclaratorName(declarator)
		if !ok {
			continue // structural anomaly, skip this declarator only
		}
		_, hasInit := declarator.ChildByFieldName("value")
		v.register(name, hasInit)
	}
}

func (v *finalityVisitor) register(name cst.Node, hasInit bool) {
	text := name.Text()
	if text == "_" && !v.rule.validateUnnamedVariables {
		return
	}
	if len(v.frames) == 0 {
		return
	}
	f := v.frames[len(v.frames)-1]
	cand := &candidate{name: text, declSpan: name.Span(), hasInit: hasInit}
	if _, exists := f.byName[text]; !exists {
		f.order = append(f.order, cand)
	}
	f.byName[text] = cand
}

// recordAssignment handles simple and compound assignments whose target is
// a bare identifier. Qualified, field, and array targets never match a
// candidate.
func (v *finalityVisitor) recordAssignment(n cst.Node) {
	left, ok := n.ChildByFieldName("left")
	if !ok || left.Kind() != "identifier" {
		return
	}
	v.markAssigned(left.Text())
}

// recordUpdate handles ++ and -- over an identifier.
func (v *finalityVisitor) recordUpdate(n cst.Node) {
	if expr, ok := n.ChildByFieldName("argument"); ok {
		if expr.Kind() == "identifier" {
			v.markAssigned(expr.Text())
		}
		return
	}
	// Grammar shapes without the argument field: first identifier child.
	for _, child := range n.Children() {
		if child.Kind() == "identifier" {
			v.markAssigned(child.Text())
			return
		}
	}
}

// markAssigned applies one assignment event to the nearest enclosing frame
// holding a candidate of that name.
func (v *finalityVisitor) markAssigned(name string) {
	for i := len(v.frames) - 1; i >= 0; i-- {
		if cand, ok := v.frames[i].byName[name]; ok {
			cand.state = cand.state.advance()
			return
		}
	}
}
