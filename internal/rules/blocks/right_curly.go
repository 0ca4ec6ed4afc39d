package blocks

import (
	"fmt"

	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
	"github.com/eleventy7/jruff/internal/lint"
)

const (
	msgCurlySame  = "'}' at column %d should be on the same line as the next part of a multi-block statement (one liner)."
	msgCurlyAlone = "'}' at column %d should be alone on a line."
)

// RightCurly checks the closing brace of multi-block statements: the ones
// where another keyword continues the statement after the brace. The
// "option" property picks "same" (default, brace and keyword share a line)
// or "alone" (brace alone on its line).
type RightCurly struct {
	alone bool
}

func NewRightCurly(props lint.Properties) lint.Rule {
	return &RightCurly{
		alone: props.String("option", "same") == "alone",
	}
}

func (r *RightCurly) Name() string { return "RightCurly" }

func (r *RightCurly) Kinds() []string {
	return []string{
		"if_statement",
		"try_statement",
		"try_with_resources_statement",
		"do_statement",
	}
}

// curlyPair is a closing brace and the token continuing the statement.
type curlyPair struct {
	brace cst.Node
	next  cst.Node
}

func (r *RightCurly) Check(ctx *lint.Context, n cst.Node) []diag.Diagnostic {
	var pairs []curlyPair
	switch n.Kind() {
	case "if_statement":
		pairs = ifPairs(n)
	case "try_statement", "try_with_resources_statement":
		pairs = tryPairs(n)
	case "do_statement":
		pairs = doPairs(n)
	}

	var out []diag.Diagnostic
	src := ctx.Src()
	for _, p := range pairs {
		braceStart := p.brace.StartByte()
		braceLine := ctx.Line(braceStart)
		nextLine := ctx.Line(p.next.StartByte())
		col := ctx.LineCol(braceStart).Col
		if r.alone {
			alone := isAtLineStart(src, braceStart) && braceLine != nextLine
			if alone {
				continue
			}
			out = append(out, diag.New(r.Name(), p.brace.Span(),
				fmt.Sprintf(msgCurlyAlone, col)))
			continue
		}
		if braceLine == nextLine {
			continue
		}
		out = append(out, diag.New(r.Name(), p.brace.Span(),
			fmt.Sprintf(msgCurlySame, col)))
	}
	return out
}

// ifPairs pairs the closing brace of a consequence block with the `else`
// keyword, when both exist.
func ifPairs(n cst.Node) []curlyPair {
	elseTok, ok := tokenChild(n, "else")
	if !ok {
		return nil
	}
	consequence, ok := n.ChildByFieldName("consequence")
	if !ok || consequence.Kind() != "block" {
		return nil
	}
	brace, ok := closeBrace(consequence)
	if !ok {
		return nil
	}
	return []curlyPair{{brace: brace, next: elseTok}}
}

// tryPairs pairs each block of a try chain with the keyword that follows
// it: body with the first catch, each catch with the next catch or the
// finally.
func tryPairs(n cst.Node) []curlyPair {
	type part struct {
		body    cst.Node
		keyword cst.Node
		hasBody bool
	}
	var parts []part
	if body, ok := n.ChildByFieldName("body"); ok && body.Kind() == "block" {
		parts = append(parts, part{body: body, hasBody: true})
	}
	for i := 0; i < n.ChildCount(); i++ {
		child, ok := n.Child(i)
		if !ok {
			break
		}
		switch child.Kind() {
		case "catch_clause":
			kw, kwOK := tokenChild(child, "catch")
			body, bodyOK := child.ChildByFieldName("body")
			if !bodyOK {
				for _, c := range child.NamedChildren() {
					if c.Kind() == "block" {
						body, bodyOK = c, true
					}
				}
			}
			if kwOK {
				parts = append(parts, part{body: body, keyword: kw, hasBody: bodyOK})
			}
		case "finally_clause":
			kw, kwOK := tokenChild(child, "finally")
			if kwOK {
				parts = append(parts, part{keyword: kw})
			}
		}
	}

	var pairs []curlyPair
	for i := 0; i+1 < len(parts); i++ {
		if !parts[i].hasBody {
			continue
		}
		brace, ok := closeBrace(parts[i].body)
		if !ok {
			continue
		}
		pairs = append(pairs, curlyPair{brace: brace, next: parts[i+1].keyword})
	}
	return pairs
}

// doPairs pairs the do body's closing brace with the `while` keyword.
func doPairs(n cst.Node) []curlyPair {
	body, ok := n.ChildByFieldName("body")
	if !ok || body.Kind() != "block" {
		return nil
	}
	whileTok, ok := tokenChild(n, "while")
	if !ok {
		return nil
	}
	brace, ok := closeBrace(body)
	if !ok {
		return nil
	}
	return []curlyPair{{brace: brace, next: whileTok}}
}
