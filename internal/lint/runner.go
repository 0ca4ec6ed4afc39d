package lint

import (
	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/diag"
)

// Runner dispatches registered rules over one pre-order walk of a tree.
// Rule order is registration order, and every diagnostic is tagged with the
// producing rule's registration index so the bag's sort is total.
type Runner struct {
	rules    []Rule
	byKind   map[string][]int // kind -> rule indexes, in registration order
	allNodes []int            // indexes of rules with no filter
}

// NewRunner builds a runner over rules in their registration order.
func NewRunner(rules []Rule) *Runner {
	r := &Runner{
		rules:  rules,
		byKind: make(map[string][]int),
	}
	for i, rule := range rules {
		kinds := rule.Kinds()
		if kinds == nil {
			r.allNodes = append(r.allNodes, i)
			continue
		}
		for _, kind := range kinds {
			r.byKind[kind] = append(r.byKind[kind], i)
		}
	}
	return r
}

// Rules returns the registered rules in registration order.
func (r *Runner) Rules() []Rule {
	return r.rules
}

// Run walks the tree once and collects every matching rule's diagnostics
// into bag. Diagnostics arrive in visitation order; callers sort the bag
// for the output ordering contract.
func (r *Runner) Run(ctx *Context, tree *cst.Tree, bag *diag.Bag) {
	cst.Walk(tree.Root(), func(n cst.Node) bool {
		r.checkNode(ctx, n, bag)
		return true
	})
}

func (r *Runner) checkNode(ctx *Context, n cst.Node, bag *diag.Bag) {
	filtered := r.byKind[n.Kind()]
	if len(filtered) == 0 && len(r.allNodes) == 0 {
		return
	}

	// Merge the two ordered index lists so rules fire in registration
	// order regardless of how they were filtered.
	fi, ai := 0, 0
	for fi < len(filtered) || ai < len(r.allNodes) {
		var idx int
		switch {
		case fi == len(filtered):
			idx = r.allNodes[ai]
			ai++
		case ai == len(r.allNodes):
			idx = filtered[fi]
			fi++
		case filtered[fi] < r.allNodes[ai]:
			idx = filtered[fi]
			fi++
		default:
			idx = r.allNodes[ai]
			ai++
		}
		for _, d := range r.rules[idx].Check(ctx, n) {
			d.Order = idx
			bag.Add(d)
		}
	}
}
