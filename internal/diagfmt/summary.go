package diagfmt

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/eleventy7/jruff/internal/diag"
)

// Summary writes a per-rule violation count table, alphabetical by rule,
// with a total footer.
func Summary(w io.Writer, bag *diag.Bag) {
	counts := map[string]int{}
	fixable := map[string]int{}
	for _, d := range bag.Items() {
		counts[d.Rule]++
		if d.Fix != nil && d.Fix.Applicability != diag.FixNone {
			fixable[d.Rule]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rule", "Violations", "Fixable"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	totalFixable := 0
	for _, name := range names {
		table.Append([]string{
			name,
			fmt.Sprintf("%d", counts[name]),
			fmt.Sprintf("%d", fixable[name]),
		})
		totalFixable += fixable[name]
	}
	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%d", bag.Len()),
		fmt.Sprintf("%d", totalFixable),
	})
	table.Render()
}
