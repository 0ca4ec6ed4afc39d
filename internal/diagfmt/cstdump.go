package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/eleventy7/jruff/internal/cst"
	"github.com/eleventy7/jruff/internal/source"
)

const cstDumpTextLimit = 40

// DumpCST prints the named-node tree of a parse result, one node per
// line:
//
//	kind [line:col-line:col] "text"
//
// Leaf text is truncated; interior nodes print structure only.
func DumpCST(w io.Writer, tree *cst.Tree, file *source.File) {
	dumpNode(w, tree.Root(), file, 0)
}

func dumpNode(w io.Writer, n cst.Node, file *source.File, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, "  ")
	}
	start := file.LineColAt(n.StartByte())
	end := file.LineColAt(n.EndByte())
	fmt.Fprintf(w, "%s [%d:%d-%d:%d]", n.Kind(), start.Line, start.Col, end.Line, end.Col)

	children := n.NamedChildren()
	if len(children) == 0 {
		text := n.Text()
		if len(text) > cstDumpTextLimit {
			text = text[:cstDumpTextLimit] + "..."
		}
		fmt.Fprintf(w, " %s", strconv.Quote(text))
	}
	io.WriteString(w, "\n")

	for _, child := range children {
		dumpNode(w, child, file, depth+1)
	}
}
