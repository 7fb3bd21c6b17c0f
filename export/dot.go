package export

import (
	"fmt"
	"strings"

	"github.com/Andromeda08/RenderGraph/graph"
)

// ToGraphvizDOT renders g's pass-level dependency graph as a Graphviz DOT
// digraph, using pass names as node identifiers.
func ToGraphvizDOT(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	for _, e := range g.Edges() {
		src, ok1 := g.GetPassById(e.Src)
		dst, ok2 := g.GetPassById(e.Dst)
		if !ok1 || !ok2 {
			continue
		}
		b.WriteString(fmt.Sprintf("  %q -> %q\n", src.Name, dst.Name))
	}
	b.WriteString("}\n")
	return b.String()
}
