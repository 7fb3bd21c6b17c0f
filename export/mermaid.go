package export

import (
	"fmt"
	"strings"

	"github.com/Andromeda08/RenderGraph/graph"
)

// ToMermaid renders g as a Mermaid flowchart: one node per pass, one node
// per resource, edges from a pass to the resources it writes and from
// resources to the passes that read them.
func ToMermaid(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("flowchart TD\n")
	b.WriteString("  classDef pass fill:#3b3b58,color:#fff;\n")
	b.WriteString("  classDef resImage fill:#1f6f54,color:#fff;\n")
	b.WriteString("  classDef resOther fill:#6f5a1f,color:#fff;\n")

	seenResource := make(map[string]bool)

	for _, p := range g.Passes() {
		b.WriteString(fmt.Sprintf("  p%d[%q]:::pass\n", p.Id, p.Name))
	}

	for _, p := range g.Passes() {
		for _, r := range p.Dependencies {
			key := r.Name
			if seenResource[key] {
				continue
			}
			seenResource[key] = true
			class := "resOther"
			if r.Type == graph.ResourceImage {
				class = "resImage"
			}
			b.WriteString(fmt.Sprintf("  r_%s(%q):::%s\n", sanitize(r.Name), r.Name, class))
		}
	}

	for _, e := range g.Edges() {
		src, ok1 := g.GetPassById(e.Src)
		dst, ok2 := g.GetPassById(e.Dst)
		if !ok1 || !ok2 {
			continue
		}
		sr, _ := src.GetResourceById(e.SrcResource)
		if sr == nil {
			continue
		}
		b.WriteString(fmt.Sprintf("  p%d --> r_%s\n", src.Id, sanitize(sr.Name)))
		b.WriteString(fmt.Sprintf("  r_%s --> p%d\n", sanitize(sr.Name), dst.Id))
	}

	return b.String()
}

func sanitize(name string) string {
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}
