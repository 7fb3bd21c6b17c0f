package compiler

import "github.com/Andromeda08/RenderGraph/graph"

const rootPassName = "Root"

// findRoot returns the sentinel pass marking the graph's root, if one
// exists: a sentinel pass named "Root", the culling origin.
func findRoot(g *graph.Graph) (*graph.Pass, bool) {
	for _, p := range g.Passes() {
		if p.Flags.Sentinel && p.Name == rootPassName {
			return p, true
		}
	}
	return nil, false
}

// Cull returns the ids of every pass that survives reachability culling:
// everything reachable from the root, plus every never-culled pass even
// when it is not reachable. An isolated sentinel (a Present pass with no
// producer wired to it yet, say) still compiles because it carries
// NeverCull.
func Cull(g *graph.Graph) ([]graph.Id, error) {
	root, ok := findRoot(g)
	if !ok {
		return nil, newError("cull", ErrNoRootNode)
	}

	reachable := graph.Reachable(g, root)
	kept := make(map[graph.Id]bool, len(reachable))
	result := make([]graph.Id, 0, len(reachable))
	for _, id := range reachable {
		kept[id] = true
		result = append(result, id)
	}

	for _, p := range g.Passes() {
		if p.Flags.NeverCull && !kept[p.Id] {
			kept[p.Id] = true
			result = append(result, p.Id)
		}
	}

	return result, nil
}
