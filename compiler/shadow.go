package compiler

import "github.com/Andromeda08/RenderGraph/graph"

// buildTransitiveClosure returns a phase-private shadow of g in which the
// given execution order's passes carry an explicit edge for every pair
// with a transitive dependency, not just their direct ones. The shadow is
// discarded at the end of the phase; nothing it does is visible to
// callers, including its edge ids, which are drawn from a counter local
// to the copy rather than the graph's global id sequence.
func buildTransitiveClosure(g *graph.Graph, order []graph.Id) (*graph.Graph, []*graph.Pass, bool) {
	shadow := g.CreateCopy()
	nodes, ok := shadow.ToPassList(order)
	if !ok {
		return nil, nil, false
	}

	for _, node := range nodes {
		for _, dst := range nodes {
			if node.Id != dst.Id && graph.HasPath(shadow, node, dst) {
				shadow.InsertShadowEdge(node, dst)
			}
		}
	}

	return shadow, nodes, true
}
