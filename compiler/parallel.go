package compiler

import "github.com/Andromeda08/RenderGraph/graph"

// ParallelizabilityAnalysis reports, for every non-sentinel pass in
// executionOrder, which later passes in that order it can safely run
// alongside — i.e. neither is a (transitive) dependency of the other.
//
// After the transitive closure every dependency path between two passes
// is also a direct shadow edge, so a pair counts as independent exactly
// when the shadow holds no edge between them in either direction
// (ContainsAnyEdge).
func ParallelizabilityAnalysis(g *graph.Graph, executionOrder []graph.Id) (map[graph.Id][]graph.Id, error) {
	shadow, nodes, ok := buildTransitiveClosure(g, executionOrder)
	if !ok {
		return nil, newError("parallelizability", ErrNoNodeByGivenId)
	}

	result := make(map[graph.Id][]graph.Id)
	for i, node := range nodes {
		if node.Flags.Sentinel {
			continue
		}

		var independent []graph.Id
		for j, other := range nodes {
			if node.Id == other.Id || other.Flags.Sentinel || i > j {
				continue
			}
			if shadow.ContainsAnyEdge(node.Id, other.Id) {
				continue
			}
			independent = append(independent, other.Id)
		}

		if len(independent) > 0 {
			result[node.Id] = independent
		}
	}

	return result, nil
}
