package compiler

import "github.com/Andromeda08/RenderGraph/graph"

// SerialOrder topologically sorts the surviving passes into a single
// linear execution order.
func SerialOrder(g *graph.Graph, culled []graph.Id) ([]graph.Id, error) {
	passes, ok := g.ToPassList(culled)
	if !ok {
		return nil, newError("serial-order", ErrNoNodeByGivenId)
	}

	order, ok := graph.TopologicalSort(g, passes)
	if !ok {
		return nil, newError("serial-order", ErrCyclicDependency)
	}
	return order, nil
}
