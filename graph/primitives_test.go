package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andromeda08/RenderGraph/graph"
)

func chain(t *testing.T, n int) (*graph.Graph, []*graph.Pass) {
	t.Helper()
	g := graph.New()
	passes := make([]*graph.Pass, n)
	for i := 0; i < n; i++ {
		deps := []graph.Resource{imageRes("in", graph.AccessRead), imageRes("out", graph.AccessWrite)}
		passes[i] = g.AddPass(string(rune('A'+i)), graph.PassFlags{}, deps)
	}
	for i := 0; i < n-1; i++ {
		require.True(t, g.InsertEdge(passes[i], "out", passes[i+1], "in"))
	}
	return g, passes
}

func TestReachable(t *testing.T) {
	g, passes := chain(t, 4)
	ids := graph.Reachable(g, passes[1])
	assert.Equal(t, []graph.Id{passes[1].Id, passes[2].Id, passes[3].Id}, ids)
}

func TestHasPath(t *testing.T) {
	g, passes := chain(t, 3)
	assert.True(t, graph.HasPath(g, passes[0], passes[2]))
	assert.False(t, graph.HasPath(g, passes[2], passes[0]))
	assert.True(t, graph.HasPath(g, passes[0], passes[0]))
}

func TestTopologicalSortLinearChain(t *testing.T) {
	g, passes := chain(t, 4)
	order, ok := graph.TopologicalSort(g, passes)
	require.True(t, ok)
	ids := make([]graph.Id, len(passes))
	for i, p := range passes {
		ids[i] = p.Id
	}
	assert.Equal(t, ids, order)
}

func TestTopologicalSortDetectsCycle(t *testing.T) {
	g := graph.New()
	a := g.AddPass("A", graph.PassFlags{}, []graph.Resource{imageRes("in", graph.AccessRead), imageRes("out", graph.AccessWrite)})
	b := g.AddPass("B", graph.PassFlags{}, []graph.Resource{imageRes("in", graph.AccessRead), imageRes("out", graph.AccessWrite)})
	require.True(t, g.InsertEdge(a, "out", b, "in"))
	require.True(t, g.InsertEdge(b, "out", a, "in"))

	_, ok := graph.TopologicalSort(g, []*graph.Pass{a, b})
	assert.False(t, ok)
}

func TestTopologicalSortIgnoresEdgesOutsideSubset(t *testing.T) {
	// A pass whose only predecessor lies outside the given subset must
	// still sort successfully: its in-degree is computed only over the
	// given subset, not over the whole graph.
	g, passes := chain(t, 3)
	subset := []*graph.Pass{passes[2]}
	order, ok := graph.TopologicalSort(g, subset)
	require.True(t, ok)
	assert.Equal(t, []graph.Id{passes[2].Id}, order)
}
