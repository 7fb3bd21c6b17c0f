package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andromeda08/RenderGraph/compiler"
	"github.com/Andromeda08/RenderGraph/fixtures"
	"github.com/Andromeda08/RenderGraph/graph"
)

func imageRes(name string, access graph.AccessType) graph.Resource {
	return graph.Resource{Id: graph.NextId(), Name: name, Type: graph.ResourceImage, Access: access}
}

// S5 — isolated neverCull.
func TestCullingRetainsUnreachableNeverCullPass(t *testing.T) {
	g := graph.New()
	root := g.AddPass("Root", graph.PassFlags{Sentinel: true, NeverCull: true}, nil)
	present := g.AddPass("Present", graph.PassFlags{Sentinel: true, NeverCull: true}, []graph.Resource{imageRes("presentImage", graph.AccessRead)})
	_ = root

	culled, err := compiler.Cull(g)
	require.NoError(t, err)
	assert.Contains(t, culled, present.Id)
}

func TestCullingFailsWithoutRoot(t *testing.T) {
	g := graph.New()
	g.AddPass("Other", graph.PassFlags{}, nil)

	_, err := compiler.Cull(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, compiler.NoRootNodeError)
}

func TestCullingOnFixtureIncludesEveryReachablePass(t *testing.T) {
	g := fixtures.DeferredShading()
	culled, err := compiler.Cull(g)
	require.NoError(t, err)
	assert.Len(t, culled, len(g.Passes()))
}
