package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andromeda08/RenderGraph/graph"
)

func TestValidateAcceptsWellFormedGraph(t *testing.T) {
	g := graph.New()
	a := g.AddPass("Root", graph.PassFlags{Sentinel: true, NeverCull: true}, nil)
	b := g.AddPass("B", graph.PassFlags{}, []graph.Resource{imageRes("in", graph.AccessRead)})
	_ = a
	assert.NoError(t, g.Validate())
	_ = b
}

func TestValidateFlagsDuplicateRootSentinel(t *testing.T) {
	g := graph.New()
	g.AddPass("Root", graph.PassFlags{Sentinel: true, NeverCull: true}, nil)
	g.AddPass("Root", graph.PassFlags{Sentinel: true, NeverCull: true}, nil)

	err := g.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sentinel passes named Root")
}
