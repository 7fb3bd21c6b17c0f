package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andromeda08/RenderGraph/compiler"
	"github.com/Andromeda08/RenderGraph/fixtures"
	"github.com/Andromeda08/RenderGraph/graph"
)

func bufferRes(name string, access graph.AccessType) graph.Resource {
	return graph.Resource{Id: graph.NextId(), Name: name, Type: graph.ResourceBuffer, Access: access}
}

// S4 — all non-image.
func TestOptimizerLeavesNonImageResourcesUnaliased(t *testing.T) {
	g := graph.New()
	root := g.AddPass("Root", graph.PassFlags{Sentinel: true, NeverCull: true}, []graph.Resource{bufferRes("out", graph.AccessWrite)})
	a := g.AddPass("A", graph.PassFlags{}, []graph.Resource{bufferRes("in", graph.AccessRead), bufferRes("out", graph.AccessWrite)})
	present := g.AddPass("Present", graph.PassFlags{Sentinel: true, NeverCull: true}, []graph.Resource{bufferRes("in", graph.AccessRead)})
	require.True(t, g.InsertEdge(root, "out", a, "in"))
	require.True(t, g.InsertEdge(a, "out", present, "in"))

	output := compiler.Compile(g, compiler.Options{})
	require.False(t, output.HasFailed)

	opt := output.PhaseOutputs.ResourceOptimizer
	assert.Equal(t, opt.PreCount, opt.PostCount)
	assert.Equal(t, opt.PreCount, opt.NonOptimizables)
	assert.Zero(t, opt.Reduction)
}

// Universal properties 6, 7, 8: aliasing invariants.
func TestOptimizerInvariantsOnDeferredShadingFixture(t *testing.T) {
	g := fixtures.DeferredShading()
	output := compiler.Compile(g, compiler.Options{AllowParallelization: true})
	require.False(t, output.HasFailed)

	opt := output.PhaseOutputs.ResourceOptimizer
	for _, physical := range opt.GeneratedResources {
		seen := make(map[int32]bool)
		for _, up := range physical.UsagePoints {
			assert.False(t, seen[up.Point], "usage points within a physical resource must have distinct order indices")
			seen[up.Point] = true
		}
		if !graph.IsOptimizableResource(physical.Type) {
			assert.Len(t, physical.UsagePoints, 1, "a non-optimizable resource must occupy a physical resource alone")
		}
	}

	assert.Equal(t, opt.PreCount, len(opt.OriginalResources))
}

// Universal property 9: idempotence.
func TestCompileIsIdempotent(t *testing.T) {
	first := compiler.Compile(fixtures.DeferredShading(), compiler.Options{AllowParallelization: true})
	second := compiler.Compile(fixtures.DeferredShading(), compiler.Options{AllowParallelization: true})

	require.False(t, first.HasFailed)
	require.False(t, second.HasFailed)

	firstNames := taskNames(first)
	secondNames := taskNames(second)
	assert.Equal(t, firstNames, secondNames)
	assert.Equal(t, len(first.PhaseOutputs.ResourceOptimizer.GeneratedResources), len(second.PhaseOutputs.ResourceOptimizer.GeneratedResources))
}

func taskNames(output *compiler.Output) []string {
	names := make([]string, 0, len(output.PhaseOutputs.TaskOrder))
	for _, task := range output.PhaseOutputs.TaskOrder {
		name := task.Primary.Name
		if task.Async != nil {
			name += "+" + task.Async.Name
		}
		names = append(names, name)
	}
	return names
}
