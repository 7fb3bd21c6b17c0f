package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andromeda08/RenderGraph/compiler"
	"github.com/Andromeda08/RenderGraph/fixtures"
)

// S1 — deferred-shading fixture: Lighting fuses with AO on the async
// queue.
func TestFusionOnDeferredShadingFixture(t *testing.T) {
	g := fixtures.DeferredShading()
	output := compiler.Compile(g, compiler.Options{AllowParallelization: true})
	require.False(t, output.HasFailed)

	var found bool
	for _, task := range output.PhaseOutputs.TaskOrder {
		if task.Primary.Name == "Lighting Pass" {
			require.NotNil(t, task.Async, "Lighting Pass should fuse with the async AO pass")
			assert.Equal(t, "Ambient Occlusion Pass", task.Async.Name)
			found = true
		}
	}
	assert.True(t, found, "Lighting Pass should appear in the schedule")
	assert.GreaterOrEqual(t, output.PhaseOutputs.ResourceOptimizer.Reduction, 1)
}

// Universal property 10: option monotonicity.
func TestFusionWithoutParallelizationEmitsOnlySerialTasks(t *testing.T) {
	g := fixtures.DeferredShading()
	output := compiler.Compile(g, compiler.Options{AllowParallelization: false})
	require.False(t, output.HasFailed)

	assert.Len(t, output.PhaseOutputs.TaskOrder, len(output.PhaseOutputs.SerialExecutionOrder))
	for _, task := range output.PhaseOutputs.TaskOrder {
		assert.Nil(t, task.Async)
	}

	parallel := compiler.Compile(g, compiler.Options{AllowParallelization: true})
	assert.LessOrEqual(t, len(parallel.PhaseOutputs.TaskOrder), len(parallel.PhaseOutputs.SerialExecutionOrder))
}

// Universal property 5: task coverage.
func TestFusionCoversEveryRetainedNonSentinelPassExactlyOnce(t *testing.T) {
	g := fixtures.DeferredShading()
	output := compiler.Compile(g, compiler.Options{AllowParallelization: true})
	require.False(t, output.HasFailed)

	seen := make(map[string]int)
	for _, task := range output.PhaseOutputs.TaskOrder {
		seen[task.Primary.Name]++
		if task.Async != nil {
			seen[task.Async.Name]++
		}
	}
	for _, id := range output.PhaseOutputs.SerialExecutionOrder {
		pass, ok := g.GetPassById(id)
		require.True(t, ok)
		if pass.Flags.Sentinel {
			continue
		}
		assert.Equal(t, 1, seen[pass.Name], "pass %q should appear exactly once across tasks", pass.Name)
	}
}
