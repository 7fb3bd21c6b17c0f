package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andromeda08/RenderGraph/compiler"
	"github.com/Andromeda08/RenderGraph/fixtures"
)

func TestSynthesizeTemplatesCoversEveryPhysicalResource(t *testing.T) {
	g := fixtures.DeferredShading()
	output := compiler.Compile(g, compiler.Options{AllowParallelization: true})
	require.False(t, output.HasFailed)

	assert.Len(t, output.ResourceTemplates, len(output.PhaseOutputs.ResourceOptimizer.GeneratedResources))
	for i, tmpl := range output.ResourceTemplates {
		physical := output.PhaseOutputs.ResourceOptimizer.GeneratedResources[i]
		assert.Len(t, tmpl.Links, len(physical.UsagePoints))
		for _, link := range tmpl.Links {
			assert.Equal(t, physical.OriginalNode, link.SrcPass)
		}
	}
}
