package export_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andromeda08/RenderGraph/compiler"
	"github.com/Andromeda08/RenderGraph/export"
	"github.com/Andromeda08/RenderGraph/fixtures"
)

func TestToJSONRoundTripsFailureState(t *testing.T) {
	g := fixtures.DeferredShading()
	output := compiler.Compile(g, compiler.Options{AllowParallelization: true})
	require.False(t, output.HasFailed)

	data, err := export.ToJSON(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"has_failed": false`)
	assert.Contains(t, string(data), `"fail_reason": "none"`)
	assert.Contains(t, string(data), `"resource_templates"`)
	assert.Contains(t, string(data), `"physical_resources"`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, false, decoded["has_failed"])
	assert.Equal(t, "none", decoded["fail_reason"])
}

func TestToMermaidContainsEveryPass(t *testing.T) {
	g := fixtures.DeferredShading()
	out := export.ToMermaid(g)
	for _, p := range g.Passes() {
		assert.Contains(t, out, p.Name)
	}
}

func TestToGraphvizDOTContainsEveryEdge(t *testing.T) {
	g := fixtures.DeferredShading()
	out := export.ToGraphvizDOT(g)
	assert.Contains(t, out, "digraph")
	for _, e := range g.Edges() {
		src, ok := g.GetPassById(e.Src)
		require.True(t, ok)
		dst, ok := g.GetPassById(e.Dst)
		require.True(t, ok)
		assert.Contains(t, out, fmt.Sprintf("%q -> %q", src.Name, dst.Name))
	}
	assert.NotEmpty(t, out)
}
