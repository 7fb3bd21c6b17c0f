package compiler

import "github.com/Andromeda08/RenderGraph/graph"

// SynthesizeTemplates emits, for each physical resource, one
// ResourceLink per usage point pairing that usage with the physical's
// origin pass and resource. This includes the producer's own usage
// point, which yields a self-referential link — a faithful, documented
// quirk of the source this is ported from rather than an oversight (see
// DESIGN.md).
func SynthesizeTemplates(result OptimizerResult) []ResourceTemplate {
	templates := make([]ResourceTemplate, len(result.GeneratedResources))
	for i, res := range result.GeneratedResources {
		links := make([]ResourceLink, len(res.UsagePoints))
		for j, up := range res.UsagePoints {
			links[j] = ResourceLink{
				SrcPass:     res.OriginalNode,
				DstPass:     up.UserNodeId,
				SrcResource: res.OriginalResource.Id,
				DstResource: up.UserResourceId,
				Access:      up.Access,
			}
		}
		templates[i] = ResourceTemplate{
			Id:    graph.Id(res.Id),
			Type:  res.Type,
			Links: links,
		}
	}
	return templates
}
