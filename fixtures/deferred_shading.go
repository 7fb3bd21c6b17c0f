package fixtures

import "github.com/Andromeda08/RenderGraph/graph"

func res(name string, t graph.ResourceType, access graph.AccessType) graph.Resource {
	return graph.Resource{Id: graph.NextId(), Name: name, Type: t, Access: access}
}

// DeferredShading builds the six-pass deferred-shading demo graph:
//
//	Root -> G-Buffer -> { Lighting, AO(async) } -> Composition -> Present
//
// This is the compiler's canonical worked example, ported from the
// renderer's own `createExampleGraph`.
func DeferredShading() *graph.Graph {
	g := graph.New()

	root := g.AddPass("Root", graph.PassFlags{Sentinel: true, NeverCull: true}, []graph.Resource{
		res("scene", graph.ResourceExternal, graph.AccessNone),
	})

	gBuffer := g.AddPass("G-Buffer Pass", graph.PassFlags{Raster: true}, []graph.Resource{
		res("scene", graph.ResourceExternal, graph.AccessNone),
		res("positionImage", graph.ResourceImage, graph.AccessWrite),
		res("normalImage", graph.ResourceImage, graph.AccessWrite),
		res("albedoImage", graph.ResourceImage, graph.AccessWrite),
		res("motionVectors", graph.ResourceImage, graph.AccessWrite),
	})

	lighting := g.AddPass("Lighting Pass", graph.PassFlags{Raster: true}, []graph.Resource{
		res("positionImage", graph.ResourceImage, graph.AccessRead),
		res("normalImage", graph.ResourceImage, graph.AccessRead),
		res("albedoImage", graph.ResourceImage, graph.AccessRead),
		res("lightingResult", graph.ResourceImage, graph.AccessWrite),
	})

	ao := g.AddPass("Ambient Occlusion Pass", graph.PassFlags{Raster: true, Compute: true, Async: true}, []graph.Resource{
		res("positionImage", graph.ResourceImage, graph.AccessRead),
		res("normalImage", graph.ResourceImage, graph.AccessRead),
		res("ambientOcclusionImage", graph.ResourceImage, graph.AccessWrite),
	})

	composition := g.AddPass("Composition Pass", graph.PassFlags{Raster: true}, []graph.Resource{
		res("imageA", graph.ResourceImage, graph.AccessRead),
		res("imageB", graph.ResourceImage, graph.AccessRead),
		res("combined", graph.ResourceImage, graph.AccessWrite),
	})

	present := g.AddPass("Present", graph.PassFlags{Raster: true, NeverCull: true, Sentinel: true}, []graph.Resource{
		res("presentImage", graph.ResourceImage, graph.AccessRead),
	})

	must := func(ok bool) {
		if !ok {
			panic("deferred shading fixture: edge wiring invariant violated")
		}
	}

	must(g.InsertEdge(root, "scene", gBuffer, "scene"))
	must(g.InsertEdge(gBuffer, "positionImage", lighting, "positionImage"))
	must(g.InsertEdge(gBuffer, "normalImage", lighting, "normalImage"))
	must(g.InsertEdge(gBuffer, "albedoImage", lighting, "albedoImage"))
	must(g.InsertEdge(gBuffer, "positionImage", ao, "positionImage"))
	must(g.InsertEdge(gBuffer, "normalImage", ao, "normalImage"))
	must(g.InsertEdge(lighting, "lightingResult", composition, "imageA"))
	must(g.InsertEdge(ao, "ambientOcclusionImage", composition, "imageB"))
	must(g.InsertEdge(composition, "combined", present, "presentImage"))

	return g
}
