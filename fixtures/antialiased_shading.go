package fixtures

import "github.com/Andromeda08/RenderGraph/graph"

// DeferredShadingWithAA extends DeferredShading with an anti-aliasing
// pass and an independent async compute pass feeding a second
// composition step before presentation:
//
//	Root -> G-Buffer -> { Lighting, AO(async) } -> Composition -> AA -\
//	                 \-> SomeCompute(async)-----------------------> Final Composition -> Present
//
// Recovered from the pass catalog behind the renderer's second worked
// example (nine passes: G-Buffer, Lighting, AO, Composition, AA, an
// async compute pass and a final composition step, plus the two
// sentinels); the distilled spec's S1 scenario only needs the simpler
// DeferredShading graph, but this one exercises a wider slice of the
// parallelizability analysis (two independent async branches
// instead of one).
func DeferredShadingWithAA() *graph.Graph {
	g := graph.New()

	root := g.AddPass("Root", graph.PassFlags{Sentinel: true, NeverCull: true}, []graph.Resource{
		res("scene", graph.ResourceExternal, graph.AccessNone),
	})

	gBuffer := g.AddPass("G-Buffer Pass", graph.PassFlags{Raster: true}, []graph.Resource{
		res("scene", graph.ResourceExternal, graph.AccessNone),
		res("positionImage", graph.ResourceImage, graph.AccessWrite),
		res("normalImage", graph.ResourceImage, graph.AccessWrite),
		res("albedoImage", graph.ResourceImage, graph.AccessWrite),
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

	aa := g.AddPass("Anti-Aliasing Pass", graph.PassFlags{Raster: true}, []graph.Resource{
		res("color", graph.ResourceImage, graph.AccessRead),
		res("aaOutput", graph.ResourceImage, graph.AccessWrite),
	})

	someCompute := g.AddPass("Async Compute Example", graph.PassFlags{Compute: true, Async: true}, []graph.Resource{
		res("positionImage", graph.ResourceImage, graph.AccessRead),
		res("computeOutput", graph.ResourceImage, graph.AccessWrite),
	})

	finalComposition := g.AddPass("Final Composition Pass", graph.PassFlags{Raster: true}, []graph.Resource{
		res("imageA", graph.ResourceImage, graph.AccessRead),
		res("imageB", graph.ResourceImage, graph.AccessRead),
		res("combined", graph.ResourceImage, graph.AccessWrite),
	})

	present := g.AddPass("Present", graph.PassFlags{Raster: true, NeverCull: true, Sentinel: true}, []graph.Resource{
		res("presentImage", graph.ResourceImage, graph.AccessRead),
	})

	must := func(ok bool) {
		if !ok {
			panic("anti-aliased shading fixture: edge wiring invariant violated")
		}
	}

	must(g.InsertEdge(root, "scene", gBuffer, "scene"))
	must(g.InsertEdge(gBuffer, "positionImage", lighting, "positionImage"))
	must(g.InsertEdge(gBuffer, "normalImage", lighting, "normalImage"))
	must(g.InsertEdge(gBuffer, "albedoImage", lighting, "albedoImage"))
	must(g.InsertEdge(gBuffer, "positionImage", ao, "positionImage"))
	must(g.InsertEdge(gBuffer, "normalImage", ao, "normalImage"))
	must(g.InsertEdge(gBuffer, "positionImage", someCompute, "positionImage"))
	must(g.InsertEdge(lighting, "lightingResult", composition, "imageA"))
	must(g.InsertEdge(ao, "ambientOcclusionImage", composition, "imageB"))
	must(g.InsertEdge(composition, "combined", aa, "color"))
	must(g.InsertEdge(aa, "aaOutput", finalComposition, "imageA"))
	must(g.InsertEdge(someCompute, "computeOutput", finalComposition, "imageB"))
	must(g.InsertEdge(finalComposition, "combined", present, "presentImage"))

	return g
}
