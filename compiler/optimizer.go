package compiler

import (
	"sort"

	"github.com/Andromeda08/RenderGraph/graph"
)

// logicalResource is one write-accessed resource declaration gathered
// from the whole input graph (not just the retained subset — a resource
// written by a culled pass still occupies a slot in the accounting).
type logicalResource struct {
	pass     *graph.Pass
	resource graph.Resource
	orderIdx int32
}

// taskOrderIndex maps every pass appearing in tasks to its position in
// the schedule. A pass fused in as an async companion shares its
// parent task's index.
func taskOrderIndex(tasks []Task) map[graph.Id]int32 {
	idx := make(map[graph.Id]int32, len(tasks)*2)
	for i, t := range tasks {
		idx[t.Primary.Id] = int32(i)
		if t.Async != nil {
			idx[t.Async.Id] = int32(i)
		}
	}
	return idx
}

func orderIndexOf(id graph.Id, idx map[graph.Id]int32) int32 {
	if v, ok := idx[id]; ok {
		return v
	}
	return -1
}

func gatherLogicalResources(g *graph.Graph, orderIndex map[graph.Id]int32) []logicalResource {
	var out []logicalResource
	for _, p := range g.Passes() {
		for _, r := range p.Dependencies {
			if r.Access != graph.AccessWrite {
				continue
			}
			out = append(out, logicalResource{pass: p, resource: r, orderIdx: orderIndexOf(p.Id, orderIndex)})
		}
	}
	return out
}

// usagePointsFor builds the raw (pre-dedup) usage point list for a
// logical resource: its own producer point, plus one point per consumer
// reached by an edge whose source resource matches lr.
func usagePointsFor(g *graph.Graph, lr logicalResource, orderIndex map[graph.Id]int32) []UsagePoint {
	points := []UsagePoint{{
		Point:          lr.orderIdx,
		UserResourceId: lr.resource.Id,
		UsedAs:         lr.resource.Name,
		UserNodeId:     lr.pass.Id,
		UsedBy:         lr.pass.Name,
		Access:         lr.resource.Access,
	}}

	for _, e := range g.Edges() {
		if e.Src != lr.pass.Id || e.SrcResource != lr.resource.Id {
			continue
		}
		dstPass, ok := g.GetPassById(e.Dst)
		if !ok {
			continue
		}
		dstRes, ok := dstPass.GetResourceById(e.DstResource)
		if !ok {
			continue
		}
		points = append(points, UsagePoint{
			Point:          orderIndexOf(dstPass.Id, orderIndex),
			UserResourceId: dstRes.Id,
			UsedAs:         dstRes.Name,
			UserNodeId:     dstPass.Id,
			UsedBy:         dstPass.Name,
			Access:         dstRes.Access,
		})
	}

	return points
}

// buildUsagePointSet dedups points by Point, first occurrence wins, and
// returns them sorted ascending — the ordered-set-with-equality-on-index
// semantics the optimizer's correctness depends on.
func buildUsagePointSet(points []UsagePoint) []UsagePoint {
	byPoint := make(map[int32]UsagePoint, len(points))
	order := make([]int32, 0, len(points))
	for _, p := range points {
		if _, exists := byPoint[p.Point]; exists {
			continue
		}
		byPoint[p.Point] = p
		order = append(order, p.Point)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	result := make([]UsagePoint, len(order))
	for i, pt := range order {
		result[i] = byPoint[pt]
	}
	return result
}

// OptimizeResources performs first-fit interval-graph coloring over every
// write-accessed resource in the graph, aliasing non-overlapping image
// lifetimes onto shared physical slots.
func OptimizeResources(g *graph.Graph, tasks []Task) OptimizerResult {
	orderIndex := taskOrderIndex(tasks)
	logicals := gatherLogicalResources(g, orderIndex)

	result := OptimizerResult{
		OriginalResources: make([]graph.Resource, len(logicals)),
		TimelineRange:     NewRange(0, int32(len(g.Passes()))),
	}

	var physical []PhysicalResource
	var nextId int32

	for i, lr := range logicals {
		result.OriginalResources[i] = lr.resource
		points := buildUsagePointSet(usagePointsFor(g, lr, orderIndex))

		if !graph.IsOptimizableResource(lr.resource.Type) || lr.resource.Flags.DontOptimize {
			physical = append(physical, PhysicalResource{
				Id: nextId, UsagePoints: points,
				OriginalResource: lr.resource, OriginalNode: lr.pass.Id, Type: lr.resource.Type,
			})
			nextId++
			result.NonOptimizables++
			continue
		}

		if len(physical) == 0 {
			physical = append(physical, PhysicalResource{
				Id: nextId, UsagePoints: points,
				OriginalResource: lr.resource, OriginalNode: lr.pass.Id, Type: lr.resource.Type,
			})
			nextId++
			continue
		}

		incoming := RangeFromUsagePoints(points)
		merged := false
		for pi := range physical {
			if !graph.IsOptimizableResource(physical[pi].Type) || physical[pi].OriginalResource.Flags.DontOptimize {
				continue
			}
			if physical[pi].UsageRange().Overlaps(incoming) {
				continue
			}
			if physical[pi].InsertUsagePoints(points) {
				merged = true
				break
			}
		}
		if !merged {
			physical = append(physical, PhysicalResource{
				Id: nextId, UsagePoints: points,
				OriginalResource: lr.resource, OriginalNode: lr.pass.Id, Type: lr.resource.Type,
			})
			nextId++
		}
	}

	result.GeneratedResources = physical
	result.PreCount = len(logicals)
	result.PostCount = len(physical)
	result.Reduction = result.PreCount - result.PostCount
	return result
}
