package compiler

import (
	"fmt"

	"github.com/Andromeda08/RenderGraph/graph"
)

// Task is one entry in the final schedule: a primary pass, and — when
// fusion placed an independent async-capable pass alongside it — a
// second pass meant to run concurrently on another queue.
type Task struct {
	Primary *graph.Pass
	Async   *graph.Pass
}

// UsagePoint marks one touch of a physical resource by a logical
// resource, at a given point in task order. Equality and ordering are
// defined solely on Point: a UsagePoint set is really an ordered set
// keyed by task-order index, so two touches landing on the same index
// collide and only one survives insertion. That collapsing is observable,
// documented behavior (see DESIGN.md), not a bug to route around.
type UsagePoint struct {
	Point          int32
	UserResourceId graph.Id
	UsedAs         string
	UserNodeId     graph.Id
	UsedBy         string
	Access         graph.AccessType
}

// Range is an inclusive [Start, End] span over task-order indices.
type Range struct {
	Start int32
	End   int32
}

// NewRange builds a validated Range directly from two endpoints.
func NewRange(start, end int32) Range {
	if start > end {
		panic(fmt.Sprintf("range starting point %d is greater than the end point %d", start, end))
	}
	return Range{Start: start, End: end}
}

// RangeFromUsagePoints derives a Range spanning every point in points.
// Panics if points is empty; callers only ever call this on the
// usage-point set of a logical or physical resource, which always has at
// least the producer's own point.
func RangeFromUsagePoints(points []UsagePoint) Range {
	if len(points) == 0 {
		panic("cannot derive a range from an empty usage point set")
	}
	min, max := points[0].Point, points[0].Point
	for _, p := range points[1:] {
		if p.Point < min {
			min = p.Point
		}
		if p.Point > max {
			max = p.Point
		}
	}
	return NewRange(min, max)
}

// Overlaps reports whether r and other share any point.
func (r Range) Overlaps(other Range) bool {
	lo := r.Start
	if other.Start > lo {
		lo = other.Start
	}
	hi := r.End
	if other.End < hi {
		hi = other.End
	}
	return lo <= hi
}

// PhysicalResource is a generated resource: one or more logical resources
// aliased onto the same underlying allocation because their usage-point
// ranges never overlap.
type PhysicalResource struct {
	Id               int32
	UsagePoints      []UsagePoint
	OriginalResource graph.Resource
	OriginalNode     graph.Id
	Type             graph.ResourceType
}

// UsageRange returns the span this physical resource is live across.
func (r *PhysicalResource) UsageRange() Range {
	return RangeFromUsagePoints(r.UsagePoints)
}

// UsagePointAt returns the usage point at the given task-order index, if
// one was recorded.
func (r *PhysicalResource) UsagePointAt(value int32) (UsagePoint, bool) {
	for _, p := range r.UsagePoints {
		if p.Point == value {
			return p, true
		}
	}
	return UsagePoint{}, false
}

// InsertUsagePoints adds points to the resource's set, keyed by Point.
// It refuses the whole batch if any point in it lands on an index that
// one of this resource's usage points already holds, mirroring the ordered-set semantics of
// the source this is ported from: partial insertion is not allowed.
func (r *PhysicalResource) InsertUsagePoints(points []UsagePoint) bool {
	occupied := make(map[int32]bool, len(r.UsagePoints))
	for _, p := range r.UsagePoints {
		occupied[p.Point] = true
	}
	for _, p := range points {
		if occupied[p.Point] {
			return false
		}
	}

	seen := make(map[int32]bool, len(points))
	for _, p := range points {
		if seen[p.Point] {
			continue
		}
		seen[p.Point] = true
		r.UsagePoints = append(r.UsagePoints, p)
	}
	return true
}

// ResourceLink describes one edge of a resource template: a producer
// pass/resource pair feeding a consumer pass/resource pair.
type ResourceLink struct {
	SrcPass     graph.Id
	DstPass     graph.Id
	SrcResource graph.Id
	DstResource graph.Id
	Access      graph.AccessType
}

// ResourceTemplate is the compiled description of one physical resource:
// its type and the links between the passes that share it.
type ResourceTemplate struct {
	Id    graph.Id
	Type  graph.ResourceType
	Links []ResourceLink
}

// OptimizerResult is the resource optimizer's phase output.
type OptimizerResult struct {
	GeneratedResources []PhysicalResource
	OriginalResources  []graph.Resource
	NonOptimizables    int
	Reduction          int
	PreCount           int
	PostCount          int
	TimelineRange      Range
}

// PhaseOutputs collects every intermediate result the pipeline produced,
// in the order the phases ran.
type PhaseOutputs struct {
	CullNodes            []graph.Id
	SerialExecutionOrder []graph.Id
	ParallelizableNodes  map[graph.Id][]graph.Id
	TaskOrder            []Task
	ResourceOptimizer    OptimizerResult
}

// Output is the top-level result of Compile.
type Output struct {
	ResourceTemplates []ResourceTemplate
	HasFailed         bool
	FailReason        ErrorKind
	PhaseOutputs      *PhaseOutputs
	Options           Options
}
