package export

import (
	"encoding/json"

	"github.com/Andromeda08/RenderGraph/compiler"
	"github.com/Andromeda08/RenderGraph/graph"
)

// The wire-format DTOs below mirror the CompilerOutput contract exactly
// (snake_case field names, ids-only task references) rather than
// marshaling compiler.Output directly: the domain types carry full
// *graph.Pass pointers where the contract wants bare ids, so a fixed
// translation layer sits in between.

type outputDTO struct {
	HasFailed         bool          `json:"has_failed"`
	FailReason        string        `json:"fail_reason"`
	Options           optionsDTO    `json:"options"`
	Phases            *phasesDTO    `json:"phases,omitempty"`
	ResourceTemplates []templateDTO `json:"resource_templates"`
}

type optionsDTO struct {
	AllowParallelization bool `json:"allow_parallelization"`
}

type phasesDTO struct {
	CulledNodes    []graph.Id              `json:"culled_nodes"`
	SerialOrder    []graph.Id              `json:"serial_order"`
	Parallelizable map[graph.Id][]graph.Id `json:"parallelizable"`
	Tasks          []taskDTO               `json:"tasks"`
	Optimizer      optimizerDTO            `json:"optimizer"`
}

type taskDTO struct {
	Pass      graph.Id  `json:"pass"`
	AsyncPass *graph.Id `json:"async_pass"`
}

type optimizerDTO struct {
	PhysicalResources []physicalResourceDTO `json:"physical_resources"`
	OriginalResources []resourceDTO         `json:"original_resources"`
	NonOptimizables   int                   `json:"non_optimizables"`
	Reduction         int                   `json:"reduction"`
	PreCount          int                   `json:"pre_count"`
	PostCount         int                   `json:"post_count"`
	TimelineRange     [2]int32              `json:"timeline_range"`
}

type resourceDTO struct {
	Id     graph.Id `json:"id"`
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Access string   `json:"access"`
}

type usagePointDTO struct {
	Point          int32    `json:"point"`
	UserResourceId graph.Id `json:"user_resource_id"`
	UsedAs         string   `json:"used_as"`
	UserNodeId     graph.Id `json:"user_node_id"`
	UsedBy         string   `json:"used_by"`
	Access         string   `json:"access"`
}

type physicalResourceDTO struct {
	Id               int32           `json:"id"`
	UsagePoints      []usagePointDTO `json:"usage_points"`
	OriginalResource resourceDTO     `json:"original_resource"`
	OriginalNode     graph.Id        `json:"original_node"`
	Type             string          `json:"type"`
}

type linkDTO struct {
	SrcPass     graph.Id `json:"src_pass"`
	DstPass     graph.Id `json:"dst_pass"`
	SrcResource graph.Id `json:"src_resource"`
	DstResource graph.Id `json:"dst_resource"`
	Access      string   `json:"access"`
}

type templateDTO struct {
	Id    graph.Id  `json:"id"`
	Type  string    `json:"type"`
	Links []linkDTO `json:"links"`
}

func resourceToDTO(r graph.Resource) resourceDTO {
	return resourceDTO{Id: r.Id, Name: r.Name, Type: r.Type.String(), Access: r.Access.String()}
}

func usagePointToDTO(u compiler.UsagePoint) usagePointDTO {
	return usagePointDTO{
		Point:          u.Point,
		UserResourceId: u.UserResourceId,
		UsedAs:         u.UsedAs,
		UserNodeId:     u.UserNodeId,
		UsedBy:         u.UsedBy,
		Access:         u.Access.String(),
	}
}

func physicalToDTO(p compiler.PhysicalResource) physicalResourceDTO {
	points := make([]usagePointDTO, 0, len(p.UsagePoints))
	for _, u := range p.UsagePoints {
		points = append(points, usagePointToDTO(u))
	}
	return physicalResourceDTO{
		Id:               p.Id,
		UsagePoints:      points,
		OriginalResource: resourceToDTO(p.OriginalResource),
		OriginalNode:     p.OriginalNode,
		Type:             p.Type.String(),
	}
}

func linkToDTO(l compiler.ResourceLink) linkDTO {
	return linkDTO{SrcPass: l.SrcPass, DstPass: l.DstPass, SrcResource: l.SrcResource, DstResource: l.DstResource, Access: l.Access.String()}
}

func templateToDTO(t compiler.ResourceTemplate) templateDTO {
	links := make([]linkDTO, 0, len(t.Links))
	for _, l := range t.Links {
		links = append(links, linkToDTO(l))
	}
	return templateDTO{Id: t.Id, Type: t.Type.String(), Links: links}
}

func taskToDTO(t compiler.Task) taskDTO {
	dto := taskDTO{Pass: t.Primary.Id}
	if t.Async != nil {
		id := t.Async.Id
		dto.AsyncPass = &id
	}
	return dto
}

func toOutputDTO(output *compiler.Output) outputDTO {
	templates := make([]templateDTO, 0, len(output.ResourceTemplates))
	for _, t := range output.ResourceTemplates {
		templates = append(templates, templateToDTO(t))
	}

	dto := outputDTO{
		HasFailed:         output.HasFailed,
		FailReason:        output.FailReason.String(),
		Options:           optionsDTO{AllowParallelization: output.Options.AllowParallelization},
		ResourceTemplates: templates,
	}

	if output.PhaseOutputs != nil {
		p := output.PhaseOutputs

		tasks := make([]taskDTO, 0, len(p.TaskOrder))
		for _, t := range p.TaskOrder {
			tasks = append(tasks, taskToDTO(t))
		}

		originals := make([]resourceDTO, 0, len(p.ResourceOptimizer.OriginalResources))
		for _, r := range p.ResourceOptimizer.OriginalResources {
			originals = append(originals, resourceToDTO(r))
		}

		physicals := make([]physicalResourceDTO, 0, len(p.ResourceOptimizer.GeneratedResources))
		for _, r := range p.ResourceOptimizer.GeneratedResources {
			physicals = append(physicals, physicalToDTO(r))
		}

		dto.Phases = &phasesDTO{
			CulledNodes:    p.CullNodes,
			SerialOrder:    p.SerialExecutionOrder,
			Parallelizable: p.ParallelizableNodes,
			Tasks:          tasks,
			Optimizer: optimizerDTO{
				PhysicalResources: physicals,
				OriginalResources: originals,
				NonOptimizables:   p.ResourceOptimizer.NonOptimizables,
				Reduction:         p.ResourceOptimizer.Reduction,
				PreCount:          p.ResourceOptimizer.PreCount,
				PostCount:         p.ResourceOptimizer.PostCount,
				TimelineRange:     [2]int32{p.ResourceOptimizer.TimelineRange.Start, p.ResourceOptimizer.TimelineRange.End},
			},
		}
	}

	return dto
}

// ToJSON marshals a compiler.Output into the CompilerOutput wire contract:
// indented JSON with snake_case fields and id-only task references.
func ToJSON(output *compiler.Output) ([]byte, error) {
	return json.MarshalIndent(toOutputDTO(output), "", "  ")
}
