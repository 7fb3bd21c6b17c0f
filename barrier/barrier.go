// Package barrier sketches GPU barrier generation from a compiled
// schedule. In the renderer this is ported from, the generator is an
// unfinished stub — its loop body never reaches a return statement. This
// package keeps that stub honest rather than inventing a real
// implementation: GenerateBarriers is not part of the compiler's core
// contract (see spec §1) and always reports ErrNotImplemented.
package barrier

import (
	"errors"

	"github.com/Andromeda08/RenderGraph/compiler"
	"github.com/Andromeda08/RenderGraph/graph"
)

// Type classifies the hazard a barrier resolves.
type Type int

const (
	RaW Type = iota
	WaR
	RaR
	WaW
	None
)

// Barrier is one required synchronization point ahead of a task.
type Barrier struct {
	TaskIndex int32
	NodeId    graph.Id
	Type      Type
}

// Batch groups the barriers required before a given task runs.
type Batch struct {
	TaskIndex int32
	Barriers  []Barrier
}

// Params is the input to GenerateBarriers.
type Params struct {
	TaskOrder []compiler.Task
	Resources []compiler.ResourceTemplate
}

// ErrNotImplemented is returned by GenerateBarriers unconditionally.
var ErrNotImplemented = errors.New("barrier: GenerateBarriers is not implemented upstream; see package doc")

// GenerateBarriers would walk params.TaskOrder tracking each resource
// template's last access to synthesize RaW/WaR/RaR/WaW barriers ahead of
// each task. TODO: needs a per-resource access-history stack keyed by
// template id before this can return real batches.
func GenerateBarriers(params Params) ([]Batch, error) {
	return nil, ErrNotImplemented
}
