package graph

// PassFlags describes how a Pass participates in scheduling.
type PassFlags struct {
	Raster    bool
	Compute   bool
	Async     bool
	NeverCull bool
	Sentinel  bool
}

// Pass is a vertex in the render graph: a unit of work with a name, a set
// of resource dependencies and a set of scheduling flags.
type Pass struct {
	Id           Id
	Name         string
	Flags        PassFlags
	Dependencies []Resource

	incoming []Id
	outgoing []Id
}

// NewPass constructs a Pass with a fresh id.
func NewPass(name string, flags PassFlags, dependencies []Resource) *Pass {
	return &Pass{
		Id:           NextId(),
		Name:         name,
		Flags:        flags,
		Dependencies: dependencies,
	}
}

// GetResourceByName returns the dependency with the given name, if any.
// Unlike the source this is ported from, a miss returns (nil, false)
// rather than dereferencing past the end of the slice.
func (p *Pass) GetResourceByName(name string) (*Resource, bool) {
	for i := range p.Dependencies {
		if p.Dependencies[i].Name == name {
			return &p.Dependencies[i], true
		}
	}
	return nil, false
}

// GetResourceById returns the dependency with the given id, if any.
func (p *Pass) GetResourceById(id Id) (*Resource, bool) {
	for i := range p.Dependencies {
		if p.Dependencies[i].Id == id {
			return &p.Dependencies[i], true
		}
	}
	return nil, false
}

// IncomingEdges returns the ids of edges terminating at this pass, in
// insertion order.
func (p *Pass) IncomingEdges() []Id {
	return p.incoming
}

// OutgoingEdges returns the ids of edges originating at this pass, in
// insertion order.
func (p *Pass) OutgoingEdges() []Id {
	return p.outgoing
}
