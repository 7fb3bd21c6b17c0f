package graph

// Graph owns every Pass and Edge in a render graph. Passes are kept in
// insertion order because several compiler phases (topological sort tie
// breaking, resource optimizer ordering) are defined in terms of that
// order, not in terms of id.
type Graph struct {
	passes    []*Pass
	passIndex map[Id]int
	edges     []*Edge

	// shadowEdgeSeq is non-nil only on graphs built by CreateCopy. It keeps
	// edge ids local to the shadow's lifetime instead of advancing the
	// global sequence, so phase-private analysis never perturbs ids the
	// caller's own graph will hand out later.
	shadowEdgeSeq *Id
}

// nextEdgeId returns the next edge id: from the shadow-local counter on a
// shadow graph, or from the global sequence otherwise.
func (g *Graph) nextEdgeId() Id {
	if g.shadowEdgeSeq != nil {
		id := *g.shadowEdgeSeq
		*g.shadowEdgeSeq++
		return id
	}
	return NextId()
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{passIndex: make(map[Id]int)}
}

// AddPass constructs a Pass from the given name, flags and dependencies,
// takes ownership of it and returns it.
func (g *Graph) AddPass(name string, flags PassFlags, dependencies []Resource) *Pass {
	pass := NewPass(name, flags, dependencies)
	g.adopt(pass)
	return pass
}

// adopt registers an already-constructed Pass with the graph, without
// generating a new id. Used both by AddPass and by shadow-copy
// construction, where the copy must keep the original's id.
func (g *Graph) adopt(pass *Pass) {
	g.passIndex[pass.Id] = len(g.passes)
	g.passes = append(g.passes, pass)
}

// DeletePass removes the pass with the given id along with every edge
// incident to it. Reports whether a pass with that id existed.
func (g *Graph) DeletePass(id Id) bool {
	idx, ok := g.passIndex[id]
	if !ok {
		return false
	}

	deleted := make(map[Id]bool)
	remaining := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if e.Src == id || e.Dst == id {
			deleted[e.Id] = true
			continue
		}
		remaining = append(remaining, e)
	}
	g.edges = remaining

	for _, p := range g.passes {
		if p.Id == id {
			continue
		}
		p.incoming = dropDeleted(p.incoming, deleted)
		p.outgoing = dropDeleted(p.outgoing, deleted)
	}

	g.passes = append(g.passes[:idx], g.passes[idx+1:]...)
	delete(g.passIndex, id)
	for i := idx; i < len(g.passes); i++ {
		g.passIndex[g.passes[i].Id] = i
	}
	return true
}

func dropDeleted(ids []Id, deleted map[Id]bool) []Id {
	out := ids[:0]
	for _, id := range ids {
		if !deleted[id] {
			out = append(out, id)
		}
	}
	return out
}

// InsertEdge connects srcRes on src to dstRes on dst. It fails (returning
// false) on a self loop or if either named resource does not exist on its
// pass.
func (g *Graph) InsertEdge(src *Pass, srcRes string, dst *Pass, dstRes string) bool {
	if src.Id == dst.Id {
		return false
	}

	sr, ok := src.GetResourceByName(srcRes)
	if !ok {
		return false
	}
	dr, ok := dst.GetResourceByName(dstRes)
	if !ok {
		return false
	}

	edge := &Edge{
		Id:          NextId(),
		Src:         src.Id,
		Dst:         dst.Id,
		SrcResource: sr.Id,
		DstResource: dr.Id,
	}
	src.outgoing = append(src.outgoing, edge.Id)
	dst.incoming = append(dst.incoming, edge.Id)
	g.edges = append(g.edges, edge)
	return true
}

// DeleteEdge removes the edge matching src/srcRes/dst/dstRes by resource
// name, reporting whether one was found.
func (g *Graph) DeleteEdge(src *Pass, srcRes string, dst *Pass, dstRes string) bool {
	sr, ok := src.GetResourceByName(srcRes)
	if !ok {
		return false
	}
	dr, ok := dst.GetResourceByName(dstRes)
	if !ok {
		return false
	}

	for i, e := range g.edges {
		if e.Src == src.Id && e.Dst == dst.Id && e.SrcResource == sr.Id && e.DstResource == dr.Id {
			return g.deleteEdgeAt(i)
		}
	}
	return false
}

// DeleteEdgeById removes an edge by id directly.
func (g *Graph) DeleteEdgeById(id Id) bool {
	for i, e := range g.edges {
		if e.Id == id {
			return g.deleteEdgeAt(i)
		}
	}
	return false
}

func (g *Graph) deleteEdgeAt(i int) bool {
	e := g.edges[i]
	g.edges = append(g.edges[:i:i], g.edges[i+1:]...)

	if src, ok := g.GetPassById(e.Src); ok {
		src.outgoing = removeId(src.outgoing, e.Id)
	}
	if dst, ok := g.GetPassById(e.Dst); ok {
		dst.incoming = removeId(dst.incoming, e.Id)
	}
	return true
}

func removeId(ids []Id, target Id) []Id {
	for i, id := range ids {
		if id == target {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}

// ContainsEdge reports whether an edge exists directed exactly from src
// to dst.
func (g *Graph) ContainsEdge(src, dst Id) bool {
	for _, e := range g.edges {
		if e.Src == src && e.Dst == dst {
			return true
		}
	}
	return false
}

// ContainsAnyEdge reports whether an edge exists between a and b in
// either direction. Used by the shadow-graph independence scan, where
// only the presence of a dependency (not its direction) matters.
func (g *Graph) ContainsAnyEdge(a, b Id) bool {
	return g.ContainsEdge(a, b) || g.ContainsEdge(b, a)
}

// GetPassById looks up a pass by id.
func (g *Graph) GetPassById(id Id) (*Pass, bool) {
	idx, ok := g.passIndex[id]
	if !ok {
		return nil, false
	}
	return g.passes[idx], true
}

// ToPassList resolves a slice of ids to their passes, in the given order.
// It fails if any id is not present in the graph.
func (g *Graph) ToPassList(ids []Id) ([]*Pass, bool) {
	out := make([]*Pass, 0, len(ids))
	for _, id := range ids {
		p, ok := g.GetPassById(id)
		if !ok {
			return nil, false
		}
		out = append(out, p)
	}
	return out, true
}

// Passes returns every pass in the graph, in insertion order. The
// returned slice is owned by the graph and must not be mutated.
func (g *Graph) Passes() []*Pass {
	return g.passes
}

// Edges returns every edge in the graph, in insertion order.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// CreateCopy builds a phase-private shadow graph containing the same
// passes (same ids, names, flags and dependencies) and the same edges
// (recreated from the original resource ids, so equivalent but freshly
// identified).
// Edge ids in the shadow are drawn from a counter local to the copy: the
// global id sequence is not advanced by shadow construction, matching the
// source graph this is ported from, where only pass ids are reused
// directly and edges are private to the copy's lifetime.
func (g *Graph) CreateCopy() *Graph {
	shadow := New()
	var seq Id
	shadow.shadowEdgeSeq = &seq
	byId := make(map[Id]*Pass, len(g.passes))

	for _, p := range g.passes {
		deps := make([]Resource, len(p.Dependencies))
		copy(deps, p.Dependencies)
		np := &Pass{
			Id:           p.Id,
			Name:         p.Name,
			Flags:        p.Flags,
			Dependencies: deps,
		}
		shadow.adopt(np)
		byId[np.Id] = np
	}

	for _, e := range g.edges {
		src := byId[e.Src]
		dst := byId[e.Dst]
		sr, srcOk := src.GetResourceById(e.SrcResource)
		dr, dstOk := dst.GetResourceById(e.DstResource)
		if !srcOk || !dstOk {
			continue
		}
		edge := &Edge{
			Id:          shadow.nextEdgeId(),
			Src:         src.Id,
			Dst:         dst.Id,
			SrcResource: sr.Id,
			DstResource: dr.Id,
		}
		src.outgoing = append(src.outgoing, edge.Id)
		dst.incoming = append(dst.incoming, edge.Id)
		shadow.edges = append(shadow.edges, edge)
	}

	return shadow
}

func (g *Graph) edgeById(id Id) (*Edge, bool) {
	for _, e := range g.edges {
		if e.Id == id {
			return e, true
		}
	}
	return nil, false
}

// SuccessorIds resolves p's outgoing edges to destination pass ids, in
// edge insertion order.
func (g *Graph) SuccessorIds(p *Pass) []Id {
	out := make([]Id, 0, len(p.outgoing))
	for _, eid := range p.outgoing {
		if e, ok := g.edgeById(eid); ok {
			out = append(out, e.Dst)
		}
	}
	return out
}

// InsertShadowEdge connects two passes already present in a shadow graph
// directly by resource id, used by transitive-closure construction where
// the two ends do not necessarily share a resource name. Like the rest of
// CreateCopy's output, the new edge's id is drawn from the shadow's local
// counter, not the global sequence.
func (g *Graph) InsertShadowEdge(src, dst *Pass) {
	var srcRes, dstRes Id = InvalidId, InvalidId
	if len(src.Dependencies) > 0 {
		srcRes = src.Dependencies[0].Id
	}
	if len(dst.Dependencies) > 0 {
		dstRes = dst.Dependencies[0].Id
	}
	edge := &Edge{Id: g.nextEdgeId(), Src: src.Id, Dst: dst.Id, SrcResource: srcRes, DstResource: dstRes}
	src.outgoing = append(src.outgoing, edge.Id)
	dst.incoming = append(dst.incoming, edge.Id)
	g.edges = append(g.edges, edge)
}
