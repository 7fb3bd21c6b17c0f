package graph

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate walks the whole graph and aggregates every structural
// violation it finds, rather than stopping at the first one. It does not
// mutate the graph and is not required before Compile — it exists as
// diagnostic tooling for callers assembling a graph by hand.
func (g *Graph) Validate() error {
	var result *multierror.Error

	sentinelRoots := 0
	seenPassIds := make(map[Id]bool, len(g.passes))
	for _, p := range g.passes {
		if seenPassIds[p.Id] {
			result = multierror.Append(result, fmt.Errorf("duplicate pass id %d (%s)", p.Id, p.Name))
		}
		seenPassIds[p.Id] = true

		if p.Flags.Sentinel && p.Name == "Root" {
			sentinelRoots++
		}
	}
	if sentinelRoots > 1 {
		result = multierror.Append(result, fmt.Errorf("graph has %d sentinel passes named Root, expected at most 1", sentinelRoots))
	}

	for _, e := range g.edges {
		src, ok := g.GetPassById(e.Src)
		if !ok {
			result = multierror.Append(result, fmt.Errorf("edge %d references unknown source pass %d", e.Id, e.Src))
			continue
		}
		dst, ok := g.GetPassById(e.Dst)
		if !ok {
			result = multierror.Append(result, fmt.Errorf("edge %d references unknown destination pass %d", e.Id, e.Dst))
			continue
		}
		if _, ok := src.GetResourceById(e.SrcResource); !ok {
			result = multierror.Append(result, fmt.Errorf("edge %d: pass %q has no resource %d", e.Id, src.Name, e.SrcResource))
		}
		if _, ok := dst.GetResourceById(e.DstResource); !ok {
			result = multierror.Append(result, fmt.Errorf("edge %d: pass %q has no resource %d", e.Id, dst.Name, e.DstResource))
		}
	}

	return result.ErrorOrNil()
}
