package graph

import "sync/atomic"

// Id identifies a Pass, Resource or Edge. It is unique within a process,
// not merely within a single graph.
type Id int32

// InvalidId is returned wherever a lookup fails to find a Pass, Resource
// or Edge.
const InvalidId Id = -1

var idSequence atomic.Int32

// NextId returns the next value in the process-wide monotonic id
// sequence, starting at 0.
func NextId() Id {
	return Id(idSequence.Add(1) - 1)
}
