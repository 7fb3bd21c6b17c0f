package graph

// Edge connects a resource written (or declared) by one Pass to the same
// resource consumed by another. SrcResource and DstResource are resolved
// resource ids rather than names: the render graph never carries the
// deprecated string-keyed edge shape the original renderer transitioned
// away from.
type Edge struct {
	Id          Id
	Src         Id
	Dst         Id
	SrcResource Id
	DstResource Id
}
