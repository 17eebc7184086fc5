package linkcut

import (
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
)

// DynamicForest is the contract this package's weighted constructors
// satisfy: a dynamic set of unrooted trees supporting edge insertion,
// edge removal, and path-weight queries, structurally identical to
// dynforest.DynamicForest so callers can treat a link-cut forest and a
// 2-cut-STT-backed one interchangeably.
type DynamicForest[W any] interface {
	Link(u, v nodeidx.NodeIdx, w W)
	Cut(u, v nodeidx.NodeIdx)
	ComputePathWeight(u, v nodeidx.NodeIdx) (w W, ok bool)
	GetEdgeWeight(u, v nodeidx.NodeIdx) (w W, ok bool)
	Nodes() []nodeidx.NodeIdx
	Edges() []nodeidx.NodeIdx2
}

// NewEmpty builds a connectivity-only link-cut DynamicForest on n nodes
// (indices 0..n-1), with no edge weights.
func NewEmpty(n int) DynamicForest[weight.Empty] {
	return New[EmptyData, weight.Empty](n, NewEmptyData, EmptyHooks{})
}

// NewMonoid builds a link-cut DynamicForest on n nodes whose edge weights
// form a commutative monoid.
func NewMonoid[W weight.Monoid[W]](n int) DynamicForest[W] {
	return New[MonoidData[W], W](n, NewMonoidData[W], MonoidHooks[W]{})
}

// NewGroup builds a link-cut DynamicForest on n nodes whose edge weights
// form a group (support subtraction). Cheaper per node than NewMonoid.
func NewGroup[W weight.Group[W]](n int) DynamicForest[W] {
	return New[GroupData[W], W](n, NewGroupData[W], GroupHooks[W]{})
}
