package graphforest

import (
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
)

// DynamicForest is the contract New/NewEmpty satisfy: structurally
// identical to dynforest.DynamicForest, oneforest.DynamicForest and
// linkcut.DynamicForest.
type DynamicForest[W any] interface {
	Link(u, v nodeidx.NodeIdx, w W)
	Cut(u, v nodeidx.NodeIdx)
	ComputePathWeight(u, v nodeidx.NodeIdx) (w W, ok bool)
	GetEdgeWeight(u, v nodeidx.NodeIdx) (w W, ok bool)
	Nodes() []nodeidx.NodeIdx
	Edges() []nodeidx.NodeIdx2
}

// New builds a GraphDynamicForest oracle on n nodes (indices 0..n-1), each
// its own singleton tree, for any commutative-monoid edge weight.
func New[W weight.Monoid[W]](n int) DynamicForest[W] {
	return newForest[W](n)
}

// NewEmpty builds a connectivity-only GraphDynamicForest oracle on n
// nodes, with no edge weights.
func NewEmpty(n int) DynamicForest[weight.Empty] {
	return New[weight.Empty](n)
}
