package oneforest

import (
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
)

// DynamicForest is the contract New/NewEmpty satisfy: structurally
// identical to dynforest.DynamicForest and linkcut.DynamicForest, so a
// SimpleDynamicTree can stand in as a slow-but-correct oracle anywhere one
// of those is expected.
type DynamicForest[W any] interface {
	Link(u, v nodeidx.NodeIdx, w W)
	Cut(u, v nodeidx.NodeIdx)
	ComputePathWeight(u, v nodeidx.NodeIdx) (w W, ok bool)
	GetEdgeWeight(u, v nodeidx.NodeIdx) (w W, ok bool)
	Nodes() []nodeidx.NodeIdx
	Edges() []nodeidx.NodeIdx2
}

// New builds a SimpleDynamicTree oracle on n nodes (indices 0..n-1), each
// its own singleton tree, for any commutative-monoid edge weight.
func New[W weight.Monoid[W]](n int) DynamicForest[W] {
	return newTree[W](n)
}

// NewEmpty builds a connectivity-only SimpleDynamicTree oracle on n nodes,
// with no edge weights.
func NewEmpty(n int) DynamicForest[weight.Empty] {
	return New[weight.Empty](n)
}
