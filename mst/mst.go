package mst

import (
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
)

// dynamicForest is the subset of a DynamicForest[weight.MaxEdge[T]]'s
// contract Compute needs, matched structurally by dynforest, linkcut,
// oneforest and graphforest's constructors.
type dynamicForest[T weight.Ordered[T]] interface {
	Link(u, v nodeidx.NodeIdx, w weight.MaxEdge[T])
	Cut(u, v nodeidx.NodeIdx)
	ComputePathWeight(u, v nodeidx.NodeIdx) (weight.MaxEdge[T], bool)
	Edges() []nodeidx.NodeIdx2
}

// EdgeWithWeight is one input edge to Compute.
type EdgeWithWeight[T weight.Ordered[T]] struct {
	U, V   nodeidx.NodeIdx
	Weight T
}

// Compute processes edges one at a time against f, which on return holds
// a minimum spanning forest over every node ever passed to f's
// constructor plus the nodes named by edges. f may already hold edges,
// taken as a starting spanning forest rather than built from scratch.
//
// Returns f's final edge set, as a convenience (equivalent to calling
// f.Edges() after Compute returns).
func Compute[T weight.Ordered[T]](f dynamicForest[T], edges []EdgeWithWeight[T]) []nodeidx.NodeIdx2 {
	for _, e := range edges {
		pathWeight, connected := f.ComputePathWeight(e.U, e.V)
		if !connected {
			linkWithWeight(f, e.U, e.V, e.Weight)
			continue
		}
		if e.Weight.Less(pathWeight.Weight()) {
			// A heavier edge sits on the path between u and v: swap it
			// out for the new, lighter one.
			heaviest := pathWeight.Edge()
			f.Cut(heaviest.U, heaviest.V)
			linkWithWeight(f, e.U, e.V, e.Weight)
		}
		// Otherwise e is too heavy to improve the spanning forest.
	}

	return f.Edges()
}

func linkWithWeight[T weight.Ordered[T]](f dynamicForest[T], u, v nodeidx.NodeIdx, w T) {
	f.Link(u, v, weight.NewMaxEdge(w, weight.Edge{U: u, V: v}))
}
