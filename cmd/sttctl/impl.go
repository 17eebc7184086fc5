package main

import (
	"fmt"

	"github.com/katalvlaran/stt/dynforest"
	"github.com/katalvlaran/stt/graphforest"
	"github.com/katalvlaran/stt/linkcut"
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/oneforest"
	"github.com/katalvlaran/stt/rooted"
	"github.com/katalvlaran/stt/weight"
)

// mstWeight is the weight type sttctl uses for 'mst' query files: a
// node-index-tagged signed integer, combined by the max-edge monoid so
// mst.Compute can recover the heaviest edge on a path.
type mstWeight = weight.MaxEdge[weight.SignedAdd[int64]]

// emptyForest is the subset of DynamicForest[weight.Empty] the con/fd_con
// query executors need, matched structurally by dynforest.NewEmpty,
// linkcut.NewEmpty, oneforest.NewEmpty and graphforest.NewEmpty.
type emptyForest interface {
	Link(u, v nodeidx.NodeIdx, w weight.Empty)
	Cut(u, v nodeidx.NodeIdx)
	ComputePathWeight(u, v nodeidx.NodeIdx) (weight.Empty, bool)
}

// weightedForest is the subset of DynamicForest[mstWeight] mst.Compute
// needs, matched structurally by dynforest.NewMonoid, linkcut.NewMonoid,
// oneforest.New and graphforest.New instantiated at mstWeight.
type weightedForest interface {
	Link(u, v nodeidx.NodeIdx, w mstWeight)
	Cut(u, v nodeidx.NodeIdx)
	ComputePathWeight(u, v nodeidx.NodeIdx) (mstWeight, bool)
	GetEdgeWeight(u, v nodeidx.NodeIdx) (mstWeight, bool)
	Edges() []nodeidx.NodeIdx2
}

// dynforestKinds lists the --impl names backed by the 2-cut STT composition
// (dynforest.StrategyKind), in the order Rust's ImplDesc lists them.
var dynforestKinds = map[string]dynforest.StrategyKind{
	"move-to-root":                dynforest.MoveToRoot,
	"stable-move-to-root":         dynforest.StableMoveToRoot,
	"greedy-splay":                dynforest.GreedySplay,
	"stable-greedy-splay":         dynforest.StableGreedySplay,
	"two-pass-splay":              dynforest.TwoPassSplay,
	"stable-two-pass-splay":       dynforest.StableTwoPassSplay,
	"local-two-pass-splay":        dynforest.LocalTwoPassSplay,
	"stable-local-two-pass-splay": dynforest.StableLocalTwoPassSplay,
}

// rootedKinds lists the --impl names backed by the rooted 2-cut STT
// composition (rooted.StrategyKind).
var rootedKinds = map[string]rooted.StrategyKind{
	"move-to-root":         rooted.MoveToRoot,
	"greedy-splay":         rooted.GreedySplay,
	"two-pass-splay":       rooted.TwoPassSplay,
	"local-two-pass-splay": rooted.LocalTwoPassSplay,
}

// newEmptyForest builds the connectivity-only (weight.Empty) dynamic forest
// named by impl, on n vertices. impl is one of the dynforestKinds names,
// "link-cut", "one-cut" or "graph".
func newEmptyForest(impl string, n int) (emptyForest, error) {
	if kind, ok := dynforestKinds[impl]; ok {
		return dynforest.NewEmpty(n, kind), nil
	}
	switch impl {
	case "link-cut":
		return linkcut.NewEmpty(n), nil
	case "one-cut":
		return oneforest.NewEmpty(n), nil
	case "graph":
		return graphforest.NewEmpty(n), nil
	default:
		return nil, fmt.Errorf("sttctl: unknown --impl %q", impl)
	}
}

// newWeightedForest builds the mstWeight-parameterized dynamic forest named
// by impl, on n vertices, for use by mst.Compute.
func newWeightedForest(impl string, n int) (weightedForest, error) {
	if kind, ok := dynforestKinds[impl]; ok {
		return dynforest.NewMonoid[mstWeight](n, kind), nil
	}
	switch impl {
	case "link-cut":
		return linkcut.NewMonoid[mstWeight](n), nil
	case "one-cut":
		return oneforest.New[mstWeight](n), nil
	case "graph":
		return graphforest.New[mstWeight](n), nil
	default:
		return nil, fmt.Errorf("sttctl: unknown --impl %q", impl)
	}
}

// newRootedForest builds the RootedDynamicForest named by impl, on n
// vertices. impl is one of the rootedKinds names, "link-cut" or "simple".
func newRootedForest(impl string, n int) (rooted.RootedDynamicForest, error) {
	if kind, ok := rootedKinds[impl]; ok {
		return rooted.New(n, kind), nil
	}
	switch impl {
	case "link-cut":
		return linkcut.NewRootedForest(n), nil
	case "simple":
		return rooted.NewSimpleRootedForest(n), nil
	default:
		return nil, fmt.Errorf("sttctl: unknown --impl %q", impl)
	}
}
