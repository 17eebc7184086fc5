package twocut

import (
	"github.com/katalvlaran/stt/internal/assert"
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
)

// dataConstraint is satisfied by any node-data payload that can report the
// weight of the path to its parent, the minimum every Forest composition
// needs regardless of which Hooks implementation maintains it.
type dataConstraint[W any] interface {
	PathWeight[W]
}

// Forest composes a Tree, a restructuring Strategy, and a Hooks
// implementation into a complete dynamic-forest implementation: this is
// the structural core behind every constructor in the dynforest package.
//
// Forest implements Rotator itself (embedding *Tree[D] for the read-only
// methods, overriding Rotate to run Hooks around the structural rotation),
// so any Strategy can operate directly on a *Forest.
type Forest[D dataConstraint[W], W weight.Monoid[W]] struct {
	*Tree[D]
	hooks Hooks[D, W]

	// extended/stable hold whichever one the constructor selected; exactly
	// one is non-nil.
	extended ExtendedStrategy
	stable   Strategy
}

// NewExtended builds a Forest that uses strategy's NodeBelowRoot to
// implement EdgeToTop directly (one pass, one call each).
func NewExtended[D dataConstraint[W], W weight.Monoid[W]](n int, newData func(nodeidx.NodeIdx) D, hooks Hooks[D, W], strategy ExtendedStrategy) *Forest[D, W] {
	return &Forest[D, W]{Tree: NewTree(n, newData), hooks: hooks, extended: strategy}
}

// NewStable builds a Forest that implements EdgeToTop via two NodeToRoot
// calls, relying on strategy's stability guarantee (the previous root and
// its ancestors become 1-cut).
func NewStable[D dataConstraint[W], W weight.Monoid[W]](n int, newData func(nodeidx.NodeIdx) D, hooks Hooks[D, W], strategy Strategy) *Forest[D, W] {
	return &Forest[D, W]{Tree: NewTree(n, newData), hooks: hooks, stable: strategy}
}

// Rotate overrides the embedded Tree's Rotate to run the node-data hook
// first, then perform the structural rotation.
func (f *Forest[D, W]) Rotate(v nodeidx.NodeIdx) {
	f.hooks.BeforeRotation(f.Tree, v)
	f.Tree.Rotate(v)
}

func (f *Forest[D, W]) nodeToRoot(v nodeidx.NodeIdx) {
	if f.extended != nil {
		f.extended.NodeToRoot(f, v)
	} else {
		f.stable.NodeToRoot(f, v)
	}
}

// edgeToTop transforms the tree so that root becomes the root and below
// becomes its child. Requires an edge between root and below in the
// underlying tree.
func (f *Forest[D, W]) edgeToTop(root, below nodeidx.NodeIdx) {
	if f.extended != nil {
		f.extended.NodeToRoot(f, root)
		f.extended.NodeBelowRoot(f, below)
		return
	}
	f.stable.NodeToRoot(f, below)
	f.stable.NodeToRoot(f, root)
}

// Link adds an edge between u and v with the given weight. u and v must
// not already be in the same tree.
func (f *Forest[D, W]) Link(u, v nodeidx.NodeIdx, w W) {
	f.nodeToRoot(u)
	f.nodeToRoot(v)
	if _, ok := f.GetParent(u); ok {
		assert.Invariant(false, "twocut: Link(%s,%s) called but they are already in the same tree", u, v)
	}
	f.Attach(u, v)
	f.hooks.AfterAttached(f.Tree, u, w)
}

// Cut removes the edge between u and v. The edge must exist.
func (f *Forest[D, W]) Cut(u, v nodeidx.NodeIdx) {
	f.edgeToTop(v, u)
	_, hasSep := f.GetDirectSeparatorChild(u)
	p, hasParent := f.GetParent(u)
	assert.Invariant(!hasSep && hasParent && p == v, "twocut: Cut(%s,%s) called on a non-existing edge", u, v)
	f.hooks.BeforeDetached(f.Tree, u)
	f.Detach(u)
}

// GetEdgeWeight returns the weight of the edge between u and v, or
// ok=false if that edge does not exist.
func (f *Forest[D, W]) GetEdgeWeight(u, v nodeidx.NodeIdx) (w W, ok bool) {
	f.edgeToTop(v, u)
	p, hasParent := f.GetParent(u)
	_, hasSep := f.GetDirectSeparatorChild(u)
	if hasParent && p == v && !hasSep {
		return f.Data(u).ParentPathWeight(), true
	}
	var zero W
	return zero, false
}

// ComputePathWeightExtended computes the path weight between u and v
// assuming f was built with NewExtended: move v to the root, u below it,
// then read off the parent path weight directly.
func (f *Forest[D, W]) ComputePathWeightExtended(u, v nodeidx.NodeIdx) (W, bool) {
	var zero W
	f.extended.NodeToRoot(f, v)
	if _, ok := f.GetParent(u); !ok {
		return zero, false
	}
	f.extended.NodeBelowRoot(f, u)
	if p, ok := f.GetParent(u); ok && p == v {
		return f.Data(u).ParentPathWeight(), true
	}
	return zero, false
}

// ComputePathWeightStable computes the path weight between u and v
// assuming f was built with NewStable: move both to the root (v last), then
// sum parent path weights along u's now-1-cut root path until v is
// reached or the path runs out.
func (f *Forest[D, W]) ComputePathWeightStable(u, v nodeidx.NodeIdx) (W, bool) {
	f.stable.NodeToRoot(f, u)
	f.stable.NodeToRoot(f, v)

	var zero W
	w := zero.Identity()
	x := u
	for {
		p, ok := f.GetParent(x)
		if !ok {
			break
		}
		assert.Invariant(!IsSeparator(f, p), "twocut: stable path-weight read over a non-1-cut ancestor")
		w = w.Add(f.Data(x).ParentPathWeight())
		x = p
	}
	if x == v {
		return w, true
	}
	return zero, false
}

// ComputePathWeight dispatches to whichever of ComputePathWeightExtended /
// ComputePathWeightStable matches how f was constructed.
func (f *Forest[D, W]) ComputePathWeight(u, v nodeidx.NodeIdx) (W, bool) {
	if f.extended != nil {
		return f.ComputePathWeightExtended(u, v)
	}
	return f.ComputePathWeightStable(u, v)
}

// Edges returns the edge set represented by this forest (not the internal
// STT parent structure, which may differ while separator nodes exist). It
// clones the Tree, reduces the clone to 1-cut, and reads off parent edges
// — a fresh snapshot, not a live view.
func (f *Forest[D, W]) Edges() []nodeidx.NodeIdx2 {
	clone := *f.Tree
	nodesCopy := make([]node[D], len(clone.nodes))
	copy(nodesCopy, clone.nodes)
	clone.nodes = nodesCopy
	MakeOneCut(&clone)
	return clone.Edges()
}
