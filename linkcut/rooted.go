package linkcut

import (
	"github.com/katalvlaran/stt/internal/assert"
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
)

// RootedForest is a link-cut-tree-based unweighted rooted dynamic forest:
// Link/Cut/FindRoot/LowestCommonAncestor over a forest of rooted trees,
// maintained without reversal bits (this mode never everts). Its Link and
// Cut signatures shadow the embedded Forest's weighted ones.
type RootedForest struct {
	*Forest[EmptyData, weight.Empty]
}

// NewRootedForest creates a RootedForest on n nodes, each its own
// singleton rooted tree.
func NewRootedForest(n int) *RootedForest {
	return &RootedForest{Forest: newForest(n, NewEmptyData, EmptyHooks{}, false)}
}

// Link makes v the parent of u, joining their two trees. u must currently
// be the root of its own tree.
func (f *RootedForest) Link(u, v nodeidx.NodeIdx) {
	f.nodeToRoot(u)
	f.nodeToRoot(v)
	_, hasParent := f.at(u).parent.get()
	assert.Invariant(!hasParent, "linkcut: Link(%s,%s) apparently attempting to link nodes in the same component", u, v)
	f.at(u).parent = some(v)
}

// Cut detaches v from its parent, making v the root of its own tree. v
// must not already be a root.
func (f *RootedForest) Cut(v nodeidx.NodeIdx) {
	f.nodeToRoot(v)
	underlyingParent, ok := f.at(v).left.get()
	assert.Invariant(ok, "linkcut: Cut(%s) called on a root", v)
	f.at(v).left = optIdx{}
	f.at(underlyingParent).parent = optIdx{}
}

// FindRoot returns the root of the tree containing v.
func (f *RootedForest) FindRoot(v nodeidx.NodeIdx) nodeidx.NodeIdx {
	f.nodeToRoot(v)
	r := v
	for {
		x, ok := f.at(r).left.get()
		if !ok {
			break
		}
		r = x
	}
	f.nodeToRoot(r) // amortization: leaves the tree shallow for the next access.
	return r
}

// LowestCommonAncestor returns the lowest common ancestor of u and v, or
// ok=false if they are in different trees.
func (f *RootedForest) LowestCommonAncestor(u, v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) {
	f.nodeToRoot(u)

	lastSolidLeaf := v // lowest ancestor of v seen so far on u's root path
	x := v             // v, or an ancestor of v, that is a child of u
	for {
		p, ok := f.GetParent(x)
		if !ok {
			break
		}
		if !f.isNonMiddleChild(x) {
			lastSolidLeaf = p
		}
		if p != u {
			x = p
		} else {
			break
		}
	}

	if _, ok := f.at(x).parent.get(); !ok {
		return nodeidx.NodeIdx{}, false
	}

	var lca nodeidx.NodeIdx
	if f.isLeftChild(x) {
		// lastSolidLeaf is to the left of u on the root path: above u in
		// the represented tree.
		lca = lastSolidLeaf
	} else {
		// lastSolidLeaf is u or to the right of u on the root path: at or
		// below u in the represented tree.
		lca = u
	}

	f.nodeToRoot(v) // amortization: leaves the tree shallow for the next access.
	return lca, true
}
