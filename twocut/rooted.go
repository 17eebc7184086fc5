package twocut

import (
	"github.com/katalvlaran/stt/internal/assert"
	"github.com/katalvlaran/stt/nodeidx"
)

// RootedData tags each node with the root of its tree, if that root is a
// descendant of this node; otherwise the slot is empty. RootedTree.Rotate
// keeps this tag current across rotations, the same way MonoidHooks keeps
// pdist/adist current.
type RootedData struct {
	descRoot optIdx
}

// NewRootedData is the Tree node-data constructor for RootedData: every
// node starts out as the root of its own singleton tree.
func NewRootedData(v nodeidx.NodeIdx) RootedData { return RootedData{descRoot: some(v)} }

// String renders the descendant root, or "-" if none.
func (d RootedData) String() string {
	if v, ok := d.descRoot.get(); ok {
		return v.String()
	}
	return "-"
}

// RootedTree is a Tree[RootedData] with Rotate overridden to keep descRoot
// correct: it needs no Hooks indirection since the reassignment only
// touches the data of the rotated node and its parent and depends on the rotation's own
// gp/p/v triangle, not on a separate weight algebra.
type RootedTree struct {
	*Tree[RootedData]
}

// NewRootedTree creates a RootedTree on n nodes, each its own singleton
// rooted tree.
func NewRootedTree(n int) *RootedTree {
	return &RootedTree{Tree: NewTree(n, NewRootedData)}
}

// Rotate overrides Tree.Rotate to migrate descRoot from p to v (or clear it
// from p) before performing the structural rotation, exactly mirroring the
// reference rooted-STT rotate().
func (t *RootedTree) Rotate(v nodeidx.NodeIdx) {
	p, _ := t.GetParent(v)

	oldVDescRoot := t.Data(v).descRoot
	t.DataPtr(v).descRoot = t.Data(p).descRoot

	if oldVDescRoot.ok {
		if c, ok := t.GetDirectSeparatorChild(v); ok {
			if !t.Data(c).descRoot.ok {
				// Root is below v, but not below c.
				t.DataPtr(p).descRoot = optIdx{}
			}
		} else {
			// Root is below v, but not below (non-existing) c.
			t.DataPtr(p).descRoot = optIdx{}
		}
	}

	t.Tree.Rotate(v)
}

// RootedForest is an STT-based rooted dynamic forest: Link/Cut/FindRoot/
// LowestCommonAncestor over a forest of rooted trees, restructured by a
// single ExtendedStrategy (NodeBelowRoot is required for the
// Cut/LowestCommonAncestor two-step moves).
type RootedForest struct {
	*RootedTree
	strategy ExtendedStrategy
}

// NewRootedForest creates a RootedForest on n nodes, each its own singleton
// rooted tree, restructured with the given strategy.
func NewRootedForest(n int, strategy ExtendedStrategy) *RootedForest {
	return &RootedForest{RootedTree: NewRootedTree(n), strategy: strategy}
}

// lcaIn finds LCA(u,v), where {u,v} is the boundary of the subtree rooted
// at the separator node x, assuming the underlying tree's root and
// LCA(u,v) both lie within that subtree.
func (f *RootedForest) lcaIn(x nodeidx.NodeIdx) nodeidx.NodeIdx {
	if d, ok := f.GetDirectSeparatorChild(x); ok {
		if f.Data(d).descRoot.ok {
			return f.lcaIn(d)
		}
	}
	if i, ok := f.GetIndirectSeparatorChild(x); ok {
		if f.Data(i).descRoot.ok {
			return f.lcaIn(i)
		}
	}
	// Root is below x, but not below d or i.
	f.strategy.NodeToRoot(f, x)
	return x
}

// Link makes v the parent of u, joining their two trees. u must currently
// be the root of its own tree.
func (f *RootedForest) Link(u, v nodeidx.NodeIdx) {
	f.strategy.NodeToRoot(f, u)
	f.strategy.NodeToRoot(f, v)
	_, hasParent := f.GetParent(u)
	assert.Invariant(!hasParent, "twocut: Link(%s,%s) called but %s is already linked into a tree", u, v, u)
	rootOfU, rootOk := f.Data(u).descRoot.get()
	assert.Invariant(rootOk && rootOfU == u, "twocut: Link(%s,...) called on a non-root node", u)
	f.Attach(u, v)
	f.DataPtr(u).descRoot = optIdx{}
}

// Cut removes v from its parent, turning v into the root of its own tree.
// v must not already be a root.
func (f *RootedForest) Cut(v nodeidx.NodeIdx) {
	f.strategy.NodeToRoot(f, v)
	r, ok := f.Data(v).descRoot.get()
	assert.Invariant(ok && r != v, "twocut: Cut(%s) called on a root", v)

	// Find the child of v with r in its subtree.
	x := r
	for {
		p, ok := f.GetParent(x)
		if !ok || p == v {
			break
		}
		x = p
	}

	// Descend to the actual child of v in the underlying tree.
	if d, ok := f.GetDirectSeparatorChild(x); ok {
		x = d
		for {
			i, ok := f.GetIndirectSeparatorChild(x)
			if !ok {
				break
			}
			x = i
		}
	}
	f.strategy.NodeBelowRoot(f, x)
	_, hasSep := f.GetDirectSeparatorChild(x)
	assert.Invariant(!hasSep, "twocut: Cut(%s) left a separator child behind", v)

	f.Detach(x)
	f.DataPtr(v).descRoot = some(v)
}

// FindRoot returns the root of v's tree.
func (f *RootedForest) FindRoot(v nodeidx.NodeIdx) nodeidx.NodeIdx {
	f.strategy.NodeToRoot(f, v)
	r, _ := f.Data(v).descRoot.get()
	return r
}

// LowestCommonAncestor returns the lowest common ancestor of u and v, or
// ok=false if they are in different trees.
func (f *RootedForest) LowestCommonAncestor(u, v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) {
	f.strategy.NodeToRoot(f, v)
	f.strategy.NodeBelowRoot(f, u)
	if p, ok := f.GetParent(u); !ok || p != v {
		return nodeidx.NodeIdx{}, false
	}

	// u is now a child of v.
	if !f.Data(u).descRoot.ok {
		// Root is in T_v, but not T_u.
		return v, true
	}
	if c, ok := f.GetDirectSeparatorChild(u); ok {
		if !f.Data(c).descRoot.ok {
			// Root is in T_u, but not T_v.
			return u, true
		}
		// Root is in T_c, so lca(u,v) is also in T_c.
		return f.lcaIn(c), true
	}
	// Root is below u, nothing between u and v.
	return u, true
}
