package oneforest

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stt/internal/assert"
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
)

type optIdx struct {
	idx   nodeidx.NodeIdx
	valid bool
}

func some(v nodeidx.NodeIdx) optIdx { return optIdx{idx: v, valid: true} }

func (o optIdx) get() (nodeidx.NodeIdx, bool) { return o.idx, o.valid }

// node is the per-vertex state: a parent pointer (absent iff this node is
// the root of its tree) and the weight of the edge to that parent.
type node[W weight.Monoid[W]] struct {
	parent optIdx
	pdist  weight.OrInfinity[W]
}

func newNode[W weight.Monoid[W]]() node[W] {
	return node[W]{pdist: weight.Infinite[W]()}
}

// SimpleDynamicTree is a naive dynamic forest: each tree is an explicit
// rooting of itself, re-rooted by rotating the new root up to the top of
// its parent chain one step at a time.
type SimpleDynamicTree[W weight.Monoid[W]] struct {
	nodes []node[W]
}

func newTree[W weight.Monoid[W]](n int) *SimpleDynamicTree[W] {
	nodes := make([]node[W], n)
	for i := range nodes {
		nodes[i] = newNode[W]()
	}

	return &SimpleDynamicTree[W]{nodes: nodes}
}

func (t *SimpleDynamicTree[W]) at(v nodeidx.NodeIdx) *node[W] { return &t.nodes[v.Index()] }

// rotate moves v to the root of its tree, demoting its former parent p
// (which must currently be the root) to be v's child instead.
func (t *SimpleDynamicTree[W]) rotate(v nodeidx.NodeIdx) {
	p, ok := t.at(v).parent.get()
	assert.Invariant(ok, "oneforest: rotate(%s) called on a root", v)
	_, pHasParent := t.at(p).parent.get()
	assert.Invariant(!pHasParent, "oneforest: rotate(%s) expected %s's parent %s to be a root", v, v, p)

	t.at(p).parent = some(v)
	t.at(p).pdist = t.at(v).pdist
	t.at(v).parent = optIdx{}
	t.at(v).pdist = weight.Infinite[W]()
}

// moveToRoot re-roots v's tree at v, rotating every ancestor of v down one
// at a time, starting from the one nearest the old root.
func (t *SimpleDynamicTree[W]) moveToRoot(v nodeidx.NodeIdx) {
	if p, ok := t.at(v).parent.get(); ok {
		t.moveToRoot(p)
		t.rotate(v)
	}
}

// GetParent returns v's parent in this tree's current rooting, or
// ok=false if v is currently a root.
func (t *SimpleDynamicTree[W]) GetParent(v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) {
	return t.at(v).parent.get()
}

// Link makes v the parent of u, joining their two trees with an edge of
// weight w. u's tree is first re-rooted at u, so u need not currently be
// its root.
func (t *SimpleDynamicTree[W]) Link(u, v nodeidx.NodeIdx, w W) {
	t.moveToRoot(u)
	t.at(u).parent = some(v)
	t.at(u).pdist = weight.Finite(w)
}

// Cut removes the edge between u and v, splitting their tree into two. u
// and v must currently be adjacent.
func (t *SimpleDynamicTree[W]) Cut(u, v nodeidx.NodeIdx) {
	if p, ok := t.at(u).parent.get(); ok && p == v {
		t.at(u).parent = optIdx{}
		t.at(u).pdist = weight.Infinite[W]()
		return
	}
	p, ok := t.at(v).parent.get()
	assert.Invariant(ok && p == u, "oneforest: Cut(%s,%s) called on a non-edge", u, v)
	t.at(v).parent = optIdx{}
	t.at(v).pdist = weight.Infinite[W]()
}

// ComputePathWeight returns the sum of edge weights on the path from u to
// v, or ok=false if u and v are in different trees.
func (t *SimpleDynamicTree[W]) ComputePathWeight(u, v nodeidx.NodeIdx) (W, bool) {
	t.moveToRoot(u)

	var zero W
	total := zero.Identity()
	x := v
	for {
		p, ok := t.at(x).parent.get()
		if !ok {
			break
		}
		total = total.Add(t.at(x).pdist.Unwrap())
		x = p
	}
	if x == u {
		return total, true
	}

	return zero, false
}

// GetEdgeWeight returns the weight of the edge between u and v, if they
// are currently adjacent.
func (t *SimpleDynamicTree[W]) GetEdgeWeight(u, v nodeidx.NodeIdx) (W, bool) {
	if p, ok := t.at(u).parent.get(); ok && p == v {
		return t.at(u).pdist.Unwrap(), true
	}
	if p, ok := t.at(v).parent.get(); ok && p == u {
		return t.at(v).pdist.Unwrap(), true
	}

	var zero W
	return zero, false
}

// Nodes returns every node index in this forest, in order.
func (t *SimpleDynamicTree[W]) Nodes() []nodeidx.NodeIdx {
	out := make([]nodeidx.NodeIdx, len(t.nodes))
	for i := range out {
		out[i] = nodeidx.New(i)
	}

	return out
}

// Edges returns every (child, parent) edge currently present in the
// forest, across all of its trees.
func (t *SimpleDynamicTree[W]) Edges() []nodeidx.NodeIdx2 {
	var out []nodeidx.NodeIdx2
	for i := range t.nodes {
		v := nodeidx.New(i)
		if p, ok := t.at(v).parent.get(); ok {
			out = append(out, nodeidx.NodeIdx2{A: v, B: p})
		}
	}

	return out
}

// String renders the forest's current parent pointers, for diagnostics.
func (t *SimpleDynamicTree[W]) String() string {
	var sb strings.Builder
	for i := range t.nodes {
		v := nodeidx.New(i)
		if p, ok := t.at(v).parent.get(); ok {
			fmt.Fprintf(&sb, "%s->%s ", v, p)
		}
	}

	return sb.String()
}
