package linkcut

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/stt/internal/assert"
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/twocut"
	"github.com/katalvlaran/stt/weight"
)

type optIdx struct {
	idx nodeidx.NodeIdx
	ok  bool
}

func some(v nodeidx.NodeIdx) optIdx { return optIdx{idx: v, ok: true} }

func (o optIdx) get() (nodeidx.NodeIdx, bool) { return o.idx, o.ok }

type node[D any] struct {
	parent, left, right optIdx
	reversed            bool
	data                D
}

func newNode[D any](v nodeidx.NodeIdx, newData func(nodeidx.NodeIdx) D) node[D] {
	return node[D]{data: newData(v)}
}

// dataConstraint requires every node payload to know its own parent path
// weight, the same contract twocut.Forest's payloads satisfy.
type dataConstraint[W any] interface {
	twocut.PathWeight[W]
}

// Hooks lets a Forest update a node-data payload around the structural
// operations that matter to a link-cut tree: rotation, splicing into a
// parent's solid path, attaching and detaching.
type Hooks[D any, W any] interface {
	// BeforeRotation is called immediately before rotating v with its
	// (solid) parent, with the pre-rotation structure still intact.
	BeforeRotation(f *Forest[D, W], v nodeidx.NodeIdx)

	// BeforeSplice is called immediately before v is spliced onto its
	// parent's solid path (made its right child).
	BeforeSplice(f *Forest[D, W], v nodeidx.NodeIdx)

	// AfterAttached is called immediately after v has been attached to a
	// new parent with the given edge weight.
	AfterAttached(f *Forest[D, W], v nodeidx.NodeIdx, w W)

	// BeforeDetached is called immediately before v is detached from its
	// parent.
	BeforeDetached(f *Forest[D, W], v nodeidx.NodeIdx)
}

// Forest is a link-cut tree forest, generic over the node payload D and
// edge weight W. implEvert selects whether reversal bits are maintained:
// the weighted DynamicForest-facing construction needs to re-root a
// component on every Link, the unweighted RootedDynamicForest-facing one
// never reverses and always leaves the bit false.
type Forest[D dataConstraint[W], W weight.Monoid[W]] struct {
	nodes     []node[D]
	hooks     Hooks[D, W]
	implEvert bool
}

func newForest[D dataConstraint[W], W weight.Monoid[W]](n int, newData func(nodeidx.NodeIdx) D, hooks Hooks[D, W], implEvert bool) *Forest[D, W] {
	nodes := make([]node[D], n)
	for i := range nodes {
		nodes[i] = newNode(nodeidx.New(i), newData)
	}
	return &Forest[D, W]{nodes: nodes, hooks: hooks, implEvert: implEvert}
}

// New creates an evertible link-cut forest on n nodes with no edges,
// suitable for the weighted DynamicForest-facing API (Link/Cut/
// ComputePathWeight).
func New[D dataConstraint[W], W weight.Monoid[W]](n int, newData func(nodeidx.NodeIdx) D, hooks Hooks[D, W]) *Forest[D, W] {
	return newForest(n, newData, hooks, true)
}

func (f *Forest[D, W]) at(v nodeidx.NodeIdx) *node[D] { return &f.nodes[v.Index()] }

// GetParent implements twocut.Reader-style read access (and RootedForest
// in the rooted-mode wrapper): the parent of v in the link-cut tree's own
// internal structure, which may differ from the represented tree's parent
// unless v has just been passed through nodeToRoot/GetUnderlyingParent.
func (f *Forest[D, W]) GetParent(v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) {
	return f.at(v).parent.get()
}

// Data returns a copy of the payload associated with v.
func (f *Forest[D, W]) Data(v nodeidx.NodeIdx) D { return f.at(v).data }

// DataPtr returns a pointer to the payload associated with v, for in-place
// mutation by node-data hooks.
func (f *Forest[D, W]) DataPtr(v nodeidx.NodeIdx) *D { return &f.at(v).data }

// Nodes iterates over every node index in this Forest, in ascending
// order.
func (f *Forest[D, W]) Nodes() []nodeidx.NodeIdx {
	out := make([]nodeidx.NodeIdx, len(f.nodes))
	for i := range out {
		out[i] = nodeidx.New(i)
	}
	return out
}

func (f *Forest[D, W]) reverse(v nodeidx.NodeIdx) {
	assert.Invariant(f.implEvert, "linkcut: reverse(%s) called on a non-evertible forest", v)
	f.at(v).reversed = !f.at(v).reversed
}

// pushReverseBit clears v's reversed bit, pushing the swap down onto its
// children's bits. A no-op when this Forest does not implement evert.
func (f *Forest[D, W]) pushReverseBit(v nodeidx.NodeIdx) {
	if !f.implEvert {
		return
	}
	n := f.at(v)
	if !n.reversed {
		return
	}
	n.reversed = false
	n.left, n.right = n.right, n.left
	if c, ok := n.left.get(); ok {
		f.reverse(c)
	}
	if c, ok := n.right.get(); ok {
		f.reverse(c)
	}
}

func (f *Forest[D, W]) isNonMiddleChildHint(v, p nodeidx.NodeIdx) bool {
	l, lok := f.at(p).left.get()
	r, rok := f.at(p).right.get()
	return (lok && l == v) || (rok && r == v)
}

func (f *Forest[D, W]) isNonMiddleChild(v nodeidx.NodeIdx) bool {
	if p, ok := f.GetParent(v); ok {
		return f.isNonMiddleChildHint(v, p)
	}
	return false
}

func (f *Forest[D, W]) isLeftChild(v nodeidx.NodeIdx) bool {
	p, ok := f.GetParent(v)
	if !ok {
		return false
	}
	l, lok := f.at(p).left.get()
	return lok && l == v
}

func (f *Forest[D, W]) isRightChild(v nodeidx.NodeIdx) bool {
	p, ok := f.GetParent(v)
	if !ok {
		return false
	}
	r, rok := f.at(p).right.get()
	return rok && r == v
}

// rotate rotates v with its parent.
func (f *Forest[D, W]) rotate(v nodeidx.NodeIdx) {
	f.hooks.BeforeRotation(f, v)

	p, ok := f.at(v).parent.get()
	assert.Invariant(ok, "linkcut: rotate(%s) called on a root", v)

	gOpt := f.at(p).parent
	f.at(v).parent = gOpt
	if g, ok := gOpt.get(); ok {
		f.pushReverseBit(g)
		if l, lok := f.at(g).left.get(); lok && l == p {
			f.at(g).left = some(v)
		} else if r, rok := f.at(g).right.get(); rok && r == p {
			f.at(g).right = some(v)
		}
	}

	f.pushReverseBit(p)
	f.pushReverseBit(v)

	f.at(p).parent = some(v)
	if l, lok := f.at(p).left.get(); lok && l == v {
		if c, cok := f.at(v).right.get(); cok {
			f.at(c).parent = some(p)
			f.at(p).left = some(c)
		} else {
			f.at(p).left = optIdx{}
		}
		f.at(v).right = some(p)
	} else {
		r, rok := f.at(p).right.get()
		assert.Invariant(rok && r == v, "linkcut: rotate(%s) has inconsistent child pointers on parent %s", v, p)
		if c, cok := f.at(v).left.get(); cok {
			f.at(c).parent = some(p)
			f.at(p).right = some(c)
		} else {
			f.at(p).right = optIdx{}
		}
		f.at(v).left = some(p)
	}
}

func (f *Forest[D, W]) getParentIfNonMiddleChild(v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) {
	if p, ok := f.GetParent(v); ok && f.isNonMiddleChildHint(v, p) {
		return p, true
	}
	return nodeidx.NodeIdx{}, false
}

// splaySolid splays v to the top of its solid subtree, returning its
// parent afterwards, if one exists (a middle-child edge).
func (f *Forest[D, W]) splaySolid(v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) {
	for {
		p, ok := f.GetParent(v)
		if !ok {
			return nodeidx.NodeIdx{}, false
		}
		if !f.isNonMiddleChildHint(v, p) {
			return p, true
		}

		if g, ok := f.getParentIfNonMiddleChild(p); ok {
			f.pushReverseBit(g)
			f.pushReverseBit(p)

			if l, lok := f.at(p).left.get(); lok && l == v {
				if gl, glok := f.at(g).left.get(); glok && gl == p {
					f.rotate(p)
					f.rotate(v)
				} else {
					assert.Invariant(f.isRightChild(p), "linkcut: splaySolid(%s) expected %s to be a right child", v, p)
					f.rotate(v)
					f.rotate(v)
				}
			} else {
				assert.Invariant(f.isRightChild(v), "linkcut: splaySolid(%s) expected %s to be a child of %s", v, v, p)
				if gr, grok := f.at(g).right.get(); grok && gr == p {
					f.rotate(p)
					f.rotate(v)
				} else {
					assert.Invariant(f.isLeftChild(p), "linkcut: splaySolid(%s) expected %s to be a left child", v, p)
					f.rotate(v)
					f.rotate(v)
				}
			}
		} else {
			// p is root or a middle child.
			f.rotate(v)
		}
	}
}

// trySplice makes v the right child of its parent, if it has one.
// Returns the parent of v.
func (f *Forest[D, W]) trySplice(v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) {
	p, ok := f.at(v).parent.get()
	if !ok {
		return nodeidx.NodeIdx{}, false
	}
	f.pushReverseBit(p)
	f.hooks.BeforeSplice(f, v)
	f.at(p).right = some(v)
	return p, true
}

// nodeToRoot rotates v to the root of the whole link-cut tree, using a
// splay-in-solid-subtrees pass, a splice pass, and a final splay.
func (f *Forest[D, W]) nodeToRoot(v nodeidx.NodeIdx) {
	x, ok := v, true
	for ok {
		x, ok = f.splaySolid(x)
	}

	x, ok = v, true
	for ok {
		x, ok = f.trySplice(x)
	}

	f.splaySolid(v)
	_, hasParent := f.at(v).parent.get()
	assert.Invariant(!hasParent, "linkcut: nodeToRoot(%s) left a parent behind", v)
}

func (f *Forest[D, W]) subtreeRemoveReverseBit(v nodeidx.NodeIdx) {
	if !f.implEvert {
		return
	}
	f.pushReverseBit(v)
	if c, ok := f.at(v).left.get(); ok {
		f.subtreeRemoveReverseBit(c)
	}
	if c, ok := f.at(v).right.get(); ok {
		f.subtreeRemoveReverseBit(c)
	}
}

// makeOneCut rotates every solid subtree into a right spine, so that the
// link-cut tree's own parent/child edges become exactly the edges of the
// represented forest.
func (f *Forest[D, W]) makeOneCut() {
	for _, v := range f.Nodes() {
		if f.at(v).reversed {
			subtreeRoot := v
			for {
				p, ok := f.GetParent(subtreeRoot)
				if !ok || !f.isNonMiddleChildHint(subtreeRoot, p) {
					break
				}
				subtreeRoot = p
			}
			f.subtreeRemoveReverseBit(subtreeRoot)
		}
	}

	seen := make(map[nodeidx.NodeIdx]bool, len(f.nodes))
	for _, v := range f.Nodes() {
		if seen[v] {
			continue
		}
		r := v
		for f.isNonMiddleChild(r) {
			p, _ := f.GetParent(r)
			r = p
		}

		x, ok := r, true
		for ok {
			if c, cok := f.at(x).left.get(); cok {
				f.rotate(c)
				x, ok = c, true
			} else {
				seen[x] = true
				x, ok = f.at(x).right.get()
			}
		}
	}
}

// evert makes v the root of its represented tree, with no left child.
// Only valid when this Forest implements evert.
func (f *Forest[D, W]) evert(v nodeidx.NodeIdx) {
	assert.Invariant(f.implEvert, "linkcut: evert(%s) called on a non-evertible forest", v)
	f.nodeToRoot(v)
	if c, ok := f.at(v).left.get(); ok {
		f.reverse(c)
		f.at(v).left = optIdx{}
	}
}

// GetUnderlyingParent returns the parent of v in the represented (rooted)
// tree, or ok=false if v is currently a root. May return any neighbor of
// v if the represented tree is unrooted.
func (f *Forest[D, W]) GetUnderlyingParent(v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) {
	f.nodeToRoot(v)
	return f.at(v).left.get()
}

// Link adds an edge from u to v with the given weight, rerooting u's
// component at u first so the new edge extends from an actual root. u and
// v must be in different components.
func (f *Forest[D, W]) Link(u, v nodeidx.NodeIdx, w W) {
	f.nodeToRoot(u)
	f.nodeToRoot(v)

	f.evert(u)
	_, vHasParent := f.at(v).parent.get()
	assert.Invariant(!vHasParent, "linkcut: Link(%s,%s) apparently attempting to link nodes in the same component", u, v)

	f.at(u).parent = some(v)
	f.hooks.AfterAttached(f, u, w)
}

// Cut removes the edge between u and v. u's parent must be v.
func (f *Forest[D, W]) Cut(u, v nodeidx.NodeIdx) {
	f.nodeToRoot(u)
	f.nodeToRoot(v)

	p, hasParent := f.at(u).parent.get()
	assert.Invariant(hasParent, "linkcut: Cut(%s,%s) called on nodes in different components", u, v)
	assert.Invariant(p == v, "linkcut: Cut(%s,%s) called but %s's parent is %s, not %s", u, v, u, p, v)

	f.hooks.BeforeDetached(f, u)

	f.at(u).parent = optIdx{}
	if l, ok := f.at(v).left.get(); ok && l == u {
		f.at(v).left = optIdx{}
	} else if r, ok := f.at(v).right.get(); ok && r == u {
		f.at(v).right = optIdx{}
	}
}

// ComputePathWeight returns the weight of the path between u and v, or
// ok=false if they are in different components.
func (f *Forest[D, W]) ComputePathWeight(u, v nodeidx.NodeIdx) (W, bool) {
	f.nodeToRoot(u)
	f.nodeToRoot(v)

	var zero W
	w := zero.Identity()
	x := u
	for {
		p, ok := f.at(x).parent.get()
		if !ok {
			break
		}
		w = w.Add(f.Data(x).ParentPathWeight())
		x = p
	}
	if x == v {
		return w, true
	}
	return zero, false
}

// GetEdgeWeight returns the weight of the edge between u and v, or
// ok=false if that edge doesn't exist. Ported by analogy to
// twocut.Forest.GetEdgeWeight: bring v to the root and u to a direct
// child of it, then read off u's parent path weight.
func (f *Forest[D, W]) GetEdgeWeight(u, v nodeidx.NodeIdx) (W, bool) {
	f.nodeToRoot(u)
	f.nodeToRoot(v)

	var zero W
	if p, ok := f.at(u).parent.get(); ok && p == v {
		return f.Data(u).ParentPathWeight(), true
	}
	return zero, false
}

// Edges returns the edges currently represented by this Forest: a fresh
// snapshot obtained by cloning the structure and rotating every solid
// subtree into a right spine, not a live view.
func (f *Forest[D, W]) Edges() []nodeidx.NodeIdx2 {
	clone := &Forest[D, W]{nodes: make([]node[D], len(f.nodes)), hooks: f.hooks, implEvert: f.implEvert}
	copy(clone.nodes, f.nodes)
	clone.makeOneCut()

	var out []nodeidx.NodeIdx2
	for _, v := range clone.Nodes() {
		if p, ok := clone.at(v).parent.get(); ok {
			out = append(out, nodeidx.NodeIdx2{A: p, B: v})
		}
	}
	return out
}

// String renders a multi-line diagram of the link-cut tree's own internal
// structure (not the represented forest), annotating each node with its
// L/R child position and a "+" marker when its reversed bit is set.
func (f *Forest[D, W]) String() string {
	var sb strings.Builder
	children := make(map[nodeidx.NodeIdx][]nodeidx.NodeIdx)
	for _, v := range f.Nodes() {
		if p, ok := f.GetParent(v); ok {
			children[p] = append(children[p], v)
		}
	}
	for k := range children {
		sort.Slice(children[k], func(i, j int) bool { return nodeidx.Less(children[k][i], children[k][j]) })
	}
	var print func(v nodeidx.NodeIdx, indent string)
	print = func(v nodeidx.NodeIdx, indent string) {
		sb.WriteString(indent)
		sb.WriteString(v.String())
		if _, ok := f.GetParent(v); ok {
			if f.isLeftChild(v) {
				sb.WriteString("L")
			} else if f.isRightChild(v) {
				sb.WriteString("R")
			}
		}
		if f.at(v).reversed {
			sb.WriteString("+")
		}
		if s, ok := any(f.Data(v)).(fmt.Stringer); ok {
			sb.WriteString("[" + s.String() + "]")
		}
		sb.WriteString("\n")
		kids := children[v]
		childIndent := strings.NewReplacer("├", "│", "└", " ", "─", " ").Replace(indent)
		for i, c := range kids {
			sym := "├─"
			if i == len(kids)-1 {
				sym = "└─"
			}
			print(c, childIndent+sym)
		}
	}
	for _, v := range f.Nodes() {
		if _, ok := f.GetParent(v); !ok {
			print(v, "")
		}
	}
	return sb.String()
}
