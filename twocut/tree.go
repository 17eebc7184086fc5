package twocut

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/stt/internal/assert"
	"github.com/katalvlaran/stt/nodeidx"
)

// Reader exposes read-only access to a 2-cut STT's structure: parent
// pointers and the two separator-child slots every node may carry.
type Reader interface {
	// GetParent returns the parent of v, or ok=false if v is a root.
	GetParent(v nodeidx.NodeIdx) (p nodeidx.NodeIdx, ok bool)

	// GetDirectSeparatorChild returns the child of v that also has v's
	// parent in its boundary, if any.
	GetDirectSeparatorChild(v nodeidx.NodeIdx) (c nodeidx.NodeIdx, ok bool)

	// GetIndirectSeparatorChild returns the child of v that does not have
	// v's parent in its boundary, if any.
	GetIndirectSeparatorChild(v nodeidx.NodeIdx) (c nodeidx.NodeIdx, ok bool)
}

// IsDirectSeparator reports whether v is a 2-cut node whose grandparent is
// in its own boundary.
func IsDirectSeparator(f Reader, v nodeidx.NodeIdx) bool {
	p, ok := f.GetParent(v)
	if !ok {
		return false
	}
	c, ok := f.GetDirectSeparatorChild(p)
	return ok && c == v
}

// IsIndirectSeparator reports whether v is a 2-cut node whose grandparent
// is not in its own boundary.
func IsIndirectSeparator(f Reader, v nodeidx.NodeIdx) bool {
	p, ok := f.GetParent(v)
	if !ok {
		return false
	}
	c, ok := f.GetIndirectSeparatorChild(p)
	return ok && c == v
}

// IsSeparator reports whether v is a 2-cut node (direct or indirect).
func IsSeparator(f Reader, v nodeidx.NodeIdx) bool {
	return IsDirectSeparator(f, v) || IsIndirectSeparator(f, v)
}

// Rotator is the structural interface every restructuring strategy in this
// package operates against: read access to the STT plus the ability to
// rotate a node with its parent.
type Rotator interface {
	Reader

	// Rotate rotates v with its parent. v must not be the root, and either
	// v must be a separator node, or v's parent must not be, to preserve
	// the 2-cut invariant.
	Rotate(v nodeidx.NodeIdx)

	// CanRotate reports whether Rotate(v) is currently legal.
	CanRotate(v nodeidx.NodeIdx) bool
}

// CanRotate is the shared implementation of Rotator.CanRotate, usable by
// any Reader-compatible type that also exposes Rotate.
func CanRotate(f Reader, v nodeidx.NodeIdx) bool {
	p, ok := f.GetParent(v)
	if !ok {
		return false
	}
	return IsSeparator(f, v) || !IsSeparator(f, p)
}

type optIdx struct {
	idx nodeidx.NodeIdx
	ok  bool
}

func some(v nodeidx.NodeIdx) optIdx { return optIdx{idx: v, ok: true} }

func (o optIdx) get() (nodeidx.NodeIdx, bool) { return o.idx, o.ok }

type node[D any] struct {
	parent optIdx
	dsep   optIdx
	isep   optIdx
	data   D
}

func newNode[D any](v nodeidx.NodeIdx, newData func(nodeidx.NodeIdx) D) node[D] {
	return node[D]{data: newData(v)}
}

func (n *node[D]) swapSepChildren() {
	n.dsep, n.isep = n.isep, n.dsep
}

// Tree is a 2-cut search tree on a tree: the structural layer shared by
// every dynamic-forest composition in this module, generic over the node
// payload D. Tree itself knows nothing about edge weights; that is the
// concern of D and of the hooks a Forest wraps around Rotate.
type Tree[D any] struct {
	nodes []node[D]
}

// NewTree creates a Tree on n nodes with no edges, using newData to
// initialize each node's payload.
func NewTree[D any](n int, newData func(nodeidx.NodeIdx) D) *Tree[D] {
	nodes := make([]node[D], n)
	for i := range nodes {
		nodes[i] = newNode(nodeidx.New(i), newData)
	}
	return &Tree[D]{nodes: nodes}
}

func (t *Tree[D]) at(v nodeidx.NodeIdx) *node[D] { return &t.nodes[v.Index()] }

// GetParent implements Reader.
func (t *Tree[D]) GetParent(v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) { return t.at(v).parent.get() }

// GetDirectSeparatorChild implements Reader.
func (t *Tree[D]) GetDirectSeparatorChild(v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) {
	return t.at(v).dsep.get()
}

// GetIndirectSeparatorChild implements Reader.
func (t *Tree[D]) GetIndirectSeparatorChild(v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) {
	return t.at(v).isep.get()
}

// CanRotate implements Rotator.CanRotate.
func (t *Tree[D]) CanRotate(v nodeidx.NodeIdx) bool { return CanRotate(t, v) }

// Data returns a copy of the payload associated with v.
func (t *Tree[D]) Data(v nodeidx.NodeIdx) D { return t.at(v).data }

// DataPtr returns a pointer to the payload associated with v, for in-place
// mutation by node-data hooks.
func (t *Tree[D]) DataPtr(v nodeidx.NodeIdx) *D { return &t.at(v).data }

// Rotate performs the 2-cut STT rotation of v with its parent p: the exact
// pointer surgery keeping the direct/indirect separator-child invariant
// intact. v must have a parent, and either v must be a separator or p must
// not be.
func (t *Tree[D]) Rotate(v nodeidx.NodeIdx) {
	p, ok := t.GetParent(v)
	assert.Invariant(ok, "twocut: Rotate(%s) called on a root", v)
	assert.Invariant(IsSeparator(t, v) || !IsSeparator(t, p),
		"twocut: Rotate(%s) would break the 2-cut invariant", v)

	pWasSep := IsSeparator(t, p)

	gp, gpOK := t.GetParent(p)
	cP, cPOK := t.GetDirectSeparatorChild(v)

	// Change parents.
	t.at(p).parent = some(v)
	if gpOK {
		t.at(v).parent = some(gp)
	} else {
		t.at(v).parent = optIdx{}
	}
	if cPOK {
		t.at(cP).parent = some(p)
	}

	// Change separator information for children of gp.
	if gpOK {
		if d, ok := t.GetDirectSeparatorChild(gp); ok && d == p {
			t.at(gp).dsep = some(v)
		} else if i, ok := t.GetIndirectSeparatorChild(gp); ok && i == p {
			t.at(gp).isep = some(v)
		}
	}

	// Change separator information for children of p.
	oldPDsep, oldPDsepOK := t.GetDirectSeparatorChild(p)
	if cPOK {
		t.at(p).dsep = some(cP)
	} else {
		t.at(p).dsep = optIdx{}
	}
	if oldPDsepOK && oldPDsep != v {
		t.at(p).isep = some(oldPDsep)
	} else if i, ok := t.GetIndirectSeparatorChild(p); ok && i == v {
		t.at(p).isep = optIdx{}
	}

	// Change separator information for children of v.
	if gpOK { // p was not root
		if !(oldPDsepOK && oldPDsep == v) {
			// p separates v and gp
			t.at(v).dsep = some(p)
		} else {
			// v separates p and gp
			t.at(v).dsep = t.at(v).isep // gp is now parent of v
			if pWasSep {
				t.at(v).isep = some(p)
			} else {
				t.at(v).isep = optIdx{}
			}
		}
	} else { // p was root
		t.at(v).dsep = optIdx{}
		assert.Invariant(!t.at(v).isep.ok, "twocut: v had an indirect separator child with no grandparent")
	}

	// Change separator information for children of c (unaffected
	// otherwise by the rotation).
	if cPOK {
		t.at(cP).swapSepChildren()
	}
}

// Attach makes parent the parent of child. child must not yet have a
// parent.
func (t *Tree[D]) Attach(child, parent nodeidx.NodeIdx) {
	assert.Invariant(!t.at(child).parent.ok, "twocut: Attach(%s,...) called but %s already has a parent", child, child)
	t.at(child).parent = some(parent)
}

// Detach removes v as a child from its parent. v must have a parent and
// must not currently be a separator node.
func (t *Tree[D]) Detach(v nodeidx.NodeIdx) {
	assert.Invariant(t.at(v).parent.ok, "twocut: Detach(%s) called on a root", v)
	assert.Invariant(!IsSeparator(t, v), "twocut: Detach(%s) called on a separator node", v)
	t.at(v).parent = optIdx{}
}

// Nodes iterates over every node index in this Tree, in ascending order.
func (t *Tree[D]) Nodes() []nodeidx.NodeIdx {
	out := make([]nodeidx.NodeIdx, len(t.nodes))
	for i := range out {
		out[i] = nodeidx.New(i)
	}
	return out
}

// Edges iterates over each child-parent edge (parent, child) currently
// represented in the Tree's structure (not necessarily the same edge set
// as the underlying dynamic forest — see MakeOneCut).
func (t *Tree[D]) Edges() []nodeidx.NodeIdx2 {
	var out []nodeidx.NodeIdx2
	for _, v := range t.Nodes() {
		if p, ok := t.GetParent(v); ok {
			out = append(out, nodeidx.NodeIdx2{A: p, B: v})
		}
	}
	return out
}

// IsValid performs sanity checks on the separator-child pointers: every
// stored child must actually have this node as its parent.
func (t *Tree[D]) IsValid() bool {
	for _, v := range t.Nodes() {
		if c, ok := t.GetDirectSeparatorChild(v); ok {
			if p, pok := t.GetParent(c); !pok || p != v {
				return false
			}
		}
		if c, ok := t.GetIndirectSeparatorChild(v); ok {
			if p, pok := t.GetParent(c); !pok || p != v {
				return false
			}
		}
	}
	return true
}

// String renders a multi-line tree diagram, annotating separator nodes
// with "d"/"i" and each node's payload via fmt.Stringer if implemented.
func (t *Tree[D]) String() string {
	var sb strings.Builder
	children := make(map[nodeidx.NodeIdx][]nodeidx.NodeIdx)
	for _, v := range t.Nodes() {
		if p, ok := t.GetParent(v); ok {
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
		switch {
		case IsDirectSeparator(t, v):
			sb.WriteString("d")
		case IsIndirectSeparator(t, v):
			sb.WriteString("i")
		}
		if s, ok := any(t.Data(v)).(fmt.Stringer); ok {
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
	for _, v := range t.Nodes() {
		if _, ok := t.GetParent(v); !ok {
			print(v, "")
		}
	}
	return sb.String()
}

// MakeOneCut performs rotations until t is a 1-cut tree (no separator
// nodes remain), used by Forest.Edges to recover the represented edge set.
func MakeOneCut[D any](t *Tree[D]) {
	for _, v := range t.Nodes() {
		for IsSeparator(t, v) {
			t.Rotate(v)
		}
	}
}
