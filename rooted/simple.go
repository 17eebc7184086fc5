package rooted

import (
	"sort"
	"strings"

	"github.com/katalvlaran/stt/internal/assert"
	"github.com/katalvlaran/stt/nodeidx"
)

type simpleNode struct {
	parent    nodeidx.NodeIdx
	hasParent bool
}

// SimpleRootedForest is a naive O(depth)-per-operation RootedDynamicForest,
// used in tests as a correctness oracle for the STT-based implementation.
// It is also the only implementation here that supports MakeRoot.
type SimpleRootedForest struct {
	nodes []simpleNode
}

// NewSimpleRootedForest creates a SimpleRootedForest on n nodes (indices
// 0..n-1), each initially the root of its own singleton tree.
func NewSimpleRootedForest(n int) *SimpleRootedForest {
	return &SimpleRootedForest{nodes: make([]simpleNode, n)}
}

func (f *SimpleRootedForest) node(v nodeidx.NodeIdx) *simpleNode { return &f.nodes[v.Index()] }

// GetParent returns the parent of v in the underlying tree, or ok=false if
// v is currently a root.
func (f *SimpleRootedForest) GetParent(v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) {
	n := f.node(v)
	return n.parent, n.hasParent
}

// Nodes returns every node index in the forest, in ascending order.
func (f *SimpleRootedForest) Nodes() []nodeidx.NodeIdx {
	out := make([]nodeidx.NodeIdx, len(f.nodes))
	for i := range out {
		out[i] = nodeidx.New(i)
	}
	return out
}

// Link implements RootedDynamicForest.
func (f *SimpleRootedForest) Link(u, v nodeidx.NodeIdx) {
	assert.Invariant(!f.node(u).hasParent, "rooted: Link(%s,%s) called on a non-root node %s", u, v, u)
	f.node(u).parent = v
	f.node(u).hasParent = true
}

// Cut implements RootedDynamicForest.
func (f *SimpleRootedForest) Cut(v nodeidx.NodeIdx) {
	assert.Invariant(f.node(v).hasParent, "rooted: Cut(%s) called on a root", v)
	f.node(v).hasParent = false
}

// FindRoot implements RootedDynamicForest.
func (f *SimpleRootedForest) FindRoot(v nodeidx.NodeIdx) nodeidx.NodeIdx {
	x := v
	for {
		p, ok := f.GetParent(x)
		if !ok {
			return x
		}
		x = p
	}
}

// LowestCommonAncestor implements RootedDynamicForest.
func (f *SimpleRootedForest) LowestCommonAncestor(u, v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) {
	uAncs := map[nodeidx.NodeIdx]bool{u: true}
	x := u
	for {
		p, ok := f.GetParent(x)
		if !ok {
			break
		}
		x = p
		uAncs[x] = true
	}
	if uAncs[v] {
		return v, true
	}

	x = v
	for {
		p, ok := f.GetParent(x)
		if !ok {
			break
		}
		x = p
		if uAncs[x] {
			return x, true
		}
	}
	return nodeidx.NodeIdx{}, false
}

// MakeRoot implements EversibleRootedDynamicForest by reversing the parent
// pointers along the path from v's old root down to v.
func (f *SimpleRootedForest) MakeRoot(v nodeidx.NodeIdx) {
	p, ok := f.GetParent(v)
	if !ok {
		return
	}
	f.node(v).hasParent = false
	x, y := v, p // x, y: first two nodes of the remaining path.
	for {
		py, ok := f.GetParent(y)
		if !ok {
			break
		}
		f.node(y).parent = x
		x, y = y, py
	}
	f.node(y).parent = x
	f.node(y).hasParent = true
}

// String renders a multi-line tree diagram of the forest.
func (f *SimpleRootedForest) String() string {
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
