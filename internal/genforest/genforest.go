package genforest

import (
	fuzz "github.com/google/gofuzz"

	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/twocut"
	"github.com/katalvlaran/stt/weight"
)

// intn returns a uniformly random int in [0, n), driven by f. gofuzz has no
// bounded-integer primitive of its own, so this fuzzes a throwaway uint32
// and reduces it mod n.
func intn(f *fuzz.Fuzzer, n int) int {
	if n <= 0 {
		panic("genforest: intn called with n <= 0")
	}
	var x uint32
	f.Fuzz(&x)

	return int(x % uint32(n))
}

// shuffle permutes xs in place using the Fisher-Yates shuffle.
func shuffle(xs []int, f *fuzz.Fuzzer) {
	for i := len(xs) - 1; i > 0; i-- {
		j := intn(f, i+1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// RootedTreeEdge is one (parent, child) edge of a randomly generated rooted
// tree, node indices in [0, numVertices).
type RootedTreeEdge struct {
	Parent, Child int
}

// RootedTreeEdges generates a random labeled rooted tree on
// numVertices nodes: node order is shuffled, then each node (other than the
// first) is attached as a child of a uniformly random earlier node in the
// shuffled order, which guarantees the result is acyclic and connected.
func RootedTreeEdges(numVertices int, f *fuzz.Fuzzer) []RootedTreeEdge {
	if numVertices <= 0 {
		return nil
	}

	order := make([]int, numVertices)
	for i := range order {
		order[i] = i
	}
	shuffle(order, f)

	edges := make([]RootedTreeEdge, 0, numVertices-1)
	for i := 1; i < numVertices; i++ {
		parentPos := intn(f, i)
		edges = append(edges, RootedTreeEdge{Parent: order[parentPos], Child: order[i]})
	}

	return edges
}

// RandomSTT builds a random one-cut search tree on trees by generating a
// random rooted tree and attaching each child to its parent.
func RandomSTT(numVertices int, f *fuzz.Fuzzer) *twocut.Tree[twocut.EmptyData] {
	t := twocut.NewTree(numVertices, twocut.NewEmptyData)
	for _, e := range RootedTreeEdges(numVertices, f) {
		t.Attach(nodeidx.New(e.Child), nodeidx.New(e.Parent))
	}

	return t
}

// Edge generates a uniformly random pair of distinct node indices in
// [0, numNodes). numNodes must be at least 2.
func Edge(numNodes int, f *fuzz.Fuzzer) (nodeidx.NodeIdx, nodeidx.NodeIdx) {
	if numNodes < 2 {
		panic("genforest: Edge requires numNodes >= 2")
	}

	u := intn(f, numNodes)
	v := intn(f, numNodes-1)
	if v >= u {
		v++
	}

	return nodeidx.New(u), nodeidx.New(v)
}

// Edges generates numEdges random (possibly repeating, possibly parallel)
// distinct-endpoint edges over [0, numNodes).
func Edges(numNodes, numEdges int, f *fuzz.Fuzzer) []nodeidx.NodeIdx2 {
	out := make([]nodeidx.NodeIdx2, numEdges)
	for i := range out {
		u, v := Edge(numNodes, f)
		out[i] = nodeidx.NodeIdx2{A: u, B: v}
	}

	return out
}

// EmptyWeight generates the (only) value of the trivial weight monoid.
func EmptyWeight(*fuzz.Fuzzer) weight.Empty { return weight.Empty{} }

// SignedAddWeight generates a random weight.SignedAdd[int64] in [-1000, 1000).
func SignedAddWeight(f *fuzz.Fuzzer) weight.SignedAdd[int64] {
	return weight.NewSignedAdd(int64(intn(f, 2000) - 1000))
}

// UnsignedMaxWeight generates a random weight.UnsignedMax[uint64] in
// [0, 1000).
func UnsignedMaxWeight(f *fuzz.Fuzzer) weight.UnsignedMax[uint64] {
	return weight.NewUnsignedMax(uint64(intn(f, 1000)))
}
