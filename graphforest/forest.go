package graphforest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/stt/internal/assert"
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
)

// edgeKey is an unordered pair of node indices, used to key the weight map
// independently of the order Link was called with.
type edgeKey struct{ a, b int }

func newEdgeKey(u, v nodeidx.NodeIdx) edgeKey {
	a, b := u.Index(), v.Index()
	if a > b {
		a, b = b, a
	}

	return edgeKey{a: a, b: b}
}

func vertexID(v nodeidx.NodeIdx) string { return strconv.Itoa(v.Index()) }

// GraphDynamicForest is a dynamic forest backed directly by a general
// core.Graph: Link/Cut mutate the graph's edge set, and
// ComputePathWeight/GetEdgeWeight rediscover the path with bfs.BFS on
// every call. Edge weights are kept out of core.Graph itself (which only
// ever sees unweighted, zero-weight edges) so that any weight.Monoid type
// can be used, not just core.Graph's built-in int64.
type GraphDynamicForest[W weight.Monoid[W]] struct {
	n       int
	g       *core.Graph
	weights map[edgeKey]W
}

func newForest[W weight.Monoid[W]](n int) *GraphDynamicForest[W] {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		assert.Invariant(g.AddVertex(vertexID(nodeidx.New(i))) == nil, "graphforest: AddVertex(%d) unexpectedly failed", i)
	}

	return &GraphDynamicForest[W]{n: n, g: g, weights: make(map[edgeKey]W)}
}

// Link adds an edge of weight w between u and v. u and v must not already
// be connected by an edge.
func (t *GraphDynamicForest[W]) Link(u, v nodeidx.NodeIdx, w W) {
	uid, vid := vertexID(u), vertexID(v)
	assert.Invariant(!t.g.HasEdge(uid, vid), "graphforest: Link(%s,%s) is already an edge", u, v)

	_, err := t.g.AddEdge(uid, vid, 0)
	assert.Invariant(err == nil, "graphforest: AddEdge(%s,%s) unexpectedly failed: %v", u, v, err)
	t.weights[newEdgeKey(u, v)] = w
}

// Cut removes the edge between u and v. u and v must currently be
// adjacent.
func (t *GraphDynamicForest[W]) Cut(u, v nodeidx.NodeIdx) {
	uid, vid := vertexID(u), vertexID(v)
	removed := false
	t.g.FilterEdges(func(e *core.Edge) bool {
		if (e.From == uid && e.To == vid) || (e.From == vid && e.To == uid) {
			removed = true

			return false
		}

		return true
	})
	assert.Invariant(removed, "graphforest: Cut(%s,%s) called on a non-edge", u, v)
	delete(t.weights, newEdgeKey(u, v))
}

// ComputePathWeight returns the sum of edge weights on the path from u to
// v, or ok=false if u and v are in different trees of the forest.
func (t *GraphDynamicForest[W]) ComputePathWeight(u, v nodeidx.NodeIdx) (W, bool) {
	var zero W

	res, err := bfs.BFS(t.g, vertexID(u))
	if err != nil {
		return zero, false
	}
	path, err := res.PathTo(vertexID(v))
	if err != nil {
		return zero, false
	}

	total := zero.Identity()
	for i := 0; i+1 < len(path); i++ {
		a, _ := strconv.Atoi(path[i])
		b, _ := strconv.Atoi(path[i+1])
		w, ok := t.weights[newEdgeKey(nodeidx.New(a), nodeidx.New(b))]
		assert.Invariant(ok, "graphforest: no recorded weight for reconstructed edge %s-%s", path[i], path[i+1])
		total = total.Add(w)
	}

	return total, true
}

// GetEdgeWeight returns the weight of the edge between u and v, if they
// are currently adjacent.
func (t *GraphDynamicForest[W]) GetEdgeWeight(u, v nodeidx.NodeIdx) (W, bool) {
	w, ok := t.weights[newEdgeKey(u, v)]

	return w, ok
}

// Nodes returns every node index in this forest, in order.
func (t *GraphDynamicForest[W]) Nodes() []nodeidx.NodeIdx {
	out := make([]nodeidx.NodeIdx, t.n)
	for i := range out {
		out[i] = nodeidx.New(i)
	}

	return out
}

// Edges returns every edge currently present in the forest.
func (t *GraphDynamicForest[W]) Edges() []nodeidx.NodeIdx2 {
	ces := t.g.Edges()
	out := make([]nodeidx.NodeIdx2, 0, len(ces))
	for _, e := range ces {
		a, _ := strconv.Atoi(e.From)
		b, _ := strconv.Atoi(e.To)
		out = append(out, nodeidx.NodeIdx2{A: nodeidx.New(a), B: nodeidx.New(b)})
	}

	return out
}

// String renders the forest's current edge set, for diagnostics.
func (t *GraphDynamicForest[W]) String() string {
	var sb strings.Builder
	for _, e := range t.Edges() {
		fmt.Fprintf(&sb, "%s-%s ", e.A, e.B)
	}

	return sb.String()
}
