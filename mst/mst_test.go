package mst_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/prim_kruskal"
	"github.com/katalvlaran/stt/dynforest"
	"github.com/katalvlaran/stt/mst"
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func n(i int) nodeidx.NodeIdx { return nodeidx.New(i) }

type weightedEdge struct {
	u, v nodeidx.NodeIdx
	w    uint64
}

// TestComputeMatchesBatchKruskal cross-validates the online MST builder
// against prim_kruskal's batch Kruskal implementation on the same edge
// set: both must settle on a spanning forest of the same total weight,
// since distinct edge weights make the minimum spanning tree unique.
func TestComputeMatchesBatchKruskal(t *testing.T) {
	const nodes = 5
	raw := []weightedEdge{
		{n(0), n(1), 4},
		{n(1), n(2), 2},
		{n(2), n(3), 5},
		{n(3), n(4), 1},
		{n(4), n(0), 3},
		{n(0), n(2), 6},
		{n(1), n(3), 7},
	}

	f := dynforest.NewMonoid[weight.MaxEdge[weight.UnsignedMax[uint64]]](nodes, dynforest.GreedySplay)
	edges := make([]mst.EdgeWithWeight[weight.UnsignedMax[uint64]], len(raw))
	for i, e := range raw {
		edges[i] = mst.EdgeWithWeight[weight.UnsignedMax[uint64]]{U: e.u, V: e.v, Weight: weight.NewUnsignedMax(e.w)}
	}
	resultEdges := mst.Compute(f, edges)
	assert.Len(t, resultEdges, nodes-1, "a spanning tree over 5 connected nodes has 4 edges")

	var onlineTotal uint64
	for _, e := range resultEdges {
		w, ok := f.GetEdgeWeight(e.A, e.B)
		require.True(t, ok)
		onlineTotal += w.Weight().Value()
	}

	g := core.NewGraph(core.WithWeighted())
	for _, e := range raw {
		_, err := g.AddEdge(e.u.String(), e.v.String(), int64(e.w))
		require.NoError(t, err)
	}
	_, batchTotal, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	assert.Equal(t, batchTotal, int64(onlineTotal), "online and batch MST must agree on total weight")
}

// TestComputeStartsFromExistingForest exercises the "f may already
// contain edges" case: a pre-seeded spanning forest is fed exactly the
// edges that would improve it.
func TestComputeStartsFromExistingForest(t *testing.T) {
	f := dynforest.NewMonoid[weight.MaxEdge[weight.UnsignedMax[uint64]]](3, dynforest.GreedySplay)
	f.Link(n(0), n(1), weight.NewMaxEdge(weight.NewUnsignedMax[uint64](10), weight.Edge{U: n(0), V: n(1)}))

	edges := []mst.EdgeWithWeight[weight.UnsignedMax[uint64]]{
		{U: n(1), V: n(2), Weight: weight.NewUnsignedMax[uint64](1)},
		{U: n(0), V: n(2), Weight: weight.NewUnsignedMax[uint64](2)},
	}
	mst.Compute(f, edges)

	w, ok := f.GetEdgeWeight(n(0), n(2))
	assert.True(t, ok, "0-2 should have replaced the heavier 0-1 edge on the cycle")
	assert.Equal(t, uint64(2), w.Weight().Value())

	_, ok = f.ComputePathWeight(n(0), n(1))
	assert.True(t, ok, "0 and 1 stay connected via 2")
}
