package linkcut_test

import (
	"testing"

	"github.com/katalvlaran/stt/dynforest"
	"github.com/katalvlaran/stt/linkcut"
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
	"github.com/stretchr/testify/assert"
)

func n(i int) nodeidx.NodeIdx { return nodeidx.New(i) }

func TestEmptyLinkCutConnectivity(t *testing.T) {
	f := linkcut.NewEmpty(5)

	f.Link(n(0), n(1), weight.Empty{})
	f.Link(n(1), n(2), weight.Empty{})
	f.Link(n(3), n(4), weight.Empty{})

	_, ok := f.ComputePathWeight(n(0), n(2))
	assert.True(t, ok, "0 and 2 should be connected")

	_, ok = f.ComputePathWeight(n(0), n(3))
	assert.False(t, ok, "0 and 3 should not be connected")

	f.Cut(n(0), n(1))
	_, ok = f.ComputePathWeight(n(0), n(2))
	assert.False(t, ok, "0 and 2 should be disconnected after cut")
}

func TestMonoidPathWeightChain(t *testing.T) {
	f := linkcut.NewMonoid[weight.UnsignedMax[uint64]](4)

	f.Link(n(0), n(1), weight.NewUnsignedMax[uint64](3))
	f.Link(n(1), n(2), weight.NewUnsignedMax[uint64](7))
	f.Link(n(2), n(3), weight.NewUnsignedMax[uint64](1))

	w, ok := f.ComputePathWeight(n(0), n(3))
	assert.True(t, ok)
	assert.Equal(t, uint64(7), w.Value(), "max edge on path 0-1-2-3 is 7")

	ew, ok := f.GetEdgeWeight(n(1), n(2))
	assert.True(t, ok)
	assert.Equal(t, uint64(7), ew.Value())

	_, ok = f.GetEdgeWeight(n(0), n(2))
	assert.False(t, ok, "0 and 2 are not directly linked")
}

func TestGroupPathWeightChain(t *testing.T) {
	f := linkcut.NewGroup[weight.SignedAdd[int64]](4)

	f.Link(n(0), n(1), weight.NewSignedAdd[int64](3))
	f.Link(n(1), n(2), weight.NewSignedAdd[int64](-2))
	f.Link(n(2), n(3), weight.NewSignedAdd[int64](5))

	w, ok := f.ComputePathWeight(n(0), n(3))
	assert.True(t, ok)
	assert.Equal(t, int64(6), w.Value(), "3 + (-2) + 5 = 6")

	w, ok = f.ComputePathWeight(n(3), n(0))
	assert.True(t, ok)
	assert.Equal(t, int64(6), w.Value(), "path weight is symmetric")
}

func TestLinkThenCutRestoresIsolation(t *testing.T) {
	f := linkcut.NewEmpty(2)
	f.Link(n(0), n(1), weight.Empty{})
	f.Cut(n(0), n(1))
	f.Link(n(0), n(1), weight.Empty{})

	_, ok := f.ComputePathWeight(n(0), n(1))
	assert.True(t, ok, "re-linking after a cut should succeed")
}

func TestEdgesSnapshotMatchesLinks(t *testing.T) {
	f := linkcut.NewEmpty(4)
	f.Link(n(0), n(1), weight.Empty{})
	f.Link(n(1), n(2), weight.Empty{})

	edges := f.Edges()
	assert.Len(t, edges, 2)

	seen := map[nodeidx.NodeIdx2]bool{}
	for _, e := range edges {
		seen[e] = true
		seen[nodeidx.NodeIdx2{A: e.B, B: e.A}] = true
	}
	assert.True(t, seen[nodeidx.NodeIdx2{A: n(0), B: n(1)}])
	assert.True(t, seen[nodeidx.NodeIdx2{A: n(1), B: n(2)}])
}

// TestMatchesSTTOnRandomSequence cross-validates the link-cut
// implementation against the 2-cut-STT-backed one on the same sequence of
// operations over a random-ish spanning forest, both starting from the
// same edge set.
func TestMatchesSTTOnRandomSequence(t *testing.T) {
	const nodes = 8
	lc := linkcut.NewGroup[weight.SignedAdd[int64]](nodes)
	stt := dynforest.NewGroup[weight.SignedAdd[int64]](nodes, dynforest.GreedySplay)

	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 5}, {5, 6}, {6, 7}}
	for i, e := range edges {
		w := weight.NewSignedAdd[int64](int64(i + 1))
		lc.Link(n(e[0]), n(e[1]), w)
		stt.Link(n(e[0]), n(e[1]), w)
	}

	for u := 0; u < nodes; u++ {
		for v := 0; v < nodes; v++ {
			wantW, wantOK := stt.ComputePathWeight(n(u), n(v))
			gotW, gotOK := lc.ComputePathWeight(n(u), n(v))
			assert.Equal(t, wantOK, gotOK, "u=%d v=%d", u, v)
			if wantOK {
				assert.Equal(t, wantW.Value(), gotW.Value(), "u=%d v=%d", u, v)
			}
		}
	}

	lc.Cut(n(1), n(2))
	stt.Cut(n(1), n(2))

	_, lcOK := lc.ComputePathWeight(n(0), n(3))
	_, sttOK := stt.ComputePathWeight(n(0), n(3))
	assert.False(t, lcOK)
	assert.False(t, sttOK)
}

func TestRootedLinkCutFindRootAndLCA(t *testing.T) {
	f := linkcut.NewRootedForest(6)

	// 0 is root; children 1, 2; 1's children 3, 4; 2's child 5.
	f.Link(n(1), n(0))
	f.Link(n(2), n(0))
	f.Link(n(3), n(1))
	f.Link(n(4), n(1))
	f.Link(n(5), n(2))

	assert.Equal(t, n(0), f.FindRoot(n(3)))
	assert.Equal(t, n(0), f.FindRoot(n(5)))

	lca, ok := f.LowestCommonAncestor(n(3), n(4))
	assert.True(t, ok)
	assert.Equal(t, n(1), lca)

	lca, ok = f.LowestCommonAncestor(n(3), n(5))
	assert.True(t, ok)
	assert.Equal(t, n(0), lca)

	f.Cut(n(1))
	assert.Equal(t, n(1), f.FindRoot(n(3)), "cutting 1 makes it the root of its own tree")
	assert.Equal(t, n(0), f.FindRoot(n(5)))

	_, ok = f.LowestCommonAncestor(n(3), n(5))
	assert.False(t, ok, "3 and 5 are now in different trees")
}
