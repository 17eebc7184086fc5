package oneforest_test

import (
	"testing"

	"github.com/katalvlaran/stt/dynforest"
	"github.com/katalvlaran/stt/linkcut"
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/oneforest"
	"github.com/katalvlaran/stt/weight"
	"github.com/stretchr/testify/assert"
)

func n(i int) nodeidx.NodeIdx { return nodeidx.New(i) }

func TestEmptyConnectivity(t *testing.T) {
	f := oneforest.NewEmpty(5)

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

func TestPathWeightChain(t *testing.T) {
	f := oneforest.New[weight.SignedAdd[int64]](4)

	f.Link(n(0), n(1), weight.NewSignedAdd[int64](3))
	f.Link(n(1), n(2), weight.NewSignedAdd[int64](-2))
	f.Link(n(2), n(3), weight.NewSignedAdd[int64](5))

	w, ok := f.ComputePathWeight(n(0), n(3))
	assert.True(t, ok)
	assert.Equal(t, int64(6), w.Value(), "3 + (-2) + 5 = 6")

	ew, ok := f.GetEdgeWeight(n(1), n(2))
	assert.True(t, ok)
	assert.Equal(t, int64(-2), ew.Value())

	_, ok = f.GetEdgeWeight(n(0), n(2))
	assert.False(t, ok, "0 and 2 are not directly linked")
}

func TestLinkThenCutRestoresIsolation(t *testing.T) {
	f := oneforest.NewEmpty(2)
	f.Link(n(0), n(1), weight.Empty{})
	f.Cut(n(0), n(1))
	f.Link(n(0), n(1), weight.Empty{})

	_, ok := f.ComputePathWeight(n(0), n(1))
	assert.True(t, ok, "re-linking after a cut should succeed")
}

func TestEdgesSnapshotMatchesLinks(t *testing.T) {
	f := oneforest.NewEmpty(4)
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

// TestMatchesOtherImplementationsOnRandomSequence cross-validates the
// naive oracle against both the 2-cut-STT-backed forest and the link-cut
// forest on the same sequence of operations over a spanning forest.
func TestMatchesOtherImplementationsOnRandomSequence(t *testing.T) {
	const nodes = 8
	one := oneforest.New[weight.SignedAdd[int64]](nodes)
	stt := dynforest.NewGroup[weight.SignedAdd[int64]](nodes, dynforest.GreedySplay)
	lc := linkcut.NewGroup[weight.SignedAdd[int64]](nodes)

	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 5}, {5, 6}, {6, 7}}
	for i, e := range edges {
		w := weight.NewSignedAdd[int64](int64(i + 1))
		one.Link(n(e[0]), n(e[1]), w)
		stt.Link(n(e[0]), n(e[1]), w)
		lc.Link(n(e[0]), n(e[1]), w)
	}

	for u := 0; u < nodes; u++ {
		for v := 0; v < nodes; v++ {
			wantW, wantOK := stt.ComputePathWeight(n(u), n(v))
			oneW, oneOK := one.ComputePathWeight(n(u), n(v))
			lcW, lcOK := lc.ComputePathWeight(n(u), n(v))
			assert.Equal(t, wantOK, oneOK, "u=%d v=%d", u, v)
			assert.Equal(t, wantOK, lcOK, "u=%d v=%d", u, v)
			if wantOK {
				assert.Equal(t, wantW.Value(), oneW.Value(), "u=%d v=%d", u, v)
				assert.Equal(t, wantW.Value(), lcW.Value(), "u=%d v=%d", u, v)
			}
		}
	}

	one.Cut(n(1), n(2))
	stt.Cut(n(1), n(2))
	lc.Cut(n(1), n(2))

	_, oneOK := one.ComputePathWeight(n(0), n(3))
	_, sttOK := stt.ComputePathWeight(n(0), n(3))
	_, lcOK := lc.ComputePathWeight(n(0), n(3))
	assert.False(t, oneOK)
	assert.False(t, sttOK)
	assert.False(t, lcOK)
}
