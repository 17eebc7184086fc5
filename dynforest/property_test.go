package dynforest_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stt/dynforest"
	"github.com/katalvlaran/stt/internal/genforest"
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/oneforest"
	"github.com/katalvlaran/stt/weight"
)

// TestRandomForestsMatchOneforestOracle builds a random spanning tree with
// random edge weights, under every restructuring strategy, and checks every
// pairwise path weight against the oneforest oracle before and after
// cutting a random edge.
func TestRandomForestsMatchOneforestOracle(t *testing.T) {
	const numVertices = 16
	f := fuzz.New().NilChance(0)

	for _, kind := range allKinds {
		edges := genforest.RootedTreeEdges(numVertices, f)
		weights := make([]weight.SignedAdd[int64], len(edges))
		for i := range weights {
			weights[i] = genforest.SignedAddWeight(f)
		}

		got := dynforest.NewGroup[weight.SignedAdd[int64]](numVertices, kind)
		want := oneforest.New[weight.SignedAdd[int64]](numVertices)
		for i, e := range edges {
			u, v := nodeidx.New(e.Parent), nodeidx.New(e.Child)
			got.Link(u, v, weights[i])
			want.Link(u, v, weights[i])
		}

		assertSamePathWeights(t, kind, numVertices, got, want)

		if len(edges) == 0 {
			continue
		}
		cut := edges[intnForTest(f, len(edges))]
		u, v := nodeidx.New(cut.Parent), nodeidx.New(cut.Child)
		got.Cut(u, v)
		want.Cut(u, v)

		assertSamePathWeights(t, kind, numVertices, got, want)
	}
}

func assertSamePathWeights(t *testing.T, kind dynforest.StrategyKind, numVertices int, got, want oneforestLike) {
	t.Helper()
	for u := 0; u < numVertices; u++ {
		for v := u + 1; v < numVertices; v++ {
			gw, gok := got.ComputePathWeight(n(u), n(v))
			ww, wok := want.ComputePathWeight(n(u), n(v))
			assert.Equal(t, wok, gok, "%s: connectivity mismatch for (%d,%d)", kind, u, v)
			if wok {
				assert.Equal(t, ww, gw, "%s: path weight mismatch for (%d,%d)", kind, u, v)
			}
		}
	}
}

// oneforestLike is the subset of DynamicForest[weight.SignedAdd[int64]]
// needed by assertSamePathWeights, matched structurally by both
// dynforest.NewGroup and oneforest.New.
type oneforestLike interface {
	ComputePathWeight(u, v nodeidx.NodeIdx) (weight.SignedAdd[int64], bool)
}

// intnForTest reuses the same fuzzer to pick a random slice index; kept
// local to avoid exporting a test-only helper from genforest.
func intnForTest(f *fuzz.Fuzzer, n int) int {
	var x uint32
	f.Fuzz(&x)

	return int(x % uint32(n))
}
