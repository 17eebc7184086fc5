package genforest_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stt/internal/genforest"
)

func TestRootedTreeEdgesFormsASpanningTree(t *testing.T) {
	f := fuzz.New().NilChance(0)
	const n = 12

	edges := genforest.RootedTreeEdges(n, f)
	assert.Len(t, edges, n-1)

	parentOf := make(map[int]int, n)
	for _, e := range edges {
		assert.NotEqual(t, e.Parent, e.Child, "a node cannot be its own parent")
		_, dup := parentOf[e.Child]
		assert.False(t, dup, "each child should be attached exactly once")
		parentOf[e.Child] = e.Parent
	}

	// Every node must reach a root (a node with no parent) in at most n
	// steps, which rules out cycles.
	for v := 0; v < n; v++ {
		cur, steps := v, 0
		for {
			p, ok := parentOf[cur]
			if !ok {
				break
			}
			cur = p
			steps++
			assert.LessOrEqual(t, steps, n, "node %d's ancestor chain cycles", v)
		}
	}
}

func TestRootedTreeEdgesEmptyAndSingleton(t *testing.T) {
	f := fuzz.New().NilChance(0)
	assert.Empty(t, genforest.RootedTreeEdges(0, f))
	assert.Empty(t, genforest.RootedTreeEdges(1, f))
}

func TestRandomSTTIsWellFormed(t *testing.T) {
	f := fuzz.New().NilChance(0)
	const n = 10

	tree := genforest.RandomSTT(n, f)
	assert.True(t, tree.IsValid())
	assert.Len(t, tree.Nodes(), n)
	assert.Len(t, tree.Edges(), n-1)
}

func TestEdgeProducesDistinctEndpointsInRange(t *testing.T) {
	f := fuzz.New().NilChance(0)
	const n = 5

	for i := 0; i < 200; i++ {
		u, v := genforest.Edge(n, f)
		assert.NotEqual(t, u, v)
		assert.GreaterOrEqual(t, u.Index(), 0)
		assert.Less(t, u.Index(), n)
		assert.GreaterOrEqual(t, v.Index(), 0)
		assert.Less(t, v.Index(), n)
	}
}

func TestEdgesGeneratesRequestedCount(t *testing.T) {
	f := fuzz.New().NilChance(0)
	edges := genforest.Edges(6, 15, f)
	assert.Len(t, edges, 15)
	for _, e := range edges {
		assert.NotEqual(t, e.A, e.B)
	}
}

func TestWeightGeneratorsStayInRange(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 200; i++ {
		sa := genforest.SignedAddWeight(f)
		assert.GreaterOrEqual(t, sa.Value(), int64(-1000))
		assert.Less(t, sa.Value(), int64(1000))

		um := genforest.UnsignedMaxWeight(f)
		assert.Less(t, um.Value(), uint64(1000))

		assert.Equal(t, "", genforest.EmptyWeight(f).String())
	}
}
