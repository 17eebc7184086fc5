package rooted_test

import (
	"testing"

	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/rooted"
	"github.com/stretchr/testify/assert"
)

var allKinds = []rooted.StrategyKind{
	rooted.MoveToRoot,
	rooted.GreedySplay,
	rooted.TwoPassSplay,
	rooted.LocalTwoPassSplay,
}

func n(i int) nodeidx.NodeIdx { return nodeidx.New(i) }

func TestLinkCutFindRoot(t *testing.T) {
	for _, kind := range allKinds {
		f := rooted.New(5, kind)

		f.Link(n(1), n(0))
		f.Link(n(2), n(1))
		f.Link(n(3), n(0))

		assert.Equal(t, n(0), f.FindRoot(n(2)), "%s", kind)
		assert.Equal(t, n(0), f.FindRoot(n(3)), "%s", kind)
		assert.Equal(t, n(4), f.FindRoot(n(4)), "%s: isolated node is its own root", kind)

		f.Cut(n(1))
		assert.Equal(t, n(1), f.FindRoot(n(2)), "%s: cutting 1 makes it the root of its own tree", kind)
		assert.Equal(t, n(0), f.FindRoot(n(3)), "%s", kind)
	}
}

func TestLowestCommonAncestor(t *testing.T) {
	for _, kind := range allKinds {
		f := rooted.New(6, kind)

		// 0 is root; children 1, 2; 1's children 3, 4; 2's child 5.
		f.Link(n(1), n(0))
		f.Link(n(2), n(0))
		f.Link(n(3), n(1))
		f.Link(n(4), n(1))
		f.Link(n(5), n(2))

		lca, ok := f.LowestCommonAncestor(n(3), n(4))
		assert.True(t, ok, "%s", kind)
		assert.Equal(t, n(1), lca, "%s", kind)

		lca, ok = f.LowestCommonAncestor(n(3), n(5))
		assert.True(t, ok, "%s", kind)
		assert.Equal(t, n(0), lca, "%s", kind)

		lca, ok = f.LowestCommonAncestor(n(1), n(3))
		assert.True(t, ok, "%s", kind)
		assert.Equal(t, n(1), lca, "%s: an ancestor is its own LCA with a descendant", kind)
	}
}

func TestLowestCommonAncestorDifferentTrees(t *testing.T) {
	for _, kind := range allKinds {
		f := rooted.New(4, kind)
		f.Link(n(1), n(0))
		f.Link(n(3), n(2))

		_, ok := f.LowestCommonAncestor(n(1), n(3))
		assert.False(t, ok, "%s", kind)
	}
}

func TestSimpleRootedForestMatchesSTT(t *testing.T) {
	simple := rooted.NewSimpleRootedForest(6)
	stt := rooted.New(6, rooted.GreedySplay)

	edges := [][2]int{{1, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 2}}
	for _, e := range edges {
		simple.Link(n(e[0]), n(e[1]))
		stt.Link(n(e[0]), n(e[1]))
	}

	for u := 0; u < 6; u++ {
		for v := 0; v < 6; v++ {
			wantLCA, wantOK := simple.LowestCommonAncestor(n(u), n(v))
			gotLCA, gotOK := stt.LowestCommonAncestor(n(u), n(v))
			assert.Equal(t, wantOK, gotOK, "u=%d v=%d", u, v)
			if wantOK {
				assert.Equal(t, wantLCA, gotLCA, "u=%d v=%d", u, v)
			}
		}
	}
}

func TestMakeRootReversesPath(t *testing.T) {
	f := rooted.NewSimpleRootedForest(4)
	f.Link(n(1), n(0))
	f.Link(n(2), n(1))
	f.Link(n(3), n(2))

	f.MakeRoot(n(3))
	assert.Equal(t, n(3), f.FindRoot(n(0)))
	assert.Equal(t, n(3), f.FindRoot(n(0)))

	p, ok := f.GetParent(n(2))
	assert.True(t, ok)
	assert.Equal(t, n(3), p)

	p, ok = f.GetParent(n(1))
	assert.True(t, ok)
	assert.Equal(t, n(2), p)

	p, ok = f.GetParent(n(0))
	assert.True(t, ok)
	assert.Equal(t, n(1), p)
}
