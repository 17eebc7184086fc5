package connectivity

import (
	"sort"

	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/weight"
)

// dynamicForest is the subset of a connectivity-only
// DynamicForest[weight.Empty] that FullyDynamicConnectivity needs, matched
// structurally by dynforest.NewEmpty, linkcut.NewEmpty, oneforest.NewEmpty
// and graphforest.NewEmpty.
type dynamicForest interface {
	Link(u, v nodeidx.NodeIdx, w weight.Empty)
	Cut(u, v nodeidx.NodeIdx)
	ComputePathWeight(u, v nodeidx.NodeIdx) (weight.Empty, bool)
}

type edgeKey struct{ a, b int }

func newEdgeKey(u, v nodeidx.NodeIdx) edgeKey {
	a, b := u.Index(), v.Index()
	if a > b {
		a, b = b, a
	}

	return edgeKey{a: a, b: b}
}

// FullyDynamicConnectivity maintains a spanning forest over an evolving
// graph. Edges not currently part of the spanning forest (because they
// would close a cycle) are remembered as unused, so a later deletion can
// reuse one of them to reconnect a split tree.
type FullyDynamicConnectivity struct {
	df          dynamicForest
	unusedEdges map[edgeKey]struct{}
}

// New wraps df (an empty connectivity-only dynamic forest) as a
// fully-dynamic connectivity structure.
func New(df dynamicForest) *FullyDynamicConnectivity {
	return &FullyDynamicConnectivity{df: df, unusedEdges: make(map[edgeKey]struct{})}
}

// CheckConnected reports whether the current graph has a path between u
// and v.
func (c *FullyDynamicConnectivity) CheckConnected(u, v nodeidx.NodeIdx) bool {
	_, ok := c.df.ComputePathWeight(u, v)

	return ok
}

// InsertEdge adds the undirected edge (u, v). Assumes the edge is not
// currently present.
func (c *FullyDynamicConnectivity) InsertEdge(u, v nodeidx.NodeIdx) {
	if c.CheckConnected(u, v) {
		c.unusedEdges[newEdgeKey(u, v)] = struct{}{}

		return
	}
	c.df.Link(u, v, weight.Empty{})
}

// DeleteEdge removes the undirected edge (u, v). Assumes the edge is
// currently present.
func (c *FullyDynamicConnectivity) DeleteEdge(u, v nodeidx.NodeIdx) {
	key := newEdgeKey(u, v)
	if _, isUnused := c.unusedEdges[key]; isUnused {
		delete(c.unusedEdges, key)

		return
	}

	// (u, v) must be a spanning-forest edge.
	c.df.Cut(u, v)
	if x, y, ok := c.findUsableEdge(); ok {
		c.df.Link(x, y, weight.Empty{})
		delete(c.unusedEdges, newEdgeKey(x, y))
	}
}

// findUsableEdge scans the unused edges, in deterministic (smallest
// endpoint pair first) order, for one whose endpoints are no longer
// connected — i.e. one that would reconnect a tree just split by Cut.
func (c *FullyDynamicConnectivity) findUsableEdge() (nodeidx.NodeIdx, nodeidx.NodeIdx, bool) {
	keys := make([]edgeKey, 0, len(c.unusedEdges))
	for k := range c.unusedEdges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}

		return keys[i].b < keys[j].b
	})

	for _, k := range keys {
		u, v := nodeidx.New(k.a), nodeidx.New(k.b)
		if _, ok := c.df.ComputePathWeight(u, v); !ok {
			return u, v, true
		}
	}

	return nodeidx.NodeIdx{}, nodeidx.NodeIdx{}, false
}
