package connectivity_test

import (
	"strconv"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"
	"github.com/katalvlaran/stt/connectivity"
	"github.com/katalvlaran/stt/dynforest"
	"github.com/katalvlaran/stt/internal/genforest"
	"github.com/katalvlaran/stt/nodeidx"
)

// graphMirror tracks the same edge set as a FullyDynamicConnectivity
// instance on a plain core.Graph, so dfs.DFS can serve as a second,
// structurally independent reachability oracle.
type graphMirror struct {
	g       *core.Graph
	edgeIDs map[[2]int]string
}

func newGraphMirror(numVertices int) *graphMirror {
	g := core.NewGraph()
	for i := 0; i < numVertices; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}
	return &graphMirror{g: g, edgeIDs: make(map[[2]int]string)}
}

func mirrorKey(u, v nodeidx.NodeIdx) [2]int {
	a, b := u.Index(), v.Index()
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func (m *graphMirror) insert(u, v nodeidx.NodeIdx) {
	key := mirrorKey(u, v)
	if _, ok := m.edgeIDs[key]; ok {
		return
	}
	id, err := m.g.AddEdge(strconv.Itoa(u.Index()), strconv.Itoa(v.Index()), 0)
	if err != nil {
		return
	}
	m.edgeIDs[key] = id
}

func (m *graphMirror) delete(u, v nodeidx.NodeIdx) {
	key := mirrorKey(u, v)
	id, ok := m.edgeIDs[key]
	if !ok {
		return
	}
	_ = m.g.RemoveEdge(id)
	delete(m.edgeIDs, key)
}

func (m *graphMirror) connected(u, v nodeidx.NodeIdx) bool {
	if u == v {
		return true
	}
	res, err := dfs.DFS(m.g, strconv.Itoa(u.Index()))
	if err != nil {
		return false
	}
	return res.Visited[strconv.Itoa(v.Index())]
}

// TestMatchesDFSOracleOnRandomSequence cross-validates
// FullyDynamicConnectivity against a dfs.DFS reachability check over a
// parallel plain core.Graph, under a random sequence of inserts and
// deletes.
func TestMatchesDFSOracleOnRandomSequence(t *testing.T) {
	const numVertices = 10
	f := fuzz.New().NilChance(0)

	c := connectivity.New(dynforest.NewEmpty(numVertices, dynforest.GreedySplay))
	mirror := newGraphMirror(numVertices)

	present := make(map[[2]int]bool)
	for i := 0; i < 60; i++ {
		u, v := genforest.Edge(numVertices, f)
		key := mirrorKey(u, v)

		if present[key] {
			c.DeleteEdge(u, v)
			mirror.delete(u, v)
			present[key] = false
		} else {
			c.InsertEdge(u, v)
			mirror.insert(u, v)
			present[key] = true
		}

		for a := 0; a < numVertices; a++ {
			for b := a + 1; b < numVertices; b++ {
				au, bv := nodeidx.New(a), nodeidx.New(b)
				assert.Equal(t, mirror.connected(au, bv), c.CheckConnected(au, bv),
					"step %d: connectivity mismatch for (%d,%d)", i, a, b)
			}
		}
	}
	require.NotEmpty(t, mirror.edgeIDs)
}
