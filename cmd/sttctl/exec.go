package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/stt/connectivity"
	"github.com/katalvlaran/stt/mst"
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/rooted"
	"github.com/katalvlaran/stt/weight"
)

func n(i int) nodeidx.NodeIdx { return nodeidx.New(i) }

// connForest is the shape both a plain emptyForest and a
// FullyDynamicConnectivity wrapper present to the con/fd_con query
// executors, so the same Query implementations run against either.
type connForest interface {
	Link(u, v nodeidx.NodeIdx)
	Cut(u, v nodeidx.NodeIdx)
	Connected(u, v nodeidx.NodeIdx) bool
}

// plainAdapter runs 'con' files directly against a DynamicForest: every
// delete must name a spanning-forest edge, with no replacement search.
type plainAdapter struct{ f emptyForest }

func (a plainAdapter) Link(u, v nodeidx.NodeIdx) { a.f.Link(u, v, weight.Empty{}) }
func (a plainAdapter) Cut(u, v nodeidx.NodeIdx)  { a.f.Cut(u, v) }
func (a plainAdapter) Connected(u, v nodeidx.NodeIdx) bool {
	_, ok := a.f.ComputePathWeight(u, v)
	return ok
}

// fullyDynamicAdapter runs 'fd_con' files against a
// connectivity.FullyDynamicConnectivity: a delete of a non-spanning edge is
// a no-op, and a delete of a spanning edge searches for a replacement.
type fullyDynamicAdapter struct {
	c *connectivity.FullyDynamicConnectivity
}

func (a fullyDynamicAdapter) Link(u, v nodeidx.NodeIdx) { a.c.InsertEdge(u, v) }
func (a fullyDynamicAdapter) Cut(u, v nodeidx.NodeIdx)  { a.c.DeleteEdge(u, v) }
func (a fullyDynamicAdapter) Connected(u, v nodeidx.NodeIdx) bool {
	return a.c.CheckConnected(u, v)
}

// session holds whichever backend the current file kind needs, plus the
// accumulated results a 'mst' file's queries build up.
type session struct {
	conn       connForest
	rootedTree rooted.RootedDynamicForest
	mstEdges   []mst.EdgeWithWeight[weight.SignedAdd[int64]]
	log        *logrus.Entry
}

// Query is one executable line of a parsed query file.
type Query interface {
	Execute(s *session) error
}

type insertQuery struct{ u, v int }

// Execute links u and v. Against a plain 'con' backend this is a
// programmer-error precondition (u and v must not already be connected)
// enforced by the underlying DynamicForest's own invariant check; against
// an 'fd_con' backend, connectivity.FullyDynamicConnectivity instead
// tolerates an already-connected insert by setting the edge aside as
// unused.
func (q insertQuery) Execute(s *session) error {
	s.conn.Link(n(q.u), n(q.v))
	return nil
}

type deleteQuery struct{ u, v int }

func (q deleteQuery) Execute(s *session) error {
	s.conn.Cut(n(q.u), n(q.v))
	return nil
}

type pathQuery struct{ u, v int }

func (q pathQuery) Execute(s *session) error {
	connected := s.conn.Connected(n(q.u), n(q.v))
	s.log.WithFields(logrus.Fields{"u": q.u, "v": q.v, "connected": connected}).Info("path query")
	return nil
}

type linkQuery struct{ u, v int }

func (q linkQuery) Execute(s *session) error {
	s.rootedTree.Link(n(q.u), n(q.v))
	return nil
}

type cutQuery struct{ v int }

func (q cutQuery) Execute(s *session) error {
	s.rootedTree.Cut(n(q.v))
	return nil
}

type lcaQuery struct{ u, v int }

func (q lcaQuery) Execute(s *session) error {
	anc, ok := s.rootedTree.LowestCommonAncestor(n(q.u), n(q.v))
	fields := logrus.Fields{"u": q.u, "v": q.v, "found": ok}
	if ok {
		fields["lca"] = anc.Index()
	}
	s.log.WithFields(fields).Info("lca query")
	return nil
}

type mstEdgeQuery struct {
	u, v int
	w    int64
}

func (q mstEdgeQuery) Execute(s *session) error {
	s.mstEdges = append(s.mstEdges, mst.EdgeWithWeight[weight.SignedAdd[int64]]{
		U: n(q.u), V: n(q.v), Weight: weight.NewSignedAdd(q.w),
	})
	return nil
}

// runQueries executes every query in qf against a freshly built backend for
// impl, timing each query and logging per-query wall time at debug level.
// An mst file is the exception: its edge lines are collected first, and
// the single mst.Compute call over them is timed and logged at info level.
func runQueries(qf *QueryFile, impl string, log *logrus.Entry) error {
	switch qf.Kind {
	case KindConnectivity:
		f, err := newEmptyForest(impl, qf.NumVertices)
		if err != nil {
			return err
		}
		return runTimed(qf, &session{conn: plainAdapter{f: f}, log: log}, log)
	case KindFullyDynamicConnectivity:
		f, err := newEmptyForest(impl, qf.NumVertices)
		if err != nil {
			return err
		}
		c := connectivity.New(f)
		return runTimed(qf, &session{conn: fullyDynamicAdapter{c: c}, log: log}, log)
	case KindLCA:
		rf, err := newRootedForest(impl, qf.NumVertices)
		if err != nil {
			return err
		}
		return runTimed(qf, &session{rootedTree: rf, log: log}, log)
	case KindMST:
		return runMST(qf, impl, log)
	default:
		return fmt.Errorf("sttctl: unhandled file kind %q", qf.Kind)
	}
}

func runTimed(qf *QueryFile, s *session, log *logrus.Entry) error {
	for i, q := range qf.Queries {
		start := time.Now()
		if err := q.Execute(s); err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		log.WithFields(logrus.Fields{"query": i, "elapsed": time.Since(start)}).Debug("query executed")
	}
	return nil
}

func runMST(qf *QueryFile, impl string, log *logrus.Entry) error {
	f, err := newWeightedForest(impl, qf.NumVertices)
	if err != nil {
		return err
	}
	s := &session{log: log}
	for i, q := range qf.Queries {
		if err := q.Execute(s); err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
	}

	start := time.Now()
	edges := mst.Compute[weight.SignedAdd[int64]](f, s.mstEdges)
	elapsed := time.Since(start)

	total := weight.SignedAdd[int64]{}
	for _, e := range edges {
		w, ok := f.GetEdgeWeight(e.A, e.B)
		if !ok {
			return fmt.Errorf("mst: missing weight for resulting edge (%d,%d)", e.A.Index(), e.B.Index())
		}
		total = total.Add(w.Weight())
	}

	log.WithFields(logrus.Fields{
		"edges":   len(edges),
		"weight":  total.Value(),
		"elapsed": elapsed,
	}).Info("mst computed")

	return nil
}
