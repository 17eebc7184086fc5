package dynforest

import (
	"fmt"

	"github.com/katalvlaran/stt/internal/assert"
	"github.com/katalvlaran/stt/internal/xlog"
	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/twocut"
	"github.com/katalvlaran/stt/weight"
	"github.com/sirupsen/logrus"
)

// DynamicForest is the contract every forest implementation in this module
// satisfies: a dynamic set of unrooted trees supporting edge insertion,
// edge removal, and path-weight queries. Every method may reshape the
// forest's internal representation, including GetEdgeWeight and
// ComputePathWeight — there is no read-only access that avoids mutation.
type DynamicForest[W any] interface {
	// Link adds an edge of weight w between u and v. u and v must not
	// already be connected.
	Link(u, v nodeidx.NodeIdx, w W)

	// Cut removes the edge between u and v. The edge must exist.
	Cut(u, v nodeidx.NodeIdx)

	// ComputePathWeight returns the combined weight of the path between u
	// and v, or ok=false if they are not connected.
	ComputePathWeight(u, v nodeidx.NodeIdx) (w W, ok bool)

	// GetEdgeWeight returns the weight of the edge between u and v
	// directly, or ok=false if that edge does not exist.
	GetEdgeWeight(u, v nodeidx.NodeIdx) (w W, ok bool)

	// Nodes returns every node index in the forest, in ascending order.
	Nodes() []nodeidx.NodeIdx

	// Edges returns a snapshot of the edge set currently represented.
	Edges() []nodeidx.NodeIdx2
}

// StrategyKind selects one of the eight restructuring strategies a
// DynamicForest can be built with. Non-"Stable" kinds additionally support
// NodeBelowRoot internally and so implement EdgeToTop in a single pass;
// "Stable" kinds guarantee instead that the former root and its ancestors
// become 1-cut after a restructuring call, which ComputePathWeight relies
// on for every "Stable" kind (see doc.go).
type StrategyKind int

const (
	// MoveToRoot repeatedly rotates the target to the root, clearing
	// separator ancestors out of the way first. Simplest strategy, worst
	// amortized bound.
	MoveToRoot StrategyKind = iota

	// StableMoveToRoot is MoveToRoot used in stable (two-NodeToRoot) mode.
	// It is the same algorithm as MoveToRoot, just invoked without relying
	// on NodeBelowRoot.
	StableMoveToRoot

	// GreedySplay brings the target to the root via greedy splay steps.
	GreedySplay

	// StableGreedySplay is GreedySplay used in stable mode. Same algorithm
	// as GreedySplay.
	StableGreedySplay

	// TwoPassSplay cleans branching nodes off the target's root path
	// before splaying it to the target position.
	TwoPassSplay

	// StableTwoPassSplay is a distinct, simplified two-pass splay algorithm
	// that only guarantees the stable contract, not NodeBelowRoot.
	StableTwoPassSplay

	// LocalTwoPassSplay interleaves TwoPassSplay's two passes.
	LocalTwoPassSplay

	// StableLocalTwoPassSplay is a distinct, simplified local two-pass
	// splay algorithm that only guarantees the stable contract.
	StableLocalTwoPassSplay
)

// String renders the strategy kind's name.
func (k StrategyKind) String() string {
	switch k {
	case MoveToRoot:
		return "MoveToRoot"
	case StableMoveToRoot:
		return "StableMoveToRoot"
	case GreedySplay:
		return "GreedySplay"
	case StableGreedySplay:
		return "StableGreedySplay"
	case TwoPassSplay:
		return "TwoPassSplay"
	case StableTwoPassSplay:
		return "StableTwoPassSplay"
	case LocalTwoPassSplay:
		return "LocalTwoPassSplay"
	case StableLocalTwoPassSplay:
		return "StableLocalTwoPassSplay"
	default:
		return fmt.Sprintf("StrategyKind(%d)", int(k))
	}
}

// pathWeightData is satisfied by any twocut node-data payload whose parent
// path weight is of type W; the shared constraint build uses to stay
// agnostic to which of EmptyData/MonoidData/GroupData it is assembling.
type pathWeightData[W any] interface {
	twocut.PathWeight[W]
}

// build assembles a *twocut.Forest for the requested StrategyKind, routing
// the non-"Stable" kinds through twocut.NewExtended (single-pass EdgeToTop)
// and the "Stable" kinds through twocut.NewStable (two-pass EdgeToTop).
func build[D pathWeightData[W], W weight.Monoid[W]](n int, newData func(nodeidx.NodeIdx) D, hooks twocut.Hooks[D, W], kind StrategyKind) *twocut.Forest[D, W] {
	switch kind {
	case MoveToRoot:
		return twocut.NewExtended(n, newData, hooks, twocut.MoveToRootExtended)
	case StableMoveToRoot:
		return twocut.NewStable(n, newData, hooks, twocut.MoveToRoot)
	case GreedySplay:
		return twocut.NewExtended(n, newData, hooks, twocut.GreedySplayExtended)
	case StableGreedySplay:
		return twocut.NewStable(n, newData, hooks, twocut.GreedySplay)
	case TwoPassSplay:
		return twocut.NewExtended(n, newData, hooks, twocut.TwoPassSplayExtended)
	case StableTwoPassSplay:
		return twocut.NewStable(n, newData, hooks, twocut.StableTwoPassSplay)
	case LocalTwoPassSplay:
		return twocut.NewExtended(n, newData, hooks, twocut.LocalTwoPassSplayExtended)
	case StableLocalTwoPassSplay:
		return twocut.NewStable(n, newData, hooks, twocut.StableLocalTwoPassSplay)
	default:
		panic(fmt.Sprintf("dynforest: unknown StrategyKind %d", int(kind)))
	}
}

// Option configures a DynamicForest at construction time, following
// core.GraphOption's pattern of a slice of functions applied to a private
// options struct.
type Option func(*options)

type options struct {
	logger *logrus.Logger
	verify bool
}

// WithLogger sets the logger a forest uses to trace Link/Cut calls at
// Debug level. Defaults to internal/xlog.Default (silent at WarnLevel).
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithVerifyInvariants enables a check of the STT's separator-child
// pointers (every recorded separator child has the node as its parent)
// after every Link/Cut call, panicking if it fails. Expensive — intended for
// tests and debugging, mirroring the Rust original's
// cfg(feature = "verify") assertions.
func WithVerifyInvariants(enabled bool) Option {
	return func(o *options) { o.verify = enabled }
}

func resolveOptions(opts []Option) options {
	o := options{logger: xlog.Default}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// validator is implemented by every *twocut.Forest via its embedded
// *twocut.Tree; WithVerifyInvariants uses it to check the 2-cut
// separator-child bookkeeping after each mutation.
type validator interface {
	IsValid() bool
}

// verified wraps a DynamicForest with logging and optional invariant
// verification around every mutating call.
type verified[W any] struct {
	inner DynamicForest[W]
	kind  StrategyKind
	opt   options
}

func wrap[W any](inner DynamicForest[W], kind StrategyKind, opt options) DynamicForest[W] {
	if opt.logger == xlog.Default && !opt.verify {
		return inner
	}
	return &verified[W]{inner: inner, kind: kind, opt: opt}
}

func (v *verified[W]) check(op string, u, w nodeidx.NodeIdx) {
	v.opt.logger.WithFields(logrus.Fields{"strategy": v.kind.String(), "u": u.String(), "v": w.String()}).Debug(op)
	if v.opt.verify {
		if val, ok := v.inner.(validator); ok {
			assert.Invariant(val.IsValid(), "dynforest: invariant check failed after %s(%s,%s)", op, u, w)
		}
	}
}

func (v *verified[W]) Link(u, w nodeidx.NodeIdx, weight W) {
	v.inner.Link(u, w, weight)
	v.check("Link", u, w)
}

func (v *verified[W]) Cut(u, w nodeidx.NodeIdx) {
	v.inner.Cut(u, w)
	v.check("Cut", u, w)
}

func (v *verified[W]) ComputePathWeight(u, w nodeidx.NodeIdx) (W, bool) {
	return v.inner.ComputePathWeight(u, w)
}

func (v *verified[W]) GetEdgeWeight(u, w nodeidx.NodeIdx) (W, bool) {
	return v.inner.GetEdgeWeight(u, w)
}

func (v *verified[W]) Nodes() []nodeidx.NodeIdx { return v.inner.Nodes() }

func (v *verified[W]) Edges() []nodeidx.NodeIdx2 { return v.inner.Edges() }

// NewEmpty builds a connectivity-only DynamicForest on n nodes (indices
// 0..n-1), with no edge weights. Use this when only Link/Cut/connectivity
// queries are needed, e.g. as the backing structure for a fully-dynamic
// connectivity heuristic.
func NewEmpty(n int, kind StrategyKind, opts ...Option) DynamicForest[weight.Empty] {
	f := build[twocut.EmptyData, weight.Empty](n, twocut.NewEmptyData, twocut.EmptyHooks{}, kind)
	return wrap[weight.Empty](f, kind, resolveOptions(opts))
}

// NewMonoid builds a DynamicForest on n nodes whose edge weights form a
// commutative monoid. This is the most general weighted configuration,
// at the cost of each node carrying two weight slots instead of one.
func NewMonoid[W weight.Monoid[W]](n int, kind StrategyKind, opts ...Option) DynamicForest[W] {
	f := build[twocut.MonoidData[W], W](n, twocut.NewMonoidData[W], twocut.MonoidHooks[W]{}, kind)
	return wrap[W](f, kind, resolveOptions(opts))
}

// NewGroup builds a DynamicForest on n nodes whose edge weights form a
// group (support subtraction). Cheaper per node than NewMonoid; use this
// whenever the weight type naturally supports it (e.g. signed integer
// sums).
func NewGroup[W weight.Group[W]](n int, kind StrategyKind, opts ...Option) DynamicForest[W] {
	f := build[twocut.GroupData[W], W](n, twocut.NewGroupData[W], twocut.GroupHooks[W]{}, kind)
	return wrap[W](f, kind, resolveOptions(opts))
}
