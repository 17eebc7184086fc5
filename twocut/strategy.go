package twocut

import (
	"github.com/katalvlaran/stt/internal/assert"
	"github.com/katalvlaran/stt/nodeidx"
)

// Strategy moves a node to the root of a 2-cut STT via a sequence of
// Rotate calls, trading off different amortized complexity/locality
// guarantees. Every Strategy here operates purely structurally (Rotator),
// independent of whatever node-data payload the Forest wrapping it uses.
type Strategy interface {
	// NodeToRoot moves v to the root of its tree.
	NodeToRoot(f Rotator, v nodeidx.NodeIdx)
}

// ExtendedStrategy additionally supports moving a node to just below the
// (unchanged) root, which Forest uses to implement EdgeToTop without a
// second call to NodeToRoot.
type ExtendedStrategy interface {
	Strategy

	// NodeBelowRoot moves v to become a child of the current root. The
	// root itself does not change.
	NodeBelowRoot(f Rotator, v nodeidx.NodeIdx)
}

// MoveToRoot is the simplest restructuring strategy: repeatedly rotate at
// v, first clearing any separator ancestors out of the way.
var MoveToRoot Strategy = moveToRootStrategy{}

// MoveToRootExtended is MoveToRoot used as an ExtendedStrategy (it
// supports NodeBelowRoot as well as NodeToRoot).
var MoveToRootExtended ExtendedStrategy = moveToRootStrategy{}

type moveToRootStrategy struct{}

// moveStep rotates v with its parent p, if possible; otherwise first
// rotates p as often as necessary to clear separator ancestors.
func (moveToRootStrategy) moveStep(f Rotator, v, p nodeidx.NodeIdx) {
	if !IsSeparator(f, v) {
		for {
			if _, ok := f.GetParent(p); ok && IsSeparator(f, p) {
				f.Rotate(p)
				continue
			}
			break
		}
	}
	f.Rotate(v)
}

// NodeToRoot implements Strategy.
func (s moveToRootStrategy) NodeToRoot(f Rotator, v nodeidx.NodeIdx) {
	for {
		p, ok := f.GetParent(v)
		if !ok {
			break
		}
		s.moveStep(f, v, p)
	}
}

// NodeBelowRoot implements ExtendedStrategy.
func (s moveToRootStrategy) NodeBelowRoot(f Rotator, v nodeidx.NodeIdx) {
	assert.Invariant(func() bool { _, ok := f.GetParent(v); return ok }(), "twocut: NodeBelowRoot(%s) called on a root", v)
	for {
		p, _ := f.GetParent(v)
		if _, ok := f.GetParent(p); ok {
			s.moveStep(f, v, p)
		} else {
			break
		}
	}
}

// splayTarget distinguishes "move all the way to the root" from "move to
// just below the (unchanged) root".
type splayTarget int

const (
	targetRoot splayTarget = iota
	targetBelowRoot
)

// canSplayStep reports whether rotating x (with parent p, grandparent g)
// preserves the 2-cut invariant.
func canSplayStep(f Rotator, x, p, g nodeidx.NodeIdx) bool {
	return !IsSeparator(f, g) || (IsSeparator(f, x) && IsSeparator(f, p))
}

// splayStep moves x up two levels: a zig-zig or zig-zag splay step. x must
// have depth at least 3 (a grandparent).
func splayStep(f Rotator, x nodeidx.NodeIdx) {
	p, _ := f.GetParent(x)
	if IsDirectSeparator(f, x) {
		f.Rotate(x)
	} else {
		f.Rotate(p)
	}
	f.Rotate(x)
}

type splayResult int

const (
	splaySuccess splayResult = iota
	splayFailed
	splayDone
)

// GreedySplay brings a node to the top by repeatedly attempting a splay
// step at the node, its parent, or its grandparent — one of the three is
// always possible.
var GreedySplay Strategy = greedySplayStrategy{}

// GreedySplayExtended is GreedySplay used as an ExtendedStrategy.
var GreedySplayExtended ExtendedStrategy = greedySplayStrategy{}

type greedySplayStrategy struct{}

func (greedySplayStrategy) trySplay(f Rotator, v nodeidx.NodeIdx, target splayTarget) splayResult {
	p, ok := f.GetParent(v)
	if !ok {
		return splayDone
	}
	g, ok := f.GetParent(p)
	if !ok {
		if target == targetRoot {
			f.Rotate(v)
		}
		return splayDone
	}
	if target == targetRoot {
		if canSplayStep(f, v, p, g) {
			splayStep(f, v)
			return splaySuccess
		}
		return splayFailed
	}
	if _, ok := f.GetParent(g); ok {
		if canSplayStep(f, v, p, g) {
			splayStep(f, v)
			return splaySuccess
		}
		return splayFailed
	}
	// g is root and we want to splay v below g.
	f.Rotate(v)
	return splayDone
}

func (s greedySplayStrategy) moveTo(f Rotator, v nodeidx.NodeIdx, target splayTarget) {
	for {
		switch s.trySplay(f, v, target) {
		case splaySuccess:
		case splayFailed:
			p, _ := f.GetParent(v)
			if s.trySplay(f, p, target) == splayFailed {
				g, _ := f.GetParent(p)
				splayStep(f, g)
			}
		case splayDone:
			return
		}
	}
}

// NodeToRoot implements Strategy.
func (s greedySplayStrategy) NodeToRoot(f Rotator, v nodeidx.NodeIdx) { s.moveTo(f, v, targetRoot) }

// NodeBelowRoot implements ExtendedStrategy.
func (s greedySplayStrategy) NodeBelowRoot(f Rotator, v nodeidx.NodeIdx) {
	s.moveTo(f, v, targetBelowRoot)
}

// TwoPassSplay first "cleans" the root path of v by eliminating branching
// (non-rotatable) nodes, then splays v to the target in a second pass.
var TwoPassSplay Strategy = twoPassSplayStrategy{}

// TwoPassSplayExtended is TwoPassSplay used as an ExtendedStrategy.
var TwoPassSplayExtended ExtendedStrategy = twoPassSplayStrategy{}

type twoPassSplayStrategy struct{}

func findNextBranchingNode(f Rotator, v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool) {
	u := v
	for f.CanRotate(u) {
		u, _ = f.GetParent(u)
	}
	return f.GetParent(u)
}

func (twoPassSplayStrategy) branchingStep(f Rotator, v nodeidx.NodeIdx, target splayTarget) {
	p, _ := f.GetParent(v)
	g, _ := f.GetParent(p)

	switch {
	case !IsSeparator(f, p) && IsSeparator(f, g):
		f.Rotate(v)
	case func() bool { _, ok := f.GetParent(g); return !ok }():
		if target == targetRoot {
			splayStep(f, v)
		} else {
			f.Rotate(v)
		}
	default:
		splayStep(f, v)
	}
}

func (s twoPassSplayStrategy) moveTo(f Rotator, v nodeidx.NodeIdx, target splayTarget) {
	b, ok := findNextBranchingNode(f, v)
	for ok {
		s.branchingStep(f, b, target)
		if !IsSeparator(f, b) {
			b, ok = findNextBranchingNode(f, b)
		}
	}

	for {
		p, ok := f.GetParent(v)
		if !ok {
			return
		}
		g, ok := f.GetParent(p)
		if !ok {
			if target == targetRoot {
				f.Rotate(v)
			}
			return
		}
		if target == targetRoot {
			splayStep(f, v)
			continue
		}
		if _, ok := f.GetParent(g); ok {
			splayStep(f, v)
		} else {
			f.Rotate(v)
			return
		}
	}
}

// NodeToRoot implements Strategy.
func (s twoPassSplayStrategy) NodeToRoot(f Rotator, v nodeidx.NodeIdx) { s.moveTo(f, v, targetRoot) }

// NodeBelowRoot implements ExtendedStrategy.
func (s twoPassSplayStrategy) NodeBelowRoot(f Rotator, v nodeidx.NodeIdx) {
	s.moveTo(f, v, targetBelowRoot)
}

// StableTwoPassSplay is a simplified variant of TwoPassSplay that only
// guarantees the stable contract (the former root and its
// ancestors become 1-cut), not NodeBelowRoot.
var StableTwoPassSplay Strategy = stableTwoPassSplayStrategy{}

type stableTwoPassSplayStrategy struct{}

func (stableTwoPassSplayStrategy) branchingStep(f Rotator, v nodeidx.NodeIdx) {
	p, _ := f.GetParent(v)
	g, _ := f.GetParent(p)
	if !IsSeparator(f, p) && IsSeparator(f, g) {
		f.Rotate(v)
	} else {
		splayStep(f, v)
	}
}

// NodeToRoot implements Strategy.
func (s stableTwoPassSplayStrategy) NodeToRoot(f Rotator, v nodeidx.NodeIdx) {
	b, ok := findNextBranchingNode(f, v)
	for ok {
		s.branchingStep(f, b)
		if !IsSeparator(f, b) {
			b, ok = findNextBranchingNode(f, b)
		}
	}

	for {
		p, ok := f.GetParent(v)
		if !ok {
			return
		}
		if _, ok := f.GetParent(p); ok {
			splayStep(f, v)
		} else {
			f.Rotate(v)
			return
		}
	}
}

// LocalTwoPassSplay interleaves TwoPassSplay's two passes instead of
// running them one after another.
var LocalTwoPassSplay Strategy = localTwoPassSplayStrategy{}

// LocalTwoPassSplayExtended is LocalTwoPassSplay used as an
// ExtendedStrategy.
var LocalTwoPassSplayExtended ExtendedStrategy = localTwoPassSplayStrategy{}

type localTwoPassSplayStrategy struct{}

func (localTwoPassSplayStrategy) moveTo(f Rotator, v nodeidx.NodeIdx, target splayTarget) {
	for {
		p, ok := f.GetParent(v)
		if !ok {
			return
		}
		g, ok := f.GetParent(p)
		if !ok {
			if target == targetRoot {
				f.Rotate(v)
			}
			return
		}
		_, gHasParent := f.GetParent(g)
		if target == targetRoot || gHasParent {
			if canSplayStep(f, v, p, g) {
				splayStep(f, v)
				continue
			}
			if IsSeparator(f, p) {
				splayStep(f, p)
			} else {
				(twoPassSplayStrategy{}).branchingStep(f, g, target)
			}
		} else {
			f.Rotate(v)
			return
		}
	}
}

// NodeToRoot implements Strategy.
func (s localTwoPassSplayStrategy) NodeToRoot(f Rotator, v nodeidx.NodeIdx) {
	s.moveTo(f, v, targetRoot)
}

// NodeBelowRoot implements ExtendedStrategy.
func (s localTwoPassSplayStrategy) NodeBelowRoot(f Rotator, v nodeidx.NodeIdx) {
	s.moveTo(f, v, targetBelowRoot)
}

// StableLocalTwoPassSplay is a simplified variant of LocalTwoPassSplay
// that only guarantees the stable contract.
var StableLocalTwoPassSplay Strategy = stableLocalTwoPassSplayStrategy{}

type stableLocalTwoPassSplayStrategy struct{}

func (stableLocalTwoPassSplayStrategy) branchingStep(f Rotator, v nodeidx.NodeIdx) {
	p, _ := f.GetParent(v)
	g, _ := f.GetParent(p)
	if !IsSeparator(f, p) && IsSeparator(f, g) {
		f.Rotate(v)
	} else {
		splayStep(f, v)
	}
}

// NodeToRoot implements Strategy.
func (s stableLocalTwoPassSplayStrategy) NodeToRoot(f Rotator, v nodeidx.NodeIdx) {
	for {
		p, ok := f.GetParent(v)
		if !ok {
			return
		}
		g, ok := f.GetParent(p)
		if !ok {
			f.Rotate(v)
			return
		}
		if canSplayStep(f, v, p, g) {
			splayStep(f, v)
			continue
		}
		if IsSeparator(f, p) {
			splayStep(f, p)
		} else {
			s.branchingStep(f, g)
		}
	}
}
