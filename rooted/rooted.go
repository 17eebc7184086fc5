package rooted

import (
	"fmt"

	"github.com/katalvlaran/stt/nodeidx"
	"github.com/katalvlaran/stt/twocut"
)

// RootedDynamicForest is an unweighted rooted dynamic forest: a forest of
// rooted trees supporting child attachment, detachment, root lookup and
// lowest-common-ancestor queries. Every method may reshape the underlying
// representation.
type RootedDynamicForest interface {
	// Nodes returns every node index in the forest, in ascending order.
	Nodes() []nodeidx.NodeIdx

	// Link makes v the parent of u. u must currently be the root of its
	// own tree, and in a different tree than v.
	Link(u, v nodeidx.NodeIdx)

	// Cut detaches v from its parent, making v the root of its own tree.
	// v must not already be a root.
	Cut(v nodeidx.NodeIdx)

	// FindRoot returns the root of the tree containing v.
	FindRoot(v nodeidx.NodeIdx) nodeidx.NodeIdx

	// LowestCommonAncestor returns the lowest common ancestor of u and v,
	// or ok=false if they are in different trees.
	LowestCommonAncestor(u, v nodeidx.NodeIdx) (nodeidx.NodeIdx, bool)
}

// EversibleRootedDynamicForest is a RootedDynamicForest that additionally
// supports changing which node is the root of its tree.
type EversibleRootedDynamicForest interface {
	RootedDynamicForest

	// MakeRoot makes v the root of its tree, reversing the parent pointers
	// along the path from v's old root to v.
	MakeRoot(v nodeidx.NodeIdx)
}

// StrategyKind selects which restructuring strategy an STT-based
// RootedDynamicForest uses. Only the four strategies with an Extended
// (NodeBelowRoot-supporting) variant apply here: rooted-forest operations
// need NodeBelowRoot for Cut and LowestCommonAncestor.
type StrategyKind int

const (
	MoveToRoot StrategyKind = iota
	GreedySplay
	TwoPassSplay
	LocalTwoPassSplay
)

// String renders the strategy kind's name.
func (k StrategyKind) String() string {
	switch k {
	case MoveToRoot:
		return "MoveToRoot"
	case GreedySplay:
		return "GreedySplay"
	case TwoPassSplay:
		return "TwoPassSplay"
	case LocalTwoPassSplay:
		return "LocalTwoPassSplay"
	default:
		return fmt.Sprintf("StrategyKind(%d)", int(k))
	}
}

func (k StrategyKind) extended() twocut.ExtendedStrategy {
	switch k {
	case MoveToRoot:
		return twocut.MoveToRootExtended
	case GreedySplay:
		return twocut.GreedySplayExtended
	case TwoPassSplay:
		return twocut.TwoPassSplayExtended
	case LocalTwoPassSplay:
		return twocut.LocalTwoPassSplayExtended
	default:
		panic(fmt.Sprintf("rooted: unknown StrategyKind %d", int(k)))
	}
}

// New builds the STT-based RootedDynamicForest on n nodes (indices
// 0..n-1), each initially the root of its own singleton tree.
func New(n int, kind StrategyKind) RootedDynamicForest {
	return twocut.NewRootedForest(n, kind.extended())
}
