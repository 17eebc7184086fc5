// Package dynforest is the public entry point for the 2-cut search-tree-on-
// a-tree dynamic forest: Link/Cut/ComputePathWeight/GetEdgeWeight over a
// forest of unrooted trees, backed by twocut.Forest and one of eight
// restructuring strategies.
//
// A DynamicForest is built by pairing a StrategyKind with a weight kind
// (NewEmpty for connectivity-only forests, NewMonoid for forests whose
// weight type is only a commutative monoid, NewGroup for forests whose
// weight type also supports subtraction, which is cheaper). That gives 24
// concrete configurations, matching the reference implementation's
// mtrtt/splaytt type aliases.
//
// Complexity: Link, Cut and GetEdgeWeight run in amortized O(log n).
// ComputePathWeight runs in amortized O(log n) for every non-"Stable"
// strategy here. The four "Stable" kinds (StableMoveToRoot,
// StableGreedySplay, StableTwoPassSplay, StableLocalTwoPassSplay) instead
// walk the queried path after restructuring, which costs O(d) where d is
// the path length between u and v.
package dynforest
