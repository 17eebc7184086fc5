// Package rooted exposes unweighted rooted dynamic forests: Link/Cut/
// FindRoot/LowestCommonAncestor over a forest of rooted trees.
//
// New builds the STT-based implementation (twocut.RootedForest under an
// ExtendedStrategy). SimpleRootedForest is a naive O(depth)-per-operation
// reference implementation used as a correctness oracle in tests, and is
// the only implementation here that additionally supports MakeRoot
// (EversibleRootedDynamicForest) — the STT-based rotate() does not
// maintain enough state to re-root cheaply without extra bookkeeping this
// module does not implement.
package rooted
