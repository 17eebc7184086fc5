// Package oneforest implements SimpleDynamicTree, the simplest possible
// dynamic forest: each tree is represented by an explicit rooting of
// itself (a one-cut STT), and re-rooting walks the full parent chain one
// node at a time.
//
// Link, Cut and ComputePathWeight all run in O(n) amortized time, where n
// is the number of nodes in the forest — there is no splaying, no
// amortized-log-n guarantee, nothing to get subtly wrong. This package
// exists to be obviously correct rather than fast: it is the oracle the
// twocut/dynforest and linkcut implementations are cross-checked against.
package oneforest
