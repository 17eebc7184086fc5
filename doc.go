// Package stt implements dynamic forests: data structures that maintain a
// forest of unweighted or weighted undirected trees under online edge
// insertion (Link), deletion (Cut), and path-weight queries, plus rooted
// variants supporting LCA and re-rooting.
//
// Two core approaches are provided:
//
//   - twocut / dynforest — 2-cut search trees on trees (Berendsohn & Kozma,
//     SODA 2022), supporting a choice of restructuring strategy
//     (move-to-root, greedy splay, two-pass splay, local two-pass splay).
//   - linkcut — classical link-cut trees (Sleator & Tarjan), splay trees of
//     solid paths with lazy re-rooting.
//
// rooted builds unweighted rooted dynamic forests (find_root, lca, make_root)
// on top of either composition. oneforest and graphforest are slower
// reference implementations used to validate the fast structures against.
//
// mst and connectivity are applications built on the DynamicForest contract:
// an online incremental minimum spanning forest, and a fully-dynamic
// connectivity heuristic.
//
// cmd/sttctl is a small CLI that replays a query file (see the package docs
// of that command) against a chosen implementation.
//
// All operations, including read-only queries, mutate internal tree
// structure (splaying/rotating) and are therefore not safe for concurrent
// use on a single forest instance — see the per-package docs for details.
package stt
