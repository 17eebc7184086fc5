// Package graphforest implements a dynamic forest on top of a general
// core.Graph, re-discovering the unique path between two nodes by running
// a fresh breadth-first search on every query instead of maintaining any
// tree-specific structure.
//
// Link, Cut and ComputePathWeight all run in O(V+E) time per call — this
// package favors a straightforward, obviously-correct implementation over
// an efficient one, serving as a second, structurally independent oracle
// alongside oneforest.
package graphforest
