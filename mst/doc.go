// Package mst computes a minimum spanning forest online, one edge at a
// time, using any dynamic forest's path-weight query instead of a batch
// union-find pass.
//
// Feeding edges in arbitrary order, Compute keeps the dynamic forest f
// holding the lightest spanning forest seen so far: for each new edge
// (u, v, w), if u and v are already connected, it looks up the heaviest
// edge on the path between them and swaps it out if w is lighter. This
// reproduces Kruskal's greedy exchange argument without ever sorting the
// whole edge list, at the cost of one path-weight query and (at most) one
// link/cut pair per input edge.
package mst
