// Package connectivity implements a fully-dynamic connectivity
// structure: a spanning forest maintained over a graph under both edge
// insertions and edge deletions, backed by any connectivity-only dynamic
// forest.
//
// This is a simplification of the fully-dynamic minimum spanning forest
// heuristic sketched by Cattaneo, Faruolo, Petrillo and Italiano (2010):
// an inserted edge either extends the spanning forest or is set aside as
// unused (it would close a cycle); a deleted spanning-forest edge splits
// its tree in two, and the structure scans the unused edges for one that
// reconnects the split halves.
package connectivity
