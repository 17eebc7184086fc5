// Package linkcut implements Sleator and Tarjan's self-adjusting link-cut
// trees.
//
// A link-cut tree is a rooted tree where each node may have a designated
// left and/or right child; all other children are middle children. Edges
// between a node and its left/right child are solid edges, every other
// edge is dashed. Each maximal solid subtree is a binary search tree whose
// in-order traversal reads off a path of the underlying forest, and a
// middle edge from p to c represents an edge from p to the leftmost node
// of c's solid subtree.
//
// Link, Cut and ComputePathWeight run in amortized O(log n).
package linkcut
