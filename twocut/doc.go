// Package twocut implements 2-cut search trees on trees (2-cut STTs), the
// data structure underlying this module's dynamic-forest implementations
// (Berendsohn & Kozma, SODA 2022).
//
// A 2-cut STT is a rooted binary-ish tree encoding an unrooted tree: each
// node may have, besides ordinary children, at most one "direct separator"
// child and one "indirect separator" child — together the 2-cut invariant
// that every restructuring operation in this package must preserve.
//
// Tree is the structural layer (parent pointers, separator-child slots,
// Rotate). Strategy implementations (MoveToRoot, GreedySplay, TwoPassSplay,
// LocalTwoPassSplay, and their Stable variants) decide which rotations to
// perform to bring a node to the root. Forest composes a Tree with a
// Strategy and a node-data hook set into a full dynamic-forest
// implementation.
//
// Complexity: every exported Rotate call is O(1); NodeToRoot/EdgeToTop are
// amortized O(log n) for the splay-based strategies.
package twocut
