// Package genforest provides randomized-forest and randomized-edge
// generators for property tests: random rooted trees, random one-cut
// search trees, random edges, and a handful of default random-weight
// generators for the weight types this module ships.
//
// It is test-support code, not part of any public API: every generator
// takes an explicit *fuzz.Fuzzer, so callers control (and can reproduce)
// the randomness.
package genforest
