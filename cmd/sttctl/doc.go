// Command sttctl reads a query file in the line-oriented format described
// by spec.md §6.3 and executes it against a chosen dynamic-forest
// implementation, reporting per-query wall time.
//
// It replaces the Rust stt-benchmarks crate's bench_util query harness: the
// same four file kinds (fd_con, con, lca, mst), the same "pick an
// implementation, run the query stream, time it" shape, ported to a small
// Cobra CLI instead of a criterion benchmark binary.
package main
