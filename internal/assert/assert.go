// Package assert implements the programmer-error regime: preconditions
// whose violation is a bug in the caller, not a reportable runtime
// condition. It mirrors the Rust implementation's debug_assert!/panic!
// calls guarding internal invariants (double link, cut on a node with no
// parent, etc.) — these never surface as a Go error value.
package assert

import "fmt"

// Invariant panics with a formatted message if cond is false. Call sites
// read like the Rust debug_assert! they replace: a precondition that must
// hold for the caller's request to make sense at all.
func Invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
