// Package weight defines the edge-weight algebra used throughout this
// module: dynamic forests are parameterized over a weight type forming a
// commutative monoid (path weights compose by addition; connectivity-only
// forests use the trivial monoid), and some operations additionally
// require a group (so that, e.g., a link-cut tree can subtract a
// sub-path's weight when reassembling a parent's aggregate).
//
// Complexity: every operation in this package is O(1).
package weight

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Monoid is a commutative monoid: Add must be associative and
// commutative, and Identity (called on any instance, including the zero
// value — Go generics have no class-level static dispatch) must be the
// identity element for Add.
type Monoid[T any] interface {
	comparable

	// Add combines this weight with other.
	Add(other T) T

	// Identity returns the identity element of the monoid. It may be
	// called on the zero value of T.
	Identity() T

	// String renders the weight for diagnostics.
	String() string
}

// Group is a Monoid that additionally supports negation and subtraction.
// Link-cut trees and the 2-cut STT's group-weight node data require this:
// reattaching a subtree means subtracting its old contribution from an
// ancestor's aggregate.
type Group[T any] interface {
	Monoid[T]

	// Neg returns the additive inverse of this weight.
	Neg() T

	// Sub returns this weight minus other (this.Add(other.Neg())).
	Sub(other T) T
}

// Ordered is a Monoid whose values admit a total order, needed by
// MaxEdge and by the online MST builder.
type Ordered[T any] interface {
	Monoid[T]

	// Less reports whether this weight is strictly less than other.
	Less(other T) bool
}

// Empty is the one-element monoid/group: useful for connectivity-only
// forests that never need a real edge weight.
type Empty struct{}

// Add returns the identity (Empty has only one element).
func (Empty) Add(Empty) Empty { return Empty{} }

// Identity returns the (only) element of Empty.
func (Empty) Identity() Empty { return Empty{} }

// Neg returns the identity (Empty has only one element).
func (Empty) Neg() Empty { return Empty{} }

// Sub returns the identity (Empty has only one element).
func (Empty) Sub(Empty) Empty { return Empty{} }

// String renders Empty as the empty string, matching the Rust Display
// impl for EmptyGroupWeight.
func (Empty) String() string { return "" }

// SignedAdd is the group (Z, +): weights are signed integers, combined by
// addition. This is the edge-weight type used whenever path weights need
// to be genuinely summed and subtracted (e.g. link-cut tree path queries,
// online MST comparisons expressed via subtraction).
type SignedAdd[T constraints.Signed] struct {
	value T
}

// NewSignedAdd constructs a weight with the given value.
func NewSignedAdd[T constraints.Signed](value T) SignedAdd[T] { return SignedAdd[T]{value: value} }

// Value returns the underlying numeric value.
func (w SignedAdd[T]) Value() T { return w.value }

// Add returns w + other.
func (w SignedAdd[T]) Add(other SignedAdd[T]) SignedAdd[T] {
	return SignedAdd[T]{value: w.value + other.value}
}

// Identity returns the additive identity, 0.
func (SignedAdd[T]) Identity() SignedAdd[T] { return SignedAdd[T]{} }

// Neg returns -w.
func (w SignedAdd[T]) Neg() SignedAdd[T] { return SignedAdd[T]{value: -w.value} }

// Sub returns w - other.
func (w SignedAdd[T]) Sub(other SignedAdd[T]) SignedAdd[T] { return w.Add(other.Neg()) }

// Less reports whether w < other.
func (w SignedAdd[T]) Less(other SignedAdd[T]) bool { return w.value < other.value }

// String renders the underlying numeric value.
func (w SignedAdd[T]) String() string { return fmt.Sprintf("%v", w.value) }

// UnsignedMax is the monoid (N, max): weights are unsigned integers,
// combined by taking the maximum. This is the "longest edge on a path"
// monoid used by the online MST builder.
type UnsignedMax[T constraints.Unsigned] struct {
	value T
}

// NewUnsignedMax constructs a weight with the given value.
func NewUnsignedMax[T constraints.Unsigned](value T) UnsignedMax[T] {
	return UnsignedMax[T]{value: value}
}

// Value returns the underlying numeric value.
func (w UnsignedMax[T]) Value() T { return w.value }

// Add returns max(w, other).
func (w UnsignedMax[T]) Add(other UnsignedMax[T]) UnsignedMax[T] {
	if w.value > other.value {
		return w
	}
	return other
}

// Identity returns the identity of (N, max), which is 0.
func (UnsignedMax[T]) Identity() UnsignedMax[T] { return UnsignedMax[T]{} }

// Less reports whether w < other.
func (w UnsignedMax[T]) Less(other UnsignedMax[T]) bool { return w.value < other.value }

// String renders the underlying numeric value.
func (w UnsignedMax[T]) String() string { return fmt.Sprintf("%v", w.value) }
