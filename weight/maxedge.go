package weight

import (
	"fmt"

	"github.com/katalvlaran/stt/nodeidx"
)

// Edge is an unordered pair of nodes, used to tag the maximum-weight edge
// tracked by MaxEdge.
type Edge struct {
	U, V nodeidx.NodeIdx
}

// MaxEdge augments an Ordered sub-monoid with a representative edge: the
// monoid operation behaves like the sub-monoid's own Add, but additionally
// retains whichever operand's edge belongs to the larger value. This is
// the weight type the online incremental MST builder aggregates path
// weights with, so that "the heaviest edge on this path" can be read off
// in O(1) after a path-weight query.
//
// The identity element carries the sub-monoid's identity and no edge.
type MaxEdge[T Ordered[T]] struct {
	value   T
	edge    Edge
	hasEdge bool
}

// NewMaxEdge constructs a (non-identity) MaxEdge weight for a single edge.
func NewMaxEdge[T Ordered[T]](value T, edge Edge) MaxEdge[T] {
	return MaxEdge[T]{value: value, edge: edge, hasEdge: true}
}

// Weight returns the underlying sub-monoid weight.
func (w MaxEdge[T]) Weight() T { return w.value }

// Edge returns the maximum-weight edge tracked by this value. Panics if w
// is the identity (no edge has been recorded).
func (w MaxEdge[T]) Edge() Edge {
	if !w.hasEdge {
		panic("weight: MaxEdge.Edge() called on the identity value")
	}
	return w.edge
}

// HasEdge reports whether w carries a real edge (false only for identity).
func (w MaxEdge[T]) HasEdge() bool { return w.hasEdge }

// Add combines two MaxEdge values, keeping the edge belonging to whichever
// operand has the larger underlying weight (ties keep the right operand's
// edge, matching the Rust `self.value > rhs.value` comparison).
func (w MaxEdge[T]) Add(other MaxEdge[T]) MaxEdge[T] {
	combined := w.value.Add(other.value)
	if other.value.Less(w.value) || !other.hasEdge {
		return MaxEdge[T]{value: combined, edge: w.edge, hasEdge: w.hasEdge}
	}
	return MaxEdge[T]{value: combined, edge: other.edge, hasEdge: other.hasEdge}
}

// Identity returns the sub-monoid's identity weight with no edge.
func (MaxEdge[T]) Identity() MaxEdge[T] {
	var zero T
	return MaxEdge[T]{value: zero.Identity()}
}

// String renders "value(u,v)", or "value(-)" for the identity.
func (w MaxEdge[T]) String() string {
	if !w.hasEdge {
		return fmt.Sprintf("%v(-)", w.value)
	}
	return fmt.Sprintf("%v(%s,%s)", w.value, w.edge.U, w.edge.V)
}
