package weight

import "fmt"

// OrInfinity wraps a Monoid weight with an additional point at infinity,
// used by the node-data payloads of twocut, linkcut and oneforest to treat
// "no parent edge" uniformly with "an edge of infinite weight" rather than
// returning an Option at every call site.
type OrInfinity[T Monoid[T]] struct {
	finite bool
	value  T
}

// Finite wraps a finite weight.
func Finite[T Monoid[T]](v T) OrInfinity[T] { return OrInfinity[T]{finite: true, value: v} }

// Infinite returns the point at infinity.
func Infinite[T Monoid[T]]() OrInfinity[T] { return OrInfinity[T]{} }

// IsFinite reports whether this value is finite.
func (w OrInfinity[T]) IsFinite() bool { return w.finite }

// Identity returns the finite identity of the wrapped monoid.
func (OrInfinity[T]) Identity() OrInfinity[T] {
	var zero T
	return Finite[T](zero.Identity())
}

// Unwrap returns the finite value. Panics if w is infinite.
func (w OrInfinity[T]) Unwrap() T {
	if !w.finite {
		panic("weight: cannot unwrap infinite weight")
	}
	return w.value
}

// Add combines two OrInfinity values: infinity absorbs any operand.
func (w OrInfinity[T]) Add(other OrInfinity[T]) OrInfinity[T] {
	if w.finite && other.finite {
		return Finite[T](w.value.Add(other.value))
	}
	return Infinite[T]()
}

// AddWeight adds a finite T weight, preserving infinity if w is infinite.
func (w OrInfinity[T]) AddWeight(other T) OrInfinity[T] {
	if !w.finite {
		return w
	}
	return Finite[T](w.value.Add(other))
}

// String renders "∞" for the infinite value, or the finite weight's own
// rendering otherwise.
func (w OrInfinity[T]) String() string {
	if !w.finite {
		return "∞"
	}
	return fmt.Sprintf("%v", w.value)
}

// SubWeight subtracts a finite group weight, preserving infinity if w is
// infinite. Only meaningful when T is actually a Group; callers that need
// this pass a T implementing Group and call other.Neg() themselves, since
// Go cannot express "T implements both Monoid and Group" as a single
// method set without a second type parameter — this helper takes the
// already-negated value to keep OrInfinity itself Monoid-only.
func (w OrInfinity[T]) SubWeight(otherNeg T) OrInfinity[T] {
	return w.AddWeight(otherNeg)
}

// Less orders OrInfinity values when T is Ordered: infinity is greater
// than every finite value, and equal to itself.
func Less[T Ordered[T]](a, b OrInfinity[T]) bool {
	switch {
	case a.finite && b.finite:
		return a.value.Less(b.value)
	case a.finite && !b.finite:
		return true
	default:
		return false
	}
}
