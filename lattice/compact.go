package lattice

import (
	"fmt"

	"github.com/katalvlaran/lvlfst/semiring"
)

// CompactWeight bundles a weight with a sequence of output labels, and is
// itself a weight. An acceptor over CompactWeight can carry a whole
// output-label string on a single arc, which is how the compact
// determinization output represents strings without chain states.
//
// Ordering: the inner weights are compared first; on ties the SHORTER
// label sequence is greater, and equal-length sequences compare
// lexicographically (a smaller label is less). The string rules exist only
// to keep the order total; the inner weight always dominates.
//
// The Labels slice is treated as immutable: operations never mutate an
// operand's slice, and callers must not modify a slice they handed in or
// received.
type CompactWeight[W semiring.Weight[W], L Label] struct {
	Weight W
	Labels []L
}

// Zero implements semiring.Weight. The canonical Zero has no labels, but
// any compact weight whose inner weight is Zero behaves as Zero.
func (c CompactWeight[W, L]) Zero() CompactWeight[W, L] {
	var w W

	return CompactWeight[W, L]{Weight: w.Zero()}
}

// One implements semiring.Weight: the identity weight and the empty string.
func (c CompactWeight[W, L]) One() CompactWeight[W, L] {
	var w W

	return CompactWeight[W, L]{Weight: w.One()}
}

// IsZero reports whether the inner weight is Zero; the labels carry no
// information once a path is unreachable.
func (c CompactWeight[W, L]) IsZero() bool { return c.Weight.IsZero() }

// Times multiplies the inner weights and concatenates the label sequences.
// Zero annihilates without concatenating.
func (c CompactWeight[W, L]) Times(v CompactWeight[W, L]) CompactWeight[W, L] {
	w := c.Weight.Times(v.Weight)
	if w.IsZero() {
		return c.Zero()
	}
	labels := make([]L, 0, len(c.Labels)+len(v.Labels))
	labels = append(labels, c.Labels...)
	labels = append(labels, v.Labels...)

	return CompactWeight[W, L]{Weight: w, Labels: labels}
}

// Divide factors v back out of c: the inner weights divide, and v's labels
// must be a prefix of c's, which the result drops. Dividing Zero yields
// Zero; dividing BY Zero is a caller bug.
func (c CompactWeight[W, L]) Divide(v CompactWeight[W, L]) CompactWeight[W, L] {
	assert(!v.IsZero(), "lattice: CompactWeight division by Zero")
	if c.IsZero() {
		return c.Zero()
	}
	assert(len(v.Labels) <= len(c.Labels), "lattice: CompactWeight divisor labels are not a prefix")
	for i, l := range v.Labels {
		assert(c.Labels[i] == l, "lattice: CompactWeight divisor labels are not a prefix")
	}
	rest := make([]L, len(c.Labels)-len(v.Labels))
	copy(rest, c.Labels[len(v.Labels):])

	return CompactWeight[W, L]{Weight: c.Weight.Divide(v.Weight), Labels: rest}
}

// Plus returns the Compare-greater of c and v, the receiver on ties.
func (c CompactWeight[W, L]) Plus(v CompactWeight[W, L]) CompactWeight[W, L] {
	if c.Compare(v) >= 0 {
		return c
	}

	return v
}

// Compare orders by inner weight, then shorter-sequence-greater, then
// lexicographically on the labels.
func (c CompactWeight[W, L]) Compare(v CompactWeight[W, L]) int {
	if cw := c.Weight.Compare(v.Weight); cw != 0 {
		return cw
	}
	if len(c.Labels) != len(v.Labels) {
		if len(c.Labels) < len(v.Labels) {
			return 1
		}

		return -1
	}
	for i := range c.Labels {
		if c.Labels[i] < v.Labels[i] {
			return -1
		}
		if c.Labels[i] > v.Labels[i] {
			return 1
		}
	}

	return 0
}

// ApproxEqual requires identical label sequences and inner weights equal
// within delta.
func (c CompactWeight[W, L]) ApproxEqual(v CompactWeight[W, L], delta float64) bool {
	if len(c.Labels) != len(v.Labels) {
		return false
	}
	for i := range c.Labels {
		if c.Labels[i] != v.Labels[i] {
			return false
		}
	}

	return c.Weight.ApproxEqual(v.Weight, delta)
}

// String renders the weight as "inner|l1 l2 ...".
func (c CompactWeight[W, L]) String() string {
	return fmt.Sprintf("%v|%v", c.Weight, c.Labels)
}
