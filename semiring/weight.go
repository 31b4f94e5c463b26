package semiring

// DefaultDelta is the canonical tolerance for approximate weight equality.
// Callers that have no domain-specific tolerance should pass this wherever
// a delta parameter is required.
const DefaultDelta = 1.0 / 1024

// Weight is the capability set a type must provide to act as a lattice
// weight. It is self-referential (W's methods consume and produce W), so
// concrete weights are plain value types and algorithms stay allocation-free.
//
// Contract:
//   - Zero and One are constants of the semiring and may be called on any
//     value, including the zero value of W.
//   - Times is associative with identity One and annihilator Zero.
//   - Plus selects: it returns whichever of the two operands Compares
//     greater (the receiver on ties). It never mixes the operands.
//   - Divide undoes Times: a.Times(b).Divide(b) equals a up to rounding.
//   - Compare returns +1, 0 or -1 and must induce a strict total order.
//     Supplying a weight type without a total order invalidates every
//     correctness guarantee of the algorithms built on it, not merely
//     their performance.
//   - ApproxEqual reports equality within a caller-supplied tolerance and
//     must be reflexive for every delta ≥ 0.
type Weight[W any] interface {
	Zero() W
	One() W
	Times(W) W
	Plus(W) W
	Divide(W) W
	Compare(W) int
	ApproxEqual(other W, delta float64) bool
	IsZero() bool
}
