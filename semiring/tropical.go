package semiring

import (
	"fmt"
	"math"
)

// TropicalWeight is a single-cost weight: a negated log-probability where
// smaller is better. It is the one-component degenerate case of
// LatticeWeight and mainly serves acceptors that carry no acoustic score.
type TropicalWeight float64

// NewTropicalWeight returns a weight with the given cost.
func NewTropicalWeight(cost float64) TropicalWeight { return TropicalWeight(cost) }

// TropicalZero returns the annihilator, +Inf.
func TropicalZero() TropicalWeight { return TropicalWeight(math.Inf(1)) }

// TropicalOne returns the identity, 0.
func TropicalOne() TropicalWeight { return 0 }

// Zero implements Weight.
func (w TropicalWeight) Zero() TropicalWeight { return TropicalZero() }

// One implements Weight.
func (w TropicalWeight) One() TropicalWeight { return 0 }

// Value returns the cost as a plain float64.
func (w TropicalWeight) Value() float64 { return float64(w) }

// IsZero reports whether w is the annihilator.
func (w TropicalWeight) IsZero() bool { return math.IsInf(float64(w), 1) }

// Times adds the costs. Zero annihilates.
func (w TropicalWeight) Times(v TropicalWeight) TropicalWeight {
	if w.IsZero() || v.IsZero() {
		return TropicalZero()
	}

	return w + v
}

// Divide subtracts v's cost; a division that does not factor a previously
// multiplied weight back out yields Zero.
func (w TropicalWeight) Divide(v TropicalWeight) TropicalWeight {
	r := float64(w) - float64(v)
	if math.IsNaN(r) || math.IsInf(r, -1) {
		return TropicalZero()
	}

	return TropicalWeight(r)
}

// Plus returns the Compare-greater of w and v, the receiver on ties.
func (w TropicalWeight) Plus(v TropicalWeight) TropicalWeight {
	if w.Compare(v) >= 0 {
		return w
	}

	return v
}

// Compare returns +1 if w has the smaller cost, -1 if the larger, 0 on equality.
func (w TropicalWeight) Compare(v TropicalWeight) int {
	switch {
	case w < v:
		return 1
	case w > v:
		return -1
	default:
		return 0
	}
}

// ApproxEqual reports whether the costs differ by at most delta.
func (w TropicalWeight) ApproxEqual(v TropicalWeight, delta float64) bool {
	if w == v {
		return true
	}

	return math.Abs(float64(w)-float64(v)) <= delta
}

// String renders the cost.
func (w TropicalWeight) String() string { return fmt.Sprintf("%g", float64(w)) }
