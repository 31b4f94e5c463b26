package semiring

import (
	"fmt"
	"math"
)

// LatticeWeight is the two-component weight carried by speech lattices:
// a graph cost (language model, pronunciation, transition scores) and an
// acoustic cost. Both are negated log-likelihoods, so smaller is better.
//
// Ordering: the weight with the smaller total cost Compares greater.
// Ties on the total are broken on the graph component, where the smaller
// graph cost Compares less. The tie-break is arbitrary but fixed; it only
// exists to keep the order total.
type LatticeWeight struct {
	Graph    float64
	Acoustic float64
}

// NewLatticeWeight returns a weight with the given graph and acoustic costs.
func NewLatticeWeight(graph, acoustic float64) LatticeWeight {
	return LatticeWeight{Graph: graph, Acoustic: acoustic}
}

// LatticeZero returns the annihilator: both components +Inf.
func LatticeZero() LatticeWeight {
	return LatticeWeight{Graph: math.Inf(1), Acoustic: math.Inf(1)}
}

// LatticeOne returns the identity: both components 0.
func LatticeOne() LatticeWeight {
	return LatticeWeight{}
}

// Zero implements Weight.
func (w LatticeWeight) Zero() LatticeWeight { return LatticeZero() }

// One implements Weight.
func (w LatticeWeight) One() LatticeWeight { return LatticeOne() }

// Total is the combined cost used for ordering and approximate equality.
func (w LatticeWeight) Total() float64 { return w.Graph + w.Acoustic }

// IsZero reports whether w is the annihilator.
func (w LatticeWeight) IsZero() bool {
	return math.IsInf(w.Graph, 1) && math.IsInf(w.Acoustic, 1)
}

// Times adds the costs componentwise. Zero annihilates.
func (w LatticeWeight) Times(v LatticeWeight) LatticeWeight {
	if w.IsZero() || v.IsZero() {
		return LatticeZero()
	}

	return LatticeWeight{Graph: w.Graph + v.Graph, Acoustic: w.Acoustic + v.Acoustic}
}

// Divide subtracts v's costs componentwise. A division that does not
// correspond to factoring a previously multiplied weight back out (for
// example Zero divided by Zero) yields Zero.
func (w LatticeWeight) Divide(v LatticeWeight) LatticeWeight {
	g, a := w.Graph-v.Graph, w.Acoustic-v.Acoustic
	if math.IsNaN(g) || math.IsNaN(a) || math.IsInf(g, -1) || math.IsInf(a, -1) {
		return LatticeZero()
	}

	return LatticeWeight{Graph: g, Acoustic: a}
}

// Plus returns the Compare-greater of w and v, the receiver on ties.
func (w LatticeWeight) Plus(v LatticeWeight) LatticeWeight {
	if w.Compare(v) >= 0 {
		return w
	}

	return v
}

// Compare returns +1 if w is greater than v (smaller total cost),
// -1 if less, 0 if equal. Ties on the total are broken on Graph.
func (w LatticeWeight) Compare(v LatticeWeight) int {
	t1, t2 := w.Total(), v.Total()
	switch {
	case t1 < t2:
		return 1
	case t1 > t2:
		return -1
	case w.Graph < v.Graph:
		return -1
	case w.Graph > v.Graph:
		return 1
	default:
		return 0
	}
}

// ApproxEqual reports whether the totals differ by at most delta.
// Exactly equal weights are approx-equal for any delta, including the
// pair of infinities forming Zero.
func (w LatticeWeight) ApproxEqual(v LatticeWeight, delta float64) bool {
	if w.Graph == v.Graph && w.Acoustic == v.Acoustic {
		return true
	}

	return math.Abs(w.Total()-v.Total()) <= delta
}

// String renders the weight as "graph,acoustic".
func (w LatticeWeight) String() string {
	return fmt.Sprintf("%g,%g", w.Graph, w.Acoustic)
}
