package lattice

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvlfst/semiring"
)

// IsDeterministic reports whether no state has two outgoing arcs sharing
// the same input label. Epsilon counts as a label: a state with two
// epsilon-input arcs is non-deterministic.
//
// Complexity: O(states + arcs).
func IsDeterministic[W semiring.Weight[W], L Label](a Automaton[W, L]) bool {
	for s := 0; s < a.NumStates(); s++ {
		id := StateID(s)
		seen := make(map[L]struct{}, a.NumArcs(id))
		for _, arc := range a.Arcs(id) {
			if _, dup := seen[arc.In]; dup {
				return false
			}
			seen[arc.In] = struct{}{}
		}
	}

	return true
}

// IsEmpty reports whether the automaton accepts nothing: it has no start
// state, or no final state is reachable from the start through arcs of
// nonzero weight.
//
// Complexity: O(states + arcs) via breadth-first reachability.
func IsEmpty[W semiring.Weight[W], L Label](a Automaton[W, L]) bool {
	start := a.Start()
	if start == NoStateID || a.NumStates() == 0 {
		return true
	}
	seen := bitset.New(uint(a.NumStates()))
	queue := make([]StateID, 0, 16)
	seen.Set(uint(start))
	queue = append(queue, start)
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if !a.Final(s).IsZero() {
			return false
		}
		for _, arc := range a.Arcs(s) {
			if arc.Weight.IsZero() {
				continue
			}
			if !seen.Test(uint(arc.To)) {
				seen.Set(uint(arc.To))
				queue = append(queue, arc.To)
			}
		}
	}

	return true
}

// Equal reports whether a and b are structurally identical up to delta:
// same start, same state count, final weights ApproxEqual, and the same
// arcs state by state in stored order (labels and destinations exact,
// weights ApproxEqual). It does not detect isomorphism under renumbering;
// sort arcs on both sides first if construction order differs.
func Equal[W semiring.Weight[W], L Label](a, b Automaton[W, L], delta float64) bool {
	if a.NumStates() != b.NumStates() || a.Start() != b.Start() {
		return false
	}
	for s := 0; s < a.NumStates(); s++ {
		id := StateID(s)
		if !a.Final(id).ApproxEqual(b.Final(id), delta) {
			return false
		}
		if a.NumArcs(id) != b.NumArcs(id) {
			return false
		}
		ba := b.Arcs(id)
		for i, arc := range a.Arcs(id) {
			if arc.In != ba[i].In || arc.Out != ba[i].Out || arc.To != ba[i].To {
				return false
			}
			if !arc.Weight.ApproxEqual(ba[i].Weight, delta) {
				return false
			}
		}
	}

	return true
}
