// Package lattice provides the weighted finite-state automaton model that
// the rest of lvlfst operates on: integer states, labeled weighted arcs,
// per-state final weights, and a distinguished start state.
//
// Two views exist over the same data:
//
//	Automaton — the read-only side: enumerate states, look up final
//	            weights, iterate arcs, query the input-label-sorted hint.
//	Builder   — the mutable side: reset, add states, set the start state,
//	            set final weights, add arcs.
//
// Lattice is the concrete implementation of both. It is generic over the
// weight semiring W and the integer label type L; label 0 is reserved for
// epsilon on both tapes.
//
// CompactWeight bundles a weight with a sequence of labels and is itself a
// weight, which lets an acceptor carry whole output-label strings on
// single arcs (the compact determinization output).
//
// Inspection helpers (IsDeterministic, IsEmpty, Equal) answer the
// questions the determinizer's contracts are stated in.
//
// Lattice is not safe for concurrent mutation; guard it externally or use
// one instance per goroutine.
package lattice

// assert panics with msg when the condition fails. It guards internal
// invariants and index contracts; violations are caller bugs, not
// recoverable runtime conditions.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
