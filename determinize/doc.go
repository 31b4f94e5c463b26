/*
Package determinize turns a weighted lattice into an equivalent
deterministic acceptor: afterwards no state has two outgoing arcs with the
same input label, and for every accepted input sequence the best-scoring
(weight, output-label string) pair survives.

How it works

The engine performs on-the-fly subset construction. Each output state
stands for a set of (source state, output string, weight) elements — the
preimage of the input prefix that leads there. Subsets are epsilon-closed,
reduced to their final-or-emitting states, and normalized by factoring the
total weight and the common output-string prefix onto the incoming arc.
Output strings are interned in a prefix-sharing StringRepository so that
label sequences accumulate in O(1) per appended label.

Weights combine along paths with Times; alternatives combine by SELECTION:
whenever two paths reach the same source state, only the pair that
Compares greater survives. Nothing is ever summed. Two subsets are
considered the same output state when their states and strings match
exactly and their weights match within the caller's delta.

Two output shapes are available:

	Determinize        — scalar weights; multi-label strings unroll into
	                     chains of epsilon-input arcs.
	DeterminizeCompact — CompactWeight arcs; each arc carries its whole
	                     string, input label == output label (acceptor).

Both release the engine's working memory as arcs are flushed, so one run
can process lattices whose intermediate state would otherwise dominate
peak memory.

Cancellation and limits

The worklist loop checks the context once per iteration and returns its
error on cancellation. WithMaxStates caps output growth (ErrStateLimit);
WithDiagnostic observes progress, including an on-demand traceback of the
label path to the state being expanded.

Complexity: worst case exponential in input states, as for any
determinization; in practice linear-ish for acyclic speech lattices.
Memory is O(live subsets + interned strings).
*/
package determinize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lvlfst.determinize'
func tracer() tracing.Trace {
	return tracing.Select("lvlfst.determinize")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
