package determinize

import (
	"github.com/katalvlaran/lvlfst/lattice"
	"github.com/katalvlaran/lvlfst/semiring"
)

// Determinize builds into dst a deterministic, epsilon-free automaton
// equivalent to src under best-path semantics: for every input label
// sequence src accepts, dst accepts it with the Compare-greatest
// (weight, output-label string) pair among src's paths, within delta.
//
// dst keeps the same scalar weight type as src, so an output string
// longer than one label is unrolled into a chain of epsilon-input
// states carrying successive output labels. Use DeterminizeCompact to
// keep one arc per transition instead.
//
// delta is the tolerance under which two weights count as equal when
// subsets are deduplicated; it must be positive, and
// semiring.DefaultDelta is the conventional choice. src and dst must be
// distinct objects. dst is rebuilt from scratch and holds no meaningful
// result unless Determinize returns nil.
//
// Errors: ErrNilAutomaton, ErrAliased, ErrBadDelta and
// ErrOptionViolation report bad parameters. ErrStateLimit reports that
// WithMaxStates was exceeded, and the context error reports
// cancellation through WithContext. ErrEpsilonCycle and
// ErrZeroWeightSubset report source automata the algorithm cannot
// determinize.
//
// Complexity: worst case exponential in src's state count, as for any
// determinization; near-linear in the output size for typical acyclic
// recognition lattices.
func Determinize[W semiring.Weight[W], L lattice.Label](
	src lattice.Automaton[W, L],
	dst lattice.Builder[W, L],
	delta float64,
	opts ...Option,
) error {
	d, err := newDeterminizer[W, L](src, dst, delta, opts)
	if err != nil {
		return err
	}
	if err = d.run(); err != nil {
		return err
	}

	return d.emitExpanded(dst)
}

// DeterminizeCompact is Determinize with the compact output shape: dst
// is an acceptor whose weights bundle the scalar weight together with
// the whole output-label string, one arc per determinized transition.
// Nothing is unrolled, so dst has exactly as many states as the
// determinization discovers. Parameters, options and errors match
// Determinize.
func DeterminizeCompact[W semiring.Weight[W], L lattice.Label](
	src lattice.Automaton[W, L],
	dst lattice.Builder[lattice.CompactWeight[W, L], L],
	delta float64,
	opts ...Option,
) error {
	d, err := newDeterminizer[W, L](src, dst, delta, opts)
	if err != nil {
		return err
	}
	if err = d.run(); err != nil {
		return err
	}

	return d.emitCompact(dst)
}
