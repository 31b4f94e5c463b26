package determinize

import "errors"

// Sentinel errors for determinization runs.
var (
	// ErrNilAutomaton is returned when the source or destination is nil.
	ErrNilAutomaton = errors.New("determinize: automaton is nil")

	// ErrAliased is returned when the source and destination are the same
	// object; in-place determinization is not supported.
	ErrAliased = errors.New("determinize: source and destination are aliased")

	// ErrBadDelta is returned when the comparison tolerance is not a
	// positive finite number.
	ErrBadDelta = errors.New("determinize: delta must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("determinize: invalid option supplied")

	// ErrZeroWeightSubset is returned when a non-empty subset sums to the
	// semiring Zero during normalization; it indicates Zero-weight arcs or
	// final weights leaking into the input.
	ErrZeroWeightSubset = errors.New("determinize: subset total weight is Zero")

	// ErrStateLimit is returned when the output exceeds the WithMaxStates
	// cap. Pathological inputs can grow without bound; the cap turns that
	// systemic risk into a recoverable failure.
	ErrStateLimit = errors.New("determinize: output state limit exceeded")

	// ErrEpsilonCycle is returned when an epsilon closure fails to
	// converge, which happens when the input contains an epsilon cycle
	// that keeps improving its own weight.
	ErrEpsilonCycle = errors.New("determinize: divergent epsilon cycle")
)
