package lattice

import (
	"errors"

	"github.com/katalvlaran/lvlfst/semiring"
)

// Epsilon is the reserved label value meaning "no symbol" on either tape.
const Epsilon = 0

// Label constrains the integer types usable as arc labels. Symbol tables
// map labels to human-readable symbols elsewhere; the automaton itself
// only ever sees integers.
type Label interface {
	~int | ~int32 | ~int64
}

// StateID identifies a state within one automaton.
type StateID int32

// NoStateID is the sentinel for "no such state": the start of an empty
// automaton, or the destination marker of a final-weight pseudo-arc.
const NoStateID StateID = -1

// Arc is one transition: an input label, an output label, a weight, and a
// destination state. Epsilon on In means the arc consumes no input symbol;
// Epsilon on Out means it emits none.
type Arc[W semiring.Weight[W], L Label] struct {
	In     L
	Out    L
	Weight W
	To     StateID
}

// Automaton is the read-only view consumed by algorithms. Implementations
// must return Zero from Final for non-final states and may return true
// from ILabelSorted only when every state's arcs are sorted by In; the
// hint is used purely as a performance optimization.
type Automaton[W semiring.Weight[W], L Label] interface {
	// Start returns the start state, or NoStateID for an empty automaton.
	Start() StateID
	// NumStates returns the number of states; ids are 0..NumStates-1.
	NumStates() int
	// Final returns the final weight of s, Zero when s is not final.
	Final(s StateID) W
	// NumArcs returns the number of arcs leaving s.
	NumArcs(s StateID) int
	// Arcs returns a read-only view of the arcs leaving s. Callers must
	// not mutate the returned slice.
	Arcs(s StateID) []Arc[W, L]
	// ILabelSorted reports whether every state's arcs are sorted by In.
	ILabelSorted() bool
}

// Builder is the mutable view used to materialize a new automaton.
type Builder[W semiring.Weight[W], L Label] interface {
	// Reset removes all states and clears the start state.
	Reset()
	// AddState appends a new state and returns its id.
	AddState() StateID
	// SetStart makes s the start state; NoStateID clears it.
	SetStart(s StateID) error
	// SetFinal sets the final weight of s; Zero makes s non-final.
	SetFinal(s StateID, w W) error
	// AddArc appends an arc leaving s.
	AddArc(s StateID, a Arc[W, L]) error
}

// ErrStateRange is returned by Builder methods when a state id is outside
// 0..NumStates-1.
var ErrStateRange = errors.New("lattice: state id out of range")
