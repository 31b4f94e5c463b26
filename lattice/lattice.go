package lattice

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlfst/semiring"
)

// latticeState holds one state's outgoing arcs and final weight.
type latticeState[W semiring.Weight[W], L Label] struct {
	arcs  []Arc[W, L]
	final W
}

// Lattice is the concrete weighted automaton. States are dense integers in
// creation order; arcs live in per-state append-order slices. The zero
// value is not usable; construct with New.
type Lattice[W semiring.Weight[W], L Label] struct {
	states []latticeState[W, L]
	start  StateID
	sorted bool // every state's arcs currently ordered by In
	zero   W
}

// New returns an empty lattice: no states, no start, vacuously
// input-label-sorted.
func New[W semiring.Weight[W], L Label]() *Lattice[W, L] {
	var w W

	return &Lattice[W, L]{start: NoStateID, sorted: true, zero: w.Zero()}
}

// Reset removes all states and clears the start state.
func (l *Lattice[W, L]) Reset() {
	l.states = l.states[:0]
	l.start = NoStateID
	l.sorted = true
}

// AddState appends a new state with no arcs and a Zero final weight,
// returning its id.
func (l *Lattice[W, L]) AddState() StateID {
	l.states = append(l.states, latticeState[W, L]{final: l.zero})

	return StateID(len(l.states) - 1)
}

// SetStart makes s the start state; NoStateID clears it.
func (l *Lattice[W, L]) SetStart(s StateID) error {
	if s != NoStateID && !l.valid(s) {
		return fmt.Errorf("%w: SetStart(%d) with %d states", ErrStateRange, s, len(l.states))
	}
	l.start = s

	return nil
}

// SetFinal sets the final weight of s; Zero makes s non-final.
func (l *Lattice[W, L]) SetFinal(s StateID, w W) error {
	if !l.valid(s) {
		return fmt.Errorf("%w: SetFinal(%d) with %d states", ErrStateRange, s, len(l.states))
	}
	l.states[s].final = w

	return nil
}

// AddArc appends an arc leaving s. Both s and a.To must already exist.
func (l *Lattice[W, L]) AddArc(s StateID, a Arc[W, L]) error {
	if !l.valid(s) {
		return fmt.Errorf("%w: AddArc from %d with %d states", ErrStateRange, s, len(l.states))
	}
	if !l.valid(a.To) {
		return fmt.Errorf("%w: AddArc to %d with %d states", ErrStateRange, a.To, len(l.states))
	}
	arcs := l.states[s].arcs
	if len(arcs) > 0 && a.In < arcs[len(arcs)-1].In {
		l.sorted = false
	}
	l.states[s].arcs = append(arcs, a)

	return nil
}

// Start returns the start state, or NoStateID when unset.
func (l *Lattice[W, L]) Start() StateID { return l.start }

// NumStates returns the number of states.
func (l *Lattice[W, L]) NumStates() int { return len(l.states) }

// Final returns the final weight of s, Zero for non-final states.
func (l *Lattice[W, L]) Final(s StateID) W {
	assert(l.valid(s), "lattice: Final on state out of range")

	return l.states[s].final
}

// NumArcs returns the number of arcs leaving s.
func (l *Lattice[W, L]) NumArcs(s StateID) int {
	assert(l.valid(s), "lattice: NumArcs on state out of range")

	return len(l.states[s].arcs)
}

// Arcs returns a read-only view of the arcs leaving s; callers must not
// mutate it. The view is invalidated by the next AddArc or SortArcs.
func (l *Lattice[W, L]) Arcs(s StateID) []Arc[W, L] {
	assert(l.valid(s), "lattice: Arcs on state out of range")

	return l.states[s].arcs
}

// ILabelSorted reports whether every state's arcs are ordered by In.
// Appending arcs in order keeps it true; one out-of-order AddArc clears
// it until SortArcs runs.
func (l *Lattice[W, L]) ILabelSorted() bool { return l.sorted }

// SortArcs orders every state's arcs by (In, Out, To) and restores the
// input-label-sorted property.
func (l *Lattice[W, L]) SortArcs() {
	for i := range l.states {
		arcs := l.states[i].arcs
		sort.Slice(arcs, func(a, b int) bool {
			if arcs[a].In != arcs[b].In {
				return arcs[a].In < arcs[b].In
			}
			if arcs[a].Out != arcs[b].Out {
				return arcs[a].Out < arcs[b].Out
			}

			return arcs[a].To < arcs[b].To
		})
	}
	l.sorted = true
}

func (l *Lattice[W, L]) valid(s StateID) bool {
	return s >= 0 && int(s) < len(l.states)
}
