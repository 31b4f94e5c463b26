package determinize

import (
	"github.com/katalvlaran/lvlfst/lattice"
)

// freeConstructionState drops everything the flush no longer needs: the
// hash tables, subsets, worklist, memos and scratch. The repository and
// the buffered arcs stay; the repository is torn down only after the last
// arc's string has been read back.
func (d *determinizer[W, L]) freeConstructionState() {
	d.minimalHash = nil
	d.initialHash = nil
	d.subsets = nil
	d.queue = nil
	d.trace = nil
	d.classKnown = nil
	d.classValue = nil
	d.cands = nil
	d.group = nil
}

// emitExpanded flushes the buffered arcs into dst as a scalar-weighted
// automaton. A temp arc whose string holds L > 1 labels is unrolled into
// a chain of L-1 fresh states joined by epsilon-input links; the arc's
// weight and input label ride on the first link and One on the rest.
// Final sentinels unroll the same way and end in a real final state.
// Internal storage is released as states flush; the engine is spent
// afterwards.
func (d *determinizer[W, L]) emitExpanded(dst lattice.Builder[W, L]) error {
	assert(d.determinized, "determinize: emit before the run completed")
	d.determinized = false
	d.freeConstructionState()

	var unit W
	one := unit.One()
	dst.Reset()
	n := len(d.arcs)
	if n == 0 {
		return nil // empty input determinizes to the empty automaton
	}
	for s := 0; s < n; s++ {
		dst.AddState()
	}
	if err := dst.SetStart(0); err != nil {
		return err
	}
	for s := 0; s < n; s++ {
		state := lattice.StateID(s)
		for _, ta := range d.arcs[s] {
			seq := d.repo.Labels(ta.str)
			if ta.dest == lattice.NoStateID {
				// Final sentinel: epsilon-input chain, weight on the first
				// link, then an actual final state.
				cur := state
				for i, lab := range seq {
					next := dst.AddState()
					w := one
					if i == 0 {
						w = ta.weight
					}
					if err := dst.AddArc(cur, lattice.Arc[W, L]{In: lattice.Epsilon, Out: lab, Weight: w, To: next}); err != nil {
						return err
					}
					cur = next
				}
				fw := one
				if len(seq) == 0 {
					fw = ta.weight
				}
				if err := dst.SetFinal(cur, fw); err != nil {
					return err
				}
				continue
			}
			// Real arc: all but the last label get a fresh chain state.
			cur := state
			for i := 0; i+1 < len(seq); i++ {
				next := dst.AddState()
				arc := lattice.Arc[W, L]{In: lattice.Epsilon, Out: seq[i], Weight: one, To: next}
				if i == 0 {
					arc.In = ta.in
					arc.Weight = ta.weight
				}
				if err := dst.AddArc(cur, arc); err != nil {
					return err
				}
				cur = next
			}
			last := lattice.Arc[W, L]{In: lattice.Epsilon, Out: lattice.Epsilon, Weight: one, To: ta.dest}
			if len(seq) <= 1 {
				last.In = ta.in
				last.Weight = ta.weight
			}
			if len(seq) > 0 {
				last.Out = seq[len(seq)-1]
			}
			if err := dst.AddArc(cur, last); err != nil {
				return err
			}
		}
		d.arcs[s] = nil
	}
	d.arcs = nil
	d.repo.Reset()

	return nil
}

// emitCompact flushes the buffered arcs into dst as an acceptor whose
// weights bundle (weight, label string) pairs. One output arc per temp
// arc, one final weight per sentinel. Internal storage is released as
// states flush; the engine is spent afterwards.
func (d *determinizer[W, L]) emitCompact(dst lattice.Builder[lattice.CompactWeight[W, L], L]) error {
	assert(d.determinized, "determinize: emit before the run completed")
	d.determinized = false
	d.freeConstructionState()

	dst.Reset()
	n := len(d.arcs)
	if n == 0 {
		return nil // empty input determinizes to the empty automaton
	}
	for s := 0; s < n; s++ {
		dst.AddState()
	}
	if err := dst.SetStart(0); err != nil {
		return err
	}
	for s := 0; s < n; s++ {
		state := lattice.StateID(s)
		for _, ta := range d.arcs[s] {
			cw := lattice.CompactWeight[W, L]{Weight: ta.weight, Labels: d.repo.Labels(ta.str)}
			if ta.dest == lattice.NoStateID {
				if err := dst.SetFinal(state, cw); err != nil {
					return err
				}
				continue
			}
			arc := lattice.Arc[lattice.CompactWeight[W, L], L]{In: ta.in, Out: ta.in, Weight: cw, To: ta.dest}
			if err := dst.AddArc(state, arc); err != nil {
				return err
			}
		}
		d.arcs[s] = nil
	}
	d.arcs = nil
	d.repo.Reset()

	return nil
}
