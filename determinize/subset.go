package determinize

import (
	"sort"

	"github.com/katalvlaran/lvlfst/lattice"
	"github.com/katalvlaran/lvlfst/semiring"
)

// element is one item of a weighted subset: a source state reached with an
// accumulated output string and weight.
type element[W semiring.Weight[W], L lattice.Label] struct {
	state  lattice.StateID
	str    StringID
	weight W
}

// maxClosureLoop bounds the number of elements processed by one epsilon
// closure. A well-formed lattice never comes close; an epsilon cycle that
// keeps improving its own weight would loop forever without it.
const maxClosureLoop = 500000

// sortSubset orders a subset by source state id, the canonical order the
// subset hash and the duplicate merge rely on.
func sortSubset[W semiring.Weight[W], L lattice.Label](subset []element[W, L]) {
	sort.Slice(subset, func(i, j int) bool { return subset[i].state < subset[j].state })
}

// compareWS imposes the total order on (weight, string) pairs: the weight
// order first; on ties the shorter string is greater, equal lengths
// compare lexicographically. Identical handles short-circuit to 0.
func (d *determinizer[W, L]) compareWS(aw W, as StringID, bw W, bs StringID) int {
	if c := aw.Compare(bw); c != 0 {
		return c
	}
	if as == bs {
		return 0
	}
	al, bl := d.repo.Len(as), d.repo.Len(bs)
	if al != bl {
		if al < bl {
			return 1
		}

		return -1
	}
	av, bv := d.repo.Labels(as), d.repo.Labels(bs)
	for i := range av {
		if av[i] < bv[i] {
			return -1
		}
		if av[i] > bv[i] {
			return 1
		}
	}

	return 0
}

// emittingOrFinal reports whether a source state is final or has an
// outgoing non-epsilon-input arc of nonzero weight. Subset minimization
// keeps exactly these states. The answer is memoized in two bitsets.
func (d *determinizer[W, L]) emittingOrFinal(s lattice.StateID) bool {
	u := uint(s)
	if d.classKnown.Test(u) {
		return d.classValue.Test(u)
	}
	d.classKnown.Set(u)
	if !d.src.Final(s).IsZero() {
		d.classValue.Set(u)

		return true
	}
	for _, arc := range d.src.Arcs(s) {
		if arc.In != lattice.Epsilon && !arc.Weight.IsZero() {
			d.classValue.Set(u)

			return true
		}
	}

	return false
}

// epsilonClosure expands a subset along epsilon-input arcs of nonzero
// weight. When two closure paths reach the same source state, only the
// (weight, string) pair that compares greater survives (ties keep the
// incumbent), and the replacement is re-enqueued for further expansion.
// The input must hold at most one element per state; the result does too,
// in arbitrary order — the caller sorts.
func (d *determinizer[W, L]) epsilonClosure(subset []element[W, L]) ([]element[W, L], error) {
	cur := make(map[lattice.StateID]element[W, L], len(subset))
	queue := make([]element[W, L], 0, len(subset))
	for _, e := range subset {
		cur[e.state] = e
		queue = append(queue, e)
	}
	sorted := d.src.ILabelSorted()
	replaced := false
	counter := 0
	for len(queue) > 0 {
		elem := queue[0]
		queue = queue[1:]
		// Replaced elements leave their stale copies behind in the queue;
		// skip anything that no longer matches the map.
		if replaced {
			have := cur[elem.state]
			if have.str != elem.str || have.weight.Compare(elem.weight) != 0 {
				continue
			}
		}
		counter++
		if counter > maxClosureLoop {
			return nil, ErrEpsilonCycle
		}
		for _, arc := range d.src.Arcs(elem.state) {
			if sorted && arc.In != lattice.Epsilon {
				break // arcs are ordered by input label, no epsilons remain
			}
			if arc.In != lattice.Epsilon || arc.Weight.IsZero() {
				continue
			}
			next := element[W, L]{state: arc.To, weight: elem.weight.Times(arc.Weight)}
			if arc.Out == lattice.Epsilon {
				next.str = elem.str
			} else {
				next.str = d.repo.Successor(elem.str, arc.Out)
			}
			old, ok := cur[next.state]
			if !ok {
				cur[next.state] = next
				queue = append(queue, next)
			} else if d.compareWS(next.weight, next.str, old.weight, old.str) == 1 {
				cur[next.state] = next
				queue = append(queue, next)
				replaced = true
			}
		}
	}
	out := subset[:0]
	for _, e := range cur {
		out = append(out, e)
	}

	return out, nil
}

// convertToMinimal drops every element whose state is neither final nor
// emitting; such states contribute nothing once epsilons are closed over.
func (d *determinizer[W, L]) convertToMinimal(subset []element[W, L]) []element[W, L] {
	out := subset[:0]
	for _, e := range subset {
		if d.emittingOrFinal(e.state) {
			out = append(out, e)
		}
	}

	return out
}

// makeSubsetUnique collapses runs of equal source state in a state-sorted
// subset, keeping the (weight, string) pair that compares greatest.
func (d *determinizer[W, L]) makeSubsetUnique(subset []element[W, L]) []element[W, L] {
	assert(len(subset) == 0 || subset[0].state <= subset[len(subset)-1].state,
		"determinize: makeSubsetUnique on unsorted subset")
	out := subset[:0]
	for i := 0; i < len(subset); {
		best := subset[i]
		j := i + 1
		for ; j < len(subset) && subset[j].state == best.state; j++ {
			if d.compareWS(subset[j].weight, subset[j].str, best.weight, best.str) == 1 {
				best = subset[j]
			}
		}
		out = append(out, best)
		i = j
	}

	return out
}

// normalizeSubset factors the subset: the Plus-total of the weights and
// the longest common prefix of the strings move out, every element keeps
// its remainder. An empty subset normalizes to (empty, Zero); a non-empty
// subset whose total is Zero is malformed input.
func (d *determinizer[W, L]) normalizeSubset(subset []element[W, L]) (StringID, W, error) {
	var unit W
	if len(subset) == 0 {
		tracer().Debugf("normalizing an empty subset")

		return d.repo.EmptyString(), unit.Zero(), nil
	}
	common := d.repo.Labels(subset[0].str)
	tot := subset[0].weight
	for i := 1; i < len(subset); i++ {
		tot = tot.Plus(subset[i].weight)
		common = d.repo.ReduceToCommonPrefix(subset[i].str, common)
	}
	if tot.IsZero() {
		return emptyID, unit.Zero(), ErrZeroWeightSubset
	}
	n := len(common)
	for i := range subset {
		subset[i].weight = subset[i].weight.Divide(tot)
		subset[i].str = d.repo.RemovePrefix(subset[i].str, n)
	}

	return d.repo.Intern(common), tot, nil
}
