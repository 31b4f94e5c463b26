package determinize

import (
	"fmt"
	"math"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvlfst/lattice"
	"github.com/katalvlaran/lvlfst/semiring"
)

// Multipliers of the polynomial subset hash. Weights never enter the
// hash: equality between subsets is delta-tolerant in the weights, so
// hashing them would scatter equal subsets across buckets.
const (
	subsetHashMult = 103333
	stringHashMult = 23531
)

// tempArc is one buffered output transition. dest == lattice.NoStateID
// marks a final weight rather than a real arc.
type tempArc[W semiring.Weight[W], L lattice.Label] struct {
	in     L
	dest   lattice.StateID
	str    StringID
	weight W
}

// minimalEntry maps a registered minimal, normalized subset to its output
// state id. Entries in one bucket share a hash and are told apart by the
// delta-tolerant subset equality.
type minimalEntry[W semiring.Weight[W], L lattice.Label] struct {
	subset []element[W, L]
	id     lattice.StateID
}

// initialEntry caches the resolution of one raw (pre-closure, normalized)
// subset: the output state it leads to plus the extra weight and string
// its own closure and normalization factored out.
type initialEntry[W semiring.Weight[W], L lattice.Label] struct {
	subset []element[W, L]
	state  lattice.StateID
	weight W
	str    StringID
}

// candidate pairs an input label with the successor element one source
// arc produces; processTransitions groups candidates by label.
type candidate[W semiring.Weight[W], L lattice.Label] struct {
	in   L
	elem element[W, L]
}

// traceEntry records how an output state was first discovered, for the
// diagnostic traceback. Tracked only when a Diagnostic callback is set.
type traceEntry[L lattice.Label] struct {
	parent lattice.StateID
	in     L
	str    StringID
}

// determinizer holds the working state of one run. One instance serves
// exactly one source automaton and is discarded afterwards.
type determinizer[W semiring.Weight[W], L lattice.Label] struct {
	src   lattice.Automaton[W, L]
	repo  *StringRepository[L]
	delta float64
	opts  DeterminizeOptions

	minimalHash map[uint64][]minimalEntry[W, L]
	initialHash map[uint64][]initialEntry[W, L]

	subsets [][]element[W, L] // minimal subset per output state
	arcs    [][]tempArc[W, L] // buffered arcs per output state
	queue   []lattice.StateID // LIFO worklist of unexpanded output states
	trace   []traceEntry[L]   // discovery provenance, nil unless tracked

	classKnown *bitset.BitSet // emittingOrFinal memo: answer computed
	classValue *bitset.BitSet // emittingOrFinal memo: answer

	// scratch buffers reused across worklist iterations
	cands []candidate[W, L]
	group []element[W, L]

	numArcs      int
	determinized bool
}

// newDeterminizer validates the run parameters and builds an engine.
// dst is only inspected for aliasing; emission binds it later.
func newDeterminizer[W semiring.Weight[W], L lattice.Label](
	src lattice.Automaton[W, L],
	dst any,
	delta float64,
	opts []Option,
) (*determinizer[W, L], error) {
	if src == nil || dst == nil {
		return nil, ErrNilAutomaton
	}
	if any(src) == dst {
		return nil, ErrAliased
	}
	if !(delta > 0) || math.IsInf(delta, 1) { // also rejects NaN
		return nil, fmt.Errorf("%w: got %v", ErrBadDelta, delta)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := src.NumStates()
	d := &determinizer[W, L]{
		src:         src,
		repo:        NewStringRepository[L](),
		delta:       delta,
		opts:        o,
		minimalHash: make(map[uint64][]minimalEntry[W, L], n/2+3),
		initialHash: make(map[uint64][]initialEntry[W, L], n/2+3),
		classKnown:  bitset.New(uint(n)),
		classValue:  bitset.New(uint(n)),
	}
	if o.Diagnostic != nil {
		d.trace = make([]traceEntry[L], 0, n)
	}

	return d, nil
}

// subsetHash folds states and string handles into the bucket key.
func (d *determinizer[W, L]) subsetHash(subset []element[W, L]) uint64 {
	var h uint64
	for _, e := range subset {
		h = h*subsetHashMult + uint64(uint32(e.state))*stringHashMult + uint64(uint32(e.str))
	}

	return h
}

// subsetEqual is the state-and-string exact, weight-tolerant equality the
// hash tables deduplicate by. Both subsets must be state-sorted.
func (d *determinizer[W, L]) subsetEqual(a, b []element[W, L]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].state != b[i].state || a[i].str != b[i].str {
			return false
		}
		if !a[i].weight.ApproxEqual(b[i].weight, d.delta) {
			return false
		}
	}

	return true
}

// minimalToStateID resolves a minimal, normalized, state-sorted subset to
// its output state id, registering a new state (and queueing it for
// expansion) on first sight.
func (d *determinizer[W, L]) minimalToStateID(subset []element[W, L]) (lattice.StateID, error) {
	h := d.subsetHash(subset)
	for _, ent := range d.minimalHash[h] {
		if d.subsetEqual(ent.subset, subset) {
			return ent.id, nil
		}
	}
	if d.opts.MaxStates > 0 && len(d.subsets) >= d.opts.MaxStates {
		return lattice.NoStateID, fmt.Errorf("%w: cap %d", ErrStateLimit, d.opts.MaxStates)
	}
	id := lattice.StateID(len(d.subsets))
	stored := append([]element[W, L](nil), subset...)
	d.subsets = append(d.subsets, stored)
	d.arcs = append(d.arcs, nil)
	d.minimalHash[h] = append(d.minimalHash[h], minimalEntry[W, L]{subset: stored, id: id})
	d.queue = append(d.queue, id)

	return id, nil
}

// initialToStateID resolves a raw (pre-closure, normalized) subset to the
// output state it leads to, together with the extra weight and string the
// destination's own closure and normalization factor out. Resolutions are
// cached so a repeated preimage skips the closure entirely.
func (d *determinizer[W, L]) initialToStateID(raw []element[W, L]) (lattice.StateID, W, StringID, error) {
	var unit W
	h := d.subsetHash(raw)
	for _, ent := range d.initialHash[h] {
		if d.subsetEqual(ent.subset, raw) {
			return ent.state, ent.weight, ent.str, nil
		}
	}
	key := append([]element[W, L](nil), raw...)
	work := append([]element[W, L](nil), raw...)
	work, err := d.epsilonClosure(work)
	if err != nil {
		return lattice.NoStateID, unit, emptyID, err
	}
	sortSubset(work)
	work = d.convertToMinimal(work)
	commonStr, totWeight, err := d.normalizeSubset(work)
	if err != nil {
		return lattice.NoStateID, unit, emptyID, err
	}
	id, err := d.minimalToStateID(work)
	if err != nil {
		return lattice.NoStateID, unit, emptyID, err
	}
	d.initialHash[h] = append(d.initialHash[h], initialEntry[W, L]{
		subset: key, state: id, weight: totWeight, str: commonStr,
	})

	return id, totWeight, commonStr, nil
}

// processFinal decides whether an output state is final: it is when some
// element's source state is final, and the final weight is the greatest
// (element.weight ⊗ source final, element.string) pair over those.
func (d *determinizer[W, L]) processFinal(s lattice.StateID) {
	var unit W
	finalW := unit.Zero()
	finalStr := d.repo.EmptyString()
	isFinal := false
	for _, e := range d.subsets[s] {
		f := d.src.Final(e.state)
		if f.IsZero() {
			continue
		}
		w := e.weight.Times(f)
		if w.IsZero() {
			continue
		}
		if !isFinal || d.compareWS(w, e.str, finalW, finalStr) == 1 {
			isFinal = true
			finalW = w
			finalStr = e.str
		}
	}
	if isFinal {
		d.arcs[s] = append(d.arcs[s], tempArc[W, L]{in: 0, dest: lattice.NoStateID, str: finalStr, weight: finalW})
		d.numArcs++
	}
}

// processTransitions expands one output state: it collects the successor
// element of every non-epsilon-input arc leaving the subset, groups the
// candidates by input label, and resolves each group into one output arc.
func (d *determinizer[W, L]) processTransitions(s lattice.StateID) error {
	cands := d.cands[:0]
	for _, e := range d.subsets[s] {
		for _, arc := range d.src.Arcs(e.state) {
			if arc.In == lattice.Epsilon || arc.Weight.IsZero() {
				continue
			}
			next := element[W, L]{state: arc.To, weight: e.weight.Times(arc.Weight)}
			if arc.Out == lattice.Epsilon {
				next.str = e.str
			} else {
				next.str = d.repo.Successor(e.str, arc.Out)
			}
			cands = append(cands, candidate[W, L]{in: arc.In, elem: next})
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].in != cands[j].in {
			return cands[i].in < cands[j].in
		}

		return cands[i].elem.state < cands[j].elem.state
	})
	var err error
	for i := 0; i < len(cands); {
		j := i + 1
		for j < len(cands) && cands[j].in == cands[i].in {
			j++
		}
		if err = d.processTransition(s, cands[i].in, cands[i:j]); err != nil {
			break
		}
		i = j
	}
	d.cands = cands[:0]

	return err
}

// processTransition turns one input-label group into one output arc:
// merge duplicates, factor the group, resolve the destination, and buffer
// the arc carrying the combined factor.
func (d *determinizer[W, L]) processTransition(src lattice.StateID, in L, group []candidate[W, L]) error {
	subset := d.group[:0]
	for _, c := range group {
		subset = append(subset, c.elem)
	}
	subset = d.makeSubsetUnique(subset)
	commonStr, totWeight, err := d.normalizeSubset(subset)
	if err == nil {
		var dest lattice.StateID
		var extraW W
		var extraStr StringID
		dest, extraW, extraStr, err = d.initialToStateID(subset)
		if err == nil {
			d.arcs[src] = append(d.arcs[src], tempArc[W, L]{
				in:     in,
				dest:   dest,
				str:    d.repo.Concatenate(commonStr, extraStr),
				weight: totWeight.Times(extraW),
			})
			d.numArcs++
			if d.trace != nil && int(dest) == len(d.trace) {
				d.trace = append(d.trace, traceEntry[L]{parent: src, in: in, str: d.arcs[src][len(d.arcs[src])-1].str})
			}
		}
	}
	d.group = subset[:0]

	return err
}

// initialize seeds the worklist with the output state of the source start
// state. Unlike every later subset, the seed is registered without
// normalization: the start state must not grow a superfluous super-initial
// state just to carry a factored weight.
func (d *determinizer[W, L]) initialize() error {
	start := d.src.Start()
	if start == lattice.NoStateID {
		return nil // empty input, nothing to seed
	}
	var unit W
	subset := []element[W, L]{{state: start, str: d.repo.EmptyString(), weight: unit.One()}}
	subset, err := d.epsilonClosure(subset)
	if err != nil {
		return err
	}
	sortSubset(subset)
	subset = d.convertToMinimal(subset)
	id, err := d.minimalToStateID(subset)
	if err != nil {
		return err
	}
	assert(id == 0, "determinize: seed state must be 0")
	if d.trace != nil {
		d.trace = append(d.trace, traceEntry[L]{parent: lattice.NoStateID, str: emptyID})
	}

	return nil
}

// run drains the worklist: cancellation check, diagnostic snapshot, final
// weights, then grouped transitions, once per pending output state.
func (d *determinizer[W, L]) run() error {
	if err := d.initialize(); err != nil {
		return err
	}
	for len(d.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-d.opts.Ctx.Done():
			return d.opts.Ctx.Err()
		default:
		}

		s := d.queue[len(d.queue)-1]
		d.queue = d.queue[:len(d.queue)-1]
		if d.opts.Diagnostic != nil {
			d.opts.Diagnostic(d.progress(s))
		}
		tracer().Debugf("expanding output state %d (%d discovered, %d queued)", s, len(d.subsets), len(d.queue))
		d.processFinal(s)
		if err := d.processTransitions(s); err != nil {
			return err
		}
	}
	d.determinized = true
	tracer().Infof("determinized: %d output states, %d arcs, %d interned strings",
		len(d.subsets), d.numArcs, d.repo.Size())

	return nil
}

// progress snapshots the run for the diagnostic callback.
func (d *determinizer[W, L]) progress(s lattice.StateID) Progress {
	return Progress{
		State:     int(s),
		NumStates: len(d.subsets),
		NumArcs:   d.numArcs,
		QueueLen:  len(d.queue),
		Traceback: func() []TraceStep { return d.traceback(s) },
	}
}

// traceback reconstructs the determinized label path from the start state
// to s, one step per arc, using the discovery provenance.
func (d *determinizer[W, L]) traceback(s lattice.StateID) []TraceStep {
	if d.trace == nil {
		return nil
	}
	var steps []TraceStep
	for cur := s; d.trace[cur].parent != lattice.NoStateID; cur = d.trace[cur].parent {
		te := d.trace[cur]
		step := TraceStep{In: int64(te.in)}
		for _, l := range d.repo.Labels(te.str) {
			step.Out = append(step.Out, int64(l))
		}
		steps = append(steps, step)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}
