package determinize

import (
	"github.com/katalvlaran/lvlfst/lattice"
)

// StringID is an opaque handle to an interned label sequence. Handles are
// stable for the life of the repository; two handles are equal exactly
// when the sequences they denote are equal.
type StringID int32

// emptyID denotes the empty sequence; it is the root every interned
// sequence descends from and is never stored in the arena.
const emptyID StringID = -1

// repoEntry is one trie node: the handle of its prefix plus one trailing
// label. Entries are immutable once created.
type repoEntry[L lattice.Label] struct {
	parent StringID
	label  L
}

// pairKey deduplicates entries: at most one child per (parent, label).
type pairKey[L lattice.Label] struct {
	parent StringID
	label  L
}

// StringRepository interns immutable sequences of labels as a
// prefix-sharing trie over an append-only arena. Appending one label is
// O(1) amortized, identical sequences always collapse to the identical
// handle, and entries live until Reset.
//
// The zero value is not usable; construct with NewStringRepository.
// A repository is not safe for concurrent use.
type StringRepository[L lattice.Label] struct {
	entries []repoEntry[L]
	index   map[pairKey[L]]StringID
}

// NewStringRepository returns an empty repository.
func NewStringRepository[L lattice.Label]() *StringRepository[L] {
	return &StringRepository[L]{index: make(map[pairKey[L]]StringID)}
}

// EmptyString returns the canonical handle of the empty sequence.
// It never allocates.
func (r *StringRepository[L]) EmptyString() StringID { return emptyID }

// Successor returns the handle for parent's sequence followed by label,
// creating the entry on first use. O(1) amortized.
func (r *StringRepository[L]) Successor(parent StringID, label L) StringID {
	key := pairKey[L]{parent: parent, label: label}
	if id, ok := r.index[key]; ok {
		return id
	}
	id := StringID(len(r.entries))
	r.entries = append(r.entries, repoEntry[L]{parent: parent, label: label})
	r.index[key] = id

	return id
}

// Concatenate returns the handle for a's sequence followed by b's.
// O(|b|) by repeated Successor.
func (r *StringRepository[L]) Concatenate(a, b StringID) StringID {
	if a == emptyID {
		return b
	}
	for _, label := range r.Labels(b) {
		a = r.Successor(a, label)
	}

	return a
}

// Len returns the length of the sequence a denotes.
func (r *StringRepository[L]) Len(a StringID) int {
	n := 0
	for a != emptyID {
		a = r.entries[a].parent
		n++
	}

	return n
}

// Labels materializes a's sequence; the empty sequence yields nil.
// O(length), and the result is a fresh slice the caller owns.
func (r *StringRepository[L]) Labels(a StringID) []L {
	if a == emptyID {
		return nil
	}
	out := make([]L, r.Len(a))
	for i := len(out) - 1; i >= 0; i-- {
		e := r.entries[a]
		out[i] = e.label
		a = e.parent
	}

	return out
}

// AppendLabels appends a's sequence to dst and returns the extended slice.
func (r *StringRepository[L]) AppendLabels(dst []L, a StringID) []L {
	start := len(dst)
	n := r.Len(a)
	var zero L
	for i := 0; i < n; i++ {
		dst = append(dst, zero)
	}
	for i := start + n - 1; i >= start; i-- {
		e := r.entries[a]
		dst[i] = e.label
		a = e.parent
	}

	return dst
}

// Intern returns the handle for an explicit label sequence.
func (r *StringRepository[L]) Intern(labels []L) StringID {
	s := emptyID
	for _, label := range labels {
		s = r.Successor(s, label)
	}

	return s
}

// CommonPrefix returns the handle of the longest common prefix of a and b.
// Prefixes are trie ancestors, so this walks both handles up to their
// lowest common ancestor without materializing either sequence.
// O(|a|+|b|), no allocation.
func (r *StringRepository[L]) CommonPrefix(a, b StringID) StringID {
	da, db := r.Len(a), r.Len(b)
	for da > db {
		a = r.entries[a].parent
		da--
	}
	for db > da {
		b = r.entries[b].parent
		db--
	}
	for a != b {
		a = r.entries[a].parent
		b = r.entries[b].parent
	}

	return a
}

// IsPrefixOf reports whether a's sequence is a prefix of b's. The empty
// sequence is a prefix of everything.
func (r *StringRepository[L]) IsPrefixOf(a, b StringID) bool {
	return r.CommonPrefix(a, b) == a
}

// ReduceToCommonPrefix truncates b to its shared prefix length with a's
// sequence and returns the truncated slice (reslicing in place).
func (r *StringRepository[L]) ReduceToCommonPrefix(a StringID, b []L) []L {
	av := r.Labels(a)
	n := len(b)
	if len(av) < n {
		n = len(av)
	}
	i := 0
	for i < n && av[i] == b[i] {
		i++
	}

	return b[:i]
}

// RemovePrefix returns the handle for a's sequence with its first n labels
// dropped; n must lie in [0, length].
func (r *StringRepository[L]) RemovePrefix(a StringID, n int) StringID {
	assert(n >= 0, "determinize: RemovePrefix length is negative")
	if n == 0 {
		return a
	}
	av := r.Labels(a)
	assert(n <= len(av), "determinize: RemovePrefix length exceeds sequence")

	return r.Intern(av[n:])
}

// Size reports the number of distinct non-empty sequences interned so
// far. Interning a sequence whose prefixes are already present grows Size
// only by the labels not previously seen in that context.
func (r *StringRepository[L]) Size() int { return len(r.entries) }

// Reset releases every entry; the repository is afterwards equivalent to
// a fresh instance, and all previously issued handles are invalid.
func (r *StringRepository[L]) Reset() {
	tracer().Debugf("string repository reset, dropping %d entries", len(r.entries))
	r.entries = nil
	r.index = make(map[pairKey[L]]StringID)
}
