// Package semiring defines the weight algebra used by lvlfst lattices.
//
// What is a weight here?
//
//	An element of a totally-ordered semiring: Times combines weights along
//	a path, Plus combines alternative paths, Divide factors a weight back
//	out, and Compare imposes a strict total order. Zero is the annihilator
//	(an unreachable path), One is the identity (a free transition).
//
// The one unusual rule, inherited from speech-lattice processing: Plus is
// a *selection*, not a sum. Combining two alternatives keeps the one that
// Compares greater and discards the other. This models keep-best-path
// (tropical-style) scoring; it is not probabilistic sum-product algebra.
//
// Two concrete weights are provided:
//
//	LatticeWeight  — two float64 costs (graph + acoustic), ordered by total
//	TropicalWeight — a single float64 cost, smaller is better
//
// Both are plain value types; all operations return new values.
//
// Complexity: every operation is O(1).
package semiring
