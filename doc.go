// Package lvlfst is your in-memory toolkit for weighted finite-state
// lattices — from core automaton primitives to speech-style lattice
// determinization over two-component (graph + acoustic) weights.
//
// 🚀 What is lvlfst?
//
//	A focused, generics-first library that brings together:
//		• Core primitives: states, arcs, final weights, mutable lattices
//		• Semirings: LatticeWeight (graph+acoustic), TropicalWeight,
//		  and string-carrying CompactWeight
//		• Determinization: on-the-fly subset construction with
//		  delta-tolerant weight equality and prefix-shared label strings
//		• Two output modes: compact (string-weighted acceptor) and
//		  expanded (epsilon-input chains over scalar weights)
//		• Inspection: determinism, emptiness and structural equality checks
//
// ✨ Why choose lvlfst?
//
//   - Single-pass – one worklist sweep per run, memory freed as arcs flush
//   - Honest semantics – keep-best-path selection, never silent summing
//   - Pure Go – generic over weight semirings and integer label types
//   - Tunable – context cancellation, state caps, diagnostic callbacks
//
// Under the hood, everything is organized under three subpackages:
//
//	semiring/    — Weight capability set, LatticeWeight, TropicalWeight
//	lattice/     — Lattice, Arc, CompactWeight, inspection helpers
//	determinize/ — StringRepository, subset engine, Determinize entry points
//
// Quick ASCII example:
//
//	    ┌─a/0.5──▶(1)──c/0.2──▶((3))
//	  (0)
//	    └─a/0.7──▶(2)──d/0.4──▶((4))
//
//	two arcs share input label "a"; determinization merges them into one
//	deterministic state, keeping the better-scoring alternative per path.
//
// Dive into README.md for full examples and the determinization contract.
//
//	go get github.com/katalvlaran/lvlfst
package lvlfst
