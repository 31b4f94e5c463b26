package determinize_test

import (
	"fmt"

	"github.com/katalvlaran/lvlfst/determinize"
	"github.com/katalvlaran/lvlfst/lattice"
	"github.com/katalvlaran/lvlfst/semiring"
)

// ExampleDeterminize merges two hypotheses for the same label sequence:
// the diamond collapses into a single chain carrying the cheaper costs.
func ExampleDeterminize() {
	src := lattice.New[semiring.TropicalWeight, int]()
	for i := 0; i < 4; i++ {
		src.AddState()
	}
	_ = src.SetStart(0)
	_ = src.AddArc(0, lattice.Arc[semiring.TropicalWeight, int]{In: 1, Out: 10, Weight: 1, To: 1})
	_ = src.AddArc(0, lattice.Arc[semiring.TropicalWeight, int]{In: 1, Out: 10, Weight: 2, To: 2})
	_ = src.AddArc(1, lattice.Arc[semiring.TropicalWeight, int]{In: 2, Out: 20, Weight: 0.5, To: 3})
	_ = src.AddArc(2, lattice.Arc[semiring.TropicalWeight, int]{In: 2, Out: 20, Weight: 0.25, To: 3})
	_ = src.SetFinal(3, semiring.TropicalOne())

	dst := lattice.New[semiring.TropicalWeight, int]()
	if err := determinize.Determinize[semiring.TropicalWeight, int](src, dst, semiring.DefaultDelta); err != nil {
		fmt.Println("determinize:", err)

		return
	}

	fmt.Println("states:", dst.NumStates())
	fmt.Println("deterministic:", lattice.IsDeterministic[semiring.TropicalWeight, int](dst))
	fmt.Println("first hop cost:", dst.Arcs(0)[0].Weight)
	// Output:
	// states: 3
	// deterministic: true
	// first hop cost: 1
}

// ExampleDeterminizeCompact keeps one arc per determinized transition and
// bundles the accumulated output labels into the arc weight.
func ExampleDeterminizeCompact() {
	src := lattice.New[semiring.TropicalWeight, int]()
	for i := 0; i < 3; i++ {
		src.AddState()
	}
	_ = src.SetStart(0)
	_ = src.AddArc(0, lattice.Arc[semiring.TropicalWeight, int]{In: 1, Out: 21, Weight: 1, To: 1})
	_ = src.AddArc(1, lattice.Arc[semiring.TropicalWeight, int]{In: 0, Out: 22, Weight: 0, To: 2})
	_ = src.SetFinal(2, semiring.TropicalOne())

	dst := lattice.New[lattice.CompactWeight[semiring.TropicalWeight, int], int]()
	if err := determinize.DeterminizeCompact[semiring.TropicalWeight, int](src, dst, semiring.DefaultDelta); err != nil {
		fmt.Println("determinize:", err)

		return
	}

	arc := dst.Arcs(0)[0]
	fmt.Println("states:", dst.NumStates())
	fmt.Println("labels on the arc:", arc.Weight.Labels)
	fmt.Println("cost:", arc.Weight.Weight)
	// Output:
	// states: 2
	// labels on the arc: [21 22]
	// cost: 1
}
