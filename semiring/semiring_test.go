package semiring_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlfst/semiring"
	"github.com/stretchr/testify/assert"
)

// TestLatticeWeight_ZeroOne verifies the semiring constants and IsZero.
func TestLatticeWeight_ZeroOne(t *testing.T) {
	zero, one := semiring.LatticeZero(), semiring.LatticeOne()

	assert.True(t, zero.IsZero(), "Zero must report IsZero")
	assert.False(t, one.IsZero(), "One must not report IsZero")
	assert.True(t, math.IsInf(zero.Graph, 1) && math.IsInf(zero.Acoustic, 1), "Zero is the pair of infinities")
	assert.Equal(t, 0.0, one.Total(), "One has zero total cost")

	// Zero and One are callable on any value, including the zero value.
	var w semiring.LatticeWeight
	assert.Equal(t, zero, w.Zero(), "Zero() from zero value")
	assert.Equal(t, one, w.One(), "One() from zero value")
}

// TestLatticeWeight_TimesLaws checks identity, annihilation and componentwise addition.
func TestLatticeWeight_TimesLaws(t *testing.T) {
	w := semiring.NewLatticeWeight(1.5, 2.5)

	assert.Equal(t, w, w.Times(semiring.LatticeOne()), "One is a right identity")
	assert.Equal(t, w, semiring.LatticeOne().Times(w), "One is a left identity")
	assert.True(t, w.Times(semiring.LatticeZero()).IsZero(), "Zero annihilates on the right")
	assert.True(t, semiring.LatticeZero().Times(w).IsZero(), "Zero annihilates on the left")

	got := w.Times(semiring.NewLatticeWeight(0.5, 1.0))
	assert.Equal(t, semiring.NewLatticeWeight(2.0, 3.5), got, "Times adds componentwise")
}

// TestLatticeWeight_Divide verifies that Divide undoes Times and that
// ill-formed divisions collapse to Zero rather than NaN.
func TestLatticeWeight_Divide(t *testing.T) {
	a := semiring.NewLatticeWeight(1.0, 2.0)
	b := semiring.NewLatticeWeight(0.25, 0.75)

	assert.Equal(t, a, a.Times(b).Divide(b), "Divide undoes Times")
	assert.Equal(t, a, a.Divide(semiring.LatticeOne()), "dividing by One changes nothing")
	assert.True(t, semiring.LatticeZero().Divide(semiring.LatticeZero()).IsZero(),
		"Zero/Zero must collapse to Zero, not NaN")
}

// TestLatticeWeight_Compare pins the total-cost ordering and the Graph tie-break.
func TestLatticeWeight_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b semiring.LatticeWeight
		want int
	}{
		{"smaller total is greater", semiring.NewLatticeWeight(1, 1), semiring.NewLatticeWeight(2, 2), 1},
		{"larger total is less", semiring.NewLatticeWeight(3, 3), semiring.NewLatticeWeight(1, 1), -1},
		{"equal weights compare 0", semiring.NewLatticeWeight(1, 2), semiring.NewLatticeWeight(1, 2), 0},
		{"tie on total: smaller graph is less", semiring.NewLatticeWeight(1, 3), semiring.NewLatticeWeight(2, 2), -1},
		{"tie on total: larger graph is greater", semiring.NewLatticeWeight(3, 1), semiring.NewLatticeWeight(2, 2), 1},
		{"anything beats Zero", semiring.NewLatticeWeight(100, 100), semiring.LatticeZero(), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b), "Compare(a,b)")
			assert.Equal(t, -tc.want, tc.b.Compare(tc.a), "Compare must be antisymmetric")
		})
	}
}

// TestLatticeWeight_Plus verifies Plus is a pure selection of the greater operand.
func TestLatticeWeight_Plus(t *testing.T) {
	better := semiring.NewLatticeWeight(1, 1)
	worse := semiring.NewLatticeWeight(5, 5)

	assert.Equal(t, better, better.Plus(worse), "Plus keeps the greater operand")
	assert.Equal(t, better, worse.Plus(better), "Plus keeps the greater operand either way")
	assert.Equal(t, better, better.Plus(better), "Plus on equals returns the operand unchanged")
	assert.Equal(t, better, better.Plus(semiring.LatticeZero()), "Zero is the Plus identity")
}

// TestLatticeWeight_ApproxEqual checks the sum-based tolerance band.
func TestLatticeWeight_ApproxEqual(t *testing.T) {
	a := semiring.NewLatticeWeight(1.0, 1.0)

	assert.True(t, a.ApproxEqual(semiring.NewLatticeWeight(1.0, 1.0+semiring.DefaultDelta/2), semiring.DefaultDelta),
		"within delta on the total")
	assert.False(t, a.ApproxEqual(semiring.NewLatticeWeight(1.0, 1.1), semiring.DefaultDelta),
		"outside delta on the total")
	assert.True(t, a.ApproxEqual(a, 0), "exact equality holds for delta 0")
	assert.True(t, semiring.LatticeZero().ApproxEqual(semiring.LatticeZero(), semiring.DefaultDelta),
		"Zero approx-equals itself despite Inf-Inf")
	// The band is on the total, so a redistribution across components
	// within delta still counts as equal.
	assert.True(t, a.ApproxEqual(semiring.NewLatticeWeight(1.5, 0.5), semiring.DefaultDelta),
		"equal totals with different split are approx-equal")
}

// TestTropicalWeight_Basics covers the single-cost weight end to end.
func TestTropicalWeight_Basics(t *testing.T) {
	zero, one := semiring.TropicalZero(), semiring.TropicalOne()

	assert.True(t, zero.IsZero(), "Zero must report IsZero")
	assert.False(t, one.IsZero(), "One must not report IsZero")

	a, b := semiring.NewTropicalWeight(2), semiring.NewTropicalWeight(3)
	assert.Equal(t, semiring.NewTropicalWeight(5), a.Times(b), "Times adds costs")
	assert.Equal(t, a, a.Times(b).Divide(b), "Divide undoes Times")
	assert.True(t, a.Times(zero).IsZero(), "Zero annihilates")
	assert.True(t, zero.Divide(zero).IsZero(), "Zero/Zero collapses to Zero")

	assert.Equal(t, 1, a.Compare(b), "smaller cost is greater")
	assert.Equal(t, -1, b.Compare(a), "larger cost is less")
	assert.Equal(t, a, a.Plus(b), "Plus selects the smaller cost")
	assert.Equal(t, a, b.Plus(a), "Plus selects regardless of receiver")

	assert.True(t, a.ApproxEqual(semiring.NewTropicalWeight(2+semiring.DefaultDelta/2), semiring.DefaultDelta),
		"within delta")
	assert.False(t, a.ApproxEqual(b, semiring.DefaultDelta), "a full unit apart is not approx-equal")
}

// TestWeight_Strings pins the rendering used in traces and test failures.
func TestWeight_Strings(t *testing.T) {
	assert.Equal(t, "1.5,2", semiring.NewLatticeWeight(1.5, 2).String())
	assert.Equal(t, "3", semiring.NewTropicalWeight(3).String())
}
