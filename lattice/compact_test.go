package lattice_test

import (
	"testing"

	"github.com/katalvlaran/lvlfst/lattice"
	"github.com/katalvlaran/lvlfst/semiring"
	"github.com/stretchr/testify/assert"
)

type compactTrop = lattice.CompactWeight[semiring.TropicalWeight, int]

func cw(cost float64, labels ...int) compactTrop {
	return compactTrop{Weight: semiring.NewTropicalWeight(cost), Labels: labels}
}

// TestCompactWeight_ZeroOne verifies the semiring constants.
func TestCompactWeight_ZeroOne(t *testing.T) {
	var c compactTrop

	assert.True(t, c.Zero().IsZero(), "Zero reports IsZero")
	assert.False(t, c.One().IsZero(), "One does not report IsZero")
	assert.Empty(t, c.One().Labels, "One carries the empty string")
}

// TestCompactWeight_Times checks weight addition plus string concatenation.
func TestCompactWeight_Times(t *testing.T) {
	got := cw(1, 7, 8).Times(cw(2, 9))

	assert.Equal(t, semiring.NewTropicalWeight(3), got.Weight, "inner weights multiply")
	assert.Equal(t, []int{7, 8, 9}, got.Labels, "label sequences concatenate")

	var c compactTrop
	assert.True(t, cw(1, 7).Times(c.Zero()).IsZero(), "Zero annihilates")
	assert.Empty(t, cw(1, 7).Times(c.Zero()).Labels, "annihilated product drops its labels")
}

// TestCompactWeight_Divide checks prefix-stripping division and its asserts.
func TestCompactWeight_Divide(t *testing.T) {
	got := cw(3, 7, 8, 9).Divide(cw(1, 7, 8))
	assert.Equal(t, semiring.NewTropicalWeight(2), got.Weight, "inner weights divide")
	assert.Equal(t, []int{9}, got.Labels, "the divisor prefix is dropped")

	var c compactTrop
	assert.True(t, c.Zero().Divide(cw(1, 7)).IsZero(), "Zero divided by anything is Zero")
	assert.Panics(t, func() { cw(1, 7).Divide(c.Zero()) }, "division by Zero is a caller bug")
	assert.Panics(t, func() { cw(1, 7, 8).Divide(cw(0, 9)) }, "non-prefix divisor labels panic")
}

// TestCompactWeight_Compare pins weight dominance, shorter-string-greater,
// and the lexicographic tail.
func TestCompactWeight_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b compactTrop
		want int
	}{
		{"inner weight dominates", cw(1, 9, 9, 9), cw(2), 1},
		{"tie: shorter string is greater", cw(1, 7), cw(1, 7, 8), 1},
		{"tie: longer string is less", cw(1, 7, 8), cw(1, 7), -1},
		{"tie: lexicographic, smaller label less", cw(1, 7, 8), cw(1, 7, 9), -1},
		{"identical compare 0", cw(1, 7, 8), cw(1, 7, 8), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
			assert.Equal(t, -tc.want, tc.b.Compare(tc.a), "Compare must be antisymmetric")
		})
	}
}

// TestCompactWeight_Plus verifies pure selection.
func TestCompactWeight_Plus(t *testing.T) {
	better, worse := cw(1, 7), cw(5, 8)

	assert.Equal(t, better, better.Plus(worse))
	assert.Equal(t, better, worse.Plus(better))
}

// TestCompactWeight_ApproxEqual requires exact strings and tolerant weights.
func TestCompactWeight_ApproxEqual(t *testing.T) {
	a := cw(1, 7, 8)

	assert.True(t, a.ApproxEqual(cw(1+semiring.DefaultDelta/2, 7, 8), semiring.DefaultDelta),
		"weights within delta, identical strings")
	assert.False(t, a.ApproxEqual(cw(1, 7, 9), semiring.DefaultDelta),
		"different strings are never approx-equal")
	assert.False(t, a.ApproxEqual(cw(1, 7), semiring.DefaultDelta),
		"different string lengths are never approx-equal")
	assert.False(t, a.ApproxEqual(cw(2, 7, 8), semiring.DefaultDelta),
		"weights outside delta")
}
