package damage_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fatigue/damage"
	"github.com/katalvlaran/fatigue/rainflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSNCurve_Validate covers the parameter guard.
func TestSNCurve_Validate(t *testing.T) {
	assert.NoError(t, damage.SNCurve{Intercept: 1e12, Exponent: 3}.Validate())
	assert.ErrorIs(t, damage.SNCurve{Intercept: 0, Exponent: 3}.Validate(), damage.ErrBadCurve)
	assert.ErrorIs(t, damage.SNCurve{Intercept: 1e12, Exponent: -1}.Validate(), damage.ErrBadCurve)
	assert.ErrorIs(t, damage.SNCurve{Intercept: math.NaN(), Exponent: 3}.Validate(), damage.ErrBadCurve)
	assert.ErrorIs(t, damage.SNCurve{Intercept: math.Inf(1), Exponent: 3}.Validate(), damage.ErrBadCurve)
}

// TestSNCurve_Life verifies the Basquin evaluation and the no-load case.
func TestSNCurve_Life(t *testing.T) {
	sn := damage.SNCurve{Intercept: 1e12, Exponent: 3}

	assert.InDelta(t, 1e6, sn.Life(100), 1e-6, "N(100) = 1e12 / 100^3")
	assert.True(t, math.IsInf(sn.Life(0), 1), "zero range never fails")
	assert.True(t, math.IsInf(sn.Life(-5), 1))
}

// TestMiner_KnownSum verifies D against a hand-computed table.
func TestMiner_KnownSum(t *testing.T) {
	sn := damage.SNCurve{Intercept: 1e12, Exponent: 3}
	cycles := []rainflow.Cycle{
		{Count: 1.0, Range: 100, Mean: 0}, // 1 / 1e6
		{Count: 0.5, Range: 200, Mean: 0}, // 0.5 / 125e3
		{Count: 0.5, Range: 0, Mean: 5},   // plateau: no damage
	}

	d, err := damage.Miner(cycles, sn)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/1e6+0.5/125e3, d, 1e-15)
}

// TestMiner_EmptyAndBadCurve covers the edge paths.
func TestMiner_EmptyAndBadCurve(t *testing.T) {
	d, err := damage.Miner(nil, damage.SNCurve{Intercept: 1e12, Exponent: 3})
	require.NoError(t, err)
	assert.Zero(t, d, "no cycles, no damage")

	_, err = damage.Miner(nil, damage.SNCurve{})
	assert.ErrorIs(t, err, damage.ErrBadCurve)
}

// TestEquivalentRange verifies the single-cycle identity and validation.
func TestEquivalentRange(t *testing.T) {
	// One full cycle at range 80 over one reference cycle is range 80.
	one := []rainflow.Cycle{{Count: 1, Range: 80, Mean: 0}}
	s, err := damage.EquivalentRange(one, 3, 1)
	require.NoError(t, err)
	assert.InDelta(t, 80, s, 1e-9)

	// Halving the reference count raises the equivalent range by 2^(1/m).
	s2, err := damage.EquivalentRange(one, 3, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 80*math.Pow(2, 1.0/3), s2, 1e-9)

	_, err = damage.EquivalentRange(one, 0, 1)
	assert.ErrorIs(t, err, damage.ErrBadCurve)
	_, err = damage.EquivalentRange(one, 3, 0)
	assert.ErrorIs(t, err, damage.ErrBadRef)
	_, err = damage.EquivalentRange(nil, 3, 1)
	assert.ErrorIs(t, err, damage.ErrNoCycles)
}

// TestMiner_EquivalentConsistency cross-checks Miner against EquivalentRange:
// nRef cycles at S_eq must reproduce the table's damage.
func TestMiner_EquivalentConsistency(t *testing.T) {
	sn := damage.SNCurve{Intercept: 2.5e11, Exponent: 3}
	cycles, err := rainflow.Count([]float64{-2, 1, -3, 5, -1, 3, -4, 4, -2})
	require.NoError(t, err)
	// Scale ranges up to a realistic stress level.
	for i := range cycles {
		cycles[i].Range *= 25
	}

	d, err := damage.Miner(cycles, sn)
	require.NoError(t, err)

	const nRef = 4.0
	seq, err := damage.EquivalentRange(cycles, sn.Exponent, nRef)
	require.NoError(t, err)

	dEq := nRef * math.Pow(seq, sn.Exponent) / sn.Intercept
	assert.InDelta(t, d, dEq, d*1e-9, "equivalent range must conserve damage")
}
