package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grover-sim/grover-sim/sim/internal/testutil"
)

func TestOptimalIterations_KnownValues(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{5, 4},
		{6, 6},
		{8, 13},
		{10, 25},
		{0, 0},
		{-3, 0},
	}
	for _, tt := range tests {
		if got := OptimalIterations(tt.n); got != tt.want {
			t.Errorf("OptimalIterations(%d) = %d, want %d", tt.n, got, tt.want)
		}
		if tt.n > 0 {
			formula := int(math.Round(math.Pi / 4 * math.Sqrt(math.Pow(2, float64(tt.n)))))
			assert.Equal(t, formula, OptimalIterations(tt.n), "n=%d", tt.n)
		}
	}
}

func TestOptimalIterationsForMarks(t *testing.T) {
	assert.Equal(t, 2, OptimalIterationsForMarks(4, 3))
	assert.Equal(t, OptimalIterations(7), OptimalIterationsForMarks(7, 1))
	assert.Equal(t, 0, OptimalIterationsForMarks(4, 0))
}

func TestSuccessProbability_TwoQubitsOneIterationIsCertain(t *testing.T) {
	assert.InDelta(t, 1.0, SuccessProbability(2, 1, 1), 1e-12)
	assert.InDelta(t, 0.125, SuccessProbability(3, 1, 0), 1e-12)
	assert.Equal(t, 1.0, SuccessProbability(2, 4, 3))
}

func TestGroverIterator_Run_ZeroIterationsIsUniform(t *testing.T) {
	g := NewGroverIterator(DefaultGroverConfig())

	s, err := g.Run(3, mustOracle(t, 3), 0, false)
	require.NoError(t, err)

	for i := range s.Amplitudes {
		assert.InDelta(t, 0.125, s.Probability(i), 1e-12, "basis state %d", i)
	}
}

func TestGroverIterator_Run_NormPreservedEveryIteration(t *testing.T) {
	// Probabilities sum to 1 within 1e-6 after each full Grover iteration
	g := NewGroverIterator(DefaultGroverConfig())
	oracle := mustOracle(t, 6)
	s := mustRegister(t, 6, false)
	s.ApplyHadamardAll()

	for i := 1; i <= 20; i++ {
		require.NoError(t, g.Step(s, oracle))
		testutil.AssertUnitNorm(t, s.Amplitudes, 1e-6)
	}
}

func TestGroverIterator_Run_MatchesAnalyticSuccessProbability(t *testing.T) {
	g := NewGroverIterator(DefaultGroverConfig())
	for n := 2; n <= 8; n++ {
		oracle := mustOracle(t, n)
		for k := 0; k <= OptimalIterations(n)+1; k++ {
			s, err := g.Run(n, oracle, k, false)
			require.NoError(t, err)
			assert.InDelta(t, SuccessProbability(n, 1, k), s.Probability(0), 1e-9, "n=%d k=%d", n, k)
		}
	}
}

func TestGroverIterator_Run_MultipleMarks(t *testing.T) {
	// GIVEN three marked states out of 16
	g := NewGroverIterator(DefaultGroverConfig())
	oracle := mustOracle(t, 4, 0, 5, 10)
	k := OptimalIterationsForMarks(4, 3)

	// WHEN the optimal number of iterations runs
	s, err := g.Run(4, oracle, k, false)
	require.NoError(t, err)

	// THEN the marked mass matches the analytic curve
	marked := s.Probability(0) + s.Probability(5) + s.Probability(10)
	assert.InDelta(t, SuccessProbability(4, 3, k), marked, 1e-9)
}

func TestGroverIterator_Run_WithAncillaMatchesPlain(t *testing.T) {
	g := NewGroverIterator(DefaultGroverConfig())
	oracle := mustOracle(t, 4)

	plain, err := g.Run(4, oracle, 3, false)
	require.NoError(t, err)
	withAncilla, err := g.Run(4, oracle, 3, true)
	require.NoError(t, err)

	// ancilla=0 block carries the whole state, ancilla=1 block is empty
	testutil.AssertAmplitudesEqual(t, plain.Amplitudes, withAncilla.Amplitudes[:16], 1e-12)
	testutil.AssertAmplitudesEqual(t, make([]complex128, 16), withAncilla.Amplitudes[16:], 0)
}

func TestGroverIterator_Run_Errors(t *testing.T) {
	g := NewGroverIterator(DefaultGroverConfig())

	_, err := g.Run(3, mustOracle(t, 3), -1, false)
	assert.True(t, errors.Is(err, ErrInvalidIterations))

	_, err = g.Run(0, mustOracle(t, 3), 1, false)
	assert.True(t, errors.Is(err, ErrInvalidDimension))

	_, err = g.Run(4, mustOracle(t, 3), 1, false)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
}

func TestGroverIterator_CheckDrift(t *testing.T) {
	drifted := func() *StateVector {
		s := mustRegister(t, 2, false)
		s.Amplitudes[0] = 1.01
		return s
	}

	// WHEN renormalization is off, drift is an error
	strict := NewGroverIterator(NewGroverConfig(1, 1e-6, false))
	err := strict.checkDrift(drifted(), 3)
	assert.True(t, errors.Is(err, ErrNumericalDrift), "got %v", err)

	// WHEN it is on, the state is rescaled
	lenient := NewGroverIterator(NewGroverConfig(1, 1e-6, true))
	s := drifted()
	require.NoError(t, lenient.checkDrift(s, 3))
	testutil.AssertUnitNorm(t, s.Amplitudes, 1e-12)
}

func TestGroverIterator_ShouldCheck(t *testing.T) {
	g := NewGroverIterator(NewGroverConfig(4, 1e-6, false))
	assert.False(t, g.shouldCheck(1, 10))
	assert.True(t, g.shouldCheck(4, 10))
	assert.True(t, g.shouldCheck(10, 10))

	lastOnly := NewGroverIterator(NewGroverConfig(0, 1e-6, false))
	assert.False(t, lastOnly.shouldCheck(4, 10))
	assert.True(t, lastOnly.shouldCheck(10, 10))
}

func TestNewGroverIterator_InvalidConfigFallsBack(t *testing.T) {
	g := NewGroverIterator(GroverConfig{DriftCheckInterval: -1})
	assert.Equal(t, DefaultGroverConfig(), g.config)
}
