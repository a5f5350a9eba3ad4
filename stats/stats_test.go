package stats_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sciutil/stats"
)

const epsTight = 1e-12

func TestAvg_Empty(t *testing.T) {
	got, err := stats.Avg(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
	assert.Equal(t, 0.0, got)
}

func TestStdev_Empty(t *testing.T) {
	_, err := stats.Stdev([]float64{})
	assert.ErrorIs(t, err, stats.ErrEmptyInput)

	_, _, err = stats.MeanStdev(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
}

func TestAvg_Known(t *testing.T) {
	got, err := stats.Avg([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	got, err = stats.Avg([]float64{-7})
	require.NoError(t, err)
	assert.Equal(t, -7.0, got)
}

// TestStdev_Population pins the N divisor: {2,4,4,4,5,5,7,9} has σ=2 (sample s would be ≈2.138).
func TestStdev_Population(t *testing.T) {
	got, err := stats.Stdev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, epsTight)
}

func TestStdev_SingleAndConstant(t *testing.T) {
	got, err := stats.Stdev([]float64{3.5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = stats.Stdev([]float64{1e9 + 0.1, 1e9 + 0.1, 1e9 + 0.1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-6)
}

// TestStdev_UsesOwnMean checks that shifting every sample leaves σ unchanged.
func TestStdev_UsesOwnMean(t *testing.T) {
	base := []float64{1, 2, 3, 4, 5}
	shifted := make([]float64, len(base))
	for i, x := range base {
		shifted[i] = x + 1000
	}
	s1, err := stats.Stdev(base)
	require.NoError(t, err)
	s2, err := stats.Stdev(shifted)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2), s1, epsTight)
	assert.InDelta(t, s1, s2, 1e-9)
}

// TestProperties_Random checks Avg == Σ/N and Stdev >= 0 over random inputs.
func TestProperties_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(64)
		v := make([]float64, n)
		var s float64
		for i := range v {
			v[i] = rng.NormFloat64() * 10
			s += v[i]
		}

		avg, err := stats.Avg(v)
		require.NoError(t, err)
		assert.InDelta(t, s/float64(n), avg, 1e-9)

		mean, std, err := stats.MeanStdev(v)
		require.NoError(t, err)
		assert.Equal(t, avg, mean)
		assert.GreaterOrEqual(t, std, 0.0)

		std2, err := stats.Stdev(v)
		require.NoError(t, err)
		assert.Equal(t, std, std2)
	}
}
