package expect

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quartic/pkg/quartic"
)

func newAggregator(t *testing.T, primeLimit int) *Aggregator {
	t.Helper()
	agg, err := NewAggregator(attachedCatalog(t), primeLimit)
	require.NoError(t, err)
	return agg
}

func TestExpectedCountsReferenceSweep(t *testing.T) {
	agg := newAggregator(t, 10000)

	rows, err := agg.ExpectedCounts([]int{1, 10, 100, 1000, 10000})
	require.NoError(t, err)
	require.Len(t, rows, 5)

	want := []struct {
		bound    int
		expected int64
	}{
		{bound: 1, expected: 1},
		{bound: 10, expected: 12},
		{bound: 100, expected: 137},
		{bound: 1000, expected: 1417},
		{bound: 10000, expected: 14255},
	}
	for i, w := range want {
		assert.Equal(t, w.bound, rows[i].Bound)
		assert.Zero(t, big.NewRat(w.expected, 1).Cmp(rows[i].Expected),
			"X=%d: got %s", w.bound, rows[i].Expected.RatString())
	}
}

func TestExpectedCountsMonotone(t *testing.T) {
	agg := newAggregator(t, 200)

	bounds := make([]int, 0, 200)
	for x := 1; x <= 200; x++ {
		bounds = append(bounds, x)
	}
	rows, err := agg.ExpectedCounts(bounds)
	require.NoError(t, err)
	require.Len(t, rows, 200)

	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].Expected.Cmp(rows[i].Expected), 0,
			"expected count decreased between X=%d and X=%d", rows[i-1].Bound, rows[i].Bound)
	}
}

func TestExpectedCountsInvalidBounds(t *testing.T) {
	agg := newAggregator(t, 100)

	tests := []struct {
		name   string
		bounds []int
	}{
		{name: "empty", bounds: nil},
		{name: "zero", bounds: []int{0}},
		{name: "negative", bounds: []int{10, -5}},
		{name: "descending", bounds: []int{100, 10}},
		{name: "repeated", bounds: []int{10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := agg.ExpectedCounts(tt.bounds)
			assert.ErrorIs(t, err, quartic.ErrInvalidBound)
		})
	}
}

func TestExpectedCountsBoundBeyondSieve(t *testing.T) {
	agg := newAggregator(t, 100)

	_, err := agg.ExpectedCounts([]int{10, 101})
	assert.ErrorIs(t, err, quartic.ErrPrecisionInsufficient)
}

func TestNewAggregatorRejectsTinyLimit(t *testing.T) {
	cat := attachedCatalog(t)

	for _, limit := range []int{-1, 0, 1} {
		_, err := NewAggregator(cat, limit)
		assert.ErrorIs(t, err, quartic.ErrPrecisionInsufficient, "limit %d", limit)
	}
}

func TestLocalFactorLookup(t *testing.T) {
	agg := newAggregator(t, 100)

	wild, err := agg.LocalFactor(2)
	require.NoError(t, err)
	assert.Equal(t, 2, wild.P)

	tame, err := agg.LocalFactor(3)
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(43, 27).Cmp(tame.Euler()))

	// Cached lookups return the same factor.
	again, err := agg.LocalFactor(3)
	require.NoError(t, err)
	assert.Equal(t, tame, again)

	_, err = agg.LocalFactor(9)
	assert.ErrorIs(t, err, quartic.ErrPrecisionInsufficient, "composite argument")
	_, err = agg.LocalFactor(101)
	assert.ErrorIs(t, err, quartic.ErrPrecisionInsufficient, "beyond sieve limit")
}
