package expect

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quartic/internal/catalog"
)

func attachedCatalog(t *testing.T) *catalog.Backend {
	t.Helper()
	cat := catalog.New()
	require.NoError(t, cat.Attach())
	t.Cleanup(func() {
		require.NoError(t, cat.Detach())
	})
	return cat
}

func TestWildOutcomesClasses(t *testing.T) {
	cat := attachedCatalog(t)

	outcomes, err := WildOutcomes(cat)
	require.NoError(t, err)

	want := Outcomes{
		{D: 0, Q: 0}: 8,
		{D: 0, Q: 2}: 8,
		{D: 0, Q: 3}: 16,
		{D: 0, Q: 4}: 16,
		{D: 0, Q: 5}: 16,
		{D: 0, Q: 6}: 32,
		{D: 2, Q: 0}: 8,
		{D: 2, Q: 2}: 8,
		{D: 2, Q: 4}: 16,
		{D: 2, Q: 5}: 32,
		{D: 3, Q: 0}: 16,
		{D: 3, Q: 2}: 16,
		{D: 3, Q: 4}: 32,
		{D: 3, Q: 5}: 64,
	}
	assert.Equal(t, want, outcomes)
}

func TestWildOutcomesTotalWeight(t *testing.T) {
	cat := attachedCatalog(t)

	outcomes, err := WildOutcomes(cat)
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(5, 2).Cmp(outcomes.TotalWeight()))
}

func TestNewWildFactorDensities(t *testing.T) {
	cat := attachedCatalog(t)

	outcomes, err := WildOutcomes(cat)
	require.NoError(t, err)
	wild, err := NewWildFactor(outcomes)
	require.NoError(t, err)

	wantEighths := map[int]int64{0: 8, 2: 16, 3: 32, 4: 24, 5: 32, 6: 48, 7: 64, 8: 64}
	for v := 0; v <= wild.MaxExponent(); v++ {
		want := big.NewRat(wantEighths[v], 8)
		assert.Zero(t, want.Cmp(wild.Density(v)), "conductor exponent %d", v)
	}
	assert.Equal(t, 8, wild.MaxExponent())
	assert.Zero(t, wild.Density(1).Sign(), "no representation has conductor exponent 1 at p=2")

	// The Euler factor of the wild local factor is the total weight.
	assert.Zero(t, big.NewRat(5, 2).Cmp(wild.Euler()))
}

func TestWildOutcomesSortedInvariants(t *testing.T) {
	cat := attachedCatalog(t)

	outcomes, err := WildOutcomes(cat)
	require.NoError(t, err)

	keys := outcomes.SortedInvariants()
	require.Len(t, keys, 14)
	for i := 1; i < len(keys); i++ {
		prev, cur := keys[i-1], keys[i]
		assert.True(t, prev.D < cur.D || (prev.D == cur.D && prev.Q < cur.Q),
			"keys out of order: %v before %v", prev, cur)
	}
	assert.Equal(t, Invariant{D: 0, Q: 0}, keys[0])
	assert.Equal(t, Invariant{D: 3, Q: 5}, keys[13])
}
