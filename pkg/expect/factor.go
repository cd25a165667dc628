package expect

import (
	"fmt"
	"math/big"

	"github.com/mesh-intelligence/quartic/pkg/quartic"
)

// groupOrder is |D4|, the normalizer of every local multiplicity.
const groupOrder = 8

// LocalFactor carries one prime's representation multiplicities by
// Artin-conductor exponent, normalized by the group order on evaluation.
// The exponent-0 density is exactly 1 at every prime: that is the
// Euler-product structure the global count rests on.
type LocalFactor struct {
	P      int
	counts map[int]int64 // raw representation counts per conductor exponent
}

// newLocalFactor wraps raw counts, enforcing the unramified invariant.
func newLocalFactor(p int, counts map[int]int64) (LocalFactor, error) {
	if counts[0] != groupOrder {
		return LocalFactor{}, fmt.Errorf(
			"%w: p=%d has %d unramified representations, want %d",
			quartic.ErrInvariantViolation, p, counts[0], groupOrder)
	}
	for v, n := range counts {
		if v < 0 || n < 0 {
			return LocalFactor{}, fmt.Errorf(
				"%w: p=%d has count %d at exponent %d",
				quartic.ErrInvariantViolation, p, n, v)
		}
	}
	return LocalFactor{P: p, counts: counts}, nil
}

// Density returns the local density at conductor exponent v: the number of
// representations with that exponent divided by |D4|. Density(0) is exactly
// 1; exponents with no representations give 0.
func (lf LocalFactor) Density(v int) *big.Rat {
	return big.NewRat(lf.counts[v], groupOrder)
}

// MaxExponent returns the largest conductor exponent with a nonzero count.
func (lf LocalFactor) MaxExponent() int {
	max := 0
	for v, n := range lf.counts {
		if n > 0 && v > max {
			max = v
		}
	}
	return max
}

// Euler returns the local Euler factor sum over v of Density(v)/p^v, the
// factor this prime contributes to the conductor Dirichlet series at the
// density point. At the wild prime 2 this is the total-weight statistic of
// the published table.
func (lf LocalFactor) Euler() *big.Rat {
	total := new(big.Rat)
	pv := big.NewInt(1)
	p := big.NewInt(int64(lf.P))
	for v := 0; v <= lf.MaxExponent(); v++ {
		if n := lf.counts[v]; n > 0 {
			term := new(big.Rat).SetFrac(big.NewInt(n), new(big.Int).Mul(big.NewInt(groupOrder), pv))
			total.Add(total, term)
		}
		pv = new(big.Int).Mul(pv, p)
	}
	return total
}
