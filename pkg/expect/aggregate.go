package expect

import (
	"fmt"
	"math/big"

	"github.com/mesh-intelligence/quartic/internal/catalog"
	"github.com/mesh-intelligence/quartic/pkg/quartic"
)

// Row is one line of the expectation table: a conductor bound and the
// expected number of quartic D4 fields with conductor up to it.
type Row struct {
	Bound    int
	Expected *big.Rat
}

// Aggregator combines per-prime local factors into the cumulative expected
// count. It is pure after construction: the same instance answers any number
// of sweeps with identical results.
type Aggregator struct {
	sieve    *Sieve
	wild     LocalFactor
	outcomes Outcomes
	tame     map[int]LocalFactor
}

// NewAggregator builds the sieve and the wild local factor from the catalog.
// primeLimit bounds the primes (and hence conductors) the aggregator can
// handle; a non-positive limit is rejected as ErrPrecisionInsufficient
// rather than silently yielding an empty prime set.
func NewAggregator(cat *catalog.Backend, primeLimit int) (*Aggregator, error) {
	if primeLimit < wildPrime {
		return nil, fmt.Errorf("%w: prime limit %d cannot cover the wild prime",
			quartic.ErrPrecisionInsufficient, primeLimit)
	}

	outcomes, err := WildOutcomes(cat)
	if err != nil {
		return nil, err
	}
	wild, err := NewWildFactor(outcomes)
	if err != nil {
		return nil, err
	}

	return &Aggregator{
		sieve:    NewSieve(primeLimit),
		wild:     wild,
		outcomes: outcomes,
		tame:     make(map[int]LocalFactor),
	}, nil
}

// Outcomes returns the (d, q) representation counts at the wild prime.
func (a *Aggregator) Outcomes() Outcomes {
	return a.outcomes
}

// LocalFactor returns the local factor at a prime within the sieve range.
func (a *Aggregator) LocalFactor(p int) (LocalFactor, error) {
	if p == wildPrime {
		return a.wild, nil
	}
	if lf, ok := a.tame[p]; ok {
		return lf, nil
	}
	if p > a.sieve.Limit() || a.sieve.spf[p] != p {
		return LocalFactor{}, fmt.Errorf("%w: %d is not a prime within the sieve limit %d",
			quartic.ErrPrecisionInsufficient, p, a.sieve.Limit())
	}
	lf, err := NewTameFactor(p)
	if err != nil {
		return LocalFactor{}, err
	}
	a.tame[p] = lf
	return lf, nil
}

// ExpectedCounts sweeps the strictly ascending conductor bounds and returns
// the cumulative expected count at each. Conductors up to X involve primes
// up to X, so the sieve must cover the largest bound; otherwise the sweep
// fails with ErrPrecisionInsufficient instead of reporting a low number.
func (a *Aggregator) ExpectedCounts(bounds []int) ([]Row, error) {
	if err := validateBounds(bounds); err != nil {
		return nil, err
	}
	maxBound := bounds[len(bounds)-1]
	if maxBound > a.sieve.Limit() {
		return nil, fmt.Errorf("%w: prime limit %d below largest bound %d",
			quartic.ErrPrecisionInsufficient, a.sieve.Limit(), maxBound)
	}

	rows := make([]Row, 0, len(bounds))
	total := new(big.Rat)
	next := 0
	for n := 1; n <= maxBound; n++ {
		density, err := a.conductorDensity(n)
		if err != nil {
			return nil, err
		}
		total.Add(total, density)
		for next < len(bounds) && bounds[next] == n {
			rows = append(rows, Row{Bound: n, Expected: new(big.Rat).Set(total)})
			next++
		}
	}
	return rows, nil
}

// conductorDensity returns the expected number of fields with conductor
// exactly n: the product over p^v dividing n of the local densities.
func (a *Aggregator) conductorDensity(n int) (*big.Rat, error) {
	density := new(big.Rat).SetInt64(1)
	factors, err := a.sieve.Factorize(n)
	if err != nil {
		return nil, err
	}
	for _, pp := range factors {
		lf, err := a.LocalFactor(pp.P)
		if err != nil {
			return nil, err
		}
		local := lf.Density(pp.V)
		if local.Sign() == 0 {
			return new(big.Rat), nil
		}
		density.Mul(density, local)
	}
	return density, nil
}

// validateBounds rejects non-positive or non-ascending bound sweeps.
func validateBounds(bounds []int) error {
	if len(bounds) == 0 {
		return fmt.Errorf("%w: no conductor bounds requested", quartic.ErrInvalidBound)
	}
	prev := 0
	for _, b := range bounds {
		if b <= 0 {
			return fmt.Errorf("%w: %d is not positive", quartic.ErrInvalidBound, b)
		}
		if b <= prev {
			return fmt.Errorf("%w: bounds must be strictly ascending, got %d after %d",
				quartic.ErrInvalidBound, b, prev)
		}
		prev = b
	}
	return nil
}
