package expect

import "fmt"

// Sieve is a smallest-prime-factor table covering 2..limit. It doubles as
// the prime generator and the factorization oracle of the aggregator, so a
// single pass serves both.
type Sieve struct {
	limit int
	spf   []int // spf[n] is the smallest prime factor of n; 0 for n < 2
}

// NewSieve builds the table. A limit below 2 yields an empty sieve.
func NewSieve(limit int) *Sieve {
	if limit < 1 {
		limit = 1
	}
	s := &Sieve{limit: limit, spf: make([]int, limit+1)}
	for i := 2; i <= limit; i++ {
		if s.spf[i] != 0 {
			continue
		}
		for j := i; j <= limit; j += i {
			if s.spf[j] == 0 {
				s.spf[j] = i
			}
		}
	}
	return s
}

// Limit returns the sieve's upper bound.
func (s *Sieve) Limit() int {
	return s.limit
}

// Primes returns all primes up to the limit in ascending order.
func (s *Sieve) Primes() []int {
	var out []int
	for n := 2; n <= s.limit; n++ {
		if s.spf[n] == n {
			out = append(out, n)
		}
	}
	return out
}

// PrimePower is one p^v factor of an integer.
type PrimePower struct {
	P int
	V int
}

// Factorize returns the prime factorization of n in ascending prime order.
// n must lie in [1, limit].
func (s *Sieve) Factorize(n int) ([]PrimePower, error) {
	if n < 1 || n > s.limit {
		return nil, fmt.Errorf("factorize %d: outside sieve range [1, %d]", n, s.limit)
	}
	var out []PrimePower
	for n > 1 {
		p := s.spf[n]
		v := 0
		for n%p == 0 {
			n /= p
			v++
		}
		out = append(out, PrimePower{P: p, V: v})
	}
	return out, nil
}
