package group

import "fmt"

// Degree is the number of points the permutations act on. The quartic
// extensions under study have degree-4 Galois closures inside S4.
const Degree = 4

// Perm is a permutation of the points {0, 1, 2, 3}, stored as the array of
// images: p[i] is the image of i. Perm is a comparable value type, so it can
// key maps directly.
type Perm [Degree]int

// Identity returns the identity permutation.
func Identity() Perm {
	return Perm{0, 1, 2, 3}
}

// Mul returns the composition p∘q, applying q first and then p.
func (p Perm) Mul(q Perm) Perm {
	var r Perm
	for i := 0; i < Degree; i++ {
		r[i] = p[q[i]]
	}
	return r
}

// Pow returns p raised to the n-th power. Negative exponents are resolved
// through the inverse.
func (p Perm) Pow(n int) Perm {
	if n < 0 {
		return p.Inverse().Pow(-n)
	}
	r := Identity()
	for i := 0; i < n; i++ {
		r = r.Mul(p)
	}
	return r
}

// Inverse returns the inverse permutation.
func (p Perm) Inverse() Perm {
	var r Perm
	for i := 0; i < Degree; i++ {
		r[p[i]] = i
	}
	return r
}

// Conjugate returns x·p·x⁻¹.
func (p Perm) Conjugate(x Perm) Perm {
	return x.Mul(p).Mul(x.Inverse())
}

// Order returns the multiplicative order of p.
func (p Perm) Order() int {
	r := p
	for n := 1; ; n++ {
		if r == Identity() {
			return n
		}
		r = r.Mul(p)
	}
}

// CycleCount returns the number of cycles of p on the four points, fixed
// points included. The tame Artin-conductor exponent of an inertia generator
// y is Degree − y.CycleCount().
func (p Perm) CycleCount() int {
	var seen [Degree]bool
	count := 0
	for i := 0; i < Degree; i++ {
		if seen[i] {
			continue
		}
		count++
		for j := i; !seen[j]; j = p[j] {
			seen[j] = true
		}
	}
	return count
}

// String renders the permutation in one-line image notation, e.g. [1 2 3 0].
func (p Perm) String() string {
	return fmt.Sprintf("[%d %d %d %d]", p[0], p[1], p[2], p[3])
}

// less orders permutations lexicographically by their image arrays. Used to
// canonicalize cosets and orbits so enumeration output is reproducible.
func (p Perm) less(q Perm) bool {
	for i := 0; i < Degree; i++ {
		if p[i] != q[i] {
			return p[i] < q[i]
		}
	}
	return false
}
