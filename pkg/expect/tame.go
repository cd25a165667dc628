package expect

import (
	"fmt"

	"github.com/mesh-intelligence/quartic/pkg/group"
	"github.com/mesh-intelligence/quartic/pkg/quartic"
	"github.com/mesh-intelligence/quartic/pkg/splitting"
)

// NewTameFactor counts the local representations Gal(Q_p) → D4 at an odd
// prime p. A tame representation is a pair (x, y): y generates the cyclic
// inertia image, x is a Frobenius lift, and the tame relation
// x·y·x⁻¹ = y^p holds. The Artin-conductor exponent of the pair is
// 4 − (cycles of y on the roots), the tame conductor of the quartic.
func NewTameFactor(p int) (LocalFactor, error) {
	if p < 3 || p%2 == 0 {
		return LocalFactor{}, fmt.Errorf(
			"%w: tame factor requested for p=%d, need an odd prime",
			quartic.ErrInvariantViolation, p)
	}

	counts := make(map[int]int64)
	for _, y := range splitting.D4.Elements {
		// Every element of D4 has order dividing 4, so y^p only depends
		// on p mod 4.
		yp := y.Pow(p % 4)
		v := group.Degree - y.CycleCount()
		for _, x := range splitting.D4.Elements {
			if y.Conjugate(x) == yp {
				counts[v]++
			}
		}
	}
	return newLocalFactor(p, counts)
}
