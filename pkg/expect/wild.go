package expect

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/mesh-intelligence/quartic/internal/catalog"
	"github.com/mesh-intelligence/quartic/pkg/quartic"
)

// wildPrime is the only prime with wild ramification in a quartic D4
// extension; everything in this file is specific to it.
const wildPrime = 2

// wildClassCount is the number of distinct (d, q) invariant pairs realized
// by the catalog. The published table has exactly fourteen.
const wildClassCount = 14

// Invariant classifies a wild representation at 2 by the discriminant
// exponent d of its quadratic resolvent and the residual conductor exponent
// q. The full conductor exponent is d + q.
type Invariant struct {
	D int
	Q int
}

// Outcomes maps invariants to weighted representation counts.
type Outcomes map[Invariant]int64

// SortedInvariants returns the keys in (d, q) order for stable output.
func (o Outcomes) SortedInvariants() []Invariant {
	keys := make([]Invariant, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].D != keys[j].D {
			return keys[i].D < keys[j].D
		}
		return keys[i].Q < keys[j].Q
	})
	return keys
}

// TotalWeight returns the sum over classes of count/2^(d+q+3), the local
// mass of the catalog. Equal to the Euler factor of the wild local factor.
func (o Outcomes) TotalWeight() *big.Rat {
	total := new(big.Rat)
	for inv, n := range o {
		den := new(big.Int).Lsh(big.NewInt(1), uint(inv.D+inv.Q+3))
		total.Add(total, new(big.Rat).SetFrac(big.NewInt(n), den))
	}
	return total
}

// contribution is one batch of representations sharing a quadratic
// discriminant exponent d and a full conductor exponent cond.
type contribution struct {
	d     int
	cond  int
	count int64
}

// WildOutcomes aggregates the local-field catalog into representation
// counts per (d, q) invariant. This is the computation behind the published
// expected-number table at p = 2.
func WildOutcomes(cat *catalog.Backend) (Outcomes, error) {
	collectors := []struct {
		group   string
		collect func([]catalog.LocalField) ([]contribution, error)
	}{
		{catalog.GroupC2, c2Contributions},
		{catalog.GroupC4, c4Contributions},
		{catalog.GroupV4, v4Contributions},
		{catalog.GroupD4, d4Contributions},
	}

	outcomes := Outcomes{
		// The unramified representations: one class, all eight Frobenius
		// choices.
		{D: 0, Q: 0}: groupOrder,
	}
	for _, col := range collectors {
		fields, err := cat.FieldsByGroup(col.group)
		if err != nil {
			return nil, fmt.Errorf("wild outcomes for %s: %w", col.group, err)
		}
		contribs, err := col.collect(fields)
		if err != nil {
			return nil, fmt.Errorf("wild outcomes for %s: %w", col.group, err)
		}
		for _, c := range contribs {
			q := c.cond - c.d
			if q < 0 {
				return nil, fmt.Errorf(
					"%w: %s contribution has conductor %d below discriminant %d",
					quartic.ErrInvariantViolation, col.group, c.cond, c.d)
			}
			outcomes[Invariant{D: c.d, Q: q}] += c.count
		}
	}

	if len(outcomes) != wildClassCount {
		return nil, fmt.Errorf("%w: %d invariant classes, want %d",
			quartic.ErrInvariantViolation, len(outcomes), wildClassCount)
	}
	return outcomes, nil
}

// NewWildFactor folds the outcomes into the local factor at 2, keyed by the
// full conductor exponent d + q.
func NewWildFactor(outcomes Outcomes) (LocalFactor, error) {
	counts := make(map[int]int64)
	for inv, n := range outcomes {
		counts[inv.D+inv.Q] += n
	}
	return newLocalFactor(wildPrime, counts)
}

// c2Contributions handles the quadratic fields. Each ramified C2 field
// yields three inertia embeddings into D4: the two reflection classes (two
// automorphisms each) and the central one.
func c2Contributions(fields []catalog.LocalField) ([]contribution, error) {
	var out []contribution
	for _, lf := range fields {
		if lf.Unramified() {
			continue
		}
		out = append(out,
			contribution{d: 0, cond: lf.C, count: 2},
			contribution{d: lf.C, cond: lf.C, count: 2},
			contribution{d: 0, cond: 2 * lf.C, count: 1},
		)
	}
	return out, nil
}

// c4Contributions handles the cyclic quartic fields. A C2-inertia field
// embeds with trivial resolvent; full C4 inertia survives the quotient by
// the quadratic subfield, whose discriminant becomes d, and the conductor
// is twice the last slope.
func c4Contributions(fields []catalog.LocalField) ([]contribution, error) {
	var out []contribution
	for _, lf := range fields {
		switch lf.Inertia {
		case catalog.InertiaUnramified:
			continue
		case catalog.GroupC2:
			out = append(out, contribution{d: 0, cond: lf.C, count: 2})
		default:
			d, err := catalog.QuadDisc(lf.Deg2Subfield)
			if err != nil {
				return nil, err
			}
			s, err := lastSlopeInt(lf)
			if err != nil {
				return nil, err
			}
			out = append(out, contribution{d: d, cond: 2 * s, count: 2})
		}
	}
	return out, nil
}

// v4Contributions handles the biquadratic fields. The two embeddings of V4
// into D4 behave differently: inertia dies in the quotient for one and
// survives as a reflection for the other, and the conductor depends on
// whether the inertia image is central or a reflection.
func v4Contributions(fields []catalog.LocalField) ([]contribution, error) {
	var out []contribution
	for _, lf := range fields {
		switch lf.Inertia {
		case catalog.GroupC2:
			s, err := lastSlopeInt(lf)
			if err != nil {
				return nil, err
			}
			out = append(out,
				// V4 = <tau, sigma^2>: inertia never survives. Four of the
				// six automorphisms send it to a reflection (conductor equal
				// to the slope), two to the center (twice the slope).
				contribution{d: 0, cond: s, count: 4},
				contribution{d: 0, cond: 2 * s, count: 2},
				// V4 = <sigma tau, sigma^2>: inertia survives exactly when
				// the image is a reflection.
				contribution{d: s, cond: s, count: 4},
				contribution{d: 0, cond: 2 * s, count: 2},
			)
		case catalog.GroupV4:
			if len(lf.Slopes) < 2 {
				return nil, fmt.Errorf("%w: V4-inertia field %s has %d slopes",
					quartic.ErrInvariantViolation, lf.Poly, len(lf.Slopes))
			}
			s0, err := slopeInt(lf, 0)
			if err != nil {
				return nil, err
			}
			s1, err := slopeInt(lf, 1)
			if err != nil {
				return nil, err
			}
			// The conductor is driven by the image of the second inertia
			// group: a reflection gives 2*s0 + (s1 - s0), the center 2*s1.
			out = append(out,
				contribution{d: 0, cond: 2*s0 + (s1 - s0), count: 4},
				contribution{d: 0, cond: 2 * s1, count: 2},
				// In the surviving embedding all three quadratic subfields
				// ramify; which one survives the quotient again depends on
				// the second inertia group.
				contribution{d: 3, cond: 2*s0 + (s1 - s0), count: 4},
				contribution{d: 2, cond: 2 * s1, count: 2},
			)
		default:
			return nil, fmt.Errorf("%w: V4 field %s has inertia %s",
				quartic.ErrInvariantViolation, lf.Poly, lf.Inertia)
		}
	}
	return out, nil
}

// d4Contributions handles the quartic D4 fields themselves. The catalog
// lists them as quartic fields, so only the four inner automorphisms fix
// the quadratic subfield, and the representation conductor is c − d.
func d4Contributions(fields []catalog.LocalField) ([]contribution, error) {
	var out []contribution
	for _, lf := range fields {
		d, err := catalog.QuadDisc(lf.Deg2Subfield)
		if err != nil {
			return nil, err
		}
		out = append(out, contribution{d: d, cond: lf.C - d, count: 4})
	}
	return out, nil
}

// lastSlopeInt returns the largest slope, which must be integral for the
// conductor formulas that use it.
func lastSlopeInt(lf catalog.LocalField) (int, error) {
	return slopeInt(lf, len(lf.Slopes)-1)
}

// slopeInt returns slope i as an integer.
func slopeInt(lf catalog.LocalField, i int) (int, error) {
	if i < 0 || i >= len(lf.Slopes) {
		return 0, fmt.Errorf("%w: field %s has no slope %d",
			quartic.ErrInvariantViolation, lf.Poly, i)
	}
	s := lf.Slopes[i]
	if !s.IsInt() {
		return 0, fmt.Errorf("%w: field %s slope %s is not integral",
			quartic.ErrInvariantViolation, lf.Poly, s)
	}
	return int(s.Num().Int64()), nil
}
