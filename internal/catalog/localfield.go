package catalog

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/mesh-intelligence/quartic/pkg/quartic"
)

// Galois group labels used in the catalog.
const (
	GroupC2 = "C2"
	GroupC4 = "C4"
	GroupV4 = "V4"
	GroupD4 = "D4"
)

// InertiaUnramified marks fields with trivial inertia.
const InertiaUnramified = "unram"

// knownGroups lists the groups the catalog accepts queries for.
var knownGroups = map[string]bool{
	GroupC2: true,
	GroupC4: true,
	GroupV4: true,
	GroupD4: true,
}

// LocalField is one 2-adic field from the source database. Immutable value;
// the aggregator only reads it.
type LocalField struct {
	Group        string     // Galois group of the Galois closure
	C            int        // conductor exponent
	E            int        // ramification index
	F            int        // residue degree
	D            string     // discriminant tag of the quadratic resolvent
	Eps          string     // epsilon invariant
	Poly         string     // defining polynomial over Q2
	Inertia      string     // inertia subgroup label, or "unram"
	Slopes       []*big.Rat // wild ramification slopes, can be half-integral
	Deg2Subfield string     // quadratic subfield tag; empty for C2/V4 rows
}

// Unramified reports whether the field has trivial inertia.
func (lf LocalField) Unramified() bool {
	return lf.Inertia == InertiaUnramified
}

// LastSlope returns the largest ramification slope. Calling it on an
// unramified field is a logic defect.
func (lf LocalField) LastSlope() (*big.Rat, error) {
	if len(lf.Slopes) == 0 {
		return nil, fmt.Errorf("%w: field %s has no slopes", quartic.ErrInvariantViolation, lf.Poly)
	}
	return lf.Slopes[len(lf.Slopes)-1], nil
}

// QuadDisc translates the source database's discriminant tag into the d
// invariant of the associated quadratic field: 0 for the unramified tag,
// 3 when 2 ramifies in it, 2 otherwise.
func QuadDisc(tag string) (int, error) {
	switch {
	case tag == "*":
		return 0, nil
	case strings.Contains(tag, "2"):
		return 3, nil
	case strings.Contains(tag, "-"):
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized discriminant tag %q", quartic.ErrInvariantViolation, tag)
	}
}

// parseSlopes parses the bracket notation of the source database, e.g.
// "[2, 3, 7/2]", into exact rationals.
func parseSlopes(raw string) ([]*big.Rat, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return nil, fmt.Errorf("malformed slope list %q", raw)
	}
	inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if inner == "" {
		return nil, nil
	}
	parts := strings.Split(inner, ",")
	slopes := make([]*big.Rat, 0, len(parts))
	for _, part := range parts {
		r, ok := new(big.Rat).SetString(strings.TrimSpace(part))
		if !ok {
			return nil, fmt.Errorf("malformed slope %q in %q", part, raw)
		}
		slopes = append(slopes, r)
	}
	return slopes, nil
}

// formatSlopes renders slopes back into bracket notation for storage.
func formatSlopes(slopes []*big.Rat) string {
	parts := make([]string, len(slopes))
	for i, s := range slopes {
		if s.IsInt() {
			parts[i] = s.Num().String()
		} else {
			parts[i] = s.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
