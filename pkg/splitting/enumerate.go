package splitting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/quartic/pkg/group"
	"github.com/mesh-intelligence/quartic/pkg/quartic"
)

// FE describes one prime above p: residue degree F and ramification index E.
type FE struct {
	F int
	E int
}

// Symbol is the splitting type of a prime in one intermediate field: the
// (f, e) data of the primes above it, in canonical order (f ascending, then
// e descending). The fundamental identity sum of e·f over the primes equals
// the field degree.
type Symbol []FE

// canonicalize sorts the symbol into its published order.
func (s Symbol) canonicalize() {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].F != s[j].F {
			return s[i].F < s[j].F
		}
		return s[i].E > s[j].E
	})
}

// DegreeSum returns the sum of e·f over the primes, which must equal the
// degree of the field the symbol belongs to.
func (s Symbol) DegreeSum() int {
	total := 0
	for _, fe := range s {
		total += fe.F * fe.E
	}
	return total
}

// String renders the symbol in the paper's notation, e.g. "(1^2 1 2^3 2)".
// Ramification index 1 is left implicit.
func (s Symbol) String() string {
	parts := make([]string, len(s))
	for i, fe := range s {
		if fe.E > 1 {
			parts[i] = fmt.Sprintf("%d^%d", fe.F, fe.E)
		} else {
			parts[i] = fmt.Sprintf("%d", fe.F)
		}
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// RamClass partitions the table rows by ramification behavior.
type RamClass int

const (
	// Unramified: trivial inertia.
	Unramified RamClass = iota
	// TameSplit: tame ramification whose inertia misses the center.
	TameSplit
	// TameCentral: tame ramification with central inertia.
	TameCentral
	// WildCentral: wild ramification (inertia of even order, always central).
	WildCentral
)

// Row is one line of the published table: an inertia/decomposition class and
// the splitting symbol it induces in each intermediate field.
type Row struct {
	Inertia group.Group
	Decomp  group.Group
	Class   RamClass
	Symbols []Symbol // one per Fields() column, same order
}

// classes lists the possible (inertia, decomposition) pairs in published
// order: inertia is normal in decomposition with cyclic quotient, taken up
// to conjugacy.
var classes = []struct {
	inertia group.Group
	decomp  group.Group
	class   RamClass
}{
	// Unramified: decomposition is the cyclic group of Frobenius.
	{GalM, GalM, Unramified},
	{GalM, GalL, Unramified},
	{GalM, GalL2, Unramified},
	{GalM, GalL1, Unramified},
	{GalM, GalK, Unramified},
	// Tame, inertia lacking central elements.
	{GalL1, GalL1, TameSplit},
	{GalL1, GalK1, TameSplit},
	{GalL2, GalL2, TameSplit},
	{GalL2, GalK2, TameSplit},
	// Tame, central inertia.
	{GalK, GalK, TameCentral},
	{GalK, D4, TameCentral},
	{GalL, GalL, TameCentral},
	{GalL, GalK1, TameCentral},
	{GalL, GalK2, TameCentral},
	{GalL, GalK, TameCentral},
	// Wild, central inertia.
	{GalK1, GalK1, WildCentral},
	{GalK2, GalK2, WildCentral},
	{D4, D4, WildCentral},
}

// symbolFor computes the splitting type of a prime with the given
// decomposition and inertia groups in the field fixed by field.Gal: the
// decomposition orbits on the cosets of Gal(M/field) are the primes above p,
// the inertia suborbits of an orbit count the residue degree, and the
// suborbit size is the ramification index.
func symbolFor(field Field, decomp, inertia group.Group) Symbol {
	cosets := group.Cosets(D4, field.Gal)
	orbits := group.Orbits(cosets, decomp)
	sym := make(Symbol, 0, len(orbits))
	for _, orbit := range orbits {
		sub := group.Orbits(orbit, inertia)
		sym = append(sym, FE{F: len(sub), E: len(sub[0])})
	}
	sym.canonicalize()
	return sym
}

// Enumerate returns the full splitting-type table: one row per
// inertia/decomposition class, columns in Fields() order. The result is
// deterministic and order-stable across runs. Enumerate fails with
// quartic.ErrInvariantViolation if the computed table breaks the degree
// identity; a broken table is never returned.
func Enumerate() ([]Row, error) {
	rows := make([]Row, 0, len(classes))
	for _, c := range classes {
		row := Row{
			Inertia: c.inertia,
			Decomp:  c.decomp,
			Class:   c.class,
			Symbols: make([]Symbol, 0, len(fields)),
		}
		for _, f := range fields {
			row.Symbols = append(row.Symbols, symbolFor(f, c.decomp, c.inertia))
		}
		rows = append(rows, row)
	}
	if err := Verify(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Verify checks the combinatorial invariants of an enumerated table. Any
// failure is a logic defect in the lattice or the orbit computation, wrapped
// in quartic.ErrInvariantViolation.
func Verify(rows []Row) error {
	if D4.Order() != 8 || !D4.IsClosed() {
		return fmt.Errorf("%w: D4 table is not a group of order 8", quartic.ErrInvariantViolation)
	}
	for _, f := range fields {
		if !f.Gal.IsClosed() {
			return fmt.Errorf("%w: Gal(M/%s) is not closed", quartic.ErrInvariantViolation, f.Name)
		}
		if D4.Order()%f.Gal.Order() != 0 {
			return fmt.Errorf("%w: |Gal(M/%s)| does not divide |D4|", quartic.ErrInvariantViolation, f.Name)
		}
	}
	if len(rows) != len(classes) {
		return fmt.Errorf("%w: expected %d rows, got %d", quartic.ErrInvariantViolation, len(classes), len(rows))
	}
	for _, row := range rows {
		if len(row.Symbols) != len(fields) {
			return fmt.Errorf("%w: row (%s, %s) has %d columns",
				quartic.ErrInvariantViolation, row.Inertia.Name, row.Decomp.Name, len(row.Symbols))
		}
		for i, sym := range row.Symbols {
			if got, want := sym.DegreeSum(), fields[i].Degree(); got != want {
				return fmt.Errorf("%w: row (%s, %s) field %s: sum of e*f is %d, want %d",
					quartic.ErrInvariantViolation, row.Inertia.Name, row.Decomp.Name,
					fields[i].Name, got, want)
			}
		}
	}
	return nil
}

// FrobClass is one distinct unramified splitting type in the quartic field,
// with the number of elements of D4 whose Frobenius induces it. The
// multiplicities are the combinatorial weights behind the unramified local
// densities, and they sum to |D4| = 8.
type FrobClass struct {
	Type         Symbol
	Multiplicity int
}

// FrobeniusClasses enumerates the distinct unramified splitting types of the
// quartic field, sorted by their canonical symbol key. Fails with
// quartic.ErrInvariantViolation if the multiplicities do not sum to |D4|.
func FrobeniusClasses() ([]FrobClass, error) {
	counts := make(map[string]*FrobClass)
	for _, x := range D4.Elements {
		sym := cycleType(x)
		key := sym.String()
		if c, ok := counts[key]; ok {
			c.Multiplicity++
			continue
		}
		counts[key] = &FrobClass{Type: sym, Multiplicity: 1}
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]FrobClass, 0, len(keys))
	total := 0
	for _, k := range keys {
		out = append(out, *counts[k])
		total += counts[k].Multiplicity
	}
	if total != D4.Order() {
		return nil, fmt.Errorf("%w: Frobenius multiplicities sum to %d, want %d",
			quartic.ErrInvariantViolation, total, D4.Order())
	}
	return out, nil
}

// cycleType returns the unramified splitting symbol induced by a Frobenius
// element: one unramified prime per cycle on the roots, residue degree equal
// to the cycle length.
func cycleType(p group.Perm) Symbol {
	var seen [group.Degree]bool
	var sym Symbol
	for i := 0; i < group.Degree; i++ {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = p[j] {
			seen[j] = true
			length++
		}
		sym = append(sym, FE{F: length, E: 1})
	}
	sym.canonicalize()
	return sym
}
