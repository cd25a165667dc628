package group

import "sort"

// Group is a finite permutation group given by its full element list, with
// display names for table output. Groups are immutable values built once at
// start-up; nothing in this package mutates them.
type Group struct {
	Name     string // short ASCII name, e.g. "<tau, sigma^2>"
	LatexRep string // LaTeX rendering for the published table
	Elements []Perm
}

// New builds a Group from its elements. The element order is preserved as
// given; closure is the caller's responsibility and is assertable via Verify.
func New(name, latexRep string, elements ...Perm) Group {
	return Group{Name: name, LatexRep: latexRep, Elements: elements}
}

// Order returns the number of elements.
func (g Group) Order() int {
	return len(g.Elements)
}

// Contains reports whether p is an element of g.
func (g Group) Contains(p Perm) bool {
	for _, e := range g.Elements {
		if e == p {
			return true
		}
	}
	return false
}

// Centralizer returns the number of elements of g commuting with p.
func (g Group) Centralizer(p Perm) int {
	n := 0
	for _, x := range g.Elements {
		if x.Mul(p) == p.Mul(x) {
			n++
		}
	}
	return n
}

// IsClosed reports whether g is closed under multiplication and contains the
// identity. Enumeration fails fast on a lattice entry that is not a group.
func (g Group) IsClosed() bool {
	if !g.Contains(Identity()) {
		return false
	}
	for _, a := range g.Elements {
		for _, b := range g.Elements {
			if !g.Contains(a.Mul(b)) {
				return false
			}
		}
	}
	return true
}

// Generated returns the cyclic group generated by p, in power order.
func Generated(name, latexRep string, p Perm) Group {
	elems := []Perm{Identity()}
	for x := p; x != Identity(); x = x.Mul(p) {
		elems = append(elems, x)
	}
	return Group{Name: name, LatexRep: latexRep, Elements: elems}
}

// sortPerms orders a permutation slice lexicographically, in place.
func sortPerms(ps []Perm) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].less(ps[j]) })
}
